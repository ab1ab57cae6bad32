package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/woozymasta/osmosint/internal/geo"
)

// Options tunes the generated query without changing its meaning.
type Options struct {
	// Timeout is the server-side [timeout:N] setting in seconds; zero omits it.
	Timeout int
}

// named set identifiers used in the generated query
const (
	setArea = "boundaryarea"
	setTag  = "A"
	setNear = "B"
)

// Compile validates spec and renders it as Overpass QL. The output is
// deterministic for equal inputs.
func Compile(spec Spec, opts Options) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	// Validate guarantees both tags parse
	tag, _ := ParseTag(spec.Tag)

	var b strings.Builder
	writeSettings(&b, opts, spec.Area.BBox)

	scope := ""
	if spec.Area.BBox == nil {
		fmt.Fprintf(&b, "area[\"name\"=%s]->.%s;\n", quote(spec.Area.Name), setArea)
		scope = "(area." + setArea + ")"
	}

	fmt.Fprintf(&b, "(node%s%s;)->.%s;\n", scope, tag.Filter(), setTag)

	switch spec.Kind {
	case Locate:
		fmt.Fprintf(&b, ".%s out body;\n", setTag)
	case Radius:
		near, _ := ParseTag(spec.Near)
		fmt.Fprintf(&b, "(node%s%s;)->.%s;\n", scope, near.Filter(), setNear)
		fmt.Fprintf(&b, "node.%s(around.%s:%d);\n", setTag, setNear, spec.Radius)
		b.WriteString("out body;\n")
	}

	return b.String(), nil
}

func writeSettings(b *strings.Builder, opts Options, box *geo.BBox) {
	if opts.Timeout <= 0 && box == nil {
		return
	}

	if opts.Timeout > 0 {
		b.WriteString("[timeout:" + strconv.Itoa(opts.Timeout) + "]")
	}
	if box != nil {
		b.WriteString("[bbox:" + coord(box.South) + "," + coord(box.West) + "," + coord(box.North) + "," + coord(box.East) + "]")
	}
	b.WriteString(";\n")
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
