package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/woozymasta/osmosint/internal/query"
)

// Header describes what a result set contains.
func Header(spec query.Spec) string {
	switch spec.Kind {
	case query.Radius:
		return fmt.Sprintf("Results for all %s in a %dm radius of %s in %s", spec.Tag, spec.Radius, spec.Near, spec.Area)
	default:
		return fmt.Sprintf("Results for all %s in %s", spec.Tag, spec.Area)
	}
}

// NoResults explains an empty result set and lists the query parameters.
func NoResults(w io.Writer, spec query.Spec, sel Selection) {
	where := spec.Area.Name
	if spec.Area.BBox != nil {
		where = "the following bbox " + spec.Area.BBox.String()
	}

	switch spec.Kind {
	case query.Radius:
		fmt.Fprintf(w, "\nThe query found 0 %s within a %dm radius of a %s in %s.\n", spec.Tag, spec.Radius, spec.Near, where)
	default:
		fmt.Fprintf(w, "\nThe query found 0 %s in %s.\n", spec.Tag, where)
	}

	fmt.Fprintln(w, "\nMake sure that the parameters you entered are correct:")
	for _, kv := range parameters(spec, sel) {
		fmt.Fprintf(w, "    %s : %s\n", kv[0], kv[1])
	}
	fmt.Fprintln(w, "If you are certain that the query should yield results and the parameters are correct, visit the documentation to troubleshoot what could be wrong.")
}

func parameters(spec query.Spec, sel Selection) [][2]string {
	params := [][2]string{{"type_query", string(spec.Kind)}}
	if spec.Area.BBox != nil {
		params = append(params, [2]string{"bbox", spec.Area.BBox.String()})
	} else {
		params = append(params, [2]string{"location", spec.Area.Name})
	}
	params = append(params, [2]string{"tag_1", spec.Tag})
	if spec.Kind == query.Radius {
		params = append(params,
			[2]string{"tag_2", spec.Near},
			[2]string{"radius", strconv.Itoa(spec.Radius)})
	}
	if sel.Target != TargetNone {
		params = append(params, [2]string{"file_type", string(sel.Target)})
	}
	for _, f := range sel.Formats() {
		params = append(params, [2]string{"format", string(f)})
	}
	return params
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
