package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/query"

	"github.com/rs/zerolog/log"
)

// ErrAborted is returned when the user declines to save an oversized result.
var ErrAborted = errors.New("output aborted by user")

// Renderer prints or persists the results of a query.
type Renderer struct {
	Out       io.Writer
	Files     *Files
	Threshold int
	Ask       AskFunc
}

// Render outputs points for spec according to sel. An empty result prints an
// explanation and returns nil.
func (r *Renderer) Render(points []geo.DecimalPoint, spec query.Spec, sel Selection) error {
	if len(points) == 0 {
		NoResults(r.Out, spec, sel)
		return nil
	}

	switch Guard(len(points), r.Threshold, sel.Target, r.Ask) {
	case Abort:
		return ErrAborted
	case ForceFileOutput:
		log.Info().Int("results", len(points)).Msg("Result set too large for the console, writing to file")
		sel.Target = TargetText
	}

	projs := ProjectAll(points, sel)

	if sel.Target == TargetNone {
		if !sel.Explicit() {
			fmt.Fprintln(r.Out, "\nYou did not specify an output format (--decimal_coords, --dms_coords or --google_urls).")
			fmt.Fprintln(r.Out, "Output by default is in decimal format:")
		}
		Console{W: r.Out}.Print(projs)
		return nil
	}

	files := r.Files
	if files == nil {
		files = &Files{}
	}

	path, err := files.Write(sel.Target, Header(spec), points, projs)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.Out, "\nFile writing completed!")
	fmt.Fprintf(r.Out, "You can access your results in the '%s' file.\n", path)
	return nil
}
