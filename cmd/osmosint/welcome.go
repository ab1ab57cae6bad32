package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/woozymasta/osmosint/internal/output"
	"github.com/woozymasta/osmosint/internal/query"
)

const banner = `
   ____                                 _         __
  / __ \ _____ ____ ___   ____   _____ (_)____   / /_
 / / / // ___// __ ` + "`" + `__ \ / __ \ / ___// // __ \ / __/
/ /_/ /(__  )/ / / / / // /_/ /(__  )/ // / / // /_
\____//____//_/ /_/ /_/ \____//____//_//_/ /_/ \__/
`

// welcome prints the banner with the command and the selected output formats.
func welcome(w io.Writer, kind query.Kind, sel output.Selection) {
	fmt.Fprint(w, banner+"\n")
	fmt.Fprintln(w, "Welcome to Osmosint!")
	fmt.Fprintf(w, "Command: %s\n", kind)

	if !sel.Explicit() {
		fmt.Fprintln(w, "Output Format: None selected, decimal coordinates by default")
	} else {
		labels := make([]string, 0, 3)
		for _, f := range sel.Formats() {
			labels = append(labels, f.Label())
		}
		fmt.Fprintf(w, "Output Format: %s\n", strings.Join(labels, ", "))
	}

	if sel.Target != output.TargetNone {
		fmt.Fprintf(w, "Output File: %s\n", sel.Target)
	}
	fmt.Fprintln(w)
}

func convertBanner(w io.Writer) {
	fmt.Fprint(w, banner+"\n")
	fmt.Fprintln(w, "Welcome to the Osmosint Coordinate Converter!")
	fmt.Fprintln(w, `Allowed coordinate formats for conversion: DMS (e.g. 21°07'24.35"N), Decimal (e.g. 21.123431)`)
	fmt.Fprintln(w, "Input format: latitude, longitude")
	fmt.Fprintln(w, "Enter exit to leave the program.")
	fmt.Fprintln(w)
}
