package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Console prints projections as tables.
type Console struct {
	W io.Writer
}

// Print writes one titled table per projection.
func (c Console) Print(projs []Projection) {
	for _, p := range projs {
		fmt.Fprintf(c.W, "\nResults in %s format:\n\n", p.Format)

		table := tablewriter.NewWriter(c.W)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)

		if p.Format == FormatURLs {
			table.SetHeader([]string{"#", "URL"})
			for i, u := range p.URLs {
				table.Append([]string{strconv.Itoa(i + 1), u})
			}
		} else {
			table.SetHeader([]string{"#", "Latitude", "Longitude"})
			for i, pair := range p.Pairs {
				table.Append([]string{strconv.Itoa(i + 1), pair.Latitude, pair.Longitude})
			}
		}

		table.Render()
	}
}
