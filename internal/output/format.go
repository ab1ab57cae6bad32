// Package output projects result coordinates into presentation formats and
// renders them to the console or to result files.
package output

import (
	"fmt"

	"github.com/woozymasta/osmosint/internal/geo"
)

// Format is a presentation of a result point.
type Format string

const (
	FormatDecimal Format = "decimal"
	FormatDMS     Format = "dms"
	FormatURLs    Format = "urls"
)

// Label is the section title used in files and on the console.
func (f Format) Label() string {
	switch f {
	case FormatDMS:
		return "Coordinates in DMS Format"
	case FormatURLs:
		return "Google Maps URLs"
	default:
		return "Coordinates in Decimal Format"
	}
}

// Target is a persistence format for results.
type Target string

const (
	TargetNone    Target = ""
	TargetText    Target = "txt"
	TargetCSV     Target = "csv"
	TargetGeoJSON Target = "geojson"
)

// Extension returns the file extension for t.
func (t Target) Extension() string {
	return string(t)
}

// Selection is the set of formats requested plus an optional target.
type Selection struct {
	Decimal bool
	DMS     bool
	URLs    bool
	Target  Target
}

// Formats returns the requested formats in a fixed order. Decimal is the
// default when nothing was requested.
func (s Selection) Formats() []Format {
	var formats []Format
	if s.Decimal {
		formats = append(formats, FormatDecimal)
	}
	if s.DMS {
		formats = append(formats, FormatDMS)
	}
	if s.URLs {
		formats = append(formats, FormatURLs)
	}
	if len(formats) == 0 {
		formats = append(formats, FormatDecimal)
	}
	return formats
}

// Explicit reports whether at least one format was requested.
func (s Selection) Explicit() bool {
	return s.Decimal || s.DMS || s.URLs
}

// Pair is a projected coordinate pair.
type Pair struct {
	Latitude  string
	Longitude string
}

// Projection is the list of values for one format. Pairs is set for
// coordinate formats and URLs for FormatURLs.
type Projection struct {
	Format Format
	Pairs  []Pair
	URLs   []string
}

// Lines renders each value on its own line: "lat, lon" or a URL.
func (p Projection) Lines() []string {
	if p.Format == FormatURLs {
		return p.URLs
	}
	lines := make([]string, len(p.Pairs))
	for i, pair := range p.Pairs {
		lines[i] = pair.Latitude + ", " + pair.Longitude
	}
	return lines
}

// Project maps points into format f.
func Project(points []geo.DecimalPoint, f Format) Projection {
	proj := Projection{Format: f}

	switch f {
	case FormatURLs:
		proj.URLs = make([]string, len(points))
		for i, p := range points {
			proj.URLs[i] = MapURL(p)
		}
	case FormatDMS:
		proj.Pairs = make([]Pair, len(points))
		for i, p := range points {
			dms := p.DMS()
			proj.Pairs[i] = Pair{Latitude: dms.Latitude, Longitude: dms.Longitude}
		}
	default:
		proj.Format = FormatDecimal
		proj.Pairs = make([]Pair, len(points))
		for i, p := range points {
			proj.Pairs[i] = Pair{Latitude: formatFloat(p.Latitude), Longitude: formatFloat(p.Longitude)}
		}
	}

	return proj
}

// ProjectAll projects points into every format of sel.
func ProjectAll(points []geo.DecimalPoint, sel Selection) []Projection {
	formats := sel.Formats()
	out := make([]Projection, 0, len(formats))
	for _, f := range formats {
		out = append(out, Project(points, f))
	}
	return out
}

// MapURL links p on Google Maps.
func MapURL(p geo.DecimalPoint) string {
	return fmt.Sprintf("https://www.google.com/maps?q=loc:%s,%s&hl=en&z=18", formatFloat(p.Latitude), formatFloat(p.Longitude))
}
