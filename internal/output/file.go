package output

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/woozymasta/osmosint/internal/geo"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TimestampLayout formats the query time written above each result block.
const TimestampLayout = "02/01/2006 at 15:04"

// DefaultBasename is the result file name without extension.
const DefaultBasename = "Results"

// PersistenceError reports a result file that could not be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Message is the text shown to users.
func (e *PersistenceError) Message() string {
	if errors.Is(e.Err, os.ErrPermission) {
		return fmt.Sprintf("Permission to write in the %s file was denied. Close the file and try again.", e.Path)
	}
	return fmt.Sprintf("Could not write results to %s. Close any program using the file and try again.", e.Path)
}

// Files writes result sets to <Dir>/<Basename>.<ext>, appending to any
// earlier output.
type Files struct {
	Dir      string
	Basename string
	Now      func() time.Time
}

// Path returns the destination file for target t.
func (fw *Files) Path(t Target) string {
	base := fw.Basename
	if base == "" {
		base = DefaultBasename
	}
	return filepath.Join(fw.Dir, base+"."+t.Extension())
}

func (fw *Files) now() time.Time {
	if fw.Now == nil {
		return time.Now()
	}
	return fw.Now()
}

// Write appends the projections for one query to the file for target t and
// returns its path.
func (fw *Files) Write(t Target, header string, points []geo.DecimalPoint, projs []Projection) (string, error) {
	path := fw.Path(t)

	if fw.Dir != "" {
		if err := os.MkdirAll(fw.Dir, 0755); err != nil {
			return path, &PersistenceError{Path: path, Err: err}
		}
	}

	var err error
	switch t {
	case TargetCSV:
		err = fw.writeCSV(path, header, projs)
	case TargetGeoJSON:
		err = fw.writeGeoJSON(path, header, points, projs)
	case TargetText:
		err = fw.writeText(path, header, projs)
	default:
		return path, &PersistenceError{Path: path, Err: fmt.Errorf("unsupported output format %q", t)}
	}
	if err != nil {
		return path, &PersistenceError{Path: path, Err: err}
	}

	log.Info().
		Str("path", path).
		Str("format", string(t)).
		Int("results", len(points)).
		Msg("Results written")

	return path, nil
}

func openAppend(path string) (*os.File, bool, error) {
	fresh := true
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		fresh = false
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, false, err
	}
	return f, fresh, nil
}

// closeFile closes f and reports the close error unless err is already set.
func closeFile(f *os.File, err *error) {
	if closeErr := f.Close(); closeErr != nil {
		log.Error().Err(closeErr).Str("path", f.Name()).Msg("Failed to close file")
		if *err == nil {
			*err = closeErr
		}
	}
}

func (fw *Files) writeText(path, header string, projs []Projection) (err error) {
	f, _, err := openAppend(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "Query from the %s\n", fw.now().Format(TimestampLayout))
	fmt.Fprintf(w, "%s\n\n", header)

	for _, p := range projs {
		fmt.Fprintf(w, "%s:\n", p.Format.Label())
		for _, line := range p.Lines() {
			fmt.Fprintln(w, line)
		}
		fmt.Fprint(w, "\n\n")
	}

	return w.Flush()
}

// writeCSV uses RFC 4180 quoting, so the quote mark in DMS seconds is
// doubled. New files start with a UTF-8 byte order mark for spreadsheet
// tools.
func (fw *Files) writeCSV(path, header string, projs []Projection) (err error) {
	f, fresh, err := openAppend(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	var out io.Writer = f
	var bom *transform.Writer
	if fresh {
		bom = transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
		out = bom
	}

	w := csv.NewWriter(out)
	rows := [][]string{
		{"Query from the " + fw.now().Format(TimestampLayout)},
		{header},
	}
	for _, p := range projs {
		rows = append(rows, []string{p.Format.Label()})
		if p.Format == FormatURLs {
			for _, u := range p.URLs {
				rows = append(rows, []string{u})
			}
			continue
		}
		for _, pair := range p.Pairs {
			rows = append(rows, []string{pair.Latitude, pair.Longitude})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return err
	}
	if bom != nil {
		return bom.Close()
	}
	return nil
}

// writeGeoJSON merges the new points into the existing collection, if any,
// and rewrites the file.
func (fw *Files) writeGeoJSON(path, header string, points []geo.DecimalPoint, projs []Projection) (err error) {
	fc := geo.NewFeatureCollection()

	data, err := os.ReadFile(path)
	switch {
	case err == nil && len(data) > 0:
		if err := json.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("existing file is not a GeoJSON feature collection: %w", err)
		}
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return err
	}

	queriedAt := fw.now().Format(time.RFC3339)
	features := make([]geo.Feature, 0, len(points))
	for i, p := range points {
		props := map[string]interface{}{
			"query":      header,
			"queried_at": queriedAt,
		}
		for _, proj := range projs {
			switch proj.Format {
			case FormatDMS:
				props["dms"] = proj.Lines()[i]
			case FormatURLs:
				props["url"] = proj.URLs[i]
			}
		}
		features = append(features, geo.PointFeature(p, props))
	}
	fc.Add(features...)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}
