// Package prompt collects query parameters interactively.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/output"
	"github.com/woozymasta/osmosint/internal/query"
)

// ErrExit is returned when the user types "exit" or input ends.
var ErrExit = errors.New("exit requested")

// Prompter reads answers line by line and reprompts on invalid input.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a prompter reading from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Text asks for a non-empty line.
func (p *Prompter) Text(label string) (string, error) {
	for {
		fmt.Fprint(p.out, label)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", ErrExit
		}

		line := strings.TrimSpace(p.in.Text())
		if strings.EqualFold(line, "exit") {
			return "", ErrExit
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please try again.")
	}
}

// Int asks for an integer. When valid is not empty, the answer must be one of it.
func (p *Prompter) Int(label string, valid ...int) (int, error) {
	for {
		line, err := p.Text(label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			fmt.Fprintln(p.out, "Invalid input. Please try again.")
		case len(valid) > 0 && !slices.Contains(valid, n):
			fmt.Fprintf(p.out, "Invalid input. Please enter one of the valid inputs: %v.\n", valid)
		default:
			return n, nil
		}
	}
}

// PositiveInt asks for an integer greater than zero.
func (p *Prompter) PositiveInt(label string) (int, error) {
	for {
		n, err := p.Int(label)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid input. The value must be greater than zero.")
	}
}

// Coordinate asks for a "latitude, longitude" pair in decimal or DMS notation.
func (p *Prompter) Coordinate(label string) (geo.Coordinate, error) {
	for {
		line, err := p.Text(label)
		if err != nil {
			return geo.Coordinate{}, err
		}

		c, err := geo.ParseCoordinate(line)
		if err == nil {
			return c, nil
		}

		fmt.Fprintf(p.out, "The value you entered does not match the desired format (latitude, longitude): %v\n", err)
		fmt.Fprintln(p.out, `Example of valid format: 48°50'41.5"N, 2°19'48.7"E [OR] 48.855208, 2.345775`)
	}
}

// Area asks for either a named area or a bounding box.
func (p *Prompter) Area() (query.Area, error) {
	fmt.Fprintln(p.out, "Please select the format for entering the location of your query:")
	fmt.Fprintln(p.out, "   1. Geographical Area (e.g. name of city, country).")
	fmt.Fprintln(p.out, "   2. Bounding Box (square of coordinates)")

	choice, err := p.Int(">> Enter your choice (1 or 2): ", 1, 2)
	if err != nil {
		return query.Area{}, err
	}

	if choice == 1 {
		name, err := p.Text(">> Enter the name of the city/area: ")
		if err != nil {
			return query.Area{}, err
		}
		return query.Named(name), nil
	}

	fmt.Fprintln(p.out, "\nYou have chosen 'Bounding Box' (bbox)")
	fmt.Fprintln(p.out, "Input format: latitude, longitude")
	for {
		sw, err := p.Coordinate(">> Enter the coordinates of the Lower-Left (South-West) corner of the bbox: ")
		if err != nil {
			return query.Area{}, err
		}
		ne, err := p.Coordinate(">> Enter the coordinates of the Upper-Right (North-East) corner of the bbox: ")
		if err != nil {
			return query.Area{}, err
		}

		box := geo.NewBBox(sw.Point, ne.Point)
		if err := box.Validate(); err != nil {
			fmt.Fprintf(p.out, "Invalid bounding box: %v\n", err)
			continue
		}
		return query.Box(box), nil
	}
}

// Complete prompts for every field of spec that is still empty.
func (p *Prompter) Complete(spec *query.Spec) error {
	if spec.Area.IsZero() {
		area, err := p.Area()
		if err != nil {
			return err
		}
		spec.Area = area
	}

	if spec.Tag == "" {
		label := ">> Enter the tag (format: 'key=value', e.g. 'shop=bakery'): "
		if spec.Kind == query.Radius {
			label = ">> Enter the first tag (format: 'key=value', e.g. 'shop=bakery'): "
		}
		tag, err := p.tag(label)
		if err != nil {
			return err
		}
		spec.Tag = tag
	}

	if spec.Kind != query.Radius {
		return nil
	}

	if spec.Near == "" {
		near, err := p.tag(">> Enter the second tag: ")
		if err != nil {
			return err
		}
		spec.Near = near
	}

	if spec.Radius == 0 {
		radius, err := p.PositiveInt(">> Enter the radius (in meters): ")
		if err != nil {
			return err
		}
		spec.Radius = radius
	}

	return nil
}

func (p *Prompter) tag(label string) (string, error) {
	for {
		s, err := p.Text(label)
		if err != nil {
			return "", err
		}
		if _, err := query.ParseTag(s); err != nil {
			fmt.Fprintf(p.out, "Invalid tag: %v\n", err)
			continue
		}
		return s, nil
	}
}

// Oversize asks whether an oversized result set goes to a file or is dropped.
// Input errors count as aborting.
func (p *Prompter) Oversize(count, threshold int) output.Decision {
	fmt.Fprintf(p.out, "\nThe query returned %d results. This is over the maximum threshold for printing (%d).\n", count, threshold)
	fmt.Fprintln(p.out, "\nOptions:")
	fmt.Fprintln(p.out, "1. Print all results in a file")
	fmt.Fprintln(p.out, "2. Cancel (all unsaved data will be lost)")

	choice, err := p.Int(">> Enter your choice: ", 1, 2)
	if err != nil || choice == 2 {
		return output.Abort
	}
	return output.ForceFileOutput
}
