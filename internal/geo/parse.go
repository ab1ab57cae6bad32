package geo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var decimalPairPattern = regexp.MustCompile(`^(-?\d+\.\d+)\s*,\s*(-?\d+\.\d+)$`)

// Notation tags how a coordinate string was written.
type Notation int

const (
	Unparseable Notation = iota
	Decimal
	DMS
)

func (n Notation) String() string {
	switch n {
	case Decimal:
		return "decimal"
	case DMS:
		return "dms"
	default:
		return "unparseable"
	}
}

// Coordinate is the result of classifying and parsing a "lat, lon" string.
// Point is populated for parseable input.
type Coordinate struct {
	Notation Notation
	Point    DecimalPoint
}

// ParseError describes coordinate text that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidateDecimalString reports whether s is a signed decimal pair such as
// "48.855208, 2.345775".
func ValidateDecimalString(s string) bool {
	return decimalPairPattern.MatchString(s)
}

// ParseCoordinate classifies s as a decimal or DMS pair and parses it.
// On failure the returned Coordinate is tagged Unparseable.
func ParseCoordinate(s string) (Coordinate, error) {
	input := strings.TrimSpace(s)

	if m := decimalPairPattern.FindStringSubmatch(input); m != nil {
		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Coordinate{}, &ParseError{Input: s, Reason: "invalid latitude", Err: err}
		}
		lon, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Coordinate{}, &ParseError{Input: s, Reason: "invalid longitude", Err: err}
		}

		p := DecimalPoint{Latitude: lat, Longitude: lon}
		if err := p.Validate(); err != nil {
			return Coordinate{}, &ParseError{Input: s, Reason: "coordinate out of range", Err: err}
		}

		return Coordinate{Notation: Decimal, Point: p}, nil
	}

	lat, lon, ok := strings.Cut(input, ",")
	if !ok {
		return Coordinate{}, &ParseError{Input: s, Reason: "expected \"latitude, longitude\""}
	}

	p, err := DMSToDecimal(strings.TrimSpace(lat), strings.TrimSpace(lon))
	if err != nil {
		return Coordinate{}, err
	}

	return Coordinate{Notation: DMS, Point: p}, nil
}
