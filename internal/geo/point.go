// Package geo handles geographic coordinate types and the conversions between
// decimal degrees and degrees-minutes-seconds notation.
package geo

import (
	"fmt"
	"strconv"
)

// DecimalPoint is a WGS84 position in signed decimal degrees.
type DecimalPoint struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lon" yaml:"lon"`
}

// DMSPoint is a position in textual degrees-minutes-seconds notation,
// e.g. 48°50'42.00"N, 2°19'44.40"E.
type DMSPoint struct {
	Latitude  string `json:"lat" yaml:"lat"`
	Longitude string `json:"lon" yaml:"lon"`
}

// Validate reports whether the point lies within the WGS84 ranges.
func (p DecimalPoint) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return &RangeError{Axis: Latitude, Value: p.Latitude}
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return &RangeError{Axis: Longitude, Value: p.Longitude}
	}

	return nil
}

// String renders the point the way results are printed: "lat, lon".
func (p DecimalPoint) String() string {
	return formatFloat(p.Latitude) + ", " + formatFloat(p.Longitude)
}

// DMS converts the point to degrees-minutes-seconds notation.
func (p DecimalPoint) DMS() DMSPoint {
	return DecimalToDMS(p.Latitude, p.Longitude)
}

func (p DMSPoint) String() string {
	return p.Latitude + ", " + p.Longitude
}

// Axis distinguishes latitude from longitude values.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

func (a Axis) String() string {
	if a == Longitude {
		return "longitude"
	}
	return "latitude"
}

func (a Axis) limit() float64 {
	if a == Longitude {
		return 180
	}
	return 90
}

// hemispheres returns the positive and negative hemisphere letters.
func (a Axis) hemispheres() (pos, neg byte) {
	if a == Longitude {
		return 'E', 'W'
	}
	return 'N', 'S'
}

// RangeError is returned for coordinates outside the WGS84 ranges.
type RangeError struct {
	Axis  Axis
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s is out of range [-%g, %g]", e.Axis, formatFloat(e.Value), e.Axis.limit(), e.Axis.limit())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
