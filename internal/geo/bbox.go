package geo

import (
	"fmt"

	"github.com/paulmach/orb"
)

// BBox is a rectangular area bounded by south, west, north and east edges.
type BBox struct {
	South float64 `json:"south" yaml:"south"`
	West  float64 `json:"west" yaml:"west"`
	North float64 `json:"north" yaml:"north"`
	East  float64 `json:"east" yaml:"east"`
}

// NewBBox builds a box from its south-west and north-east corners.
func NewBBox(sw, ne DecimalPoint) BBox {
	return BBox{South: sw.Latitude, West: sw.Longitude, North: ne.Latitude, East: ne.Longitude}
}

// Bound returns the box as an orb bound (lon/lat ordered points).
func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Validate checks both corners and the ordering of the edges.
func (b BBox) Validate() error {
	sw := DecimalPoint{Latitude: b.South, Longitude: b.West}
	if err := sw.Validate(); err != nil {
		return fmt.Errorf("south-west corner: %w", err)
	}

	ne := DecimalPoint{Latitude: b.North, Longitude: b.East}
	if err := ne.Validate(); err != nil {
		return fmt.Errorf("north-east corner: %w", err)
	}

	if b.South > b.North {
		return fmt.Errorf("south edge %s is north of north edge %s", formatFloat(b.South), formatFloat(b.North))
	}
	if b.West > b.East {
		return fmt.Errorf("west edge %s is east of east edge %s", formatFloat(b.West), formatFloat(b.East))
	}

	return nil
}

// String renders the box in Overpass order: [s, w, n, e].
func (b BBox) String() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", formatFloat(b.South), formatFloat(b.West), formatFloat(b.North), formatFloat(b.East))
}
