// Package processor runs a query through compilation, execution and
// extraction of the resulting coordinates.
package processor

import (
	"github.com/woozymasta/osmosint/internal/geo"

	"github.com/paulmach/osm"
)

// Extract returns the coordinates of every node in raw, in response order.
// Duplicates are kept. A nil or empty response yields an empty slice.
func Extract(raw *osm.OSM) []geo.DecimalPoint {
	if raw == nil {
		return []geo.DecimalPoint{}
	}

	points := make([]geo.DecimalPoint, 0, len(raw.Nodes))
	for _, n := range raw.Nodes {
		if n == nil {
			continue
		}
		p := n.Point()
		points = append(points, geo.DecimalPoint{Latitude: p.Lat(), Longitude: p.Lon()})
	}

	return points
}
