package processor

import (
	"testing"

	"github.com/woozymasta/osmosint/internal/geo"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	testCases := []struct {
		desc string
		raw  *osm.OSM
		want []geo.DecimalPoint
	}{
		{
			desc: "nil response yields an empty slice",
			raw:  nil,
			want: []geo.DecimalPoint{},
		},
		{
			desc: "zero nodes yields an empty slice",
			raw:  &osm.OSM{},
			want: []geo.DecimalPoint{},
		},
		{
			desc: "order and duplicates are preserved",
			raw: &osm.OSM{Nodes: osm.Nodes{
				{ID: 3, Lat: 48.8561, Lon: 2.3522},
				{ID: 1, Lat: 48.845, Lon: 2.329},
				{ID: 3, Lat: 48.8561, Lon: 2.3522},
			}},
			want: []geo.DecimalPoint{
				{Latitude: 48.8561, Longitude: 2.3522},
				{Latitude: 48.845, Longitude: 2.329},
				{Latitude: 48.8561, Longitude: 2.3522},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got := Extract(tC.raw)
			assert.NotNil(t, got)
			assert.Equal(t, tC.want, got)
		})
	}
}
