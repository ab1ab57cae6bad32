package output

import (
	"bytes"
	"testing"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/query"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	box := geo.BBox{South: 48.8, West: 2.25, North: 48.9, East: 2.42}

	testCases := []struct {
		desc string
		spec query.Spec
		want string
	}{
		{
			desc: "locate in named area",
			spec: query.Spec{Kind: query.Locate, Area: query.Named("Paris"), Tag: "shop=bakery"},
			want: "Results for all shop=bakery in Paris",
		},
		{
			desc: "locate in bbox",
			spec: query.Spec{Kind: query.Locate, Area: query.Box(box), Tag: "shop=bakery"},
			want: "Results for all shop=bakery in bbox [48.8, 2.25, 48.9, 2.42]",
		},
		{
			desc: "radius in named area",
			spec: query.Spec{Kind: query.Radius, Area: query.Named("Lyon"), Tag: "amenity=bench", Near: "highway=bus_stop", Radius: 30},
			want: "Results for all amenity=bench in a 30m radius of highway=bus_stop in Lyon",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, Header(tC.spec))
		})
	}
}

func TestNoResults(t *testing.T) {
	box := geo.BBox{South: 1, West: 2, North: 3, East: 4}
	spec := query.Spec{Kind: query.Radius, Area: query.Box(box), Tag: "shop=bakery", Near: "amenity=school", Radius: 200}

	var out bytes.Buffer
	NoResults(&out, spec, Selection{DMS: true, Target: TargetCSV})

	text := out.String()
	assert.Contains(t, text, "The query found 0 shop=bakery within a 200m radius of a amenity=school in the following bbox [1, 2, 3, 4].")
	assert.Contains(t, text, "    tag_2 : amenity=school\n")
	assert.Contains(t, text, "    radius : 200\n")
	assert.Contains(t, text, "    file_type : csv\n")
	assert.Contains(t, text, "    format : dms\n")
}
