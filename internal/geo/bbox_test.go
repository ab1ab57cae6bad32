package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBBoxValidate(t *testing.T) {
	testCases := []struct {
		desc    string
		box     BBox
		wantErr bool
	}{
		{desc: "paris", box: BBox{South: 48.8, West: 2.2, North: 48.9, East: 2.4}},
		{desc: "degenerate box is allowed", box: BBox{South: 1, West: 1, North: 1, East: 1}},
		{desc: "south above north", box: BBox{South: 49, West: 2.2, North: 48.9, East: 2.4}, wantErr: true},
		{desc: "west east of east", box: BBox{South: 48.8, West: 2.5, North: 48.9, East: 2.4}, wantErr: true},
		{desc: "latitude out of range", box: BBox{South: -91, West: 0, North: 0, East: 1}, wantErr: true},
		{desc: "longitude out of range", box: BBox{South: 0, West: 0, North: 1, East: 181}, wantErr: true},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			err := tC.box.Validate()
			if tC.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBBoxString(t *testing.T) {
	box := NewBBox(DecimalPoint{Latitude: 48.8, Longitude: 2.2}, DecimalPoint{Latitude: 48.9, Longitude: 2.4})
	assert.Equal(t, "[48.8, 2.2, 48.9, 2.4]", box.String())
}
