package geo

import "github.com/paulmach/orb"

// FeatureCollection is a GeoJSON collection of point features. BBox covers
// every feature and is kept current by Add.
type FeatureCollection struct {
	Type     string    `json:"type"`
	BBox     []float64 `json:"bbox,omitempty"` // [west, south, east, north]
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON point with free-form properties.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat]
}

// NewFeatureCollection returns an empty collection ready for appending.
func NewFeatureCollection() FeatureCollection {
	return FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}

// PointFeature wraps p in a GeoJSON Point feature.
func PointFeature(p DecimalPoint, props map[string]interface{}) Feature {
	if props == nil {
		props = map[string]interface{}{}
	}

	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{p.Longitude, p.Latitude},
		},
		Properties: props,
	}
}

// Add appends features and recomputes BBox.
func (fc *FeatureCollection) Add(features ...Feature) {
	fc.Features = append(fc.Features, features...)

	mp := make(orb.MultiPoint, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
			continue
		}
		mp = append(mp, orb.Point{f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]})
	}
	if len(mp) == 0 {
		fc.BBox = nil
		return
	}

	b := mp.Bound()
	fc.BBox = []float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()}
}
