// Package geocode resolves place names and coordinates through Nominatim.
package geocode

import (
	"context"
	"errors"

	"github.com/woozymasta/osmosint/internal/geo"
)

type Client interface {
	Geocode(ctx context.Context, query string) (*Location, error)
	ReverseGeocode(ctx context.Context, p geo.DecimalPoint) (*Location, error)
}

type Location struct {
	Point       geo.DecimalPoint
	Name        string
	Country     string
	CountryCode string
}

// ErrNotFound is returned when the geocoder has no match.
var ErrNotFound = errors.New("location not found")
