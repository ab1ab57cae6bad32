package geocode

import (
	"context"
	"fmt"

	"github.com/woozymasta/osmosint/internal/geo"

	gogeo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
	"github.com/rs/zerolog/log"
)

// NewOpenstreetmapClient returns a Nominatim client. An empty baseURL uses
// the public instance.
func NewOpenstreetmapClient(baseURL string) *oc {
	geocoder := openstreetmap.Geocoder()
	if baseURL != "" {
		geocoder = openstreetmap.GeocoderWithURL(baseURL)
	}
	return &oc{geocoder: geocoder}
}

type oc struct {
	geocoder gogeo.Geocoder
}

var _ Client = (*oc)(nil)

func (c *oc) Geocode(ctx context.Context, query string) (*Location, error) {
	location, err := call(ctx, func() (*gogeo.Location, error) {
		return c.geocoder.Geocode(query)
	})
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}

	if location == nil {
		return nil, fmt.Errorf("geocode %q: %w", query, ErrNotFound)
	}

	log.Debug().
		Str("query", query).
		Float64("lat", location.Lat).
		Float64("lon", location.Lng).
		Msg("Area geocoded")

	return &Location{
		Point: geo.DecimalPoint{Latitude: location.Lat, Longitude: location.Lng},
		Name:  query,
	}, nil
}

func (c *oc) ReverseGeocode(ctx context.Context, p geo.DecimalPoint) (*Location, error) {
	address, err := call(ctx, func() (*gogeo.Address, error) {
		return c.geocoder.ReverseGeocode(p.Latitude, p.Longitude)
	})
	if err != nil {
		return nil, fmt.Errorf("reverse geocode %s: %w", p, err)
	}

	if address == nil {
		return nil, fmt.Errorf("reverse geocode %s: %w", p, ErrNotFound)
	}

	return &Location{
		Point:       p,
		Name:        address.FormattedAddress,
		Country:     address.Country,
		CountryCode: address.CountryCode,
	}, nil
}

// call runs a blocking geocoder request and gives up when ctx is done.
// The library has no context support, so an abandoned request finishes in
// the background.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}

	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-done:
		return r.v, r.err
	}
}
