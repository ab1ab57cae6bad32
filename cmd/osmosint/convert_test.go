package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/geocode"
	"github.com/woozymasta/osmosint/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeocoder struct {
	loc *geocode.Location
	err error
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (*geocode.Location, error) {
	return f.loc, f.err
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _ geo.DecimalPoint) (*geocode.Location, error) {
	return f.loc, f.err
}

func TestPrintConversionReverse(t *testing.T) {
	coord, err := geo.ParseCoordinate("48.845, 2.329")
	require.NoError(t, err)

	testCases := []struct {
		desc    string
		gc      geocode.Client
		want    []string
		missing []string
	}{
		{
			desc: "address with country",
			gc: &fakeGeocoder{loc: &geocode.Location{
				Name:        "Rue de Vaugirard, Paris",
				Country:     "France",
				CountryCode: "fr",
			}},
			want: []string{`48°50'42.00"N, 2°19'44.40"E`, "Address: Rue de Vaugirard, Paris", "Country: France (FR)"},
		},
		{
			desc:    "address without country",
			gc:      &fakeGeocoder{loc: &geocode.Location{Name: "Somewhere at sea"}},
			want:    []string{"Address: Somewhere at sea"},
			missing: []string{"Country:"},
		},
		{
			desc:    "lookup failure",
			gc:      &fakeGeocoder{err: errors.New("nominatim unavailable")},
			want:    []string{`48°50'42.00"N, 2°19'44.40"E`},
			missing: []string{"Address:", "Country:"},
		},
		{
			desc:    "no lookup",
			gc:      nil,
			want:    []string{`48°50'42.00"N, 2°19'44.40"E`},
			missing: []string{"Address:"},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var out bytes.Buffer
			printConversion(context.Background(), &out, tC.gc, coord)

			for _, w := range tC.want {
				assert.Contains(t, out.String(), w)
			}
			for _, m := range tC.missing {
				assert.NotContains(t, out.String(), m)
			}
		})
	}
}

func TestCheckArea(t *testing.T) {
	err := checkArea(context.Background(), &fakeGeocoder{err: geocode.ErrNotFound}, "Atlantis")
	var verr *query.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "area", verr.Field)
	assert.Contains(t, err.Error(), "Atlantis")

	assert.NoError(t, checkArea(context.Background(), &fakeGeocoder{err: errors.New("timeout")}, "Paris"))
	assert.NoError(t, checkArea(context.Background(), &fakeGeocoder{loc: &geocode.Location{Name: "Paris"}}, "Paris"))
}
