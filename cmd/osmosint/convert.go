package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/geocode"
	"github.com/woozymasta/osmosint/internal/prompt"

	"github.com/rs/zerolog/log"
)

type ConvertCommand struct {
	Reverse bool `long:"reverse" description:"Also print the address found at each coordinate"`

	app *app
}

func (c *ConvertCommand) Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var gc geocode.Client
	if c.Reverse {
		gc = c.app.geocoder()
	}

	if len(args) > 0 {
		for _, arg := range args {
			coord, err := geo.ParseCoordinate(arg)
			if err != nil {
				return err
			}
			printConversion(ctx, c.app.out, gc, coord)
		}
		return nil
	}

	convertBanner(c.app.out)

	p := prompt.New(c.app.in, c.app.out)
	for {
		coord, err := p.Coordinate(">> Enter the coordinates: ")
		if err != nil {
			return err
		}
		printConversion(ctx, c.app.out, gc, coord)
	}
}

// printConversion writes coord in the other notation. A nil gc skips the
// address lookup.
func printConversion(ctx context.Context, w io.Writer, gc geocode.Client, coord geo.Coordinate) {
	switch coord.Notation {
	case geo.Decimal:
		fmt.Fprintln(w, coord.Point.DMS())
	case geo.DMS:
		fmt.Fprintln(w, coord.Point)
	default:
		return
	}

	if gc == nil {
		return
	}

	loc, err := gc.ReverseGeocode(ctx, coord.Point)
	if err != nil {
		log.Warn().Err(err).Str("point", coord.Point.String()).Msg("Reverse geocoding failed")
		return
	}
	fmt.Fprintf(w, "Address: %s\n", loc.Name)
	if loc.Country != "" {
		fmt.Fprintf(w, "Country: %s (%s)\n", loc.Country, strings.ToUpper(loc.CountryCode))
	}
}
