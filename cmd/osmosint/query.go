package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/geocode"
	"github.com/woozymasta/osmosint/internal/output"
	"github.com/woozymasta/osmosint/internal/overpass"
	"github.com/woozymasta/osmosint/internal/processor"
	"github.com/woozymasta/osmosint/internal/prompt"
	"github.com/woozymasta/osmosint/internal/query"

	"github.com/rs/zerolog/log"
)

// OutputOptions select result formats and an optional file target.
type OutputOptions struct {
	Decimal   bool   `short:"d" long:"decimal_coords" description:"Output coordinates in decimal notation"`
	DMS       bool   `short:"m" long:"dms_coords"     description:"Output coordinates in DMS notation"`
	URLs      bool   `short:"u" long:"google_urls"    description:"Output Google Maps URLs"`
	WriteFile string `short:"w" long:"write_file"     description:"Write results to a file instead of the console" choice:"txt" choice:"csv" choice:"geojson"`
	Threshold int    `long:"threshold"                description:"Maximum number of results printed to the console (0 uses the configured value)"`
}

func (o OutputOptions) selection() output.Selection {
	return output.Selection{
		Decimal: o.Decimal,
		DMS:     o.DMS,
		URLs:    o.URLs,
		Target:  output.Target(o.WriteFile),
	}
}

// AreaOptions scope a query. Missing values are asked for interactively.
type AreaOptions struct {
	Area      string `short:"a" long:"area" description:"Name of the area (city, region, country)"`
	SouthWest string `long:"sw"             description:"South-west corner of a bounding box (\"lat, lon\")"`
	NorthEast string `long:"ne"             description:"North-east corner of a bounding box (\"lat, lon\")"`
	Tag       string `short:"t" long:"tag"  description:"Tag to search for (e.g. shop=bakery)"`
	CheckArea bool   `long:"check-area"     description:"Check the area name with Nominatim before querying"`
}

func (o AreaOptions) area() (query.Area, error) {
	switch {
	case o.Area != "" && (o.SouthWest != "" || o.NorthEast != ""):
		return query.Area{}, &query.ValidationError{Field: "area", Reason: "use either --area or --sw/--ne"}
	case o.Area != "":
		return query.Named(o.Area), nil
	case o.SouthWest == "" && o.NorthEast == "":
		return query.Area{}, nil
	case o.SouthWest == "" || o.NorthEast == "":
		return query.Area{}, &query.ValidationError{Field: "bbox", Reason: "both --sw and --ne are required"}
	}

	sw, err := geo.ParseCoordinate(o.SouthWest)
	if err != nil {
		return query.Area{}, fmt.Errorf("--sw: %w", err)
	}
	ne, err := geo.ParseCoordinate(o.NorthEast)
	if err != nil {
		return query.Area{}, fmt.Errorf("--ne: %w", err)
	}

	return query.Box(geo.NewBBox(sw.Point, ne.Point)), nil
}

type LocateCommand struct {
	AreaOptions   `group:"Query options"`
	OutputOptions `group:"Output options"`

	app *app
}

func (c *LocateCommand) Execute(_ []string) error {
	area, err := c.area()
	if err != nil {
		return err
	}

	spec := query.Spec{Kind: query.Locate, Area: area, Tag: c.Tag}
	return c.app.runQuery(spec, c.AreaOptions, c.OutputOptions)
}

type RadiusCommand struct {
	AreaOptions   `group:"Query options"`
	OutputOptions `group:"Output options"`

	Near   string `short:"n" long:"near"   description:"Tag of the reference elements (e.g. amenity=school)"`
	Radius int    `short:"r" long:"radius" description:"Radius around the reference elements, in metres"`

	app *app
}

func (c *RadiusCommand) Execute(_ []string) error {
	area, err := c.area()
	if err != nil {
		return err
	}
	if c.Radius < 0 {
		return &query.ValidationError{Field: "radius", Reason: "must be a positive number of metres"}
	}

	spec := query.Spec{
		Kind:   query.Radius,
		Area:   area,
		Tag:    c.Tag,
		Near:   c.Near,
		Radius: c.Radius,
	}
	return c.app.runQuery(spec, c.AreaOptions, c.OutputOptions)
}

// runQuery completes spec interactively, runs it and renders the results.
func (a *app) runQuery(spec query.Spec, ao AreaOptions, oo OutputOptions) error {
	welcome(a.out, spec.Kind, oo.selection())

	p := prompt.New(a.in, a.out)
	if err := p.Complete(&spec); err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if ao.CheckArea && spec.Area.Name != "" {
		if err := checkArea(ctx, a.geocoder(), spec.Area.Name); err != nil {
			return err
		}
	}

	if a.cfg.Overpass.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Overpass.Timeout)
		defer cancel()
	}

	pipeline := processor.NewPipeline(a.overpassClient(), query.Options{Timeout: a.cfg.Overpass.ServerTimeout})
	points, err := pipeline.Run(ctx, spec)
	if err != nil {
		return err
	}

	threshold := a.cfg.Output.Threshold
	if oo.Threshold > 0 {
		threshold = oo.Threshold
	}

	renderer := &output.Renderer{
		Out: a.out,
		Files: &output.Files{
			Dir:      a.cfg.Output.Dir,
			Basename: a.cfg.Output.Basename,
		},
		Threshold: threshold,
		Ask:       p.Oversize,
	}
	return renderer.Render(points, spec, oo.selection())
}

func (a *app) overpassClient() *overpass.Client {
	client := overpass.NewClient(&http.Client{Transport: overpass.LoggingTransport(nil)}, a.cfg.Overpass.Endpoint)
	client.UserAgent = a.cfg.Overpass.UserAgent
	client.MaxRetries = a.cfg.Overpass.MaxRetries
	client.RetryDelay = a.cfg.Overpass.RetryDelay
	return client
}

func (a *app) geocoder() geocode.Client {
	return geocode.NewOpenstreetmapClient(a.cfg.Nominatim.URL)
}

// checkArea fails when Nominatim does not know name. Geocoder outages only
// log a warning, the Overpass query still decides.
func checkArea(ctx context.Context, gc geocode.Client, name string) error {
	loc, err := gc.Geocode(ctx, name)
	switch {
	case errors.Is(err, geocode.ErrNotFound):
		return &query.ValidationError{Field: "area", Reason: fmt.Sprintf("%q is not known to Nominatim", name)}
	case err != nil:
		log.Warn().Err(err).Str("area", name).Msg("Area check skipped")
		return nil
	}

	log.Info().
		Str("area", name).
		Str("center", loc.Point.String()).
		Msg("Area found")
	return nil
}
