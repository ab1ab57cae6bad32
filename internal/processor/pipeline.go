package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/woozymasta/osmosint/internal/geo"
	"github.com/woozymasta/osmosint/internal/query"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"
)

// Executor runs Overpass QL text against a backend.
type Executor interface {
	Execute(ctx context.Context, query string) (*osm.OSM, error)
}

// Pipeline compiles a spec, executes it and extracts the matching points.
type Pipeline struct {
	Executor Executor
	Options  query.Options
}

// NewPipeline returns a pipeline sending compiled queries to e.
func NewPipeline(e Executor, opts query.Options) *Pipeline {
	return &Pipeline{Executor: e, Options: opts}
}

// Run executes spec. An empty result is not an error.
func (p *Pipeline) Run(ctx context.Context, spec query.Spec) ([]geo.DecimalPoint, error) {
	text, err := query.Compile(spec, p.Options)
	if err != nil {
		return nil, err
	}

	id := ksuid.New().String()
	logger := log.With().Str("query_id", id).Str("kind", string(spec.Kind)).Logger()

	logger.Info().
		Str("area", spec.Area.String()).
		Str("tag", spec.Tag).
		Msg("Sending Overpass query")
	logger.Debug().Str("query", text).Msg("Compiled query")

	start := time.Now()
	raw, err := p.Executor.Execute(ctx, text)
	if err != nil {
		logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("Overpass query failed")
		return nil, fmt.Errorf("execute %s query: %w", spec.Kind, err)
	}

	points := Extract(raw)

	event := logger.Info().
		Int("results", len(points)).
		Dur("duration", time.Since(start))
	if len(points) > 0 {
		bound := extent(points)
		event = event.
			Floats64("min", []float64{bound.Min.Lat(), bound.Min.Lon()}).
			Floats64("max", []float64{bound.Max.Lat(), bound.Max.Lon()})
	}
	event.Msg("Overpass query completed")

	return points, nil
}

func extent(points []geo.DecimalPoint) orb.Bound {
	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		mp = append(mp, orb.Point{p.Longitude, p.Latitude})
	}
	return mp.Bound()
}
