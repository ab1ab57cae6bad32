// Package query models a feature lookup and compiles it into Overpass QL.
package query

import (
	"fmt"
	"strings"

	"github.com/woozymasta/osmosint/internal/geo"
)

// Kind selects between a plain lookup and a proximity lookup.
type Kind string

const (
	// Locate finds every node carrying a tag.
	Locate Kind = "locate"
	// Radius finds nodes carrying a tag within a distance of nodes carrying another tag.
	Radius Kind = "radius"
)

// Area scopes a query. Exactly one of Name or BBox is set.
type Area struct {
	Name string
	BBox *geo.BBox
}

// Named returns an area matched by its OSM name tag.
func Named(name string) Area {
	return Area{Name: name}
}

// Box returns an area bounded by b.
func Box(b geo.BBox) Area {
	return Area{BBox: &b}
}

// IsZero reports whether neither variant is set.
func (a Area) IsZero() bool {
	return a.Name == "" && a.BBox == nil
}

func (a Area) String() string {
	if a.BBox != nil {
		return "bbox " + a.BBox.String()
	}
	return a.Name
}

// Spec is the structured intent of a single query.
type Spec struct {
	Kind   Kind
	Area   Area
	Tag    string
	Near   string // second tag, radius queries only
	Radius int    // metres, radius queries only
}

// ValidationError reports a structurally invalid Spec.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the invariants between Kind, Area and the radius fields,
// and that every tag can be rendered safely.
func (s Spec) Validate() error {
	switch s.Kind {
	case Locate:
		if s.Near != "" {
			return &ValidationError{Field: "near", Reason: "only allowed for radius queries"}
		}
		if s.Radius != 0 {
			return &ValidationError{Field: "radius", Reason: "only allowed for radius queries"}
		}
	case Radius:
		if strings.TrimSpace(s.Near) == "" {
			return &ValidationError{Field: "near", Reason: "second tag is required for radius queries"}
		}
		if s.Radius <= 0 {
			return &ValidationError{Field: "radius", Reason: fmt.Sprintf("must be a positive number of metres, got %d", s.Radius)}
		}
	default:
		return &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown query kind %q", s.Kind)}
	}

	switch {
	case s.Area.Name != "" && s.Area.BBox != nil:
		return &ValidationError{Field: "area", Reason: "both a name and a bounding box are set"}
	case s.Area.BBox != nil:
		if err := s.Area.BBox.Validate(); err != nil {
			return &ValidationError{Field: "bbox", Reason: err.Error()}
		}
	case strings.TrimSpace(s.Area.Name) == "":
		return &ValidationError{Field: "area", Reason: "a name or a bounding box is required"}
	case strings.ContainsAny(s.Area.Name, "\r\n"):
		return &ValidationError{Field: "area", Reason: "name must be a single line"}
	}

	if _, err := ParseTag(s.Tag); err != nil {
		return fmt.Errorf("tag: %w", err)
	}
	if s.Kind == Radius {
		if _, err := ParseTag(s.Near); err != nil {
			return fmt.Errorf("near: %w", err)
		}
	}

	return nil
}
