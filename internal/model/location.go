package model

import (
	"fmt"

	"github.com/udisondev/charcreate/internal/data"
)

// Location представляет координаты в игровом мире вместе с фасетом.
// Value type, передаётся по значению (immutable).
type Location struct {
	X     int32
	Y     int32
	Z     int32
	Facet data.Facet
}

// NewLocation создаёт Location с указанными координатами.
func NewLocation(x, y, z int32, facet data.Facet) Location {
	return Location{X: x, Y: y, Z: z, Facet: facet}
}

// LocationAt builds a Location from a data point on the given facet.
func LocationAt(p data.Point3D, facet data.Facet) Location {
	return Location{X: p.X, Y: p.Y, Z: p.Z, Facet: facet}
}

// WithFacet возвращает новый Location на другом фасете (immutable pattern).
func (l Location) WithFacet(facet data.Facet) Location {
	l.Facet = facet
	return l
}

// String formats the location as (x, y, z) in Facet.
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d, %d) in %s", l.X, l.Y, l.Z, l.Facet)
}
