package world

import "github.com/udisondev/charcreate/internal/data"

// SectorShift - shift by N bits for 2^N tiles per sector (2^4 = 16).
const SectorShift = 4

// FacetSize is the tile size of a facet map.
type FacetSize struct {
	Width  int32
	Height int32
}

var facetSizes = map[data.Facet]FacetSize{
	data.FacetFelucca:  {Width: 7168, Height: 4096},
	data.FacetTrammel:  {Width: 7168, Height: 4096},
	data.FacetIlshenar: {Width: 2304, Height: 1600},
	data.FacetMalas:    {Width: 2560, Height: 2048},
	data.FacetTokuno:   {Width: 1448, Height: 1448},
	data.FacetTerMur:   {Width: 1280, Height: 4096},
}

// SizeOf returns the size of a facet and whether it is known.
func SizeOf(f data.Facet) (FacetSize, bool) {
	s, ok := facetSizes[f]
	return s, ok
}

// InBounds checks that (x, y) lies on the facet map.
func InBounds(f data.Facet, x, y int32) bool {
	s, ok := facetSizes[f]
	if !ok {
		return false
	}
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// SectorKey identifies one sector of one facet.
type SectorKey struct {
	Facet data.Facet
	SX    int32
	SY    int32
}

// CoordToSector converts a tile coordinate to its sector.
// Formula: coord >> SectorShift
func CoordToSector(f data.Facet, x, y int32) SectorKey {
	return SectorKey{Facet: f, SX: x >> SectorShift, SY: y >> SectorShift}
}
