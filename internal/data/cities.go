package data

import (
	"fmt"
	"strings"
)

// Facet is one of the world maps an entity can be placed on.
type Facet int32

const (
	FacetFelucca Facet = iota
	FacetTrammel
	FacetIlshenar
	FacetMalas
	FacetTokuno
	FacetTerMur
)

var facetNames = [...]string{"Felucca", "Trammel", "Ilshenar", "Malas", "Tokuno", "TerMur"}

// String returns the facet name.
func (f Facet) String() string {
	if f < 0 || int(f) >= len(facetNames) {
		return fmt.Sprintf("Facet(%d)", int32(f))
	}
	return facetNames[f]
}

// UnmarshalText parses a facet name, case-insensitive.
func (f *Facet) UnmarshalText(text []byte) error {
	for i, n := range facetNames {
		if strings.EqualFold(n, string(text)) {
			*f = Facet(i)
			return nil
		}
	}
	return fmt.Errorf("unknown facet %q", text)
}

// Point3D is a world coordinate.
type Point3D struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
	Z int32 `yaml:"z"`
}

// String formats the point as (x, y, z).
func (p Point3D) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// City is a starting location offered on the creation screen.
type City struct {
	Name     string  `yaml:"name"`
	Building string  `yaml:"building"`
	Location Point3D `yaml:"location"`
	Facet    Facet   `yaml:"facet"`
}

// StartingCities lists the standard starting locations.
var StartingCities = []City{
	{Name: "New Haven", Building: "The Bountiful Harvest Inn", Location: Point3D{3503, 2574, 14}, Facet: FacetTrammel},
	{Name: "Yew", Building: "The Empath Abbey", Location: Point3D{633, 858, 0}, Facet: FacetTrammel},
	{Name: "Minoc", Building: "The Barnacle", Location: Point3D{2476, 413, 15}, Facet: FacetTrammel},
	{Name: "Britain", Building: "The Wayfarer's Inn", Location: Point3D{1602, 1591, 20}, Facet: FacetTrammel},
	{Name: "Moonglow", Building: "The Scholars Inn", Location: Point3D{4408, 1168, 0}, Facet: FacetTrammel},
	{Name: "Trinsic", Building: "The Traveler's Inn", Location: Point3D{1845, 2745, 0}, Facet: FacetTrammel},
	{Name: "Jhelom", Building: "The Mercenary Inn", Location: Point3D{1374, 3826, 0}, Facet: FacetTrammel},
	{Name: "Skara Brae", Building: "The Falconer's Inn", Location: Point3D{618, 2234, 0}, Facet: FacetTrammel},
	{Name: "Vesper", Building: "The Ironwood Inn", Location: Point3D{2771, 976, 0}, Facet: FacetTrammel},
	{Name: "Luna", Building: "The Doubloon Inn", Location: Point3D{989, 519, -50}, Facet: FacetMalas},
	{Name: "Zento", Building: "The Rusty Anchor", Location: Point3D{741, 1261, 30}, Facet: FacetTokuno},
	{Name: "Royal City", Building: "Castle Royal", Location: Point3D{738, 3486, -19}, Facet: FacetTerMur},
}

// SiegeCity is the single start offered on Siege Perilous shards.
var SiegeCity = City{
	Name: "Britain", Building: "The Wayfarer's Inn", Location: Point3D{1602, 1591, 20}, Facet: FacetFelucca,
}

// FindCity looks up a starting city by name, case-insensitive.
func FindCity(name string) (City, bool) {
	for _, c := range StartingCities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}
