// Package catalog supplies candidate neighborhoods for a target city.
// The catalog is an external collaborator from the core's point of
// view: it only enumerates candidates, it never scores them. Entries
// are static reference data, optionally overridden from a YAML file.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Neighborhood is one candidate area with the overlays the scorer
// needs: a typical rent and a commute estimate to the city's main
// employment cluster.
type Neighborhood struct {
	Name           string   `yaml:"name" json:"name"`
	City           string   `yaml:"city" json:"city"`
	TypicalRentKES int      `yaml:"typical_rent_kes" json:"typical_rent_kes"`
	CommuteMinutes int      `yaml:"commute_minutes" json:"commute_minutes"`
	Transportation string   `yaml:"transportation" json:"transportation"`
	Amenities      []string `yaml:"amenities" json:"amenities"`
}

type Catalog struct {
	entries []Neighborhood
}

// Source enumerates candidates for a city. Implemented by Catalog;
// tests may substitute their own.
type Source interface {
	CandidatesFor(city string, limit int) []Neighborhood
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{entries: defaultEntries}
}

// LoadFile reads a YAML catalog of the shape {neighborhoods: [...]}.
func LoadFile(path string) (*Catalog, error) {
	// #nosec G304 -- path comes from operator-configured catalog path.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Neighborhoods []Neighborhood `yaml:"neighborhoods"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Neighborhoods) == 0 {
		return nil, fmt.Errorf("catalog %s lists no neighborhoods", path)
	}
	return &Catalog{entries: doc.Neighborhoods}, nil
}

// CandidatesFor returns up to limit entries for the city, in catalog
// order. Unknown cities yield nothing; the advisor still returns its
// profile-level assessment in that case.
func (c *Catalog) CandidatesFor(city string, limit int) []Neighborhood {
	if limit <= 0 {
		limit = 5
	}
	city = strings.ToLower(strings.TrimSpace(city))

	var out []Neighborhood
	for _, n := range c.entries {
		if strings.ToLower(n.City) != city {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out
}

var defaultEntries = []Neighborhood{
	{Name: "South B", City: "Nairobi", TypicalRentKES: 35000, CommuteMinutes: 25, Transportation: "matatu corridors to CBD, bus routes", Amenities: []string{"market", "hospital", "schools"}},
	{Name: "Kilimani", City: "Nairobi", TypicalRentKES: 75000, CommuteMinutes: 20, Transportation: "matatu and ride-hailing, walkable side streets", Amenities: []string{"shopping centre", "hospital", "gyms"}},
	{Name: "Kasarani", City: "Nairobi", TypicalRentKES: 25000, CommuteMinutes: 50, Transportation: "matatu along Thika Road", Amenities: []string{"market", "stadium", "schools"}},
	{Name: "Ruaka", City: "Nairobi", TypicalRentKES: 30000, CommuteMinutes: 45, Transportation: "matatu via Limuru Road", Amenities: []string{"malls", "clinics"}},
	{Name: "Rongai", City: "Nairobi", TypicalRentKES: 20000, CommuteMinutes: 70, Transportation: "matatu and bus via Langata Road", Amenities: []string{"market", "schools"}},
	{Name: "Milimani", City: "Kisumu", TypicalRentKES: 40000, CommuteMinutes: 15, Transportation: "bodaboda and matatu to CBD", Amenities: []string{"hospital", "schools", "supermarket"}},
	{Name: "Tom Mboya Estate", City: "Kisumu", TypicalRentKES: 22000, CommuteMinutes: 20, Transportation: "matatu and bodaboda", Amenities: []string{"market", "clinics"}},
	{Name: "Riat Hills", City: "Kisumu", TypicalRentKES: 30000, CommuteMinutes: 30, Transportation: "bodaboda, limited matatu service", Amenities: []string{"airport proximity", "schools"}},
}
