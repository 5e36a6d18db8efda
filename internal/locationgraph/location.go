// Package locationgraph implements the directed weighted graph of named
// places NPCs move between, with per-location environment vectors.
package locationgraph

import (
	"github.com/aquilax/go-perlin"
	"github.com/google/uuid"

	"simcore/internal/npcstate"
)

// LocationType tags the kind of place a Location represents.
type LocationType string

const (
	TypeGeneric  LocationType = "generic"
	TypeTavern   LocationType = "tavern"
	TypeMarket   LocationType = "market"
	TypeTemple   LocationType = "temple"
	TypeForest   LocationType = "forest"
	TypeFarm     LocationType = "farm"
	TypeCastle   LocationType = "castle"
	TypeSlum     LocationType = "slum"
)

// defaultEnvironment gives each location type a base environment vector
// (safety, resource_abundance, weather_comfort, crowding) before per-NPC
// blending and dynamic crowding take over.
var defaultEnvironment = map[LocationType][]float64{
	TypeGeneric: {0.5, 0.5, 0.5, 0.2},
	TypeTavern:  {0.7, 0.6, 0.7, 0.5},
	TypeMarket:  {0.6, 0.8, 0.5, 0.6},
	TypeTemple:  {0.9, 0.4, 0.6, 0.2},
	TypeForest:  {0.3, 0.5, 0.4, 0.0},
	TypeFarm:    {0.7, 0.7, 0.5, 0.1},
	TypeCastle:  {0.8, 0.6, 0.6, 0.3},
	TypeSlum:    {0.2, 0.2, 0.3, 0.7},
}

// Location is a named place with a base environment vector and a capacity
// (0 means unlimited).
type Location struct {
	ID          uuid.UUID
	Name        string
	Type        LocationType
	Environment []float64
	Capacity    int
}

// perlinJitter seeds a small deterministic Perlin field used to give
// from-type default environment vectors a believable, non-uniform jitter
// instead of hand-picked per-location constants.
var perlinJitter = perlin.NewPerlin(2, 2, 3, 42)

// FromType builds a Location using the type's default environment vector,
// perturbed by a small deterministic Perlin jitter keyed on the location's
// name so repeated calls with the same name produce the same vector.
func FromType(name string, t LocationType, capacity int) *Location {
	base, ok := defaultEnvironment[t]
	if !ok {
		base = defaultEnvironment[TypeGeneric]
	}

	env := make([]float64, npcstate.EnvironmentDim)
	seed := nameSeed(name)
	for i := range env {
		jitter := perlinJitter.Noise2D(seed+float64(i), seed*0.5)
		env[i] = clamp01(base[i] + jitter*0.05)
	}

	return &Location{
		ID:          uuid.New(),
		Name:        name,
		Type:        t,
		Environment: env,
		Capacity:    capacity,
	}
}

func nameSeed(name string) float64 {
	h := 0.0
	for i, r := range name {
		h += float64(r) * float64(i+1)
	}
	return h
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Edge is a directed, weighted connection from one location to another.
type Edge struct {
	TargetID   uuid.UUID
	TravelHours float64
	Danger      float64
}
