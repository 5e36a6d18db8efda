package locationgraph

import (
	"sync"

	"github.com/google/uuid"

	"simcore/internal/simerrors"
)

// Graph is the directed weighted location graph: a set of locations plus a
// per-location list of outbound edges. Mirrors the registry pattern of
// returning copies from every accessor: a returned Location is a copy of the
// stored struct, though its Environment slice is shared with the stored one.
type Graph struct {
	mu        sync.RWMutex
	locations map[uuid.UUID]*Location
	edges     map[uuid.UUID][]Edge
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		locations: make(map[uuid.UUID]*Location),
		edges:     make(map[uuid.UUID][]Edge),
	}
}

// AddLocation registers loc. Returns DuplicateId if loc.ID already exists.
func (g *Graph) AddLocation(loc *Location) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.locations[loc.ID]; exists {
		return simerrors.DuplicateID("location id already registered")
	}
	cp := *loc
	g.locations[loc.ID] = &cp
	return nil
}

// GetLocation returns a copy of the location with the given id.
func (g *Graph) GetLocation(id uuid.UUID) (*Location, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	loc, ok := g.locations[id]
	if !ok {
		return nil, simerrors.NotFound("location not found")
	}
	cp := *loc
	return &cp, nil
}

// ListLocations returns copies of every registered location.
func (g *Graph) ListLocations() []*Location {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Location, 0, len(g.locations))
	for _, loc := range g.locations {
		cp := *loc
		out = append(out, &cp)
	}
	return out
}

// RemoveLocation deletes a location and its outbound edges.
func (g *Graph) RemoveLocation(id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.locations[id]; !ok {
		return simerrors.NotFound("location not found")
	}
	delete(g.locations, id)
	delete(g.edges, id)
	return nil
}

// AddEdge adds a directed edge from -> to. If bidirectional, the mirrored
// edge is also added.
func (g *Graph) AddEdge(from, to uuid.UUID, travelHours, danger float64, bidirectional bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.locations[from]; !ok {
		return simerrors.NotFound("edge source location not found")
	}
	if _, ok := g.locations[to]; !ok {
		return simerrors.NotFound("edge target location not found")
	}

	g.edges[from] = append(g.edges[from], Edge{TargetID: to, TravelHours: travelHours, Danger: danger})
	if bidirectional {
		g.edges[to] = append(g.edges[to], Edge{TargetID: from, TravelHours: travelHours, Danger: danger})
	}
	return nil
}

// GetNeighbors returns the outbound edges of id.
func (g *Graph) GetNeighbors(id uuid.UUID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.edges[id]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// GetEdge returns the edge from -> to, if one exists.
func (g *Graph) GetEdge(from, to uuid.UUID) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges[from] {
		if e.TargetID == to {
			return e, true
		}
	}
	return Edge{}, false
}

// Crowding compares countHere (callers pass the count of NPCs currently at
// id) against the location's capacity, reporting dynamic crowding in [0,1]:
// count/capacity when capacity > 0, else a soft count/20 scale. An unknown id
// reports 0.
func (g *Graph) Crowding(id uuid.UUID, countHere int) float64 {
	g.mu.RLock()
	loc, ok := g.locations[id]
	g.mu.RUnlock()

	if !ok {
		return 0
	}

	if loc.Capacity > 0 {
		return clamp01(float64(countHere) / float64(loc.Capacity))
	}
	return clamp01(float64(countHere) / 20.0)
}

// AtCapacity reports whether id is already at or over its configured
// capacity (capacity 0 means unlimited).
func (g *Graph) AtCapacity(id uuid.UUID, countHere int) bool {
	g.mu.RLock()
	loc, ok := g.locations[id]
	g.mu.RUnlock()

	if !ok || loc.Capacity <= 0 {
		return false
	}
	return countHere >= loc.Capacity
}
