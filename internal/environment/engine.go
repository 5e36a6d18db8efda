// Package environment implements the per-tick blend of each NPC's
// environment vector toward its current location, with dynamic crowding
// overriding the location's static base.
package environment

import (
	"github.com/google/uuid"

	"simcore/internal/locationgraph"
	"simcore/internal/npcstate"
	"simcore/internal/vecmath"
)

const crowdingIndex = 3

// Engine holds the configured blend rate.
type Engine struct {
	BlendRate float64
	Graph     *locationgraph.Graph
}

// New builds an Engine bound to graph (spec default blendRate: 0.5).
func New(graph *locationgraph.Graph, blendRate float64) *Engine {
	return &Engine{BlendRate: blendRate, Graph: graph}
}

// Tick groups npcs by location, computes dynamic crowding per location, and
// blends each NPC's environment toward (location base with crowding
// overwritten). NPCs at an unknown location are skipped for this stage only.
func (e *Engine) Tick(npcs []*npcstate.NPCVectorialStatus) {
	counts := make(map[uuid.UUID]int)
	for _, n := range npcs {
		counts[n.LocationID]++
	}

	for _, n := range npcs {
		loc, err := e.Graph.GetLocation(n.LocationID)
		if err != nil {
			continue
		}

		target := vecmath.Copy(loc.Environment)
		target[crowdingIndex] = e.Graph.Crowding(n.LocationID, counts[n.LocationID])

		for i := range n.Environment {
			if i < len(target) {
				n.Environment[i] += e.BlendRate * (target[i] - n.Environment[i])
			}
		}
		vecmath.Clamp01Vec(n.Environment)
	}
}
