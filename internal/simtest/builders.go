// Package simtest holds small test builders, mirroring the teacher's
// internal/testutil package: helpers that construct a ready-to-use NPC or
// world manager so a test doesn't repeat the same setup boilerplate.
package simtest

import (
	"testing"

	"github.com/rs/zerolog"

	"simcore/internal/locationgraph"
	"simcore/internal/npcstate"
	"simcore/internal/simconfig"
	"simcore/internal/world"
)

// NewTestNPC builds an NPC with uniform personality for the given archetype.
func NewTestNPC(archetype string) *npcstate.NPCVectorialStatus {
	return npcstate.New(archetype+"-test", archetype, nil, 10)
}

// NewTestWorld builds a world manager over a single two-location graph (a
// tavern connected to a market by a one-hour edge), using cfg or
// simconfig.Default() when cfg is nil. Logging is discarded so test output
// stays quiet.
func NewTestWorld(t *testing.T, cfg *simconfig.Config) *world.Manager {
	t.Helper()

	graph := locationgraph.NewGraph()
	tavern := locationgraph.FromType("Test Tavern", locationgraph.TypeTavern, 20)
	market := locationgraph.FromType("Test Market", locationgraph.TypeMarket, 20)

	if err := graph.AddLocation(tavern); err != nil {
		t.Fatalf("simtest: add tavern: %v", err)
	}
	if err := graph.AddLocation(market); err != nil {
		t.Fatalf("simtest: add market: %v", err)
	}
	if err := graph.AddEdge(tavern.ID, market.ID, 1, 0, true); err != nil {
		t.Fatalf("simtest: add edge: %v", err)
	}

	return world.NewManager(cfg, graph, nil, zerolog.Nop(), nil)
}

// NewTestWorldWithNPCs builds a NewTestWorld and populates it with count NPCs
// of the given archetype, all placed at the first location ListLocations
// returns (map order, so either the tavern or the market), returning the
// manager and the registered NPCs.
func NewTestWorldWithNPCs(t *testing.T, cfg *simconfig.Config, archetype string, count int) (*world.Manager, []*npcstate.NPCVectorialStatus) {
	t.Helper()

	m := NewTestWorld(t, cfg)
	locs := m.Graph().ListLocations()
	if len(locs) == 0 {
		t.Fatalf("simtest: test world has no locations")
	}
	locationID := locs[0].ID

	npcs := make([]*npcstate.NPCVectorialStatus, 0, count)
	for i := 0; i < count; i++ {
		n := NewTestNPC(archetype)
		n.LocationID = locationID
		if err := m.AddNPC(n); err != nil {
			t.Fatalf("simtest: add npc: %v", err)
		}
		npcs = append(npcs, n)
	}

	return m, npcs
}
