package movement

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcore/internal/locationgraph"
	"simcore/internal/npcstate"
)

func TestIsolatedLocationProducesNoMovement(t *testing.T) {
	g := locationgraph.NewGraph()
	loc := locationgraph.FromType("Hermitage", locationgraph.TypeGeneric, 0)
	require.NoError(t, g.AddLocation(loc))

	n := npcstate.New("Hermit", "scholar", nil, 10)
	n.LocationID = loc.ID
	n.Energy = 1.0

	e := New(g, 1.0, 0.02, rand.New(rand.NewSource(1)))
	e.DecideMovement(n, 0, map[uuid.UUID]int{})

	assert.False(t, e.IsInTransit(n.ID))
}

func TestExplorerTravelsWhenForced(t *testing.T) {
	g := locationgraph.NewGraph()
	tavern := locationgraph.FromType("Tavern", locationgraph.TypeTavern, 0)
	forest := locationgraph.FromType("Forest", locationgraph.TypeForest, 0)
	require.NoError(t, g.AddLocation(tavern))
	require.NoError(t, g.AddLocation(forest))
	require.NoError(t, g.AddEdge(tavern.ID, forest.ID, 2.0, 0.3, false))

	n := npcstate.New("Explorer", "scholar", nil, 10)
	n.LocationID = tavern.ID
	n.Energy = 1.0
	n.Intention = []float64{0, 0, 0, 1, 0, 0, 0, 0} // pure explore

	e := New(g, 1.0, 0.02, rand.New(rand.NewSource(1)))
	e.DecideMovement(n, 0, nil)

	assert.True(t, e.IsInTransit(n.ID))
	assert.Less(t, n.Energy, 1.0)
}
