package locationgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcore/internal/simerrors"
)

func TestAddAndGetLocation(t *testing.T) {
	g := NewGraph()
	loc := FromType("Tavern", TypeTavern, 10)

	require.NoError(t, g.AddLocation(loc))

	got, err := g.GetLocation(loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tavern", got.Name)
	assert.Len(t, got.Environment, 4)
}

func TestAddLocationDuplicateID(t *testing.T) {
	g := NewGraph()
	loc := FromType("Tavern", TypeTavern, 10)
	require.NoError(t, g.AddLocation(loc))

	err := g.AddLocation(loc)
	require.Error(t, err)
	assert.True(t, simerrors.Is(err, simerrors.CodeDuplicateID))
}

func TestBidirectionalEdge(t *testing.T) {
	g := NewGraph()
	a := FromType("Tavern", TypeTavern, 10)
	b := FromType("Forest", TypeForest, 0)
	require.NoError(t, g.AddLocation(a))
	require.NoError(t, g.AddLocation(b))

	require.NoError(t, g.AddEdge(a.ID, b.ID, 2.0, 0.3, true))

	edge, ok := g.GetEdge(a.ID, b.ID)
	require.True(t, ok)
	assert.Equal(t, 2.0, edge.TravelHours)

	back, ok := g.GetEdge(b.ID, a.ID)
	require.True(t, ok)
	assert.Equal(t, 0.3, back.Danger)
}

func TestIsolatedLocationHasNoNeighbors(t *testing.T) {
	g := NewGraph()
	loc := FromType("Hermitage", TypeGeneric, 0)
	require.NoError(t, g.AddLocation(loc))

	assert.Empty(t, g.GetNeighbors(loc.ID))
}

func TestCrowdingUsesCapacityWhenSet(t *testing.T) {
	g := NewGraph()
	loc := FromType("Market", TypeMarket, 10)
	require.NoError(t, g.AddLocation(loc))

	assert.InDelta(t, 0.5, g.Crowding(loc.ID, 5), 1e-9)
}

func TestCrowdingSoftScaleWhenUnlimited(t *testing.T) {
	g := NewGraph()
	loc := FromType("Plaza", TypeGeneric, 0)
	require.NoError(t, g.AddLocation(loc))

	assert.InDelta(t, 0.5, g.Crowding(loc.ID, 10), 1e-9)
}
