package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcore/internal/locationgraph"
	"simcore/internal/npcstate"
)

func TestTickBlendsTowardLocationEnvironment(t *testing.T) {
	g := locationgraph.NewGraph()
	loc := locationgraph.FromType("Temple", locationgraph.TypeTemple, 0)
	require.NoError(t, g.AddLocation(loc))

	n := npcstate.New("Priest", "priest", nil, 10)
	n.LocationID = loc.ID
	n.Environment = make([]float64, 4)

	e := New(g, 0.5)
	e.Tick([]*npcstate.NPCVectorialStatus{n})

	assert.Greater(t, n.Environment[0], 0.0)
	for _, v := range n.Environment {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestUnknownLocationIsSkippedNotFailed(t *testing.T) {
	g := locationgraph.NewGraph()
	n := npcstate.New("Lost", "farmer", nil, 10)
	n.LocationID = locationgraph.FromType("nowhere", locationgraph.TypeGeneric, 0).ID
	before := append([]float64(nil), n.Environment...)

	e := New(g, 0.5)
	assert.NotPanics(t, func() {
		e.Tick([]*npcstate.NPCVectorialStatus{n})
	})
	assert.Equal(t, before, n.Environment)
}
