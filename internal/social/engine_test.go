package social

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simcore/internal/npcstate"
)

func TestUnknownArchetypeRadiatesZero(t *testing.T) {
	profile := ArchetypeProfile("nonexistent")
	for _, v := range profile {
		assert.Zero(t, v)
	}
}

func TestSusceptibilityClamped(t *testing.T) {
	n := npcstate.New("A", "guard", []float64{0, 0, 0, 1, 1}, 10)
	s := ComputeSusceptibility(n)
	assert.LessOrEqual(t, s, 1.0)
	assert.GreaterOrEqual(t, s, 0.2)
}

func TestTickBlendsTowardPeerSignal(t *testing.T) {
	loc := npcstate.New("shared", "generic", nil, 10).ID

	a := npcstate.New("A", "guard", nil, 10)
	a.LocationID = loc

	b := npcstate.New("B", "merchant", nil, 10)
	b.LocationID = loc
	b.SocialInfluence = []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}

	e := New(0.2, 0.05, 1.0)
	e.Tick([]*npcstate.NPCVectorialStatus{a, b})

	for _, v := range a.SocialInfluence {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.NotEqual(t, 0.0, a.SocialInfluence[0])
}

func TestPeerSignalZeroWhenAlone(t *testing.T) {
	a := npcstate.New("A", "guard", nil, 10)
	signal := ComputePeerSignal(a, []*npcstate.NPCVectorialStatus{a})
	for _, v := range signal {
		assert.Zero(t, v)
	}
}
