package relationship

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"simcore/internal/npcstate"
)

func TestApplyDeltaIsSymmetric(t *testing.T) {
	a := npcstate.New("A", "guard", nil, 10)
	b := npcstate.New("B", "merchant", nil, 10)
	e := New(0.01, 1.0)

	e.ApplyDelta(a, b, 0.3)

	assert.Equal(t, a.Relationships[b.ID], b.Relationships[a.ID])
	assert.LessOrEqual(t, math.Abs(a.Relationships[b.ID]), 1.0)
}

func TestApplyDeltaDampsNearExtremes(t *testing.T) {
	a := npcstate.New("A", "guard", nil, 10)
	b := npcstate.New("B", "merchant", nil, 10)
	a.Relationships[b.ID] = 0.95
	b.Relationships[a.ID] = 0.95
	e := New(0.01, 1.0)

	e.ApplyDelta(a, b, 0.5)

	assert.LessOrEqual(t, a.Relationships[b.ID], 1.0)
	assert.Less(t, a.Relationships[b.ID]-0.95, 0.5)
}

func TestDecayPrunesNegligibleAffinity(t *testing.T) {
	a := npcstate.New("A", "guard", nil, 10)
	other := npcstate.New("B", "merchant", nil, 10).ID
	a.Relationships[other] = 0.005
	e := New(0.5, 1.0)

	e.Decay([]*npcstate.NPCVectorialStatus{a})

	_, exists := a.Relationships[other]
	assert.False(t, exists)
}

func TestPersonalityCompatibilityIdenticalIsOne(t *testing.T) {
	a := npcstate.New("A", "guard", nil, 10)
	b := npcstate.New("B", "guard", nil, 10)

	assert.InDelta(t, 1.0, PersonalityCompatibility(a, b), 1e-9)
}
