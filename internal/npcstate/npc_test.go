package npcstate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasSpecifiedInitialState(t *testing.T) {
	n := New("Guard", "guard", nil, 10)

	sum := 0.0
	for _, v := range n.Intention {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "intention should start uniform")

	for _, v := range n.Emotion {
		assert.Zero(t, v)
	}
	for _, v := range n.SocialInfluence {
		assert.Zero(t, v)
	}

	for _, v := range n.Personality {
		assert.InDelta(t, 0.2, v, 1e-9)
	}
}

func TestDominantLabels(t *testing.T) {
	n := New("Merchant", "merchant", nil, 10)
	n.Intention = []float64{0, 0, 0, 0, 0, 0.9, 0, 0}
	n.Emotion = []float64{0.1, 0.8, 0, 0, 0, 0, 0, 0}

	assert.Equal(t, "dominate", n.DominantIntention())
	assert.Equal(t, "sadness", n.DominantEmotion())
}

func TestAppendMemoryTrimsToCap(t *testing.T) {
	n := New("Farmer", "farmer", nil, 2)
	n.AppendMemory("a")
	n.AppendMemory("b")
	n.AppendMemory("c")

	require.Len(t, n.RecentMemories, 2)
	assert.Equal(t, []string{"b", "c"}, n.RecentMemories)
}

func TestCloneIsIndependent(t *testing.T) {
	n := New("Priest", "priest", nil, 10)
	other := uuid.New()
	n.Relationships[other] = 0.5

	cp := n.Clone()
	cp.Relationships[other] = -0.5
	cp.Intention[0] = 0.99

	assert.Equal(t, 0.5, n.Relationships[other])
	assert.NotEqual(t, cp.Intention[0], n.Intention[0])
}

func TestToCharacterSheetIncludesMemories(t *testing.T) {
	n := New("Scholar", "scholar", nil, 10)
	n.AppendMemory("saw a fire in the market")

	sheet := n.ToCharacterSheet()
	assert.Contains(t, sheet, "Scholar")
	assert.Contains(t, sheet, "saw a fire in the market")
}

func TestToCharacterSheetSentinelWhenEmpty(t *testing.T) {
	n := New("Noble", "noble", nil, 10)
	sheet := n.ToCharacterSheet()
	assert.Contains(t, sheet, "no memories yet")
}
