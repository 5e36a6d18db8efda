package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simcore/internal/npcstate"
	"simcore/internal/worldevent"
)

func TestApplyEventIncreasesTargetedEmotions(t *testing.T) {
	n := npcstate.New("Guard", "guard", nil, 10)
	e := New(0.05, 1.0)

	before := append([]float64(nil), n.Emotion...)

	ev := worldevent.WorldEvent{
		EventType:     "murder",
		Intensity:     0.9,
		EmotionImpact: []float64{-0.3, 0.5, 0.2, 0.4, 0.1, 0.1, -0.3, 0.0},
	}
	e.ApplyEvent(n, ev)
	e.Decay(n)

	// sadness (index 1) and fear (index 3) should have increased.
	assert.Greater(t, n.Emotion[1], before[1])
	assert.Greater(t, n.Emotion[3], before[3])

	for _, v := range n.Emotion {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestDecayMovesTowardBaseline(t *testing.T) {
	n := npcstate.New("Scholar", "scholar", nil, 10)
	n.Emotion[0] = 1.0 // joy maxed
	e := New(0.5, 1.0)

	baseline := ComputeBaseline(n.Personality)
	e.Decay(n)

	assert.Less(t, n.Emotion[0], 1.0)
	assert.InDelta(t, 1.0+0.5*(baseline[0]-1.0), n.Emotion[0], 1e-9)
}
