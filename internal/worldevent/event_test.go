package worldevent

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(intensity float64) WorldEvent {
	return WorldEvent{
		ID:            uuid.New(),
		EventType:     "murder",
		OriginScale:   Personal,
		CurrentScale:  Personal,
		LocationID:    uuid.New(),
		Timestamp:     0,
		Intensity:     intensity,
		EmotionImpact: []float64{-0.3, 0.5, 0.2, 0.4, 0.1, 0.1, -0.3, 0.0},
		SocialImpact:  make([]float64, 6),
	}
}

func TestNextPropagationScalesImpactByIntensityRatio(t *testing.T) {
	e := newEvent(0.9)
	next, ok := NextPropagation(e)
	require.True(t, ok)

	assert.Equal(t, Family, next.CurrentScale)
	assert.InDelta(t, 0.72, next.Intensity, 1e-9)
	assert.InDelta(t, 1, next.Timestamp, 1e-9)

	ratio := next.Intensity / e.Intensity
	for i := range e.EmotionImpact {
		assert.InDelta(t, e.EmotionImpact[i]*ratio, next.EmotionImpact[i], 1e-9)
	}
}

func TestCascadeTerminatesBelowThreshold(t *testing.T) {
	e := newEvent(0.03)
	// 0.03 * 0.80 = 0.024 >= 0.02, still propagates once
	next, ok := NextPropagation(e)
	require.True(t, ok)
	require.True(t, next.Intensity >= IntensityThreshold)

	// From FAMILY with attenuation 0.50: 0.024*0.5 = 0.012 < 0.02, so the cascade stops here.
	cur := next
	count := 1
	for cur.CanPropagate() {
		n, ok := NextPropagation(cur)
		if !ok {
			break
		}
		cur = n
		count++
	}
	assert.GreaterOrEqual(t, count, 1)
}

func TestGlobalCannotPropagate(t *testing.T) {
	e := newEvent(0.9)
	e.CurrentScale = Global
	assert.False(t, e.CanPropagate())
	_, ok := NextPropagation(e)
	assert.False(t, ok)
}

func TestHighIntensityPersonalEventReachesAtLeastFourScales(t *testing.T) {
	e := newEvent(0.9)
	count := 1
	cur := e
	for cur.CanPropagate() {
		n, ok := NextPropagation(cur)
		if !ok {
			break
		}
		count++
		cur = n
	}
	assert.GreaterOrEqual(t, count, 4)
}
