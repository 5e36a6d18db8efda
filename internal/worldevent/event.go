// Package worldevent defines WorldEvent, the six nested locality scales, and
// the fixed propagation-rules table events cascade through.
package worldevent

import (
	"time"

	"github.com/google/uuid"
)

// LocalityScale is one of the six nested audience tiers an event can reach.
type LocalityScale int

const (
	Personal LocalityScale = iota
	Family
	City
	Regional
	National
	Global
)

func (s LocalityScale) String() string {
	switch s {
	case Personal:
		return "PERSONAL"
	case Family:
		return "FAMILY"
	case City:
		return "CITY"
	case Regional:
		return "REGIONAL"
	case National:
		return "NATIONAL"
	case Global:
		return "GLOBAL"
	default:
		return "UNKNOWN"
	}
}

// IntensityThreshold is the floor below which an event cannot propagate further.
const IntensityThreshold = 0.02

// PropagationRule pairs the delay and attenuation applied when an event
// crosses from one scale to the next broader one.
type PropagationRule struct {
	DelayHours  float64
	Attenuation float64
}

// PropagationRules is the authoritative scale-pair table.
var PropagationRules = map[LocalityScale]PropagationRule{
	Personal: {DelayHours: 1, Attenuation: 0.80},  // -> Family
	Family:   {DelayHours: 4, Attenuation: 0.50},  // -> City
	City:     {DelayHours: 24, Attenuation: 0.30}, // -> Regional
	Regional: {DelayHours: 72, Attenuation: 0.15}, // -> National
	National: {DelayHours: 168, Attenuation: 0.05}, // -> Global
}

// NextScale returns the next broader scale in the fixed order, and whether
// one exists (Global has none).
func NextScale(s LocalityScale) (LocalityScale, bool) {
	if s >= Global {
		return Global, false
	}
	return s + 1, true
}

// WorldEvent is a single occurrence that propagates through the world.
type WorldEvent struct {
	ID uuid.UUID

	SourceNPCID *uuid.UUID
	EventType   string
	Description string

	OriginScale  LocalityScale
	CurrentScale LocalityScale

	LocationID uuid.UUID
	Timestamp  float64 // game-time hours

	Intensity float64

	EmotionImpact []float64 // dim 8, signed
	SocialImpact  []float64 // dim 6, signed
}

// CanPropagate reports whether e may still cascade to a broader scale.
func (e WorldEvent) CanPropagate() bool {
	return e.CurrentScale < Global && e.Intensity >= IntensityThreshold
}

// NextPropagation computes the propagated copy of e one scale broader, or
// ok=false if e cannot propagate (already GLOBAL, a missing scale-pair entry,
// or the resulting intensity would fall below the threshold).
func NextPropagation(e WorldEvent) (WorldEvent, bool) {
	if !e.CanPropagate() {
		return WorldEvent{}, false
	}

	rule, ok := PropagationRules[e.CurrentScale]
	if !ok {
		return WorldEvent{}, false
	}

	nextScale, ok := NextScale(e.CurrentScale)
	if !ok {
		return WorldEvent{}, false
	}

	newIntensity := e.Intensity * rule.Attenuation
	if newIntensity < IntensityThreshold {
		return WorldEvent{}, false
	}

	ratio := newIntensity / maxFloat(e.Intensity, 1e-8)

	next := e
	next.ID = uuid.New()
	next.CurrentScale = nextScale
	next.Intensity = newIntensity
	next.Timestamp = e.Timestamp + rule.DelayHours
	next.EmotionImpact = scaleVec(e.EmotionImpact, ratio)
	next.SocialImpact = scaleVec(e.SocialImpact, ratio)

	return next, true
}

func scaleVec(v []float64, ratio float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * ratio
	}
	return out
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// GameTimeToDuration converts a game-time hours delta into a time.Duration.
// The pipeline does not call it; it works in raw float64 hours.
func GameTimeToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
