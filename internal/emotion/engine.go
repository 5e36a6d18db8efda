// Package emotion implements Plutchik emotion decay toward a
// personality-derived baseline, plus event-impact application.
package emotion

import (
	"simcore/internal/npcstate"
	"simcore/internal/vecmath"
	"simcore/internal/worldevent"
)

// baselineMatrix maps personality (rows) to emotion (columns): row i, column
// j is the contribution of personality trait i to emotion baseline j, in the
// declared label order of each.
var baselineMatrix = [][]float64{
	{0.1, 0.0, 0.0, 0.0, 0.2, 0.0, 0.1, 0.3},   // openness
	{0.1, 0.0, 0.0, 0.0, 0.0, 0.0, 0.3, 0.1},   // conscientiousness
	{0.3, -0.1, 0.0, -0.1, 0.1, 0.0, 0.1, 0.1}, // extraversion
	{0.2, 0.0, -0.2, 0.0, 0.0, -0.1, 0.3, 0.0}, // agreeableness
	{-0.2, 0.3, 0.2, 0.3, 0.0, 0.1, -0.2, 0.0}, // neuroticism
}

// Engine holds the configured decay and impact-scale rates.
type Engine struct {
	DecayRate   float64
	ImpactScale float64
}

// New builds an Engine with the given rates (spec defaults: decayRate 0.05,
// impactScale 1.0).
func New(decayRate, impactScale float64) *Engine {
	return &Engine{DecayRate: decayRate, ImpactScale: impactScale}
}

// ComputeBaseline returns clamp01(personality · M) for a personality vector.
func ComputeBaseline(personality []float64) []float64 {
	baseline := vecmath.VecMat(personality, baselineMatrix)
	return vecmath.Clamp01Vec(baseline)
}

// Decay applies one tick of decay toward the NPC's personality baseline.
func (e *Engine) Decay(n *npcstate.NPCVectorialStatus) {
	baseline := ComputeBaseline(n.Personality)
	for i := range n.Emotion {
		n.Emotion[i] = n.Emotion[i] + e.DecayRate*(baseline[i]-n.Emotion[i])
	}
	vecmath.Clamp01Vec(n.Emotion)
}

// ApplyEvent applies a single event's emotional impact to one NPC.
func (e *Engine) ApplyEvent(n *npcstate.NPCVectorialStatus, ev worldevent.WorldEvent) {
	for i := range n.Emotion {
		if i < len(ev.EmotionImpact) {
			n.Emotion[i] += ev.EmotionImpact[i] * ev.Intensity * e.ImpactScale
		}
	}
	vecmath.Clamp01Vec(n.Emotion)
}

// Tick decays every NPC in npcs toward its baseline.
func (e *Engine) Tick(npcs []*npcstate.NPCVectorialStatus) {
	for _, n := range npcs {
		e.Decay(n)
	}
}
