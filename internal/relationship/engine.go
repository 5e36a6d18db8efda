// Package relationship implements symmetric pairwise affinity updates,
// decay-and-prune, and personality compatibility, reusing the teacher's
// package name for the concern even though the concrete model here is a
// single signed scalar rather than the teacher's multi-field Affinity.
package relationship

import (
	"math"

	"github.com/google/uuid"

	"simcore/internal/npcstate"
	"simcore/internal/vecmath"
)

// Engine holds the configured decay rate and delta scale.
type Engine struct {
	DecayRate  float64
	DeltaScale float64
}

// New builds an Engine (spec defaults: decayRate 0.01, deltaScale 1.0).
func New(decayRate, deltaScale float64) *Engine {
	return &Engine{DecayRate: decayRate, DeltaScale: deltaScale}
}

const pruneThreshold = 0.01

// ApplyDelta updates both sides of the a<->b relationship symmetrically with
// damping: new = clamp(old + delta*scale*(1-|old|), -1, 1). Each side is
// damped independently against its own prior value.
func (e *Engine) ApplyDelta(a, b *npcstate.NPCVectorialStatus, delta float64) {
	oldAB := a.Relationships[b.ID]
	oldBA := b.Relationships[a.ID]

	a.Relationships[b.ID] = vecmath.Clamp(oldAB+delta*e.DeltaScale*(1-math.Abs(oldAB)), -1, 1)
	b.Relationships[a.ID] = vecmath.Clamp(oldBA+delta*e.DeltaScale*(1-math.Abs(oldBA)), -1, 1)
}

// Decay multiplies every stored affinity of every NPC by (1-decayRate),
// pruning entries whose absolute value falls below 0.01.
func (e *Engine) Decay(npcs []*npcstate.NPCVectorialStatus) {
	for _, n := range npcs {
		for id, v := range n.Relationships {
			nv := v * (1 - e.DecayRate)
			if math.Abs(nv) < pruneThreshold {
				delete(n.Relationships, id)
				continue
			}
			n.Relationships[id] = nv
		}
	}
}

// Affinity returns the stored affinity from a to b, defaulting to 0 for
// strangers.
func Affinity(a *npcstate.NPCVectorialStatus, b uuid.UUID) float64 {
	return a.Relationships[b]
}

// PersonalityCompatibility returns 1 - 2*||pA-pB||/sqrt(dim_personality).
func PersonalityCompatibility(a, b *npcstate.NPCVectorialStatus) float64 {
	dist := vecmath.EuclideanDistance(a.Personality, b.Personality)
	return 1 - 2*dist/math.Sqrt(float64(npcstate.PersonalityDim))
}
