// Package intention implements the linear re-computation of each NPC's drive
// vector from weighted personality, emotion, social-influence, and
// environment inputs, plus vitality bias and L2-renormalisation.
package intention

import (
	"simcore/internal/npcstate"
	"simcore/internal/vecmath"
)

// Default weights (w_p, w_e, w_s, w_v, w_m) for the linear combination.
const (
	DefaultPersonalityWeight     = 0.25
	DefaultEmotionWeight         = 0.25
	DefaultSocialWeight          = 0.15
	DefaultEnvironmentWeight     = 0.15
	DefaultMomentumWeight        = 0.20
)

const gaussianSeed = 42
const gaussianStddev = 0.3

const (
	idxSurvive = 0
	idxEscape  = 7
)

// ArchetypeWeights bundles the per-archetype linear combination weights and
// transformation matrices.
type ArchetypeWeights struct {
	PersonalityWeight float64
	EmotionWeight     float64
	SocialWeight      float64
	EnvironmentWeight float64
	MomentumWeight    float64

	PersonalityMatrix [][]float64 // 5x8
	EmotionMatrix     [][]float64 // 8x8
	SocialMatrix      [][]float64 // 6x8
	EnvironmentMatrix [][]float64 // 4x8
}

// defaultWeights builds the default archetype weights using a deterministic
// fixed-seed Gaussian initialiser (mean 0, stddev 0.3), so repeated calls
// within a process yield byte-identical matrices.
func defaultWeights() ArchetypeWeights {
	return ArchetypeWeights{
		PersonalityWeight: DefaultPersonalityWeight,
		EmotionWeight:     DefaultEmotionWeight,
		SocialWeight:      DefaultSocialWeight,
		EnvironmentWeight: DefaultEnvironmentWeight,
		MomentumWeight:    DefaultMomentumWeight,

		PersonalityMatrix: vecmath.SeededGaussianMatrix(gaussianSeed, npcstate.PersonalityDim, npcstate.IntentionDim, 0, gaussianStddev),
		EmotionMatrix:     vecmath.SeededGaussianMatrix(gaussianSeed+1, npcstate.EmotionDim, npcstate.IntentionDim, 0, gaussianStddev),
		SocialMatrix:      vecmath.SeededGaussianMatrix(gaussianSeed+2, npcstate.SocialInfluenceDim, npcstate.IntentionDim, 0, gaussianStddev),
		EnvironmentMatrix: vecmath.SeededGaussianMatrix(gaussianSeed+3, npcstate.EnvironmentDim, npcstate.IntentionDim, 0, gaussianStddev),
	}
}

// Engine recomputes intention vectors, keyed by archetype.
type Engine struct {
	defaults  ArchetypeWeights
	archetype map[string]ArchetypeWeights
}

// New builds an Engine whose default weights use the fixed-seed
// initialisation.
func New() *Engine {
	return &Engine{
		defaults:  defaultWeights(),
		archetype: make(map[string]ArchetypeWeights),
	}
}

// RegisterArchetype overrides the weights used for a specific archetype tag.
func (e *Engine) RegisterArchetype(archetype string, w ArchetypeWeights) {
	e.archetype[archetype] = w
}

func (e *Engine) weightsFor(archetype string) ArchetypeWeights {
	if w, ok := e.archetype[archetype]; ok {
		return w
	}
	return e.defaults
}

// Compute recomputes n.Intention in place.
func (e *Engine) Compute(n *npcstate.NPCVectorialStatus) {
	w := e.weightsFor(n.Archetype)

	raw := vecmath.Scale(vecmath.VecMat(n.Personality, w.PersonalityMatrix), w.PersonalityWeight)
	raw = vecmath.Add(raw, vecmath.Scale(vecmath.VecMat(n.Emotion, w.EmotionMatrix), w.EmotionWeight))
	raw = vecmath.Add(raw, vecmath.Scale(vecmath.VecMat(n.SocialInfluence, w.SocialMatrix), w.SocialWeight))
	raw = vecmath.Add(raw, vecmath.Scale(vecmath.VecMat(n.Environment, w.EnvironmentMatrix), w.EnvironmentWeight))
	raw = vecmath.Add(raw, vecmath.Scale(n.Intention, w.MomentumWeight))

	if n.Energy < 0.3 {
		raw[idxSurvive] += 0.5 * (0.3 - n.Energy) / 0.3
	}
	if n.Health < 0.4 {
		raw[idxSurvive] += 0.8 * (0.4 - n.Health) / 0.4
		raw[idxEscape] += 0.3 * (0.4 - n.Health) / 0.4
	}

	n.Intention = vecmath.NormalizeL2(raw, 1e-8)
}

// ComputeBatch recomputes intention for every NPC in npcs.
func (e *Engine) ComputeBatch(npcs []*npcstate.NPCVectorialStatus) {
	for _, n := range npcs {
		e.Compute(n)
	}
}

// Tick is an alias for ComputeBatch, matching the per-tick pipeline naming
// used by the sibling engines.
func (e *Engine) Tick(npcs []*npcstate.NPCVectorialStatus) {
	e.ComputeBatch(npcs)
}
