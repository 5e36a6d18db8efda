// Package social implements peer-pressure contagion: personality-driven
// susceptibility, archetype radiation profiles, and per-tick blend+decay of
// each NPC's social-influence vector.
package social

import (
	"github.com/google/uuid"

	"simcore/internal/npcstate"
	"simcore/internal/relationship"
	"simcore/internal/vecmath"
)

// archetypeProfiles gives each archetype a 6-dim radiation profile
// (cultural_conformity, economic_pressure, fashion_awareness, status_seeking,
// religious_devotion, political_alignment). Unknown archetypes radiate zero.
var archetypeProfiles = map[string][]float64{
	"merchant": {0.00, 0.40, 0.20, 0.10, 0.00, 0.00},
	"priest":   {0.15, 0.00, 0.00, 0.00, 0.50, 0.10},
	"noble":    {0.10, 0.00, 0.15, 0.40, 0.00, 0.30},
	"guard":    {0.20, 0.00, 0.00, 0.10, 0.00, 0.20},
	"soldier":  {0.20, 0.00, 0.00, 0.10, 0.00, 0.20},
	"artist":   {0.05, 0.00, 0.38, 0.05, 0.00, 0.00},
	"bard":     {0.05, 0.00, 0.38, 0.05, 0.00, 0.00},
	"farmer":   {0.20, 0.10, 0.00, 0.00, 0.10, 0.00},
	"scholar":  {0.10, 0.00, 0.00, 0.15, 0.00, 0.10},
	"criminal": {0.00, 0.20, 0.00, 0.15, 0.00, -0.10},
}

// ArchetypeProfile returns the radiation profile for archetype, or a zero
// vector for unknown archetypes.
func ArchetypeProfile(archetype string) []float64 {
	if p, ok := archetypeProfiles[archetype]; ok {
		return vecmath.Copy(p)
	}
	return make([]float64, npcstate.SocialInfluenceDim)
}

// Engine holds the configured blend/decay rates.
type Engine struct {
	BlendRate  float64
	DecayRate  float64
	EventScale float64
}

// New builds an Engine (spec defaults: blendRate 0.2, decayRate 0.05).
func New(blendRate, decayRate, eventScale float64) *Engine {
	return &Engine{BlendRate: blendRate, DecayRate: decayRate, EventScale: eventScale}
}

// ComputeSusceptibility returns clamp(0.4 + 0.5*agreeableness - 0.15*neuroticism, 0.2, 1.0).
func ComputeSusceptibility(n *npcstate.NPCVectorialStatus) float64 {
	agreeableness := n.Personality[3]
	neuroticism := n.Personality[4]
	return vecmath.Clamp(0.4+0.5*agreeableness-0.15*neuroticism, 0.2, 1.0)
}

// ComputePeerSignal averages, over every other NPC co-located with n, the
// weighted sum of their social influence plus their archetype's radiation
// profile, with weight = 0.5 + affinity*0.5.
func ComputePeerSignal(n *npcstate.NPCVectorialStatus, coLocated []*npcstate.NPCVectorialStatus) []float64 {
	signal := make([]float64, npcstate.SocialInfluenceDim)

	var peerCount int
	for _, other := range coLocated {
		if other.ID == n.ID {
			continue
		}
		peerCount++

		affinity := relationship.Affinity(n, other.ID)
		weight := 0.5 + affinity*0.5

		profile := ArchetypeProfile(other.Archetype)
		combined := vecmath.Add(other.SocialInfluence, profile)
		weighted := vecmath.Scale(combined, weight)
		signal = vecmath.Add(signal, weighted)
	}

	if peerCount == 0 {
		return signal
	}
	return vecmath.Scale(signal, 1.0/float64(peerCount))
}

// ApplyEvent nudges n's social influence by socialImpact scaled by
// intensity and the engine's event scale.
func (e *Engine) ApplyEvent(n *npcstate.NPCVectorialStatus, socialImpact []float64, intensity float64) {
	for i := range n.SocialInfluence {
		if i < len(socialImpact) {
			n.SocialInfluence[i] += socialImpact[i] * intensity * e.EventScale
		}
	}
	vecmath.Clamp01Vec(n.SocialInfluence)
}

// Tick groups npcs by location, then for each NPC blends its social
// influence toward the location's peer signal (scaled by susceptibility)
// and decays it toward zero, clamping each coordinate to [0,1].
func (e *Engine) Tick(npcs []*npcstate.NPCVectorialStatus) {
	byLocation := make(map[uuid.UUID][]*npcstate.NPCVectorialStatus)
	for _, n := range npcs {
		byLocation[n.LocationID] = append(byLocation[n.LocationID], n)
	}

	for _, group := range byLocation {
		for _, n := range group {
			susceptibility := ComputeSusceptibility(n)
			signal := ComputePeerSignal(n, group)
			blendFactor := e.BlendRate * susceptibility

			for i := range n.SocialInfluence {
				n.SocialInfluence[i] += blendFactor * (signal[i] - n.SocialInfluence[i])
				n.SocialInfluence[i] -= e.DecayRate * n.SocialInfluence[i]
			}
			vecmath.Clamp01Vec(n.SocialInfluence)
		}
	}
}
