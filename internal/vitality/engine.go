// Package vitality implements the energy/health dynamics: passive drain,
// environment-scaled regeneration, danger-threshold health drain, passive
// healing, the health-based energy cap, and event-driven damage/healing.
package vitality

import (
	"strings"

	"simcore/internal/npcstate"
	"simcore/internal/vecmath"
	"simcore/internal/worldevent"
)

// vitalityDelta pairs a health delta with an energy delta.
type vitalityDelta struct {
	Health float64
	Energy float64
}

// damagingPrefixes maps event-type prefixes to their (health, energy) deltas.
var damagingPrefixes = map[string]vitalityDelta{
	"attack":   {Health: -0.15, Energy: -0.05},
	"battle":   {Health: -0.2, Energy: -0.1},
	"disaster": {Health: -0.1, Energy: -0.05},
	"plague":   {Health: -0.12, Energy: -0.03},
	"fire":     {Health: -0.1, Energy: -0.04},
	"collapse": {Health: -0.08, Energy: -0.02},
}

// healingPrefixes maps event-type prefixes to their (health, energy) deltas.
var healingPrefixes = map[string]vitalityDelta{
	"healing":     {Health: 0.15, Energy: 0.05},
	"feast":       {Health: 0.05, Energy: 0.15},
	"rest":        {Health: 0.0, Energy: 0.2},
	"celebration": {Health: 0.02, Energy: 0.1},
}

// Engine holds the configured vitality constants.
type Engine struct {
	EnergyDrainPerTick       float64
	EnergyRegenBase          float64
	HealthRegenRate          float64
	DangerHealthDrain        float64
	DangerSafetyThreshold    float64
	HealthEnergyCapThreshold float64
}

// New builds an Engine with the given constants (see simconfig.Default for
// the documented defaults).
func New(energyDrain, energyRegen, healthRegen, dangerDrain, dangerThreshold, capThreshold float64) *Engine {
	return &Engine{
		EnergyDrainPerTick:       energyDrain,
		EnergyRegenBase:          energyRegen,
		HealthRegenRate:          healthRegen,
		DangerHealthDrain:        dangerDrain,
		DangerSafetyThreshold:    dangerThreshold,
		HealthEnergyCapThreshold: capThreshold,
	}
}

// applyCap enforces: if health < capThreshold, energy is capped at
// health/capThreshold.
func (e *Engine) applyCap(n *npcstate.NPCVectorialStatus) {
	if n.Health < e.HealthEnergyCapThreshold {
		cap := n.Health / e.HealthEnergyCapThreshold
		if n.Energy > cap {
			n.Energy = cap
		}
	}
}

// UpdateNPC applies one tick of passive vitality dynamics to n, in the
// contractual order: drain, regen, health delta, clamp, cap.
func (e *Engine) UpdateNPC(n *npcstate.NPCVectorialStatus) {
	safety := envAt(n, 0)
	weatherComfort := envAt(n, 2)

	n.Energy -= e.EnergyDrainPerTick
	n.Energy += e.EnergyRegenBase * (0.5*safety + 0.5*weatherComfort)

	if safety < e.DangerSafetyThreshold {
		n.Health -= e.DangerHealthDrain * (e.DangerSafetyThreshold - safety)
	}
	if n.Health < 1.0 {
		n.Health += e.HealthRegenRate * safety
	}

	n.Energy = vecmath.Clamp01(n.Energy)
	n.Health = vecmath.Clamp01(n.Health)

	e.applyCap(n)
}

func envAt(n *npcstate.NPCVectorialStatus, idx int) float64 {
	if idx < len(n.Environment) {
		return n.Environment[idx]
	}
	return 0
}

// ApplyEvent applies the damage/healing table entry matching ev's type prefix
// (if any), scaled by intensity.
func (e *Engine) ApplyEvent(n *npcstate.NPCVectorialStatus, ev worldevent.WorldEvent) {
	delta, ok := matchPrefix(ev.EventType)
	if !ok {
		return
	}
	n.Health = vecmath.Clamp01(n.Health + delta.Health*ev.Intensity)
	n.Energy = vecmath.Clamp01(n.Energy + delta.Energy*ev.Intensity)
}

func matchPrefix(eventType string) (vitalityDelta, bool) {
	for prefix, delta := range damagingPrefixes {
		if strings.HasPrefix(eventType, prefix) {
			return delta, true
		}
	}
	for prefix, delta := range healingPrefixes {
		if strings.HasPrefix(eventType, prefix) {
			return delta, true
		}
	}
	return vitalityDelta{}, false
}

// ApplyInteractionCosts deducts energy and applies a signed health delta,
// the direct entry point the interaction engine uses for its vitality costs.
func (e *Engine) ApplyInteractionCosts(n *npcstate.NPCVectorialStatus, energyCost, healthDelta float64) {
	n.Energy = vecmath.Clamp01(n.Energy - energyCost)
	n.Health = vecmath.Clamp01(n.Health + healthDelta)
	e.applyCap(n)
}

// Tick applies one tick of passive dynamics to every NPC in npcs.
func (e *Engine) Tick(npcs []*npcstate.NPCVectorialStatus) {
	for _, n := range npcs {
		e.UpdateNPC(n)
	}
}
