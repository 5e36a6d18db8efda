package interaction

import (
	"github.com/google/uuid"

	"simcore/internal/npcstate"
)

// baseCooldownHours is the cooldown applied to a pair whose average
// extraversion is zero; more extraverted pairs cool down faster, down to half
// of it at full extraversion.
const baseCooldownHours = 0.5

const idxExtraversion = 2

// pairKey is an order-independent key for a pair of NPC ids.
type pairKey struct {
	lo, hi uuid.UUID
}

func makePairKey(a, b uuid.UUID) pairKey {
	if a.String() <= b.String() {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// CooldownTracker suppresses re-rolling the same pair's interaction every
// tick once they have resolved one recently, extending the "at most one
// outcome per NPC per tick" rule (spec §4.6) across ticks. Extraverted pairs
// cool down faster, mirroring the teacher's per-NPC extraversion-scaled
// cooldown, adapted here to a per-pair game-time cooldown.
type CooldownTracker struct {
	lastResolved map[pairKey]float64
}

// NewCooldownTracker builds an empty tracker.
func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{lastResolved: make(map[pairKey]float64)}
}

// Ready reports whether a and b may be sampled again at game time now. A
// pair with no prior resolution is always ready.
func (ct *CooldownTracker) Ready(a, b *npcstate.NPCVectorialStatus, now float64) bool {
	last, ok := ct.lastResolved[makePairKey(a.ID, b.ID)]
	if !ok {
		return true
	}

	avgExtraversion := (a.Personality[idxExtraversion] + b.Personality[idxExtraversion]) / 2
	cooldown := baseCooldownHours * (1 - avgExtraversion*0.5)
	return now-last >= cooldown
}

// Resolve records that a and b just resolved an interaction at now.
func (ct *CooldownTracker) Resolve(a, b uuid.UUID, now float64) {
	ct.lastResolved[makePairKey(a, b)] = now
}
