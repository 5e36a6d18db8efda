// Package interaction implements the pairwise autonomous interaction engine:
// it pairs co-located, awake NPCs, samples which pairs actually interact,
// classifies the outcome from the pair's dominant intentions, and emits both
// the relationship/vitality deltas and a follow-on WorldEvent for the
// propagator. Grounded on the teacher's internal/npc/interaction package for
// struct and constant-block shape (stage/outcome naming, cooldown texture),
// though the probability and classification logic here follows spec §4.6
// directly since no 1:1 original_source file covers this engine.
package interaction

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"simcore/internal/npcstate"
	"simcore/internal/relationship"
	"simcore/internal/vecmath"
	"simcore/internal/worldevent"
)

// Outcome classes.
const (
	ClassFriendlyChat   = "friendly_chat"
	ClassConflict       = "conflict"
	ClassIntimidation   = "intimidation"
	ClassAid            = "aid"
	ClassCasualEncounter = "casual_encounter"
)

// classProfile bundles the per-class relationship delta and the vitality
// costs applied to each participant. For the asymmetric classes (aid,
// intimidation) "A" is the initiating/dominant participant in enumeration
// order and "B" the counterpart; Engine.classify resolves which physical NPC
// plays which role before the profile is applied.
type classProfile struct {
	RelationshipDelta float64
	EnergyCostA       float64
	EnergyCostB       float64
	HealthDeltaA      float64
	HealthDeltaB      float64
}

var profiles = map[string]classProfile{
	ClassFriendlyChat: {
		RelationshipDelta: 0.10,
		EnergyCostA:       0.02, EnergyCostB: 0.02,
		HealthDeltaA: 0, HealthDeltaB: 0,
	},
	ClassConflict: {
		RelationshipDelta: -0.15,
		EnergyCostA:       0.03, EnergyCostB: 0.03,
		HealthDeltaA: -0.08, HealthDeltaB: -0.08,
	},
	ClassIntimidation: {
		RelationshipDelta: -0.10,
		EnergyCostA:       0.02, EnergyCostB: 0.04,
		HealthDeltaA: 0, HealthDeltaB: -0.03,
	},
	ClassAid: {
		RelationshipDelta: 0.15,
		EnergyCostA:       0.03, EnergyCostB: 0,
		HealthDeltaA: 0, HealthDeltaB: 0.05,
	},
	ClassCasualEncounter: {
		RelationshipDelta: 0.02,
		EnergyCostA:       0.01, EnergyCostB: 0.01,
		HealthDeltaA: 0, HealthDeltaB: 0,
	},
}

// Outcome is the result of one resolved interaction: both participants, the
// symmetric relationship delta, the per-participant vitality costs (signed,
// added to health/subtracted from energy), and the follow-on event the
// propagator should ingest.
type Outcome struct {
	ParticipantA uuid.UUID
	ParticipantB uuid.UUID
	Class        string

	RelationshipDelta float64
	EnergyCostA       float64
	EnergyCostB       float64
	HealthDeltaA      float64
	HealthDeltaB      float64

	Event worldevent.WorldEvent
}

// Engine holds the configured sampler knobs.
type Engine struct {
	InteractionRate            float64
	MaxInteractionsPerLocation int
	MinEnergyForInteraction    float64
	rng                        *rand.Rand
	cooldown                   *CooldownTracker
}

// New builds an Engine (spec defaults: interactionRate 0.3,
// maxInteractionsPerLocation 10, minEnergyForInteraction 0.1). The returned
// Engine has no cooldown tracking; call WithCooldown to enable it.
func New(interactionRate float64, maxPerLocation int, minEnergy float64, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Engine{
		InteractionRate:            interactionRate,
		MaxInteractionsPerLocation: maxPerLocation,
		MinEnergyForInteraction:    minEnergy,
		rng:                        rng,
	}
}

// WithCooldown attaches a CooldownTracker, returning e for chaining. Passing
// nil disables cooldown suppression.
func (e *Engine) WithCooldown(tracker *CooldownTracker) *Engine {
	e.cooldown = tracker
	return e
}

// eligible reports whether n may participate this tick: not sleeping, and
// energy above the configured minimum.
func (e *Engine) eligible(n *npcstate.NPCVectorialStatus) bool {
	return n.Activity != npcstate.ActivitySleeping && n.Energy > e.MinEnergyForInteraction
}

// probability returns the Bernoulli success probability for the pair: the
// interaction rate times the zero-clamped intention alignment times an
// affinity factor. For an established pair (any stored affinity) the factor
// uses that stored affinity; for strangers (no stored affinity either way)
// it falls back to personality compatibility, per the pinned Open Question
// resolution, so a first encounter is never flatly neutral.
func (e *Engine) probability(a, b *npcstate.NPCVectorialStatus) float64 {
	alignment := vecmath.Dot(a.Intention, b.Intention)
	if alignment < 0 {
		alignment = 0
	}

	affinity := relationship.Affinity(a, b.ID)
	_, hasAffinity := a.Relationships[b.ID]
	if !hasAffinity {
		affinity = relationship.PersonalityCompatibility(a, b)
	}

	affinityFactor := (1 + affinity) / 2
	return vecmath.Clamp01(e.InteractionRate * alignment * affinityFactor)
}

// classify determines the outcome class for the pair and returns it along
// with whether a's role is "A" (initiator/dominant) in the resulting
// classProfile. Ties and symmetric classes (friendly_chat, conflict) are
// role-agnostic.
func classify(a, b *npcstate.NPCVectorialStatus) (class string, aIsRoleA bool) {
	domA, domB := a.DominantIntention(), b.DominantIntention()

	switch {
	case domA == "socialize" && domB == "socialize":
		return ClassFriendlyChat, true
	case domA == "dominate" && domB == "dominate":
		return ClassConflict, true
	case domA == "dominate" && domB == "survive":
		return ClassIntimidation, true
	case domA == "survive" && domB == "dominate":
		return ClassIntimidation, false
	case domA == "nurture" && b.Health < 0.5:
		return ClassAid, true
	case domB == "nurture" && a.Health < 0.5:
		return ClassAid, false
	default:
		return ClassCasualEncounter, true
	}
}

// buildEvent constructs the follow-on WorldEvent for a resolved interaction.
func buildEvent(class string, a, b *npcstate.NPCVectorialStatus, locationID uuid.UUID, now float64) worldevent.WorldEvent {
	return worldevent.WorldEvent{
		ID:            uuid.New(),
		SourceNPCID:   &a.ID,
		EventType:     "interaction_" + class,
		Description:   fmt.Sprintf("%s and %s shared a %s", a.Name, b.Name, class),
		OriginScale:   worldevent.Personal,
		CurrentScale:  worldevent.Personal,
		LocationID:    locationID,
		Timestamp:     now,
		Intensity:     0.2,
		EmotionImpact: make([]float64, npcstate.EmotionDim),
		SocialImpact:  make([]float64, npcstate.SocialInfluenceDim),
	}
}

// Tick groups npcs by location, samples interactions within each location up
// to the configured cap, and returns the resolved outcomes. Each NPC
// participates in at most one outcome this tick; enumeration order within a
// location is the order npcs are given in, and ties resolve first-wins.
func (e *Engine) Tick(npcs []*npcstate.NPCVectorialStatus, now float64) []Outcome {
	byLocation := make(map[uuid.UUID][]*npcstate.NPCVectorialStatus)
	for _, n := range npcs {
		if e.eligible(n) {
			byLocation[n.LocationID] = append(byLocation[n.LocationID], n)
		}
	}

	var outcomes []Outcome
	for locationID, group := range byLocation {
		taken := make(map[uuid.UUID]bool, len(group))
		resolved := 0

		for i := 0; i < len(group) && resolved < e.MaxInteractionsPerLocation; i++ {
			a := group[i]
			if taken[a.ID] {
				continue
			}
			for j := i + 1; j < len(group) && resolved < e.MaxInteractionsPerLocation; j++ {
				b := group[j]
				if taken[b.ID] {
					continue
				}
				if e.cooldown != nil && !e.cooldown.Ready(a, b, now) {
					continue
				}

				p := e.probability(a, b)
				if e.rng.Float64() >= p {
					continue
				}

				class, aIsRoleA := classify(a, b)
				profile := profiles[class]

				outcome := Outcome{
					ParticipantA:      a.ID,
					ParticipantB:      b.ID,
					Class:             class,
					RelationshipDelta: profile.RelationshipDelta,
					Event:             buildEvent(class, a, b, locationID, now),
				}
				if aIsRoleA {
					outcome.EnergyCostA, outcome.EnergyCostB = profile.EnergyCostA, profile.EnergyCostB
					outcome.HealthDeltaA, outcome.HealthDeltaB = profile.HealthDeltaA, profile.HealthDeltaB
				} else {
					outcome.EnergyCostA, outcome.EnergyCostB = profile.EnergyCostB, profile.EnergyCostA
					outcome.HealthDeltaA, outcome.HealthDeltaB = profile.HealthDeltaB, profile.HealthDeltaA
				}

				outcomes = append(outcomes, outcome)
				taken[a.ID] = true
				taken[b.ID] = true
				if e.cooldown != nil {
					e.cooldown.Resolve(a.ID, b.ID, now)
				}
				resolved++
				break
			}
		}
	}

	return outcomes
}
