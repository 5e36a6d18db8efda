// Package npcstate implements the NPC vectorial status model: the five fixed
// vectors, scalar vitality/importance, the sparse relationship map, and the
// bounded recent-memory log every other engine reads and mutates.
package npcstate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"simcore/internal/vecmath"
)

// NPCVectorialStatus is the composite per-NPC state carried through the
// pipeline. Personality is set at creation and never mutated afterward.
type NPCVectorialStatus struct {
	ID          uuid.UUID
	Name        string
	Archetype   string
	Importance  float64

	Intention       []float64
	Emotion         []float64
	Personality     []float64
	SocialInfluence []float64
	Environment     []float64

	Energy float64
	Health float64

	Relationships map[uuid.UUID]float64
	RecentMemories []string
	MaxRecentMemories int

	LocationID uuid.UUID
	Activity   Activity
}

// New constructs an NPC with the initial state spec §4.2 prescribes: uniform
// intention, zero emotion and social influence, and personality set from
// personality (or uniform 1/5 when nil).
func New(name, archetype string, personality []float64, maxRecentMemories int) *NPCVectorialStatus {
	p := personality
	if p == nil {
		p = vecmath.Uniform(PersonalityDim)
	} else {
		p = vecmath.Copy(p)
		vecmath.Clamp01Vec(p)
	}

	if maxRecentMemories <= 0 {
		maxRecentMemories = 10
	}

	return &NPCVectorialStatus{
		ID:                uuid.New(),
		Name:              name,
		Archetype:         archetype,
		Importance:        0.5,
		Intention:         vecmath.Uniform(IntentionDim),
		Emotion:           make([]float64, EmotionDim),
		Personality:       p,
		SocialInfluence:   make([]float64, SocialInfluenceDim),
		Environment:       make([]float64, EnvironmentDim),
		Energy:            1.0,
		Health:            1.0,
		Relationships:     make(map[uuid.UUID]float64),
		RecentMemories:    nil,
		MaxRecentMemories: maxRecentMemories,
		Activity:          ActivityIdle,
	}
}

// DominantIntention returns the label of the largest-value intention coordinate.
func (n *NPCVectorialStatus) DominantIntention() string {
	return IntentionLabels[vecmath.ArgMax(n.Intention)]
}

// DominantEmotion returns the label of the largest-value emotion coordinate.
func (n *NPCVectorialStatus) DominantEmotion() string {
	return EmotionLabels[vecmath.ArgMax(n.Emotion)]
}

// AppendMemory appends text to the recent-memory log, trimming to the cap.
func (n *NPCVectorialStatus) AppendMemory(text string) {
	if text == "" {
		return
	}
	n.RecentMemories = append(n.RecentMemories, text)
	if len(n.RecentMemories) > n.MaxRecentMemories {
		n.RecentMemories = n.RecentMemories[len(n.RecentMemories)-n.MaxRecentMemories:]
	}
}

type labeledValue struct {
	label string
	value float64
}

func topN(labels []string, values []float64, n int) []labeledValue {
	lv := make([]labeledValue, len(values))
	for i, v := range values {
		lv[i] = labeledValue{label: labels[i], value: v}
	}
	sort.Slice(lv, func(i, j int) bool { return lv[i].value > lv[j].value })
	if n > len(lv) {
		n = len(lv)
	}
	return lv[:n]
}

// ToCharacterSheet renders the prompt context consumed by the cloud dialogue
// tier: name/archetype, top-3 intention/emotion/personality labels, vitality,
// and up to the last five memories.
func (n *NPCVectorialStatus) ToCharacterSheet() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", n.Name, n.Archetype)

	fmt.Fprint(&b, "Intentions: ")
	writeTop(&b, topN(IntentionLabels[:], n.Intention, 3))
	b.WriteByte('\n')

	fmt.Fprint(&b, "Emotions: ")
	writeTopLabelsOnly(&b, topN(EmotionLabels[:], n.Emotion, 3))
	b.WriteByte('\n')

	fmt.Fprint(&b, "Personality: ")
	writeTopLabelsOnly(&b, topN(PersonalityLabels[:], n.Personality, 3))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Energy: %.2f, Health: %.2f\n", n.Energy, n.Health)

	b.WriteString("Recent memories:\n")
	memories := n.RecentMemories
	if len(memories) > 5 {
		memories = memories[len(memories)-5:]
	}
	if len(memories) == 0 {
		b.WriteString("  (no memories yet)\n")
	} else {
		for _, m := range memories {
			fmt.Fprintf(&b, "  - %s\n", m)
		}
	}

	return b.String()
}

func writeTop(b *strings.Builder, items []labeledValue) {
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s (%.2f)", it.label, it.value)
	}
}

func writeTopLabelsOnly(b *strings.Builder, items []labeledValue) {
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.label)
	}
}

// Clone returns a deep copy of n, safe to hand to a caller outside the
// manager's exclusive acquisition.
func (n *NPCVectorialStatus) Clone() *NPCVectorialStatus {
	cp := *n
	cp.Intention = vecmath.Copy(n.Intention)
	cp.Emotion = vecmath.Copy(n.Emotion)
	cp.Personality = vecmath.Copy(n.Personality)
	cp.SocialInfluence = vecmath.Copy(n.SocialInfluence)
	cp.Environment = vecmath.Copy(n.Environment)

	cp.Relationships = make(map[uuid.UUID]float64, len(n.Relationships))
	for k, v := range n.Relationships {
		cp.Relationships[k] = v
	}

	cp.RecentMemories = append([]string(nil), n.RecentMemories...)
	return &cp
}
