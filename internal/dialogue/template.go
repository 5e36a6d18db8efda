package dialogue

import (
	"math/rand"
)

// templateKey pairs a dominant intention label with a dominant emotion label.
type templateKey struct {
	Intention string
	Emotion   string
}

// templates is the fixed (dominant_intention, dominant_emotion) lookup.
// Entries are illustrative lines a template-tier NPC might say; callers
// needing richer variety register additional keys via RegisterTemplates.
var templates = map[templateKey][]string{
	{"socialize", "joy"}:         {"Good to see a friendly face!", "Come, sit, tell me everything."},
	{"socialize", "trust"}:       {"I'm glad you're here.", "You always know how to find me."},
	{"survive", "fear"}:          {"Something's not right here...", "We should be careful."},
	{"survive", "anticipation"}:  {"I can feel trouble coming.", "Stay alert."},
	{"achieve", "anticipation"}:  {"There's work to be done.", "I won't rest until this is finished."},
	{"dominate", "anger"}:        {"You dare stand in my way?", "Step aside, now."},
	{"dominate", "trust"}:        {"Follow my lead and you'll be fine.", "Do as I say."},
	{"explore", "surprise"}:      {"Now that's something you don't see every day.", "Curious... let's have a closer look."},
	{"explore", "joy"}:           {"There's always more to discover out there.", "I love a bit of mystery."},
	{"create", "joy"}:            {"I've been working on something new.", "Come see what I've made."},
	{"nurture", "trust"}:         {"Let me help you with that.", "You can lean on me."},
	{"nurture", "sadness"}:       {"I wish I could do more for you.", "It pains me to see you struggling."},
	{"escape", "fear"}:           {"I need to get out of here.", "Please, just let me go."},
	{"escape", "anticipation"}:   {"I won't wait around for trouble.", "Time to move on."},
}

// genericFallback is used when no (intention, emotion) key matches.
var genericFallback = []string{
	"...",
	"Hmm.",
	"Nothing much to say right now.",
	"*nods*",
}

// TemplateEngine is a pure function of an NPC's current state: it never
// reads memory, relationships, or anything beyond the two dominant labels
// it's given.
type TemplateEngine struct {
	rng *rand.Rand
}

// NewTemplateEngine builds a TemplateEngine. A nil rng is replaced by a new
// source seeded with 1.
func NewTemplateEngine(rng *rand.Rand) *TemplateEngine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &TemplateEngine{rng: rng}
}

// Generate returns a line for the given dominant intention/emotion pair,
// picked uniformly at random among the matching candidates, falling back to
// a small generic pool when the pair isn't in the table.
func (t *TemplateEngine) Generate(dominantIntention, dominantEmotion string) string {
	candidates, ok := templates[templateKey{Intention: dominantIntention, Emotion: dominantEmotion}]
	if !ok || len(candidates) == 0 {
		candidates = genericFallback
	}
	return candidates[t.rng.Intn(len(candidates))]
}

// RegisterTemplates adds or overrides the candidate pool for one
// (intention, emotion) key, for callers wiring in setting-specific flavor
// text without forking the package.
func RegisterTemplates(intention, emotion string, lines []string) {
	templates[templateKey{Intention: intention, Emotion: emotion}] = append([]string(nil), lines...)
}
