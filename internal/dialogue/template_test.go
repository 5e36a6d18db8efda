package dialogue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReturnsKnownCandidate(t *testing.T) {
	e := NewTemplateEngine(rand.New(rand.NewSource(1)))
	line := e.Generate("socialize", "joy")
	assert.Contains(t, templates[templateKey{"socialize", "joy"}], line)
}

func TestGenerateFallsBackForUnknownPair(t *testing.T) {
	e := NewTemplateEngine(rand.New(rand.NewSource(1)))
	line := e.Generate("create", "disgust")
	assert.Contains(t, genericFallback, line)
}

func TestRegisterTemplatesOverridesPool(t *testing.T) {
	RegisterTemplates("achieve", "joy", []string{"custom line"})
	e := NewTemplateEngine(rand.New(rand.NewSource(1)))
	assert.Equal(t, "custom line", e.Generate("achieve", "joy"))
}
