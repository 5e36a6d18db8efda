package vitality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simcore/internal/npcstate"
	"simcore/internal/worldevent"
)

func newEngine() *Engine {
	return New(0.01, 0.03, 0.005, 0.02, 0.3, 0.5)
}

func TestAttackEventReducesHealth(t *testing.T) {
	n := npcstate.New("Guard", "guard", nil, 10)
	n.Health = 0.8
	e := newEngine()

	e.ApplyEvent(n, worldevent.WorldEvent{EventType: "attack_bandit", Intensity: 1.0})

	assert.Less(t, n.Health, 0.8)
}

func TestHealthRegeneratesInSafeEnvironment(t *testing.T) {
	n := npcstate.New("Guard", "guard", nil, 10)
	n.Health = 0.7
	n.Environment = []float64{0.9, 0.5, 0.5, 0.1}
	e := newEngine()

	e.UpdateNPC(n)

	assert.Greater(t, n.Health, 0.7)
}

func TestEnergyCappedWhenHealthLow(t *testing.T) {
	n := npcstate.New("Guard", "guard", nil, 10)
	n.Health = 0.25
	n.Energy = 1.0
	e := newEngine()

	e.applyCap(n)

	assert.LessOrEqual(t, n.Energy, n.Health/0.5)
}

func TestUnknownEventTypeHasNoEffect(t *testing.T) {
	n := npcstate.New("Guard", "guard", nil, 10)
	before := n.Health
	e := newEngine()

	e.ApplyEvent(n, worldevent.WorldEvent{EventType: "unknown_thing", Intensity: 1.0})

	assert.Equal(t, before, n.Health)
}
