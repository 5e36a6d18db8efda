package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simcore/internal/npcstate"
)

func TestCooldownTrackerReadyForFreshPair(t *testing.T) {
	ct := NewCooldownTracker()
	a := npcstate.New("Ada", "scholar", nil, 10)
	b := npcstate.New("Bo", "merchant", nil, 10)
	assert.True(t, ct.Ready(a, b, 0))
}

func TestCooldownTrackerBlocksImmediateRematch(t *testing.T) {
	ct := NewCooldownTracker()
	a := npcstate.New("Ada", "scholar", nil, 10)
	b := npcstate.New("Bo", "merchant", nil, 10)
	ct.Resolve(a.ID, b.ID, 10)
	assert.False(t, ct.Ready(a, b, 10.1))
}

func TestCooldownTrackerClearsAfterDuration(t *testing.T) {
	ct := NewCooldownTracker()
	a := npcstate.New("Ada", "scholar", nil, 10)
	b := npcstate.New("Bo", "merchant", nil, 10)
	ct.Resolve(a.ID, b.ID, 10)
	assert.True(t, ct.Ready(a, b, 20))
}
