package interaction

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcore/internal/npcstate"
)

func twoSocializers(loc string) (*npcstate.NPCVectorialStatus, *npcstate.NPCVectorialStatus) {
	a := npcstate.New("Ann", "merchant", nil, 10)
	b := npcstate.New("Bo", "merchant", nil, 10)
	a.Intention = []float64{0, 1, 0, 0, 0, 0, 0, 0}
	b.Intention = []float64{0, 1, 0, 0, 0, 0, 0, 0}
	a.Energy, b.Energy = 1.0, 1.0
	return a, b
}

func TestFriendlyChatBetweenSocializers(t *testing.T) {
	a, b := twoSocializers("tavern")
	a.LocationID, b.LocationID = a.ID, a.ID // same location

	e := New(1.0, 5, 0.1, rand.New(rand.NewSource(1)))
	outcomes := e.Tick([]*npcstate.NPCVectorialStatus{a, b}, 1.0)

	require.Len(t, outcomes, 1)
	assert.Equal(t, ClassFriendlyChat, outcomes[0].Class)
	assert.Greater(t, outcomes[0].RelationshipDelta, 0.0)
	assert.Equal(t, 1.0, outcomes[0].Event.Timestamp)
}

func TestSleepingNPCNeverParticipates(t *testing.T) {
	a, b := twoSocializers("tavern")
	a.LocationID, b.LocationID = a.ID, a.ID
	a.Activity = npcstate.ActivitySleeping

	e := New(1.0, 5, 0.1, rand.New(rand.NewSource(1)))
	outcomes := e.Tick([]*npcstate.NPCVectorialStatus{a, b}, 1.0)

	assert.Empty(t, outcomes)
}

func TestEachNPCAtMostOneOutcomePerTick(t *testing.T) {
	loc := npcstate.New("loc", "generic", nil, 10).ID
	a := npcstate.New("A", "merchant", nil, 10)
	b := npcstate.New("B", "merchant", nil, 10)
	c := npcstate.New("C", "merchant", nil, 10)
	for _, n := range []*npcstate.NPCVectorialStatus{a, b, c} {
		n.LocationID = loc
		n.Energy = 1.0
		n.Intention = []float64{0, 1, 0, 0, 0, 0, 0, 0}
	}

	e := New(1.0, 5, 0.1, rand.New(rand.NewSource(1)))
	outcomes := e.Tick([]*npcstate.NPCVectorialStatus{a, b, c}, 0)

	seen := make(map[uint64]int)
	for _, o := range outcomes {
		seen[hashPair(o.ParticipantA)]++
		seen[hashPair(o.ParticipantB)]++
	}
	for _, count := range seen {
		assert.LessOrEqual(t, count, 1)
	}
}

func hashPair(id interface{ String() string }) uint64 {
	var h uint64
	for _, r := range id.String() {
		h = h*31 + uint64(r)
	}
	return h
}

func TestConflictBetweenDominators(t *testing.T) {
	loc := npcstate.New("loc", "generic", nil, 10).ID
	a := npcstate.New("A", "noble", nil, 10)
	b := npcstate.New("B", "noble", nil, 10)
	a.LocationID, b.LocationID = loc, loc
	a.Energy, b.Energy = 1.0, 1.0
	a.Intention = []float64{0, 0, 0, 0, 0, 1, 0, 0}
	b.Intention = []float64{0, 0, 0, 0, 0, 1, 0, 0}

	e := New(1.0, 5, 0.1, rand.New(rand.NewSource(1)))
	outcomes := e.Tick([]*npcstate.NPCVectorialStatus{a, b}, 0)

	require.Len(t, outcomes, 1)
	assert.Equal(t, ClassConflict, outcomes[0].Class)
	assert.Less(t, outcomes[0].RelationshipDelta, 0.0)
}

func TestCapLimitsResolvedInteractionsPerLocation(t *testing.T) {
	loc := npcstate.New("loc", "generic", nil, 10).ID
	var npcs []*npcstate.NPCVectorialStatus
	for i := 0; i < 8; i++ {
		n := npcstate.New("N", "merchant", nil, 10)
		n.LocationID = loc
		n.Energy = 1.0
		n.Intention = []float64{0, 1, 0, 0, 0, 0, 0, 0}
		npcs = append(npcs, n)
	}

	e := New(1.0, 2, 0.1, rand.New(rand.NewSource(1)))
	outcomes := e.Tick(npcs, 0)

	assert.LessOrEqual(t, len(outcomes), 2)
}
