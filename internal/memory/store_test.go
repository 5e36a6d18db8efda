package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecentOrdersByDescendingTimestamp(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	npc := uuid.New()

	require.NoError(t, s.Store(ctx, Entry{NPCID: npc, Text: "first", GameTimestamp: 1}))
	require.NoError(t, s.Store(ctx, Entry{NPCID: npc, Text: "second", GameTimestamp: 5}))
	require.NoError(t, s.Store(ctx, Entry{NPCID: npc, Text: "third", GameTimestamp: 3}))

	recent, err := s.GetRecent(ctx, npc, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Text)
	assert.Equal(t, "third", recent[1].Text)
}

func TestSearchZeroSafetyOnNearZeroVectors(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	npc := uuid.New()

	require.NoError(t, s.Store(ctx, Entry{NPCID: npc, Text: "zero vec", Embedding: make([]float64, EmbeddingDim)}))
	require.NoError(t, s.Store(ctx, Entry{NPCID: npc, Text: "aligned", Embedding: []float64{1, 0, 0}}))

	results, err := s.Search(ctx, npc, []float64{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "aligned", results[0].Text)
}

func TestPruneKeepsRecentRegardlessOfImportance(t *testing.T) {
	s := NewInMemoryStore()
	npc := uuid.New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Store(ctx, Entry{
			NPCID:         npc,
			Text:          "mem",
			Importance:    0.01,
			GameTimestamp: float64(i),
		}))
	}

	removed := s.Prune(npc, 0.5, 2)
	assert.Equal(t, 3, removed)

	remaining, err := s.GetRecent(ctx, npc, 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestEmptyNPCHasNoMemories(t *testing.T) {
	s := NewInMemoryStore()
	recent, err := s.GetRecent(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
