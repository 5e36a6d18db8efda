// Package memory implements the per-NPC memory log: an append-only entry
// store with recency retrieval and a similarity search that is a pure
// function of whatever embedding vector is supplied (a zero vector stub
// while no embedding model is wired, per spec §1 Non-goals). Grounded on the
// teacher's internal/npc/memory Repository/Mock pattern for the interface
// shape, adapted from per-field CRUD to the three operations spec §4.13
// names.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"simcore/internal/vecmath"
)

// EmbeddingDim is the fixed length of a memory's embedding vector. No
// embedding model is wired in this core; callers either pass a zero vector
// or one computed by an external collaborator.
const EmbeddingDim = 16

// cosineSimilarityEpsilon is the zero-safety threshold below which a
// near-zero-norm vector is treated as producing similarity 0 rather than
// NaN/Inf.
const cosineSimilarityEpsilon = 1e-8

// Entry is one memory record: an owning NPC, the event text, its embedding,
// importance/valence, and the game-time and location it occurred at. Entries
// are never mutated once stored; the only removal is InMemoryStore.Prune,
// which the optional RetentionJob runs.
type Entry struct {
	ID               uuid.UUID
	NPCID            uuid.UUID
	Text             string
	Embedding        []float64
	Importance       float64
	EmotionalValence float64
	GameTimestamp    float64
	LocationID       uuid.UUID
}

// Store is the capability interface every memory backend implements: append,
// similarity search, and recency retrieval. The in-memory implementation
// below is the only variant this core ships; a future vector-db-backed
// implementation is a tagged variant of the same interface (spec §9).
type Store interface {
	Store(ctx context.Context, e Entry) error
	Search(ctx context.Context, npcID uuid.UUID, queryEmbedding []float64, limit int) ([]Entry, error)
	GetRecent(ctx context.Context, npcID uuid.UUID, limit int) ([]Entry, error)
}

// InMemoryStore keeps a per-NPC list of entries, appended to by Store and
// trimmed only by Prune.
type InMemoryStore struct {
	mu    sync.RWMutex
	byNPC map[uuid.UUID][]Entry
}

// NewInMemoryStore returns an empty InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byNPC: make(map[uuid.UUID][]Entry)}
}

// Store appends e, assigning an id if it doesn't have one.
func (s *InMemoryStore) Store(_ context.Context, e Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byNPC[e.NPCID] = append(s.byNPC[e.NPCID], e)
	return nil
}

// Search ranks npcID's entries by cosine similarity to queryEmbedding,
// applying the zero-safety rule: an entry or query vector with near-zero
// norm scores 0 rather than NaN. Returns at most limit entries, most similar
// first.
func (s *InMemoryStore) Search(_ context.Context, npcID uuid.UUID, queryEmbedding []float64, limit int) ([]Entry, error) {
	s.mu.RLock()
	entries := append([]Entry(nil), s.byNPC[npcID]...)
	s.mu.RUnlock()

	type scored struct {
		entry Entry
		score float64
	}
	ranked := make([]scored, len(entries))
	for i, e := range entries {
		ranked[i] = scored{entry: e, score: vecmath.CosineSimilarity(e.Embedding, queryEmbedding, cosineSimilarityEpsilon)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]Entry, len(ranked))
	for i, r := range ranked {
		out[i] = r.entry
	}
	return out, nil
}

// GetRecent returns npcID's entries sorted by descending game timestamp, at
// most limit of them.
func (s *InMemoryStore) GetRecent(_ context.Context, npcID uuid.UUID, limit int) ([]Entry, error) {
	s.mu.RLock()
	entries := append([]Entry(nil), s.byNPC[npcID]...)
	s.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].GameTimestamp > entries[j].GameTimestamp })

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Count returns the total number of stored entries across every NPC.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, es := range s.byNPC {
		n += len(es)
	}
	return n
}

// Prune removes every entry for npcID below minImportance, keeping at least
// keepRecent of the most recent ones regardless of importance. Mirrors the
// teacher's retention-score maintenance pass, simplified to the fields this
// core's Entry actually carries (importance, not a rehearsal/access-count
// model, since the core never re-reads a memory's access history).
func (s *InMemoryStore) Prune(npcID uuid.UUID, minImportance float64, keepRecent int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byNPC[npcID]
	if len(entries) <= keepRecent {
		return 0
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].GameTimestamp > entries[j].GameTimestamp })
	kept := append([]Entry(nil), entries[:keepRecent]...)
	removed := 0
	for _, e := range entries[keepRecent:] {
		if e.Importance >= minImportance {
			kept = append(kept, e)
		} else {
			removed++
		}
	}
	s.byNPC[npcID] = kept
	return removed
}

// RetentionJob periodically prunes low-importance memories across every NPC
// the store knows about, using robfig/cron/v3, the same scheduling library
// the teacher's memory package wires its retention job through.
type RetentionJob struct {
	store         *InMemoryStore
	minImportance float64
	keepRecent    int
	npcIDs        func() []uuid.UUID

	cron *cron.Cron
}

// NewRetentionJob builds a RetentionJob. npcIDs supplies the current NPC
// roster at sweep time (the manager's registry listing), so the job never
// holds its own stale copy.
func NewRetentionJob(store *InMemoryStore, minImportance float64, keepRecent int, npcIDs func() []uuid.UUID) *RetentionJob {
	return &RetentionJob{
		store:         store,
		minImportance: minImportance,
		keepRecent:    keepRecent,
		npcIDs:        npcIDs,
		cron:          cron.New(),
	}
}

// Start schedules the sweep on spec (a standard cron expression, e.g. hourly
// "@hourly") and begins running it in the background.
func (j *RetentionJob) Start(spec string) error {
	_, err := j.cron.AddFunc(spec, j.sweep)
	if err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts the background sweep and waits for any in-flight run to finish.
func (j *RetentionJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *RetentionJob) sweep() {
	for _, id := range j.npcIDs() {
		j.store.Prune(id, j.minImportance, j.keepRecent)
	}
}
