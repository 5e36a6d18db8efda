package world

import (
	"github.com/google/uuid"

	"simcore/internal/eventqueue"
	"simcore/internal/locationgraph"
	"simcore/internal/npcstate"
	"simcore/internal/propagation"
	"simcore/internal/simerrors"
)

// NPCSnapshot is the serialised form of one NPC, per spec §7: vectors as
// finite-length float64 sequences, plus relationships, memories, location,
// and activity.
type NPCSnapshot struct {
	ID         uuid.UUID
	Name       string
	Archetype  string
	Importance float64

	Intention       []float64
	Emotion         []float64
	Personality     []float64
	SocialInfluence []float64
	Environment     []float64

	Energy float64
	Health float64

	Relationships     map[uuid.UUID]float64
	RecentMemories    []string
	MaxRecentMemories int

	LocationID uuid.UUID
	Activity   npcstate.Activity
}

// EdgeSnapshot is the serialised form of one directed location edge.
type EdgeSnapshot struct {
	FromID      uuid.UUID
	TargetID    uuid.UUID
	TravelHours float64
	Danger      float64
}

// LocationSnapshot is the serialised form of one location, without its
// outbound edges (those are carried separately in WorldSnapshot.Edges).
type LocationSnapshot struct {
	ID          uuid.UUID
	Name        string
	Type        locationgraph.LocationType
	Environment []float64
	Capacity    int
}

// WorldSnapshot is the full serialised world state spec §7 describes:
// game time, every NPC, and the location graph.
type WorldSnapshot struct {
	GameTime  float64
	NPCs      map[uuid.UUID]NPCSnapshot
	Locations map[uuid.UUID]LocationSnapshot
	Edges     []EdgeSnapshot
}

func snapshotNPC(n *npcstate.NPCVectorialStatus) NPCSnapshot {
	rel := make(map[uuid.UUID]float64, len(n.Relationships))
	for k, v := range n.Relationships {
		rel[k] = v
	}
	return NPCSnapshot{
		ID:                n.ID,
		Name:              n.Name,
		Archetype:         n.Archetype,
		Importance:        n.Importance,
		Intention:         append([]float64(nil), n.Intention...),
		Emotion:           append([]float64(nil), n.Emotion...),
		Personality:       append([]float64(nil), n.Personality...),
		SocialInfluence:   append([]float64(nil), n.SocialInfluence...),
		Environment:       append([]float64(nil), n.Environment...),
		Energy:            n.Energy,
		Health:            n.Health,
		Relationships:     rel,
		RecentMemories:    append([]string(nil), n.RecentMemories...),
		MaxRecentMemories: n.MaxRecentMemories,
		LocationID:        n.LocationID,
		Activity:          n.Activity,
	}
}

func restoreNPC(s NPCSnapshot) *npcstate.NPCVectorialStatus {
	rel := make(map[uuid.UUID]float64, len(s.Relationships))
	for k, v := range s.Relationships {
		rel[k] = v
	}
	return &npcstate.NPCVectorialStatus{
		ID:                s.ID,
		Name:              s.Name,
		Archetype:         s.Archetype,
		Importance:        s.Importance,
		Intention:         append([]float64(nil), s.Intention...),
		Emotion:           append([]float64(nil), s.Emotion...),
		Personality:       append([]float64(nil), s.Personality...),
		SocialInfluence:   append([]float64(nil), s.SocialInfluence...),
		Environment:       append([]float64(nil), s.Environment...),
		Energy:            s.Energy,
		Health:            s.Health,
		Relationships:     rel,
		RecentMemories:    append([]string(nil), s.RecentMemories...),
		MaxRecentMemories: s.MaxRecentMemories,
		LocationID:        s.LocationID,
		Activity:          s.Activity,
	}
}

// validateNPCSnapshot checks that every vector in s has the dimension its
// label declares, returning DimensionMismatch on the first violation.
func validateNPCSnapshot(s NPCSnapshot) error {
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"intention", len(s.Intention), npcstate.IntentionDim},
		{"emotion", len(s.Emotion), npcstate.EmotionDim},
		{"personality", len(s.Personality), npcstate.PersonalityDim},
		{"social_influence", len(s.SocialInfluence), npcstate.SocialInfluenceDim},
		{"environment", len(s.Environment), npcstate.EnvironmentDim},
	}
	for _, c := range checks {
		if c.got != c.want {
			return simerrors.DimensionMismatch(
				"npc " + s.ID.String() + ": " + c.name + " has wrong dimension",
			)
		}
	}
	return nil
}

// Snapshot captures the full world state: game time, every NPC, and the
// location graph. The returned value is independent of the manager's
// internal storage and safe to retain.
func (m *Manager) Snapshot() WorldSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	npcs := make(map[uuid.UUID]NPCSnapshot, len(m.npcs))
	for id, n := range m.npcs {
		npcs[id] = snapshotNPC(n)
	}

	locs := m.graph.ListLocations()
	locations := make(map[uuid.UUID]LocationSnapshot, len(locs))
	var edges []EdgeSnapshot
	for _, loc := range locs {
		locations[loc.ID] = LocationSnapshot{
			ID:          loc.ID,
			Name:        loc.Name,
			Type:        loc.Type,
			Environment: append([]float64(nil), loc.Environment...),
			Capacity:    loc.Capacity,
		}
		for _, e := range m.graph.GetNeighbors(loc.ID) {
			edges = append(edges, EdgeSnapshot{
				FromID:      loc.ID,
				TargetID:    e.TargetID,
				TravelHours: e.TravelHours,
				Danger:      e.Danger,
			})
		}
	}

	return WorldSnapshot{
		GameTime:  m.clock,
		NPCs:      npcs,
		Locations: locations,
		Edges:     edges,
	}
}

// Restore validates snap, then atomically replaces the registry, clock, and
// graph, and resets the event queue and propagator to empty, per spec §7.
// On any validation failure the manager is left untouched.
func (m *Manager) Restore(snap WorldSnapshot) error {
	if snap.NPCs == nil || snap.Locations == nil {
		return simerrors.InvalidSnapshot("snapshot missing npcs or locations")
	}

	for _, s := range snap.NPCs {
		if err := validateNPCSnapshot(s); err != nil {
			return err
		}
	}

	graph := locationgraph.NewGraph()
	for _, ls := range snap.Locations {
		if len(ls.Environment) != npcstate.EnvironmentDim {
			return simerrors.DimensionMismatch("location " + ls.ID.String() + ": environment has wrong dimension")
		}
		if err := graph.AddLocation(&locationgraph.Location{
			ID:          ls.ID,
			Name:        ls.Name,
			Type:        ls.Type,
			Environment: append([]float64(nil), ls.Environment...),
			Capacity:    ls.Capacity,
		}); err != nil {
			return simerrors.InvalidSnapshot("duplicate location id in snapshot: " + err.Error())
		}
	}
	for _, es := range snap.Edges {
		if err := graph.AddEdge(es.FromID, es.TargetID, es.TravelHours, es.Danger, false); err != nil {
			return simerrors.InvalidSnapshot("edge references unknown location: " + err.Error())
		}
	}

	npcs := make(map[uuid.UUID]*npcstate.NPCVectorialStatus, len(snap.NPCs))
	for id, s := range snap.NPCs {
		npcs[id] = restoreNPC(s)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	newQueue := eventqueue.New()

	m.npcs = npcs
	m.clock = snap.GameTime
	m.graph = graph
	m.queue = newQueue
	m.prop = propagation.New(newQueue)
	m.movementEngine.Graph = graph
	m.movementEngine.Reset()
	m.environmentEngine.Graph = graph
	m.metrics.SetNPCCount(len(m.npcs))

	return nil
}
