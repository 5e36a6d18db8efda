// Package world implements the World State Manager: the sole mutator of the
// NPC registry, event queue, location graph, and game clock, and the owner
// of the twelve-stage per-tick simulation pipeline. Grounded on the Python
// original's app/world/world_state.py (the richer, movement/social/vitality
// variant spec §9 pins as authoritative over the simpler one) for the
// pipeline's exact stage order, and on the teacher's internal/world/registry.go
// for the RWMutex-guarded-registry-with-defensive-copies idiom and its
// zerolog chained-field logging style.
package world

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"simcore/internal/dialogue"
	"simcore/internal/emotion"
	"simcore/internal/environment"
	"simcore/internal/eventqueue"
	"simcore/internal/interaction"
	"simcore/internal/intention"
	"simcore/internal/locationgraph"
	"simcore/internal/memory"
	"simcore/internal/movement"
	"simcore/internal/npcstate"
	"simcore/internal/propagation"
	"simcore/internal/relationship"
	"simcore/internal/schedule"
	"simcore/internal/simconfig"
	"simcore/internal/simerrors"
	"simcore/internal/simmetrics"
	"simcore/internal/social"
	"simcore/internal/vitality"
	"simcore/internal/worldevent"
)

// TickResult summarises one call to Tick.
type TickResult struct {
	GameTime             float64
	NPCsTouched          int
	EventsDelivered      int
	EventsPending        int
	InteractionsResolved int
	Departed             int
}

// Manager owns every piece of mutable world state and serialises all
// mutation — both ticks and NPC CRUD outside a tick — behind a single
// exclusive mutex, per spec §5.
type Manager struct {
	mu sync.Mutex

	cfg    *simconfig.Config
	clock  float64
	npcs   map[uuid.UUID]*npcstate.NPCVectorialStatus
	graph  *locationgraph.Graph
	queue  *eventqueue.Queue
	prop   *propagation.Propagator
	memory memory.Store

	emotionEngine      *emotion.Engine
	intentionEngine    *intention.Engine
	interactionEngine  *interaction.Engine
	relationshipEngine *relationship.Engine
	movementEngine     *movement.Engine
	environmentEngine  *environment.Engine
	vitalityEngine     *vitality.Engine
	socialEngine       *social.Engine
	scheduleEngine     *schedule.Engine

	templateEngine *dialogue.TemplateEngine

	logger  zerolog.Logger
	metrics *simmetrics.Recorder
}

// NewManager builds a Manager wired from cfg (simconfig.Default() when nil)
// over graph (a new empty graph when nil) and store (an in-memory store when
// nil). logger and metrics may be zero values; a disconnected Recorder is
// created automatically when metrics is nil.
func NewManager(cfg *simconfig.Config, graph *locationgraph.Graph, store memory.Store, logger zerolog.Logger, metrics *simmetrics.Recorder) *Manager {
	if cfg == nil {
		cfg = simconfig.Default()
	}
	if graph == nil {
		graph = locationgraph.NewGraph()
	}
	if store == nil {
		store = memory.NewInMemoryStore()
	}
	if metrics == nil {
		metrics = simmetrics.NewRecorder()
	}

	queue := eventqueue.New()

	return &Manager{
		cfg:    cfg,
		clock:  cfg.InitialGameTime,
		npcs:   make(map[uuid.UUID]*npcstate.NPCVectorialStatus),
		graph:  graph,
		queue:  queue,
		prop:   propagation.New(queue),
		memory: store,

		emotionEngine:      emotion.New(cfg.EmotionDecayRate, cfg.EventImpactScale),
		intentionEngine:    intention.New(),
		interactionEngine:  interaction.New(cfg.InteractionRate, cfg.MaxInteractionsPerLocation, cfg.MinEnergyForInteraction, nil).WithCooldown(interaction.NewCooldownTracker()),
		relationshipEngine: relationship.New(cfg.RelationshipDecayRate, cfg.RelationshipDeltaScale),
		movementEngine:     movement.New(graph, cfg.MoveProbabilityBase, cfg.TravelEnergyPerHour, nil),
		environmentEngine:  environment.New(graph, cfg.EnvironmentBlendRate),
		vitalityEngine: vitality.New(
			cfg.EnergyDrainPerTick, cfg.EnergyRegenBase, cfg.HealthRegenRate,
			cfg.DangerHealthDrain, cfg.DangerSafetyThreshold, cfg.HealthEnergyCapThreshold,
		),
		socialEngine:   social.New(cfg.SocialBlendRate, cfg.SocialDecayRate, cfg.SocialEventScale),
		scheduleEngine: schedule.New(),
		templateEngine: dialogue.NewTemplateEngine(nil),

		logger:  logger,
		metrics: metrics,
	}
}

// Graph returns the manager's location graph, for setup-time population
// (adding locations/edges) before the simulation starts.
func (m *Manager) Graph() *locationgraph.Graph {
	return m.graph
}

// GameTime returns the current game clock.
func (m *Manager) GameTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clock
}

// AddNPC registers n. Returns CapacityExceeded when the registry is already
// at cfg.MaxNPCs, or DuplicateId when n.ID is already present.
func (m *Manager) AddNPC(n *npcstate.NPCVectorialStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.npcs) >= m.cfg.MaxNPCs {
		return simerrors.CapacityExceeded(fmt.Sprintf("registry at capacity (%d)", m.cfg.MaxNPCs))
	}
	if _, exists := m.npcs[n.ID]; exists {
		return simerrors.DuplicateID("npc id already registered")
	}

	m.npcs[n.ID] = n
	m.metrics.SetNPCCount(len(m.npcs))
	m.logger.Debug().Str("npc_id", n.ID.String()).Str("name", n.Name).Msg("npc registered")
	return nil
}

// GetNPC returns a defensive copy of the NPC with the given id.
func (m *Manager) GetNPC(id uuid.UUID) (*npcstate.NPCVectorialStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.npcs[id]
	if !ok {
		return nil, simerrors.NotFound("npc not found")
	}
	return n.Clone(), nil
}

// ListNPCs returns defensive copies of every registered NPC.
func (m *Manager) ListNPCs() []*npcstate.NPCVectorialStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*npcstate.NPCVectorialStatus, 0, len(m.npcs))
	for _, n := range m.npcs {
		out = append(out, n.Clone())
	}
	return out
}

// RemoveNPC deletes the NPC with the given id. Returns NotFound if absent.
func (m *Manager) RemoveNPC(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.npcs[id]; !ok {
		return simerrors.NotFound("npc not found")
	}
	delete(m.npcs, id)
	m.metrics.SetNPCCount(len(m.npcs))
	return nil
}

// SubmitEvent stamps e's timestamp to the current game time if it is zero,
// then hands it to the propagator. Returns the number of deliveries
// scheduled, including the original. Submitting an event never fails, even
// for an unknown locality — the cascade simply stops (spec §7).
func (m *Manager) SubmitEvent(e worldevent.WorldEvent) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.Timestamp == 0 {
		e.Timestamp = m.clock
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return m.prop.Submit(e)
}

// npcSlice returns the registry's NPCs as a slice, for engines that operate
// batch-wise. Callers must already hold m.mu.
func (m *Manager) npcSlice() []*npcstate.NPCVectorialStatus {
	out := make([]*npcstate.NPCVectorialStatus, 0, len(m.npcs))
	for _, n := range m.npcs {
		out = append(out, n)
	}
	return out
}

// Tick advances the game clock by deltaHours and runs the full twelve-stage
// pipeline under the manager's exclusive mutex. When the NPC set is empty,
// stages 3-12 are skipped (events popped in stage 2 are discarded) and a
// zero-valued TickResult (aside from GameTime) is returned.
func (m *Manager) Tick(ctx context.Context, deltaHours float64) TickResult {
	start := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	// Stage 1: advance the clock.
	m.clock += deltaHours

	npcs := m.npcSlice()

	// Schedule/activity resolution is not separately numbered in the
	// pipeline but must run before stage 6 can tell which NPCs are awake;
	// it depends only on the freshly advanced clock and each NPC's energy
	// from the end of the previous tick, so it is safe to run here.
	m.scheduleEngine.Tick(npcs, m.clock)

	result := TickResult{GameTime: m.clock, NPCsTouched: len(npcs)}

	// Stage 2: pop all due events.
	due := m.queue.PopDue(m.clock)

	if len(npcs) == 0 {
		m.logger.Debug().Float64("game_time", m.clock).Msg("tick with no NPCs")
		return result
	}

	result.EventsDelivered = len(due)

	// Stage 3: apply each due event's impacts to every NPC, in order
	// emotion -> vitality -> social, then append a memory if described.
	for _, sched := range due {
		ev := sched.Event
		for _, n := range npcs {
			m.emotionEngine.ApplyEvent(n, ev)
			m.vitalityEngine.ApplyEvent(n, ev)
			m.socialEngine.ApplyEvent(n, ev.SocialImpact, ev.Intensity)
			if ev.Description != "" {
				n.AppendMemory(ev.Description)
				_ = m.memory.Store(ctx, memory.Entry{
					NPCID:         n.ID,
					Text:          ev.Description,
					Embedding:     make([]float64, memory.EmbeddingDim),
					Importance:    ev.Intensity,
					GameTimestamp: m.clock,
					LocationID:    ev.LocationID,
				})
			}
		}
	}
	m.metrics.IncEventsDelivered(len(due))

	// Stage 4: emotion decay toward personality baseline.
	m.emotionEngine.Tick(npcs)

	// Stage 5: recompute intentions, now reflecting updated energy/health.
	m.intentionEngine.ComputeBatch(npcs)

	// Stage 6: pairwise interactions among co-located, awake NPCs.
	outcomes := m.interactionEngine.Tick(npcs, m.clock)
	result.InteractionsResolved = len(outcomes)
	m.metrics.IncInteractionsResolved(len(outcomes))

	byID := make(map[uuid.UUID]*npcstate.NPCVectorialStatus, len(npcs))
	for _, n := range npcs {
		byID[n.ID] = n
	}

	// Stage 7: apply each outcome's relationship delta and vitality costs,
	// append memories to both participants, and submit the follow-on event.
	for _, o := range outcomes {
		a, aok := byID[o.ParticipantA]
		b, bok := byID[o.ParticipantB]
		if !aok || !bok {
			continue
		}
		m.relationshipEngine.ApplyDelta(a, b, o.RelationshipDelta)
		m.vitalityEngine.ApplyInteractionCosts(a, o.EnergyCostA, o.HealthDeltaA)
		m.vitalityEngine.ApplyInteractionCosts(b, o.EnergyCostB, o.HealthDeltaB)
		a.AppendMemory(o.Event.Description)
		b.AppendMemory(o.Event.Description)
		m.prop.Submit(o.Event)
	}

	// Stage 8: decay and prune relationships.
	m.relationshipEngine.Decay(npcs)

	// Stage 9: arrivals, then departure decisions, then travel energy (all
	// handled internally by the movement engine in this order).
	_, departed := m.movementEngine.Tick(npcs, m.clock)
	result.Departed = len(departed)

	// Stage 10: blend each NPC's environment toward its location.
	m.environmentEngine.Tick(npcs)

	// Stage 11: passive vitality dynamics.
	m.vitalityEngine.Tick(npcs)

	// Stage 12: passive social-influence dynamics.
	m.socialEngine.Tick(npcs)

	result.EventsPending = m.queue.Len()

	m.metrics.ObserveTick(time.Since(start))
	m.logger.Debug().
		Float64("game_time", m.clock).
		Int("npcs_touched", result.NPCsTouched).
		Int("events_delivered", result.EventsDelivered).
		Int("interactions_resolved", result.InteractionsResolved).
		Int("departed", result.Departed).
		Msg("tick complete")

	return result
}

// TemplateEngine exposes the dialogue fallback engine, which reads no world
// state and so needs no manager lock. Its random source is shared and not
// safe for concurrent use.
func (m *Manager) TemplateEngine() *dialogue.TemplateEngine {
	return m.templateEngine
}

// CharacterSheet returns the prompt context for an NPC, the string the cloud
// dialogue tier consumes.
func (m *Manager) CharacterSheet(id uuid.UUID) (string, error) {
	n, err := m.GetNPC(id)
	if err != nil {
		return "", err
	}
	return n.ToCharacterSheet(), nil
}

// MemoryStore exposes the manager's memory backend, for callers that need
// Search or GetRecent over the stored history (ToCharacterSheet reads only
// the NPC's own bounded recent-memory log).
func (m *Manager) MemoryStore() memory.Store {
	return m.memory
}
