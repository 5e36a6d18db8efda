// Command simdemo exercises the simulation core end to end for manual
// smoke-testing: it builds a config, constructs a world manager, registers a
// small cast of NPCs and locations, submits one event, runs a handful of
// ticks, and prints each NPC's character sheet and a snapshot summary. It
// contains no network listener.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"simcore/internal/locationgraph"
	"simcore/internal/npcstate"
	"simcore/internal/simconfig"
	"simcore/internal/simlog"
	"simcore/internal/world"
	"simcore/internal/worldevent"
)

func main() {
	logger := simlog.New("info", "console")
	cfg := simconfig.Default()

	graph := locationgraph.NewGraph()
	tavern := locationgraph.FromType("The Rusty Tankard", locationgraph.TypeTavern, 20)
	market := locationgraph.FromType("Market Square", locationgraph.TypeMarket, 50)
	temple := locationgraph.FromType("Temple of Dawn", locationgraph.TypeTemple, 0)

	for _, loc := range []*locationgraph.Location{tavern, market, temple} {
		must(graph.AddLocation(loc))
	}
	must(graph.AddEdge(tavern.ID, market.ID, 0.5, 0.05, true))
	must(graph.AddEdge(market.ID, temple.ID, 1, 0, true))

	manager := world.NewManager(cfg, graph, nil, logger, nil)

	cast := []struct {
		name, archetype string
		locationID      uuid.UUID
	}{
		{"Ada the Merchant", "merchant", market.ID},
		{"Brother Tomas", "priest", temple.ID},
		{"Mara the Guard", "guard", tavern.ID},
	}
	for _, c := range cast {
		n := npcstate.New(c.name, c.archetype, nil, cfg.MaxRecentMemories)
		n.LocationID = c.locationID
		must(manager.AddNPC(n))
	}

	deliveries := manager.SubmitEvent(worldevent.WorldEvent{
		Description:   "a fight breaks out near the market stalls",
		CurrentScale:  worldevent.Personal,
		LocationID:    market.ID,
		Intensity:     0.7,
		EmotionImpact: []float64{0, 0, -0.1, 0, 0, 0.2, 0, -0.1},
		SocialImpact:  make([]float64, npcstate.SocialInfluenceDim),
	})
	logger.Info().Int("deliveries_scheduled", deliveries).Msg("submitted event")

	for i := 0; i < 5; i++ {
		result := manager.Tick(context.Background(), 1)
		logger.Info().
			Float64("game_time", result.GameTime).
			Int("npcs_touched", result.NPCsTouched).
			Int("events_delivered", result.EventsDelivered).
			Int("interactions_resolved", result.InteractionsResolved).
			Int("departed", result.Departed).
			Msg("tick")
	}

	for _, n := range manager.ListNPCs() {
		fmt.Println(n.ToCharacterSheet())
	}

	snap := manager.Snapshot()
	fmt.Printf("snapshot: game_time=%.1f npcs=%d locations=%d edges=%d\n",
		snap.GameTime, len(snap.NPCs), len(snap.Locations), len(snap.Edges))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
