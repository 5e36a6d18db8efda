// Package movement implements destination scoring, the Bernoulli departure
// decision, in-transit bookkeeping, and arrivals.
package movement

import (
	"math/rand"

	"github.com/google/uuid"

	"simcore/internal/locationgraph"
	"simcore/internal/npcstate"
	"simcore/internal/vecmath"
)

// TravelState tracks one NPC currently between locations.
type TravelState struct {
	OriginID      uuid.UUID
	DestinationID uuid.UUID
	DepartureTime float64
	ArrivalTime   float64
}

const (
	idxExplore  = 3
	idxSurvive  = 0
	idxEscape   = 7
	idxSocialize = 1
	idxAchieve  = 2
	idxDominate = 5
)

const (
	envSafety    = 0
	envResources = 1
	envCrowding  = 3
)

const minEnergyToConsiderMoving = 0.15

// Engine tracks NPCs in transit and scores candidate destinations.
type Engine struct {
	Graph            *locationgraph.Graph
	MoveProbability  float64
	TravelEnergyRate float64
	rng              *rand.Rand
	travelers        map[uuid.UUID]*TravelState
}

// New builds an Engine (spec default moveProbability base: 0.2,
// travelEnergyRate: 0.02 per hour).
func New(graph *locationgraph.Graph, moveProbability, travelEnergyRate float64, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Engine{
		Graph:            graph,
		MoveProbability:  moveProbability,
		TravelEnergyRate: travelEnergyRate,
		rng:              rng,
		travelers:        make(map[uuid.UUID]*TravelState),
	}
}

// ScoreDestination implements the movement scoring formula of spec §4.8.
func ScoreDestination(n *npcstate.NPCVectorialStatus, currentEnv []float64, destEnv []float64, edge locationgraph.Edge) float64 {
	intention := n.Intention

	score := intention[idxExplore] * vecmath.EuclideanDistance(destEnv, currentEnv) * 2
	score += intention[idxSurvive] * (destEnv[envSafety] - currentEnv[envSafety]) * 3
	score -= intention[idxSurvive] * edge.Danger * 2
	score += intention[idxEscape] * 1.5
	score += intention[idxSocialize] * (destEnv[envCrowding] - currentEnv[envCrowding]) * 2
	score += (intention[idxAchieve] + intention[idxDominate]) * (destEnv[envResources] - currentEnv[envResources]) * 2
	score -= edge.TravelHours * 0.1
	score -= edge.Danger * (1 - intention[idxDominate]) * 1.5

	return score
}

// bestCandidate returns the highest-scoring positive-score edge out of
// locationID, or ok=false if none qualifies (including destinations at
// capacity, which are skipped).
func (e *Engine) bestCandidate(n *npcstate.NPCVectorialStatus, currentEnv []float64, counts map[uuid.UUID]int) (locationgraph.Edge, float64, bool) {
	var best locationgraph.Edge
	bestScore := 0.0
	found := false

	for _, edge := range e.Graph.GetNeighbors(n.LocationID) {
		if e.Graph.AtCapacity(edge.TargetID, counts[edge.TargetID]) {
			continue
		}
		destLoc, err := e.Graph.GetLocation(edge.TargetID)
		if err != nil {
			continue
		}

		score := ScoreDestination(n, currentEnv, destLoc.Environment, edge)
		if score > 0 && (!found || score > bestScore) {
			best = edge
			bestScore = score
			found = true
		}
	}

	return best, bestScore, found
}

// DecideMovement scores n's outbound edges and, for a positive-scoring best
// candidate, rolls a Bernoulli departure decision. On departure it records a
// TravelState and deducts travel energy, and reports true.
func (e *Engine) DecideMovement(n *npcstate.NPCVectorialStatus, now float64, counts map[uuid.UUID]int) bool {
	if n.Energy < minEnergyToConsiderMoving {
		return false
	}
	if _, inTransit := e.travelers[n.ID]; inTransit {
		return false
	}

	currentLoc, err := e.Graph.GetLocation(n.LocationID)
	if err != nil {
		return false
	}

	best, bestScore, ok := e.bestCandidate(n, currentLoc.Environment, counts)
	if !ok {
		return false
	}

	departProbability := e.MoveProbability * vecmath.Clamp01(bestScore)
	if e.rng.Float64() >= departProbability {
		return false
	}

	e.travelers[n.ID] = &TravelState{
		OriginID:      n.LocationID,
		DestinationID: best.TargetID,
		DepartureTime: now,
		ArrivalTime:   now + best.TravelHours,
	}
	n.Energy = vecmath.Clamp01(n.Energy - best.TravelHours*e.TravelEnergyRate)
	return true
}

// ProcessArrivals moves every traveller whose arrival time has passed to
// their destination, clearing their travel state.
func (e *Engine) ProcessArrivals(npcsByID map[uuid.UUID]*npcstate.NPCVectorialStatus, now float64) []uuid.UUID {
	var arrived []uuid.UUID
	for id, ts := range e.travelers {
		if ts.ArrivalTime <= now {
			if n, ok := npcsByID[id]; ok {
				n.LocationID = ts.DestinationID
			}
			delete(e.travelers, id)
			arrived = append(arrived, id)
		}
	}
	return arrived
}

// Reset clears all in-transit bookkeeping, for use after a world restore
// where the restored NPCs carry no travel state of their own.
func (e *Engine) Reset() {
	e.travelers = make(map[uuid.UUID]*TravelState)
}

// IsInTransit reports whether id currently has an open travel state.
func (e *Engine) IsInTransit(id uuid.UUID) bool {
	_, ok := e.travelers[id]
	return ok
}

// TravelerCount returns the number of NPCs currently in transit.
func (e *Engine) TravelerCount() int {
	return len(e.travelers)
}

// Tick runs arrivals, then movement decisions for stationary NPCs, and
// reports who arrived and who newly departed this tick.
func (e *Engine) Tick(npcs []*npcstate.NPCVectorialStatus, now float64) (arrived, departed []uuid.UUID) {
	byID := make(map[uuid.UUID]*npcstate.NPCVectorialStatus, len(npcs))
	for _, n := range npcs {
		byID[n.ID] = n
	}
	arrived = e.ProcessArrivals(byID, now)

	counts := make(map[uuid.UUID]int)
	for _, n := range npcs {
		counts[n.LocationID]++
	}

	for _, n := range npcs {
		if e.IsInTransit(n.ID) {
			continue
		}
		if e.DecideMovement(n, now, counts) {
			departed = append(departed, n.ID)
		}
	}
	return arrived, departed
}
