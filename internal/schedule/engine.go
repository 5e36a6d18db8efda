// Package schedule implements per-archetype 24-hour activity schedules with
// an exhaustion override, mirroring the Python original's schedule_engine.
package schedule

import (
	"math"

	"simcore/internal/npcstate"
)

// Slot is a contiguous span of the day [Start, End) carrying one activity.
type Slot struct {
	Start, End float64
	Activity   npcstate.Activity
}

const exhaustionThreshold = 0.05

var defaultSchedule = []Slot{
	{0, 6, npcstate.ActivitySleeping},
	{6, 7, npcstate.ActivityResting},
	{7, 12, npcstate.ActivityWorking},
	{12, 13, npcstate.ActivityLeisure},
	{13, 18, npcstate.ActivityWorking},
	{18, 22, npcstate.ActivityLeisure},
	{22, 24, npcstate.ActivitySleeping},
}

var guardSchedule = []Slot{
	{0, 6, npcstate.ActivityWorking},
	{6, 8, npcstate.ActivityResting},
	{8, 14, npcstate.ActivitySleeping},
	{14, 16, npcstate.ActivityResting},
	{16, 24, npcstate.ActivityWorking},
}

var merchantSchedule = []Slot{
	{0, 6, npcstate.ActivitySleeping},
	{6, 7, npcstate.ActivityResting},
	{7, 18, npcstate.ActivityWorking},
	{18, 20, npcstate.ActivityLeisure},
	{20, 22, npcstate.ActivityResting},
	{22, 24, npcstate.ActivitySleeping},
}

var priestSchedule = []Slot{
	{0, 5, npcstate.ActivitySleeping},
	{5, 6, npcstate.ActivityResting},
	{6, 8, npcstate.ActivityWorking},
	{8, 9, npcstate.ActivityLeisure},
	{9, 12, npcstate.ActivityWorking},
	{12, 13, npcstate.ActivityLeisure},
	{13, 17, npcstate.ActivityWorking},
	{17, 19, npcstate.ActivityLeisure},
	{19, 22, npcstate.ActivityResting},
	{22, 24, npcstate.ActivitySleeping},
}

var farmerSchedule = []Slot{
	{0, 5, npcstate.ActivitySleeping},
	{5, 6, npcstate.ActivityResting},
	{6, 12, npcstate.ActivityWorking},
	{12, 13, npcstate.ActivityLeisure},
	{13, 18, npcstate.ActivityWorking},
	{18, 21, npcstate.ActivityLeisure},
	{21, 24, npcstate.ActivitySleeping},
}

var nobleSchedule = []Slot{
	{0, 8, npcstate.ActivitySleeping},
	{8, 9, npcstate.ActivityResting},
	{9, 12, npcstate.ActivityWorking},
	{12, 14, npcstate.ActivityLeisure},
	{14, 17, npcstate.ActivityWorking},
	{17, 23, npcstate.ActivityLeisure},
	{23, 24, npcstate.ActivityResting},
}

var criminalSchedule = []Slot{
	{0, 6, npcstate.ActivityWorking},
	{6, 14, npcstate.ActivitySleeping},
	{14, 16, npcstate.ActivityResting},
	{16, 22, npcstate.ActivityLeisure},
	{22, 24, npcstate.ActivityWorking},
}

var artistSchedule = []Slot{
	{0, 2, npcstate.ActivityWorking},
	{2, 9, npcstate.ActivitySleeping},
	{9, 10, npcstate.ActivityResting},
	{10, 13, npcstate.ActivityWorking},
	{13, 15, npcstate.ActivityLeisure},
	{15, 19, npcstate.ActivityWorking},
	{19, 24, npcstate.ActivityLeisure},
}

var scholarSchedule = []Slot{
	{0, 6, npcstate.ActivitySleeping},
	{6, 7, npcstate.ActivityResting},
	{7, 12, npcstate.ActivityWorking},
	{12, 13, npcstate.ActivityLeisure},
	{13, 18, npcstate.ActivityWorking},
	{18, 20, npcstate.ActivityLeisure},
	{20, 22, npcstate.ActivityWorking},
	{22, 24, npcstate.ActivitySleeping},
}

var archetypeSchedules = map[string][]Slot{
	"generic":  defaultSchedule,
	"guard":    guardSchedule,
	"soldier":  guardSchedule,
	"merchant": merchantSchedule,
	"priest":   priestSchedule,
	"farmer":   farmerSchedule,
	"noble":    nobleSchedule,
	"criminal": criminalSchedule,
	"artist":   artistSchedule,
	"bard":     artistSchedule,
	"scholar":  scholarSchedule,
}

// GetSchedule returns the schedule template for archetype, falling back to
// the default schedule for unknown archetypes.
func GetSchedule(archetype string) []Slot {
	if s, ok := archetypeSchedules[archetype]; ok {
		return s
	}
	return defaultSchedule
}

// ResolveActivity returns the activity label for hourOfDay within schedule.
func ResolveActivity(schedule []Slot, hourOfDay float64) npcstate.Activity {
	for _, slot := range schedule {
		if slot.Start <= hourOfDay && hourOfDay < slot.End {
			return slot.Activity
		}
	}
	return npcstate.ActivityLeisure
}

// Engine computes NPC activity per tick.
type Engine struct {
	ExhaustionThreshold float64
}

// New builds an Engine with the default exhaustion threshold (0.05).
func New() *Engine {
	return &Engine{ExhaustionThreshold: exhaustionThreshold}
}

// ComputeActivity returns the activity n should be performing at gameTime,
// applying the exhaustion override before consulting the schedule.
func (e *Engine) ComputeActivity(n *npcstate.NPCVectorialStatus, gameTime float64) npcstate.Activity {
	if n.Energy < e.ExhaustionThreshold {
		return npcstate.ActivitySleeping
	}
	hourOfDay := math.Mod(gameTime, 24.0)
	if hourOfDay < 0 {
		hourOfDay += 24.0
	}
	return ResolveActivity(GetSchedule(n.Archetype), hourOfDay)
}

// Tick assigns n.Activity for every NPC in npcs.
func (e *Engine) Tick(npcs []*npcstate.NPCVectorialStatus, gameTime float64) {
	for _, n := range npcs {
		n.Activity = e.ComputeActivity(n, gameTime)
	}
}
