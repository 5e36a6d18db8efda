// Package simmetrics exposes Prometheus instrumentation for the simulation
// core, mirroring the teacher's internal/metrics package but registered
// against a private registry so multiple world managers (as in tests) never
// collide on the global default registry.
package simmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder bundles the metrics the world manager updates on every tick.
type Recorder struct {
	registry              *prometheus.Registry
	tickDuration          prometheus.Histogram
	eventsDelivered       prometheus.Counter
	interactionsResolved  prometheus.Counter
	npcCount              prometheus.Gauge
}

// NewRecorder builds a Recorder registered against a fresh private registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "simcore_tick_duration_seconds",
			Help:    "Duration of a single world tick.",
			Buckets: prometheus.DefBuckets,
		}),
		eventsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simcore_events_delivered_total",
			Help: "Total world events delivered from the queue.",
		}),
		interactionsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simcore_interactions_resolved_total",
			Help: "Total interaction outcomes resolved by the interaction engine.",
		}),
		npcCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "simcore_npc_count",
			Help: "Current number of registered NPCs.",
		}),
	}
	reg.MustRegister(r.tickDuration, r.eventsDelivered, r.interactionsResolved, r.npcCount)
	return r
}

// Registry returns the private Prometheus registry backing this Recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveTick(d time.Duration) {
	r.tickDuration.Observe(d.Seconds())
}

func (r *Recorder) IncEventsDelivered(n int) {
	r.eventsDelivered.Add(float64(n))
}

func (r *Recorder) IncInteractionsResolved(n int) {
	r.interactionsResolved.Add(float64(n))
}

func (r *Recorder) SetNPCCount(n int) {
	r.npcCount.Set(float64(n))
}
