package rvrpmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the improve loop's Prometheus instruments. A nil
// *Collector is valid: every method degrades to a no-op.
type Collector struct {
	phasesTotal         prometheus.Counter
	tabuRejectionsTotal prometheus.Counter
	ruinSize            prometheus.Histogram
	improveDuration     prometheus.Histogram
	tourAssignedJobs    prometheus.Gauge
	tourUnassignedJobs  prometheus.Gauge
}

// NewCollector registers a fresh set of instruments against reg. Pass
// prometheus.DefaultRegisterer for the global registry, or a
// prometheus.NewRegistry() for isolated tests.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		phasesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rvrp_phases_total",
			Help: "Improve phases executed.",
		}),
		tabuRejectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rvrp_tabu_rejections_total",
			Help: "Candidate tours rejected by the tabu set.",
		}),
		ruinSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rvrp_ruin_size",
			Help:    "Number of jobs removed per ruin call.",
			Buckets: prometheus.LinearBuckets(5, 5, 10),
		}),
		improveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rvrp_improve_duration_seconds",
			Help:    "Wall-clock time spent inside Improve.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		tourAssignedJobs: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rvrp_tour_assigned_jobs",
			Help: "Jobs currently assigned across the tour.",
		}),
		tourUnassignedJobs: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rvrp_tour_unassigned_jobs",
			Help: "Jobs currently unassigned across the tour.",
		}),
	}
}

// NewNoop returns a Collector backed by an isolated, discarded
// registry, so callers get real (non-nil) instruments without
// touching prometheus.DefaultRegisterer.
func NewNoop() *Collector {
	return NewCollector(prometheus.NewRegistry())
}

func (c *Collector) PhaseRan() {
	if c == nil {
		return
	}
	c.phasesTotal.Inc()
}

func (c *Collector) TabuRejected() {
	if c == nil {
		return
	}
	c.tabuRejectionsTotal.Inc()
}

func (c *Collector) RuinPerformed(jobsRemoved int) {
	if c == nil {
		return
	}
	c.ruinSize.Observe(float64(jobsRemoved))
}

func (c *Collector) ImproveFinished(d time.Duration) {
	if c == nil {
		return
	}
	c.improveDuration.Observe(d.Seconds())
}

func (c *Collector) SetTourJobCounts(assigned, unassigned int) {
	if c == nil {
		return
	}
	c.tourAssignedJobs.Set(float64(assigned))
	c.tourUnassignedJobs.Set(float64(unassigned))
}
