//go:generate mockgen -source=collector.go -destination=mocks/mock_recorder.go -package=mocks

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name when NewCollector is given an
// empty namespace.
const DefaultNamespace = "fibseq"

// Outcome label values. Failures use apperrors.Kind names.
const (
	OutcomeSuccess = "success"
)

// Recorder receives one observation per generation call.
type Recorder interface {
	// ObserveGeneration records the mode ("end", "length" or "unknown"), the
	// outcome label, the number of terms produced and the wall time spent.
	ObserveGeneration(mode, outcome string, terms int, elapsed time.Duration)
}

// NopRecorder discards observations.
type NopRecorder struct{}

// ObserveGeneration does nothing.
func (NopRecorder) ObserveGeneration(string, string, int, time.Duration) {}

// Collector is a prometheus.Collector that records sequence generation
// activity. It is not registered anywhere; callers register it with the
// prometheus.Registerer of their choice.
type Collector struct {
	generations *prometheus.CounterVec
	terms       *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector returns a new Collector using the given metric namespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Collector{
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "The number of sequence generation calls by mode and outcome.",
			}, []string{"mode", "outcome"},
		),
		terms: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "terms",
				Help:      "The number of terms in successfully generated sequences.",
				Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 93},
			}, []string{"mode"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "The time taken by a generation call, failures included.",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 7),
			}, []string{"mode"},
		),
	}
}

// ObserveGeneration is part of the Recorder interface.
func (c *Collector) ObserveGeneration(mode, outcome string, terms int, elapsed time.Duration) {
	c.generations.WithLabelValues(mode, outcome).Inc()
	c.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if outcome == OutcomeSuccess {
		c.terms.WithLabelValues(mode).Observe(float64(terms))
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.generations.Describe(ch)
	c.terms.Describe(ch)
	c.duration.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.generations.Collect(ch)
	c.terms.Collect(ch)
	c.duration.Collect(ch)
}
