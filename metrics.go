package growthbench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records subject invocations of a run. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	invocations *prometheus.CounterVec
	processTime prometheus.Histogram
	skippedSize prometheus.Counter
}

// NewMetrics registers the run metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "growthbench_subject_invocations_total",
			Help: "Subject program invocations by mode and outcome.",
		}, []string{"mode", "outcome"}),
		processTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "growthbench_process_seconds",
			Help:    "Wall-clock time of successful processing invocations.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		skippedSize: factory.NewCounter(prometheus.CounterOpts{
			Name: "growthbench_sizes_skipped_total",
			Help: "Sizes dropped from the time series after a failed invocation.",
		}),
	}
}

// WriteMetricsFile writes everything gathered by g in the Prometheus text format.
func WriteMetricsFile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

func (m *Metrics) invocation(mode string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.invocations.WithLabelValues(mode, outcome).Inc()
	if err == nil && mode == ModeProcess {
		m.processTime.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) skipped() {
	if m == nil {
		return
	}
	m.skippedSize.Inc()
}
