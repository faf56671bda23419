package montecarlo

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Trial outcomes used as the "result" label.
const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics groups the Prometheus collectors updated by a Driver.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	trials   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     *prometheus.CounterVec
}

// NewMetrics creates the sweep collectors and registers them with reg.
// Registration errors (e.g. duplicate registration) are returned as is.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvperc",
			Name:      "trials_total",
			Help:      "Number of percolation trials run, by topology and result.",
		}, []string{"topology", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvperc",
			Name:      "trial_duration_seconds",
			Help:      "Wall time of one sample→cluster→measure trial.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"topology"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvperc",
			Name:      "rows_total",
			Help:      "Number of sweep rows emitted.",
		}, []string{"topology"}),
	}
	for _, c := range []prometheus.Collector{m.trials, m.duration, m.rows} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeTrial(topology string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := resultOK
	if err != nil {
		result = resultError
	}
	m.trials.WithLabelValues(topology, result).Inc()
	m.duration.WithLabelValues(topology).Observe(d.Seconds())
}

func (m *Metrics) observeRow(topology string) {
	if m == nil {
		return
	}
	m.rows.WithLabelValues(topology).Inc()
}
