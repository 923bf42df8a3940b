package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the patient intake flow.
type IntakeMetrics struct {
	submissionsTotal *prometheus.CounterVec
	exportsTotal     prometheus.Counter
	storageLatency   *prometheus.HistogramVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "patients",
			Name:      "submissions_total",
			Help:      "Total form submissions by upsert action and outcome",
		}, []string{"action", "status"}),
		exportsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "patients",
			Name:      "exports_total",
			Help:      "Total CSV exports served",
		}),
		storageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "intake",
			Subsystem: "storage",
			Name:      "operation_seconds",
			Help:      "Latency of repository load/save operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.exportsTotal, m.storageLatency)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(action, status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(action, status).Inc()
}

func (m *IntakeMetrics) ObserveExport() {
	if m == nil {
		return
	}
	m.exportsTotal.Inc()
}

func (m *IntakeMetrics) ObserveStorageLatency(op string, seconds float64) {
	if m == nil {
		return
	}
	m.storageLatency.WithLabelValues(op).Observe(seconds)
}
