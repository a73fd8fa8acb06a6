package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Verifications  *prometheus.CounterVec
	VerifyDuration prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fitcore_verifications_total",
			Help: "Total number of code verifications, labeled by outcome",
		}, []string{"outcome"}),
		// Includes the simulated delay, so buckets reach past 1.5s.
		VerifyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitcore_verify_duration_seconds",
			Help:    "Duration of verification requests including simulated latency",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 1.5, 2, 5},
		}),
	}
}

func (m *Metrics) ObserveVerification(outcome string, start time.Time) {
	m.Verifications.WithLabelValues(outcome).Inc()
	m.VerifyDuration.Observe(time.Since(start).Seconds())
}
