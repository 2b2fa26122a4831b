package address

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts address API calls by operation and outcome.
type Metrics struct {
	requests *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "checkout",
				Name:      "address_requests_total",
				Help:      "Address API requests by operation and result",
			},
			[]string{"op", "result"},
		),
	}
	reg.MustRegister(m.requests)
	return m
}

func (m *Metrics) observe(op, result string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(op, result).Inc()
}
