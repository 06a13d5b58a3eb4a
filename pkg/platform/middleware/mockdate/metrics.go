package mockdate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Requests *prometheus.CounterVec
}

// NewMetrics registers the middleware metrics on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers on a caller-supplied registerer, which keeps
// tests free of duplicate-registration panics.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "timeshift_mockdate_requests_total",
			Help: "Requests carrying an X-Mock-Date header, by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveOverride() {
	m.Requests.WithLabelValues("override").Inc()
}

func (m *Metrics) ObserveRejected() {
	m.Requests.WithLabelValues("rejected").Inc()
}
