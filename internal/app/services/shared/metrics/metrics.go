package metrics

import (
	"ehr-gateway-service/internal/pkg/constvars"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics exposes counters/histograms for calls to the records API.
type UpstreamMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	tokenExchanges  *prometheus.CounterVec
	slotRejections  prometheus.Counter
}

func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	m := &UpstreamMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total upstream records API calls by resource, method and result code",
		}, []string{"resource", "method", "result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of upstream records API calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "method"}),
		tokenExchanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "auth",
			Name:      "token_exchanges_total",
			Help:      "Total OAuth password grant exchanges by result",
		}, []string{"result"}),
		slotRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: constvars.MetricsNamespace,
			Subsystem: "appointments",
			Name:      "no_slot_rejections_total",
			Help:      "Appointment creations rejected because no free slot matched",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.tokenExchanges, m.slotRejections)
	return m
}

// ObserveRequest records one upstream call. result is "ok" or an error code.
func (m *UpstreamMetrics) ObserveRequest(resource, method, result string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(resource, method, result).Inc()
	m.requestDuration.WithLabelValues(resource, method).Observe(seconds)
}

func (m *UpstreamMetrics) ObserveTokenExchange(result string) {
	if m == nil {
		return
	}
	m.tokenExchanges.WithLabelValues(result).Inc()
}

func (m *UpstreamMetrics) ObserveSlotRejection() {
	if m == nil {
		return
	}
	m.slotRejections.Inc()
}
