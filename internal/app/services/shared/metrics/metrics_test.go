package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestUpstreamMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewUpstreamMetrics(reg)

	m.ObserveRequest("Patient", "GET", "ok", 0.2)
	m.ObserveRequest("Patient", "GET", "ok", 0.3)
	m.ObserveRequest("Slot", "GET", "API_ERROR", 0.1)
	m.ObserveTokenExchange("ok")
	m.ObserveSlotRejection()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("Patient", "GET", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("Slot", "GET", "API_ERROR")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.tokenExchanges.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.slotRejections))
}

func TestUpstreamMetricsNilSafe(t *testing.T) {
	var m *UpstreamMetrics
	m.ObserveRequest("Patient", "GET", "ok", 0.1)
	m.ObserveTokenExchange("ok")
	m.ObserveSlotRejection()
}

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/v1/patients/{id}", 200, 0.05)
	m.ObserveRequest("GET", "/api/v1/patients/{id}", 404, 0.01)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/v1/patients/{id}", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/v1/patients/{id}", "404")))

	var nilMetrics *HTTPMetrics
	nilMetrics.ObserveRequest("GET", "/healthz", 200, 0.01)
}
