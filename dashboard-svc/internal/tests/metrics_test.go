package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cantina-feedback/dashboard-svc/internal/domain"
	"cantina-feedback/dashboard-svc/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	reg := metrics.NewRegistry()
	m := metrics.NewHTTPMetrics(reg)

	r := mux.NewRouter()
	r.HandleFunc("/api/canteens/{canteen}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {})
	r.Use(m.Middleware())

	for _, path := range []string{"/api/canteens/A", "/api/canteens/B", "/health"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/canteens/{canteen}", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlightGauge))
}

func TestTransitionsCounter(t *testing.T) {
	reg := metrics.NewRegistry()
	tr := metrics.NewTransitions(reg)

	tr.ObserveTransition(domain.EventSelectView, domain.ViewDetail)
	tr.ObserveTransition(domain.EventSelectView, domain.ViewDetail)
	tr.ObserveTransition(domain.EventSelectFilter, domain.ViewDetail)

	assert.Equal(t, 2.0, testutil.ToFloat64(tr.Total.WithLabelValues(domain.EventSelectView, "detail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tr.Total.WithLabelValues(domain.EventSelectFilter, "detail")))
}
