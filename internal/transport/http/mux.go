package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/light-bringer/marquee-pricing-service/internal/pkg/metrics"
)

// NewMux serves the events API, Prometheus metrics and a liveness probe.
func NewMux(events EventsLister, m *metrics.Metrics, log *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/events", NewEventsHandler(events, log))
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}
