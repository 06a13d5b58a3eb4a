package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"timeshift/pkg/platform/middleware/mockdate"
	"timeshift/pkg/platform/middleware/request"
)

// RouterConfig controls which optional middleware the router mounts.
type RouterConfig struct {
	// MockDateEnabled mounts the X-Mock-Date override middleware.
	MockDateEnabled bool
	// MockDateMetrics may be nil to disable outcome counters.
	MockDateMetrics *mockdate.Metrics
}

// NewRouter wires all endpoints with the middleware stack. The mockdate
// middleware sits innermost so rejected headers still get a request ID and a
// log line from the outer layers.
func NewRouter(h *Handler, logger *slog.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(logger))
	if cfg.MockDateEnabled {
		r.Use(mockdate.Middleware(cfg.MockDateMetrics))
	}

	r.Get("/now", h.HandleNow)
	r.Get("/health", h.HandleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
