// Package httptransport is the thin HTTP layer of the demo server. Its one
// real endpoint reports the request-scoped current time, which makes every
// mock-date behavior observable end to end.
package httptransport

import (
	"log/slog"
	"net/http"

	"timeshift/pkg/platform/httputil"
	"timeshift/pkg/requestcontext"
)

// isoLayout renders instants with a numeric offset, so a UTC value comes out
// as "+00:00" rather than "Z" and round-trips with the header callers send.
const isoLayout = "2006-01-02T15:04:05.999999999-07:00"

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// NowResponse is the body of GET /now.
type NowResponse struct {
	CurrentTime string `json:"current_time"`
}

// HandleNow reports the current time as this request observes it: the wall
// clock normally, or the frozen instant when the request carried a valid
// X-Mock-Date header.
func (h *Handler) HandleNow(w http.ResponseWriter, r *http.Request) {
	now := requestcontext.Now(r.Context())
	httputil.WriteJSON(w, http.StatusOK, NowResponse{
		CurrentTime: now.Format(isoLayout),
	})
}

// HandleHealth is a plain liveness probe.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
