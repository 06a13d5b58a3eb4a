// Package mockdate provides middleware that lets a caller pin the perceived
// current time for the duration of one HTTP request via the X-Mock-Date
// header. The override is carried in the request context, so it applies to
// every downstream read through requestcontext.Now, never advances, and is
// invisible to concurrent and subsequent requests.
package mockdate

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"timeshift/pkg/isotime"
	"timeshift/pkg/platform/httputil"
	"timeshift/pkg/requestcontext"
)

// Header is the request header carrying the ISO-8601 instant to freeze at.
const Header = "X-Mock-Date"

const invalidFormatMsg = "Invalid datetime format. Use ISO format: YYYY-MM-DDTHH:MM:SS[±HH:MM]"

// ErrorDetail is one entry of the validation failure body. Field order is
// part of the wire contract; consumers assert on the raw structure.
type ErrorDetail struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input string   `json:"input"`
}

// ErrorResponse is the 422 body returned for an unparsable header value.
type ErrorResponse struct {
	Detail []ErrorDetail `json:"detail"`
}

func newErrorResponse(input string) ErrorResponse {
	return ErrorResponse{
		Detail: []ErrorDetail{
			{
				Type:  "value_error",
				Loc:   []string{"header", "x-mock-date"},
				Msg:   invalidFormatMsg,
				Input: input,
			},
		},
	}
}

// Middleware returns the time-override middleware. Metrics may be nil.
//
// Requests without the header pass through untouched. A parsable header
// freezes the request-scoped clock at the parsed instant (naive values are
// interpreted as UTC) before the rest of the chain runs. An unparsable
// header short-circuits with a 422; the rest of the chain is never entered.
func Middleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(Header)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			instant, err := isotime.Parse(raw)
			if err != nil {
				if m != nil {
					m.ObserveRejected()
				}
				httputil.WriteJSON(w, http.StatusUnprocessableEntity, newErrorResponse(raw))
				return
			}

			if m != nil {
				m.ObserveOverride()
			}
			ctx := requestcontext.WithFrozenTime(r.Context(), instant)
			if span := trace.SpanFromContext(ctx); span.IsRecording() {
				span.SetAttributes(attribute.String("mockdate.frozen_at", instant.Format(time.RFC3339Nano)))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
