// Package requestcontext carries request-scoped values through
// context.Context: the request ID and the clock the request observes.
//
// The clock is the isolation boundary for time overrides. Because context
// values are immutable and confined to the request's goroutine tree, an
// override installed here cannot leak to concurrent requests and vanishes
// with the context on every exit path, including panics and cancellation.
package requestcontext

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

type contextKeyRequestID struct{}
type contextKeyClock struct{}

var realClock = clockwork.NewRealClock()

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID{}, requestID)
}

// RequestID retrieves the request ID from context, or "" when unset.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID{}).(string); ok {
		return id
	}
	return ""
}

// WithClock injects a clock into the context. Everything downstream that
// reads time through Now or Clock observes it for the rest of the request.
func WithClock(ctx context.Context, c clockwork.Clock) context.Context {
	return context.WithValue(ctx, contextKeyClock{}, c)
}

// WithFrozenTime injects a clock frozen at t. Repeated reads yield exactly
// t with no progression until the context is discarded.
func WithFrozenTime(ctx context.Context, t time.Time) context.Context {
	return WithClock(ctx, clockwork.NewFakeClockAt(t))
}

// Clock retrieves the request-scoped clock from context.
// Falls back to the real clock if not set (for non-HTTP contexts like
// workers, CLI, tests).
func Clock(ctx context.Context) clockwork.Clock {
	if c, ok := ctx.Value(contextKeyClock{}).(clockwork.Clock); ok {
		return c
	}
	return realClock
}

// Now reads the current time from the request-scoped clock.
func Now(ctx context.Context) time.Time {
	return Clock(ctx).Now()
}
