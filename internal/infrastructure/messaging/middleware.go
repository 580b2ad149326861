package messaging

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/alem-hub/university-registry/internal/domain/shared"
	"github.com/alem-hub/university-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MIDDLEWARE
// ══════════════════════════════════════════════════════════════════════════════

// Middleware wraps handler execution.
type Middleware func(shared.EventHandler) shared.EventHandler

// Chain wraps h so that the first middleware runs outermost.
func Chain(h shared.EventHandler, middlewares ...Middleware) shared.EventHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RecoveryMiddleware turns a handler panic into an error.
func RecoveryMiddleware(log *logger.Logger) Middleware {
	return func(next shared.EventHandler) shared.EventHandler {
		return func(event shared.Event) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("handler panic recovered",
						logger.EventType(string(event.EventType())),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())),
					)
					err = fmt.Errorf("handler panic: %v", r)
				}
			}()
			return next(event)
		}
	}
}

// LoggingMiddleware logs handler execution.
func LoggingMiddleware(log *logger.Logger) Middleware {
	return func(next shared.EventHandler) shared.EventHandler {
		return func(event shared.Event) error {
			start := time.Now()
			err := next(event)

			if err != nil {
				log.Error("handler failed",
					logger.EventType(string(event.EventType())),
					logger.String("event_id", event.EventID()),
					logger.Latency(time.Since(start)),
					logger.Err(err),
				)
			} else {
				log.Debug("handler completed",
					logger.EventType(string(event.EventType())),
					logger.String("event_id", event.EventID()),
					logger.Latency(time.Since(start)),
				)
			}
			return err
		}
	}
}
