// Package messaging implements the in-process event bus of the registry.
// Delivery is synchronous: Publish returns after every handler has run.
package messaging

import (
	"errors"

	"github.com/alem-hub/university-registry/internal/domain/shared"
	"github.com/alem-hub/university-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// InMemoryEventBus dispatches events to subscribers on the caller's goroutine.
// Handler errors are logged and counted; they never reach the publisher.
type InMemoryEventBus struct {
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	logger      *logger.Logger
	metrics     *EventBusMetrics
	closed      bool
}

// NewInMemoryEventBus creates a new in-memory event bus.
func NewInMemoryEventBus(log *logger.Logger) *InMemoryEventBus {
	if log == nil {
		log = logger.Nop()
	}
	return &InMemoryEventBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		logger:   log.With(logger.Component("eventbus")),
		metrics:  NewEventBusMetrics(),
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed handler", logger.EventType(string(eventType)))
	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	b.logger.Debug("subscribed global handler")
	return nil
}

// Publish sends an event to all subscribed handlers, type-specific first.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	b.metrics.RecordPublish(event.EventType())

	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event", logger.EventType(string(event.EventType())))
		return nil
	}

	for _, handler := range handlers {
		err := handler(event)
		b.metrics.RecordHandlerExecution(err == nil)
		if err != nil {
			b.logger.Error("handler error",
				logger.EventType(string(event.EventType())),
				logger.String("event_id", event.EventID()),
				logger.Err(err),
			)
		}
	}
	return nil
}

// Close stops the bus. Later Subscribe and Publish calls fail.
func (b *InMemoryEventBus) Close() {
	b.closed = true
}

// Metrics returns a snapshot of the bus counters.
func (b *InMemoryEventBus) Metrics() EventBusMetricsSnapshot {
	return b.metrics.Snapshot()
}

// ══════════════════════════════════════════════════════════════════════════════
// METRICS
// ══════════════════════════════════════════════════════════════════════════════

// EventBusMetrics counts published events and handler outcomes.
type EventBusMetrics struct {
	PublishedTotal    map[shared.EventType]int64
	HandlerExecutions int64
	HandlerFailures   int64
}

// NewEventBusMetrics creates an empty counter set.
func NewEventBusMetrics() *EventBusMetrics {
	return &EventBusMetrics{
		PublishedTotal: make(map[shared.EventType]int64),
	}
}

// RecordPublish records a publish event.
func (m *EventBusMetrics) RecordPublish(eventType shared.EventType) {
	m.PublishedTotal[eventType]++
}

// RecordHandlerExecution records a handler execution.
func (m *EventBusMetrics) RecordHandlerExecution(success bool) {
	m.HandlerExecutions++
	if !success {
		m.HandlerFailures++
	}
}

// Snapshot returns a copy of current metrics.
func (m *EventBusMetrics) Snapshot() EventBusMetricsSnapshot {
	byType := make(map[shared.EventType]int64, len(m.PublishedTotal))
	var total int64
	for k, v := range m.PublishedTotal {
		byType[k] = v
		total += v
	}
	return EventBusMetricsSnapshot{
		TotalPublished:    total,
		PublishedByType:   byType,
		TotalHandlerExecs: m.HandlerExecutions,
		HandlerFailures:   m.HandlerFailures,
	}
}

// EventBusMetricsSnapshot is a point-in-time snapshot of metrics.
type EventBusMetricsSnapshot struct {
	TotalPublished    int64
	PublishedByType   map[shared.EventType]int64
	TotalHandlerExecs int64
	HandlerFailures   int64
}

// ══════════════════════════════════════════════════════════════════════════════
// ERRORS
// ══════════════════════════════════════════════════════════════════════════════

// ErrEventBusClosed is returned when operations are attempted on a closed bus.
var ErrEventBusClosed = errors.New("event bus is closed")
