package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types.
const (
	// Enrollment events
	EventStudentEnrolled    EventType = "enrollment.student_enrolled"
	EventStudentDropped     EventType = "enrollment.student_dropped"
	EventEnrollmentRejected EventType = "enrollment.rejected"

	// Catalog events
	EventCourseRemoved EventType = "catalog.course_removed"
	EventPersonRemoved EventType = "catalog.person_removed"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventID returns the unique identifier of this occurrence.
	EventID() string

	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// Payload returns the event data as a map for logging.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// EventID implements Event interface.
func (e BaseEvent) EventID() string {
	return e.ID
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Enrollment Events
// ═══════════════════════════════════════════════════════════════════════════

// EnrollmentEvent is emitted when a roster entry is added, dropped or refused.
type EnrollmentEvent struct {
	BaseEvent
	StudentID string    `json:"student_id"`
	Course    CourseRef `json:"course"`
	Reason    string    `json:"reason,omitempty"`
}

// Payload implements Event interface.
func (e *EnrollmentEvent) Payload() map[string]interface{} {
	p := map[string]interface{}{
		"student_id": e.StudentID,
		"course":     int(e.Course),
	}
	if e.Reason != "" {
		p["reason"] = e.Reason
	}
	return p
}

// NewStudentEnrolledEvent creates a new StudentEnrolled event.
func NewStudentEnrolledEvent(studentID string, course CourseRef) *EnrollmentEvent {
	return &EnrollmentEvent{
		BaseEvent: NewBaseEvent(EventStudentEnrolled),
		StudentID: studentID,
		Course:    course,
	}
}

// NewStudentDroppedEvent creates a new StudentDropped event.
func NewStudentDroppedEvent(studentID string, course CourseRef) *EnrollmentEvent {
	return &EnrollmentEvent{
		BaseEvent: NewBaseEvent(EventStudentDropped),
		StudentID: studentID,
		Course:    course,
	}
}

// NewEnrollmentRejectedEvent creates a new EnrollmentRejected event.
func NewEnrollmentRejectedEvent(studentID string, course CourseRef, reason string) *EnrollmentEvent {
	return &EnrollmentEvent{
		BaseEvent: NewBaseEvent(EventEnrollmentRejected),
		StudentID: studentID,
		Course:    course,
		Reason:    reason,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Catalog Events
// ═══════════════════════════════════════════════════════════════════════════

// CourseRemovedEvent is emitted when a course leaves the catalog.
type CourseRemovedEvent struct {
	BaseEvent
	Course       CourseRef `json:"course"`
	Code         string    `json:"code"`
	DroppedSeats int       `json:"dropped_seats"`
}

// Payload implements Event interface.
func (e *CourseRemovedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"course":        int(e.Course),
		"code":          e.Code,
		"dropped_seats": e.DroppedSeats,
	}
}

// NewCourseRemovedEvent creates a new CourseRemoved event.
func NewCourseRemovedEvent(course CourseRef, code string, droppedSeats int) *CourseRemovedEvent {
	return &CourseRemovedEvent{
		BaseEvent:    NewBaseEvent(EventCourseRemoved),
		Course:       course,
		Code:         code,
		DroppedSeats: droppedSeats,
	}
}

// PersonRemovedEvent is emitted when a person leaves the university.
type PersonRemovedEvent struct {
	BaseEvent
	Person   PersonRef `json:"person"`
	PersonID string    `json:"person_id"`
}

// Payload implements Event interface.
func (e *PersonRemovedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"person":    int(e.Person),
		"person_id": e.PersonID,
	}
}

// NewPersonRemovedEvent creates a new PersonRemoved event.
func NewPersonRemovedEvent(ref PersonRef, personID string) *PersonRemovedEvent {
	return &PersonRemovedEvent{
		BaseEvent: NewBaseEvent(EventPersonRemoved),
		Person:    ref,
		PersonID:  personID,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Bus contracts
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
