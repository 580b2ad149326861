// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds, checked with errors.Is().
var (
	// ErrValidation covers name, age, id and credit rule violations.
	ErrValidation = errors.New("validation error")

	// ErrGrade covers grades and GPAs outside their allowed range.
	ErrGrade = errors.New("grade error")

	// ErrEnrollment is returned when a course has no free seats.
	ErrEnrollment = errors.New("enrollment error")

	// ErrPayment is reserved for payment policies. Nothing raises it yet.
	ErrPayment = errors.New("payment error")

	// ErrNotFound is returned when a handle does not resolve to a live entity.
	ErrNotFound = errors.New("entity not found")
)

// TimestampLayout is the layout used when an error time is rendered for humans.
const TimestampLayout = time.ANSIC

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string    // e.g., "person", "gradebook", "enrollment"
	Op      string    // Operation that failed, e.g., "New", "AddGrade"
	Kind    error     // Base error type for errors.Is() checking
	Message string    // Human-readable message
	At      time.Time // When the error was created
	Err     error     // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// Timestamp renders At in the ctime layout.
func (e *DomainError) Timestamp() string {
	return e.At.Format(TimestampLayout)
}

// NewDomainError creates a new domain error stamped with the current time.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		At:      time.Now(),
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	de := NewDomainError(domain, op, kind, message)
	de.Err = err
	return de
}

// NewValidationError creates an error of kind ErrValidation.
func NewValidationError(domain, op, message string) *DomainError {
	return NewDomainError(domain, op, ErrValidation, message)
}

// NewGradeError creates an error of kind ErrGrade.
func NewGradeError(domain, op, message string) *DomainError {
	return NewDomainError(domain, op, ErrGrade, message)
}

// NewEnrollmentError creates an error of kind ErrEnrollment.
func NewEnrollmentError(domain, op, message string) *DomainError {
	return NewDomainError(domain, op, ErrEnrollment, message)
}

// NewPaymentError creates an error of kind ErrPayment.
func NewPaymentError(domain, op, message string) *DomainError {
	return NewDomainError(domain, op, ErrPayment, message)
}

// NewNotFoundError creates an error of kind ErrNotFound.
func NewNotFoundError(domain, op, message string) *DomainError {
	return NewDomainError(domain, op, ErrNotFound, message)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsGrade checks if the error is a grade or GPA range error.
func IsGrade(err error) bool {
	return errors.Is(err, ErrGrade)
}

// IsEnrollment checks if the error is a capacity error.
func IsEnrollment(err error) bool {
	return errors.Is(err, ErrEnrollment)
}

// IsPayment checks if the error is a payment error.
func IsPayment(err error) bool {
	return errors.Is(err, ErrPayment)
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// MessageOf returns the human-readable message of the first DomainError in
// the chain, or err.Error() for foreign errors.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
