// Package enrollment keeps the roster of (student, course) pairs and
// enforces the per-course seat limit.
package enrollment

import (
	"github.com/alem-hub/university-registry/internal/domain/shared"
)

// DefaultCapacity is the seat limit of every course unless configured.
const DefaultCapacity = 30

// MsgCourseFull is the message of the error returned by Enroll on a full course.
const MsgCourseFull = "Course is full"

// Policy configures a Manager.
type Policy struct {
	// Capacity is the maximum number of roster entries per course.
	// Values <= 0 fall back to DefaultCapacity.
	Capacity int
}

// DefaultPolicy returns the standard policy.
func DefaultPolicy() Policy {
	return Policy{Capacity: DefaultCapacity}
}

// Record is one roster entry.
type Record struct {
	StudentID string
	Course    shared.CourseRef
}

// Manager holds the roster. It does not check that a student is enrolled
// only once per course; repeated enrollments each take a seat.
type Manager struct {
	capacity int
	roster   []Record
}

// NewManager creates an empty roster under policy.
func NewManager(policy Policy) *Manager {
	if policy.Capacity <= 0 {
		policy.Capacity = DefaultCapacity
	}
	return &Manager{capacity: policy.Capacity}
}

// Capacity returns the seat limit per course.
func (m *Manager) Capacity() int {
	return m.capacity
}

// Enroll adds (studentID, course) if the course has a free seat.
// A full course yields an ErrEnrollment error and leaves the roster unchanged.
func (m *Manager) Enroll(studentID string, course shared.CourseRef) error {
	if m.EnrollmentCount(course) >= m.capacity {
		return shared.NewEnrollmentError("enrollment", "Enroll", MsgCourseFull)
	}
	m.roster = append(m.roster, Record{StudentID: studentID, Course: course})
	return nil
}

// Drop removes the first matching pair. It reports whether one was found;
// a missing pair is not an error.
func (m *Manager) Drop(studentID string, course shared.CourseRef) bool {
	for i, r := range m.roster {
		if r.StudentID == studentID && r.Course == course {
			m.roster = append(m.roster[:i], m.roster[i+1:]...)
			return true
		}
	}
	return false
}

// EnrollmentCount returns the number of roster entries for course.
func (m *Manager) EnrollmentCount(course shared.CourseRef) int {
	n := 0
	for _, r := range m.roster {
		if r.Course == course {
			n++
		}
	}
	return n
}

// StudentsIn returns the student of every entry for course, in roster order.
func (m *Manager) StudentsIn(course shared.CourseRef) []string {
	var out []string
	for _, r := range m.roster {
		if r.Course == course {
			out = append(out, r.StudentID)
		}
	}
	return out
}

// DropCourse removes every entry for course and returns how many went.
func (m *Manager) DropCourse(course shared.CourseRef) int {
	kept := m.roster[:0]
	removed := 0
	for _, r := range m.roster {
		if r.Course == course {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	m.roster = kept
	return removed
}

// RosterSize returns the total number of entries.
func (m *Manager) RosterSize() int {
	return len(m.roster)
}

// Roster returns a copy of the roster in insertion order.
func (m *Manager) Roster() []Record {
	out := make([]Record, len(m.roster))
	copy(out, m.roster)
	return out
}
