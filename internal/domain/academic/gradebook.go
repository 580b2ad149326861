package academic

import (
	"github.com/alem-hub/university-registry/internal/domain/shared"
)

// PassingGrade is the lowest grade that is not failing.
const PassingGrade = 60.0

// GradeEntry is one line of a grade book ledger.
type GradeEntry struct {
	StudentID string
	Grade     float64
}

// GradeBook records grades for exactly one course. A student may appear
// more than once; every entry counts.
type GradeBook struct {
	course  shared.CourseRef
	entries []GradeEntry
}

// NewGradeBook creates an empty ledger for course.
func NewGradeBook(course shared.CourseRef) *GradeBook {
	return &GradeBook{course: course}
}

// Course returns the course this ledger belongs to.
func (g *GradeBook) Course() shared.CourseRef { return g.course }

// Len returns the number of entries.
func (g *GradeBook) Len() int { return len(g.entries) }

// Entries returns a copy of the ledger in insertion order.
func (g *GradeBook) Entries() []GradeEntry {
	out := make([]GradeEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

// AddGrade appends a grade. Out-of-range grades leave the ledger unchanged.
func (g *GradeBook) AddGrade(studentID string, grade float64) error {
	if err := shared.ValidateGrade(grade); err != nil {
		return err
	}
	g.entries = append(g.entries, GradeEntry{StudentID: studentID, Grade: grade})
	return nil
}

// AverageGrade returns the arithmetic mean, or 0 for an empty ledger.
func (g *GradeBook) AverageGrade() float64 {
	if len(g.entries) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, e := range g.entries {
		sum += e.Grade
	}
	return sum / float64(len(g.entries))
}

// HighestGrade returns the maximum grade, or 0 for an empty ledger.
func (g *GradeBook) HighestGrade() float64 {
	if len(g.entries) == 0 {
		return 0.0
	}
	highest := g.entries[0].Grade
	for _, e := range g.entries[1:] {
		if e.Grade > highest {
			highest = e.Grade
		}
	}
	return highest
}

// FailingStudents returns the student of every entry below PassingGrade,
// in ledger order.
func (g *GradeBook) FailingStudents() []string {
	failing := make([]string, 0)
	for _, e := range g.entries {
		if e.Grade < PassingGrade {
			failing = append(failing, e.StudentID)
		}
	}
	return failing
}
