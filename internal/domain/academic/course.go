// Package academic contains the teaching side of the university: courses,
// departments, classrooms, the timetable and per-course grade books.
//
// Relations to people and rooms are handles from package shared, resolved
// through the university aggregate.
package academic

import (
	"github.com/alem-hub/university-registry/internal/domain/shared"
)

// Course is a unit of teaching. Identity is the handle the university
// assigns; two courses may share a code.
type Course struct {
	code        string
	title       string
	credits     int
	description string
	instructor  shared.PersonRef
}

// NewCourse creates a course without an instructor.
func NewCourse(code, title string, credits int, description string) (*Course, error) {
	if err := shared.ValidateCredits(credits); err != nil {
		return nil, err
	}
	return &Course{
		code:        code,
		title:       title,
		credits:     credits,
		description: description,
	}, nil
}

// Code returns the catalog code, e.g. "CS101".
func (c *Course) Code() string { return c.code }

// Title returns the course title.
func (c *Course) Title() string { return c.title }

// Credits returns the credit count.
func (c *Course) Credits() int { return c.credits }

// Description returns the catalog description.
func (c *Course) Description() string { return c.description }

// Instructor returns the assigned professor and whether one is set.
func (c *Course) Instructor() (shared.PersonRef, bool) {
	return c.instructor, c.instructor.IsValid()
}

// SetInstructor assigns a professor. The zero handle clears it.
func (c *Course) SetInstructor(p shared.PersonRef) {
	c.instructor = p
}
