// Package university contains the aggregate root that owns every
// department, course, person and classroom.
//
// Entities live in tables indexed by handle. Removing an entity leaves an
// empty slot, so its handle stops resolving while every other handle stays
// valid. References held elsewhere in the aggregate (course instructors,
// department members, timetable slots) are cleared on removal.
package university

import (
	"fmt"

	"github.com/alem-hub/university-registry/internal/domain/academic"
	"github.com/alem-hub/university-registry/internal/domain/person"
	"github.com/alem-hub/university-registry/internal/domain/shared"
)

// University is the aggregate root.
type University struct {
	departments []*academic.Department
	courses     []*academic.Course
	people      []*person.Person
	classrooms  []*academic.Classroom
	schedule    *academic.Schedule
}

// New creates an empty university.
func New() *University {
	return &University{schedule: academic.NewSchedule()}
}

// ══════════════════════════════════════════════════════════════════════════════
// DEPARTMENTS
// ══════════════════════════════════════════════════════════════════════════════

// AddDepartment stores d and returns its handle.
func (u *University) AddDepartment(d *academic.Department) shared.DepartmentRef {
	u.departments = append(u.departments, d)
	return shared.DepartmentRef(len(u.departments))
}

// Department resolves a handle.
func (u *University) Department(ref shared.DepartmentRef) (*academic.Department, error) {
	if d := slot(u.departments, int(ref)); d != nil {
		return d, nil
	}
	return nil, notFound("Department", ref)
}

// Departments returns the handles of every live department.
func (u *University) Departments() []shared.DepartmentRef {
	return live[shared.DepartmentRef](u.departments)
}

// AddProfessorToDepartment links a professor to a department.
func (u *University) AddProfessorToDepartment(dept shared.DepartmentRef, prof shared.PersonRef) error {
	d, err := u.Department(dept)
	if err != nil {
		return err
	}
	if err := u.requireProfessor("AddProfessorToDepartment", prof); err != nil {
		return err
	}
	d.AddProfessor(prof)
	return nil
}

// AllProfessors returns the professor handles of every department, in
// department order. A professor in two departments appears twice.
func (u *University) AllProfessors() []shared.PersonRef {
	var out []shared.PersonRef
	for _, d := range u.departments {
		if d == nil {
			continue
		}
		out = append(out, d.Professors()...)
	}
	return out
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSES
// ══════════════════════════════════════════════════════════════════════════════

// AddCourse stores c and returns its handle.
func (u *University) AddCourse(c *academic.Course) shared.CourseRef {
	u.courses = append(u.courses, c)
	return shared.CourseRef(len(u.courses))
}

// Course resolves a handle.
func (u *University) Course(ref shared.CourseRef) (*academic.Course, error) {
	if c := slot(u.courses, int(ref)); c != nil {
		return c, nil
	}
	return nil, notFound("Course", ref)
}

// Courses returns the handles of every live course.
func (u *University) Courses() []shared.CourseRef {
	return live[shared.CourseRef](u.courses)
}

// FindCourses returns the handles of live courses with the given code.
func (u *University) FindCourses(code string) []shared.CourseRef {
	var out []shared.CourseRef
	for i, c := range u.courses {
		if c != nil && c.Code() == code {
			out = append(out, shared.CourseRef(i+1))
		}
	}
	return out
}

// AssignInstructor makes prof the instructor of course.
func (u *University) AssignInstructor(course shared.CourseRef, prof shared.PersonRef) error {
	c, err := u.Course(course)
	if err != nil {
		return err
	}
	if err := u.requireProfessor("AssignInstructor", prof); err != nil {
		return err
	}
	c.SetInstructor(prof)
	return nil
}

// RemoveCourse deletes a course and its timetable slots and returns it.
func (u *University) RemoveCourse(ref shared.CourseRef) (*academic.Course, error) {
	c, err := u.Course(ref)
	if err != nil {
		return nil, err
	}
	u.courses[int(ref)-1] = nil
	u.schedule.RemoveCourse(ref)
	return c, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// PEOPLE
// ══════════════════════════════════════════════════════════════════════════════

// AddPerson stores p and returns its handle.
func (u *University) AddPerson(p *person.Person) shared.PersonRef {
	u.people = append(u.people, p)
	return shared.PersonRef(len(u.people))
}

// Person resolves a handle.
func (u *University) Person(ref shared.PersonRef) (*person.Person, error) {
	if p := slot(u.people, int(ref)); p != nil {
		return p, nil
	}
	return nil, notFound("Person", ref)
}

// People returns the handles of every live person.
func (u *University) People() []shared.PersonRef {
	return live[shared.PersonRef](u.people)
}

// FindPerson returns the first live person with the given id.
func (u *University) FindPerson(id string) (shared.PersonRef, bool) {
	for i, p := range u.people {
		if p != nil && p.ID() == id {
			return shared.PersonRef(i + 1), true
		}
	}
	return 0, false
}

// RemovePerson deletes a person, clears them as instructor and drops them
// from every department.
func (u *University) RemovePerson(ref shared.PersonRef) (*person.Person, error) {
	p, err := u.Person(ref)
	if err != nil {
		return nil, err
	}
	u.people[int(ref)-1] = nil
	for _, c := range u.courses {
		if c == nil {
			continue
		}
		if instructor, ok := c.Instructor(); ok && instructor == ref {
			c.SetInstructor(0)
		}
	}
	for _, d := range u.departments {
		if d != nil {
			d.RemoveProfessor(ref)
		}
	}
	return p, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// CLASSROOMS & SCHEDULE
// ══════════════════════════════════════════════════════════════════════════════

// AddClassroom stores r and returns its handle.
func (u *University) AddClassroom(r *academic.Classroom) shared.ClassroomRef {
	u.classrooms = append(u.classrooms, r)
	return shared.ClassroomRef(len(u.classrooms))
}

// Classroom resolves a handle.
func (u *University) Classroom(ref shared.ClassroomRef) (*academic.Classroom, error) {
	if r := slot(u.classrooms, int(ref)); r != nil {
		return r, nil
	}
	return nil, notFound("Classroom", ref)
}

// Classrooms returns the handles of every live classroom.
func (u *University) Classrooms() []shared.ClassroomRef {
	return live[shared.ClassroomRef](u.classrooms)
}

// RemoveClassroom deletes a classroom and every timetable slot booked in it.
// It returns the classroom and the number of slots dropped.
func (u *University) RemoveClassroom(ref shared.ClassroomRef) (*academic.Classroom, int, error) {
	r, err := u.Classroom(ref)
	if err != nil {
		return nil, 0, err
	}
	u.classrooms[int(ref)-1] = nil
	return r, u.schedule.RemoveClassroom(ref), nil
}

// ScheduleCourse books course into room at timeSlot.
func (u *University) ScheduleCourse(course shared.CourseRef, room shared.ClassroomRef, timeSlot string) error {
	if _, err := u.Course(course); err != nil {
		return err
	}
	if _, err := u.Classroom(room); err != nil {
		return err
	}
	u.schedule.AddCourseSchedule(course, room, timeSlot)
	return nil
}

// Schedule returns the timetable.
func (u *University) Schedule() *academic.Schedule {
	return u.schedule
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

func (u *University) requireProfessor(op string, ref shared.PersonRef) error {
	p, err := u.Person(ref)
	if err != nil {
		return err
	}
	if !p.Kind().IsProfessor() {
		return shared.NewValidationError("university", op,
			fmt.Sprintf("%s (%s) is not a professor", p.ID(), p.Kind()))
	}
	return nil
}

func slot[T any](table []*T, ref int) *T {
	if ref < 1 || ref > len(table) {
		return nil
	}
	return table[ref-1]
}

func live[R ~int, T any](table []*T) []R {
	out := make([]R, 0, len(table))
	for i, e := range table {
		if e != nil {
			out = append(out, R(i+1))
		}
	}
	return out
}

func notFound(what string, ref fmt.Stringer) error {
	return shared.NewNotFoundError("university", what, ref.String()+" does not exist")
}
