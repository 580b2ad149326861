package shared

import "fmt"

// ═══════════════════════════════════════════════════════════════════════════
// Handles
// ═══════════════════════════════════════════════════════════════════════════
//
// Entities owned by the university are addressed by handles into its
// tables. Handles start at 1; the zero value means "no entity".

// CourseRef addresses a course owned by the university.
type CourseRef int

// IsValid reports whether the handle could address a course.
func (r CourseRef) IsValid() bool { return r > 0 }

// String returns the string representation.
func (r CourseRef) String() string { return fmt.Sprintf("course#%d", int(r)) }

// PersonRef addresses a person owned by the university.
type PersonRef int

// IsValid reports whether the handle could address a person.
func (r PersonRef) IsValid() bool { return r > 0 }

// String returns the string representation.
func (r PersonRef) String() string { return fmt.Sprintf("person#%d", int(r)) }

// DepartmentRef addresses a department owned by the university.
type DepartmentRef int

// IsValid reports whether the handle could address a department.
func (r DepartmentRef) IsValid() bool { return r > 0 }

// String returns the string representation.
func (r DepartmentRef) String() string { return fmt.Sprintf("department#%d", int(r)) }

// ClassroomRef addresses a classroom owned by the university.
type ClassroomRef int

// IsValid reports whether the handle could address a classroom.
func (r ClassroomRef) IsValid() bool { return r > 0 }

// String returns the string representation.
func (r ClassroomRef) String() string { return fmt.Sprintf("classroom#%d", int(r)) }
