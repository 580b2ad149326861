// Package person contains the people of the university: students and
// professors with their kind-specific profiles.
//
// Variants are a single tagged record rather than a type hierarchy. Kind
// selects which profile fields are meaningful, and payment and display
// dispatch on it while composing the parent step first.
package person

import (
	"github.com/alem-hub/university-registry/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// KIND
// ══════════════════════════════════════════════════════════════════════════════

// Kind identifies the variant of a Person.
type Kind int

const (
	KindPerson Kind = iota
	KindStudent
	KindUndergraduate
	KindGraduate
	KindProfessor
	KindAssistantProfessor
	KindAssociateProfessor
	KindFullProfessor
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindStudent:
		return "student"
	case KindUndergraduate:
		return "undergraduate"
	case KindGraduate:
		return "graduate"
	case KindProfessor:
		return "professor"
	case KindAssistantProfessor:
		return "assistant_professor"
	case KindAssociateProfessor:
		return "associate_professor"
	case KindFullProfessor:
		return "full_professor"
	default:
		return "unknown"
	}
}

// IsStudent reports whether the kind belongs to the student family.
func (k Kind) IsStudent() bool {
	return k == KindStudent || k == KindUndergraduate || k == KindGraduate
}

// IsProfessor reports whether the kind belongs to the professor family.
func (k Kind) IsProfessor() bool {
	switch k {
	case KindProfessor, KindAssistantProfessor, KindAssociateProfessor, KindFullProfessor:
		return true
	default:
		return false
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// PROFILES
// ══════════════════════════════════════════════════════════════════════════════

// StudentProfile holds the student-family fields.
type StudentProfile struct {
	EnrollmentDate string
	Program        string
	gpa            float64

	// Undergraduate
	Major              string
	Minor              string
	ExpectedGraduation string

	// Graduate
	ResearchTopic string
	Advisor       string
	ThesisTitle   string
}

// GPA returns the grade point average.
func (s *StudentProfile) GPA() float64 {
	return s.gpa
}

// ProfessorProfile holds the professor-family fields.
type ProfessorProfile struct {
	Department     string
	Specialization string
	HireDate       string
	YearsOfService int

	Publications int  // assistant professors
	Grants       int  // associate professors
	Tenured      bool // full professors
}

// ══════════════════════════════════════════════════════════════════════════════
// PERSON
// ══════════════════════════════════════════════════════════════════════════════

// Person is a member of the university. The zero value is not usable;
// build one with the New* constructors.
type Person struct {
	name        string
	age         int
	id          string
	contactInfo string

	kind      Kind
	student   *StudentProfile
	professor *ProfessorProfile
}

// Params contains the fields shared by every kind.
type Params struct {
	Name        string
	Age         int
	ID          string
	ContactInfo string
}

// StudentParams contains the student-family fields.
type StudentParams struct {
	EnrollmentDate string
	Program        string
	GPA            float64
}

// UndergraduateParams contains the undergraduate fields.
type UndergraduateParams struct {
	Major              string
	Minor              string
	ExpectedGraduation string
}

// GraduateParams contains the graduate fields.
type GraduateParams struct {
	ResearchTopic string
	Advisor       string
	ThesisTitle   string
}

// ProfessorParams contains the professor-family fields.
type ProfessorParams struct {
	Department     string
	Specialization string
	HireDate       string
	YearsOfService int
}

// New creates a plain person.
func New(p Params) (*Person, error) {
	if err := shared.ValidateName(p.Name); err != nil {
		return nil, err
	}
	if err := shared.ValidateAge(p.Age); err != nil {
		return nil, err
	}
	if err := shared.ValidateID(p.ID); err != nil {
		return nil, err
	}
	return &Person{
		name:        p.Name,
		age:         p.Age,
		id:          p.ID,
		contactInfo: p.ContactInfo,
		kind:        KindPerson,
	}, nil
}

// NewStudent creates a student.
func NewStudent(p Params, s StudentParams) (*Person, error) {
	person, err := New(p)
	if err != nil {
		return nil, err
	}
	if err := shared.ValidateGPA(s.GPA); err != nil {
		return nil, err
	}
	person.kind = KindStudent
	person.student = &StudentProfile{
		EnrollmentDate: s.EnrollmentDate,
		Program:        s.Program,
		gpa:            s.GPA,
	}
	return person, nil
}

// NewUndergraduate creates an undergraduate student.
func NewUndergraduate(p Params, s StudentParams, u UndergraduateParams) (*Person, error) {
	person, err := NewStudent(p, s)
	if err != nil {
		return nil, err
	}
	person.kind = KindUndergraduate
	person.student.Major = u.Major
	person.student.Minor = u.Minor
	person.student.ExpectedGraduation = u.ExpectedGraduation
	return person, nil
}

// NewGraduate creates a graduate student.
func NewGraduate(p Params, s StudentParams, g GraduateParams) (*Person, error) {
	person, err := NewStudent(p, s)
	if err != nil {
		return nil, err
	}
	person.kind = KindGraduate
	person.student.ResearchTopic = g.ResearchTopic
	person.student.Advisor = g.Advisor
	person.student.ThesisTitle = g.ThesisTitle
	return person, nil
}

// NewProfessor creates a professor.
func NewProfessor(p Params, pp ProfessorParams) (*Person, error) {
	person, err := New(p)
	if err != nil {
		return nil, err
	}
	person.kind = KindProfessor
	person.professor = &ProfessorProfile{
		Department:     pp.Department,
		Specialization: pp.Specialization,
		HireDate:       pp.HireDate,
		YearsOfService: pp.YearsOfService,
	}
	return person, nil
}

// NewAssistantProfessor creates an assistant professor.
func NewAssistantProfessor(p Params, pp ProfessorParams, publications int) (*Person, error) {
	person, err := NewProfessor(p, pp)
	if err != nil {
		return nil, err
	}
	person.kind = KindAssistantProfessor
	person.professor.Publications = publications
	return person, nil
}

// NewAssociateProfessor creates an associate professor.
func NewAssociateProfessor(p Params, pp ProfessorParams, grants int) (*Person, error) {
	person, err := NewProfessor(p, pp)
	if err != nil {
		return nil, err
	}
	person.kind = KindAssociateProfessor
	person.professor.Grants = grants
	return person, nil
}

// NewFullProfessor creates a full professor.
func NewFullProfessor(p Params, pp ProfessorParams, tenured bool) (*Person, error) {
	person, err := NewProfessor(p, pp)
	if err != nil {
		return nil, err
	}
	person.kind = KindFullProfessor
	person.professor.Tenured = tenured
	return person, nil
}

// Name returns the person's name.
func (p *Person) Name() string { return p.name }

// Age returns the person's age.
func (p *Person) Age() int { return p.age }

// ID returns the caller-assigned identifier.
func (p *Person) ID() string { return p.id }

// ContactInfo returns free-form contact details.
func (p *Person) ContactInfo() string { return p.contactInfo }

// Kind returns the variant tag.
func (p *Person) Kind() Kind { return p.kind }

// Student returns the student profile, or nil for non-students.
func (p *Person) Student() *StudentProfile { return p.student }

// Professor returns the professor profile, or nil for non-professors.
func (p *Person) Professor() *ProfessorProfile { return p.professor }

// SetName replaces the name after validation.
func (p *Person) SetName(name string) error {
	if err := shared.ValidateName(name); err != nil {
		return err
	}
	p.name = name
	return nil
}

// SetAge replaces the age after validation.
func (p *Person) SetAge(age int) error {
	if err := shared.ValidateAge(age); err != nil {
		return err
	}
	p.age = age
	return nil
}

// SetContactInfo replaces the contact details. Any value is accepted.
func (p *Person) SetContactInfo(contact string) {
	p.contactInfo = contact
}

// SetGPA replaces a student's GPA after validation.
func (p *Person) SetGPA(gpa float64) error {
	if p.student == nil {
		return shared.NewValidationError("person", "SetGPA", "person is not a student")
	}
	if err := shared.ValidateGPA(gpa); err != nil {
		return err
	}
	p.student.gpa = gpa
	return nil
}
