package person

import (
	"fmt"
	"strconv"
)

// Details returns the display lines for p, parent lines first.
func Details(p *Person) []string {
	switch p.kind {
	case KindStudent:
		return studentDetails(p)
	case KindUndergraduate:
		return append(studentDetails(p), fmt.Sprintf(
			"Undergraduate - Major: %s, Minor: %s, Expected Graduation: %s",
			p.student.Major, p.student.Minor, p.student.ExpectedGraduation))
	case KindGraduate:
		return append(studentDetails(p), fmt.Sprintf(
			"Graduate - Research: %s, Advisor: %s",
			p.student.ResearchTopic, p.student.Advisor))
	case KindProfessor:
		return professorDetails(p)
	case KindAssistantProfessor:
		return append(professorDetails(p), fmt.Sprintf(
			"Assistant Professor - Publications: %d", p.professor.Publications))
	case KindAssociateProfessor:
		return append(professorDetails(p), fmt.Sprintf(
			"Associate Professor - Grants: %d", p.professor.Grants))
	case KindFullProfessor:
		return append(professorDetails(p), fmt.Sprintf(
			"Full Professor - Tenured: %s", yesNo(p.professor.Tenured)))
	default:
		return personDetails(p)
	}
}

func personDetails(p *Person) []string {
	return []string{fmt.Sprintf("Person: %s, Age: %d, ID: %s", p.name, p.age, p.id)}
}

func studentDetails(p *Person) []string {
	return append(personDetails(p), fmt.Sprintf(
		"Student - Program: %s, GPA: %s",
		p.student.Program, strconv.FormatFloat(p.student.gpa, 'g', -1, 64)))
}

func professorDetails(p *Person) []string {
	return append(personDetails(p), fmt.Sprintf(
		"Professor - Department: %s, Specialization: %s",
		p.professor.Department, p.professor.Specialization))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
