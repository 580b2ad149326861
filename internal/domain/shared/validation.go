package shared

// Bounds enforced by the validation rules.
const (
	MinAge = 1
	MaxAge = 120

	MinGPA = 0.0
	MaxGPA = 4.0

	MinGrade = 0.0
	MaxGrade = 100.0
)

// ValidateName rejects empty names.
func ValidateName(name string) error {
	if name == "" {
		return NewValidationError("person", "ValidateName", "Name cannot be empty")
	}
	return nil
}

// ValidateAge accepts ages in (0, 120].
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return NewValidationError("person", "ValidateAge", "Invalid age")
	}
	return nil
}

// ValidateID rejects empty identifiers.
func ValidateID(id string) error {
	if id == "" {
		return NewValidationError("person", "ValidateID", "ID cannot be empty")
	}
	return nil
}

// ValidateGPA accepts values in [0.0, 4.0]. NaN is rejected.
func ValidateGPA(gpa float64) error {
	if !(gpa >= MinGPA && gpa <= MaxGPA) {
		return NewGradeError("student", "ValidateGPA", "GPA must be between 0.0 and 4.0")
	}
	return nil
}

// ValidateGrade accepts values in [0.0, 100.0]. NaN is rejected.
func ValidateGrade(grade float64) error {
	if !(grade >= MinGrade && grade <= MaxGrade) {
		return NewGradeError("gradebook", "ValidateGrade", "Grade must be between 0.0 and 100.0")
	}
	return nil
}

// ValidateCredits accepts strictly positive credit counts.
func ValidateCredits(credits int) error {
	if credits <= 0 {
		return NewValidationError("course", "ValidateCredits", "Credits must be positive")
	}
	return nil
}
