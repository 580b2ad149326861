package shared

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAge(t *testing.T) {
	tests := []struct {
		age     int
		wantErr bool
	}{
		{age: -1, wantErr: true},
		{age: 0, wantErr: true},
		{age: 1, wantErr: false},
		{age: 45, wantErr: false},
		{age: 120, wantErr: false},
		{age: 121, wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateAge(tt.age)
		if tt.wantErr {
			require.Error(t, err, "age %d", tt.age)
			assert.True(t, IsValidation(err))
			assert.Equal(t, "Invalid age", MessageOf(err))
		} else {
			assert.NoError(t, err, "age %d", tt.age)
		}
	}
}

func TestValidateGrade(t *testing.T) {
	assert.NoError(t, ValidateGrade(0.0))
	assert.NoError(t, ValidateGrade(100.0))

	for _, g := range []float64{-0.01, 100.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ValidateGrade(g)
		require.Error(t, err)
		assert.True(t, IsGrade(err))
		assert.False(t, IsValidation(err))
	}
}

func TestValidateGPA(t *testing.T) {
	assert.NoError(t, ValidateGPA(0.0))
	assert.NoError(t, ValidateGPA(4.0))

	err := ValidateGPA(4.01)
	require.Error(t, err)
	assert.True(t, IsGrade(err))
	assert.Equal(t, "GPA must be between 0.0 and 4.0", MessageOf(err))

	for _, g := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.True(t, IsGrade(ValidateGPA(g)), "gpa %v", g)
	}
}

func TestValidateStrings(t *testing.T) {
	assert.NoError(t, ValidateName("Ada"))
	assert.NoError(t, ValidateID("S001"))

	assert.True(t, IsValidation(ValidateName("")))
	assert.True(t, IsValidation(ValidateID("")))
	assert.Equal(t, "Name cannot be empty", MessageOf(ValidateName("")))
	assert.Equal(t, "ID cannot be empty", MessageOf(ValidateID("")))
}

func TestValidateCredits(t *testing.T) {
	assert.NoError(t, ValidateCredits(1))
	assert.True(t, IsValidation(ValidateCredits(0)))
	assert.True(t, IsValidation(ValidateCredits(-3)))
}

func TestDomainError_KindsAndTimestamp(t *testing.T) {
	before := time.Now()
	err := NewEnrollmentError("enrollment", "Enroll", "Course is full")

	assert.True(t, IsEnrollment(err))
	assert.False(t, IsGrade(err))
	assert.False(t, IsPayment(err))
	assert.Equal(t, "enrollment.Enroll: Course is full", err.Error())
	assert.False(t, err.At.Before(before))
	assert.Equal(t, err.At.Format(time.ANSIC), err.Timestamp())

	wrapped := WrapError("system", "EnrollStudent", ErrEnrollment, "enroll failed", errors.New("boom"))
	assert.True(t, IsEnrollment(wrapped))
	assert.Contains(t, wrapped.Error(), "boom")

	assert.True(t, IsPayment(NewPaymentError("person", "Pay", "reserved")))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
	assert.Equal(t, "", MessageOf(nil))
}

func TestRefs(t *testing.T) {
	var none CourseRef
	assert.False(t, none.IsValid())
	assert.True(t, CourseRef(1).IsValid())
	assert.Equal(t, "course#3", CourseRef(3).String())
	assert.False(t, PersonRef(0).IsValid())
	assert.Equal(t, "person#2", PersonRef(2).String())
}

func TestEnrollmentEventPayload(t *testing.T) {
	ev := NewEnrollmentRejectedEvent("S001", CourseRef(4), "Course is full")

	assert.Equal(t, EventEnrollmentRejected, ev.EventType())
	assert.NotEmpty(t, ev.EventID())
	assert.Equal(t, "Course is full", ev.Payload()["reason"])
	assert.Equal(t, 4, ev.Payload()["course"])

	ok := NewStudentEnrolledEvent("S001", CourseRef(4))
	_, hasReason := ok.Payload()["reason"]
	assert.False(t, hasReason)
	assert.NotEqual(t, ev.EventID(), ok.EventID())
}
