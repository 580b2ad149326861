package enrollment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-registry/internal/domain/shared"
)

const cs101 = shared.CourseRef(1)
const cs201 = shared.CourseRef(2)

func TestEnroll_CapacityBoundary(t *testing.T) {
	m := NewManager(DefaultPolicy())

	for i := 1; i <= 30; i++ {
		require.NoError(t, m.Enroll(fmt.Sprintf("S%03d", i), cs101), "enrollment %d", i)
	}
	assert.Equal(t, 30, m.EnrollmentCount(cs101))

	err := m.Enroll("S031", cs101)
	require.Error(t, err)
	assert.True(t, shared.IsEnrollment(err))
	assert.Equal(t, MsgCourseFull, shared.MessageOf(err))
	assert.Equal(t, 30, m.EnrollmentCount(cs101))
	assert.Equal(t, 30, m.RosterSize())

	// other courses are counted separately
	assert.NoError(t, m.Enroll("S031", cs201))
}

func TestEnroll_DuplicateStudentTakesAnotherSeat(t *testing.T) {
	m := NewManager(Policy{Capacity: 3})

	require.NoError(t, m.Enroll("S001", cs101))
	require.NoError(t, m.Enroll("S001", cs101))
	assert.Equal(t, 2, m.EnrollmentCount(cs101))
	assert.Equal(t, []string{"S001", "S001"}, m.StudentsIn(cs101))
}

func TestEnroll_ConfiguredCapacity(t *testing.T) {
	m := NewManager(Policy{Capacity: 2})
	assert.Equal(t, 2, m.Capacity())

	require.NoError(t, m.Enroll("S001", cs101))
	require.NoError(t, m.Enroll("S002", cs101))
	assert.True(t, shared.IsEnrollment(m.Enroll("S003", cs101)))
}

func TestNewManager_NonPositiveCapacityFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewManager(Policy{}).Capacity())
	assert.Equal(t, DefaultCapacity, NewManager(Policy{Capacity: -4}).Capacity())
}

func TestDrop(t *testing.T) {
	m := NewManager(DefaultPolicy())
	require.NoError(t, m.Enroll("S001", cs101))
	require.NoError(t, m.Enroll("S002", cs101))
	require.NoError(t, m.Enroll("S001", cs101))

	// absent pair is a no-op
	assert.False(t, m.Drop("S999", cs101))
	assert.False(t, m.Drop("S001", cs201))
	assert.Equal(t, 3, m.RosterSize())
	assert.Equal(t, 3, m.EnrollmentCount(cs101))

	// only the first match goes
	assert.True(t, m.Drop("S001", cs101))
	assert.Equal(t, []Record{
		{StudentID: "S002", Course: cs101},
		{StudentID: "S001", Course: cs101},
	}, m.Roster())
}

func TestDrop_FreesSeat(t *testing.T) {
	m := NewManager(Policy{Capacity: 1})
	require.NoError(t, m.Enroll("S001", cs101))
	require.Error(t, m.Enroll("S002", cs101))

	m.Drop("S001", cs101)
	assert.NoError(t, m.Enroll("S002", cs101))
}

func TestDropCourse(t *testing.T) {
	m := NewManager(DefaultPolicy())
	require.NoError(t, m.Enroll("S001", cs101))
	require.NoError(t, m.Enroll("S001", cs201))
	require.NoError(t, m.Enroll("S002", cs101))

	assert.Equal(t, 2, m.DropCourse(cs101))
	assert.Equal(t, 0, m.EnrollmentCount(cs101))
	assert.Equal(t, []Record{{StudentID: "S001", Course: cs201}}, m.Roster())
}
