package system

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-registry/config"
	"github.com/alem-hub/university-registry/internal/domain/enrollment"
	"github.com/alem-hub/university-registry/internal/domain/person"
	"github.com/alem-hub/university-registry/internal/domain/shared"
	"github.com/alem-hub/university-registry/internal/infrastructure/errorlog"
	"github.com/alem-hub/university-registry/internal/infrastructure/messaging"
)

type captureRecorder struct {
	errs   []*shared.DomainError
	closes int
}

func (r *captureRecorder) Record(err *shared.DomainError) error {
	r.errs = append(r.errs, err)
	return nil
}

func (r *captureRecorder) Close() error {
	r.closes++
	return nil
}

func newTestSystem(t *testing.T, capacity int) (*System, *captureRecorder, *[]shared.EventType) {
	t.Helper()

	rec := &captureRecorder{}
	bus := messaging.NewInMemoryEventBus(nil)
	var events []shared.EventType
	require.NoError(t, bus.SubscribeAll(func(e shared.Event) error {
		events = append(events, e.EventType())
		return nil
	}))

	sys := New(Options{
		Enrollment: enrollment.Policy{Capacity: capacity},
		Recorder:   rec,
		Bus:        bus,
	})
	return sys, rec, &events
}

func mustCourse(t *testing.T, sys *System, code string) shared.CourseRef {
	t.Helper()
	ref, err := sys.AddCourse(code, "Course "+code, 3, "")
	require.NoError(t, err)
	return ref
}

func TestEnrollStudent_RejectionIsRecordedAndReturned(t *testing.T) {
	sys, rec, events := newTestSystem(t, 2)
	cs101 := mustCourse(t, sys, "CS101")

	require.NoError(t, sys.EnrollStudent("S001", cs101))
	require.NoError(t, sys.EnrollStudent("S002", cs101))

	err := sys.EnrollStudent("S003", cs101)
	require.Error(t, err)
	assert.True(t, shared.IsEnrollment(err))
	assert.Equal(t, enrollment.MsgCourseFull, shared.MessageOf(err))

	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	require.Len(t, rec.errs, 1)
	assert.Same(t, rec.errs[0], de)

	assert.Equal(t, 2, sys.EnrollmentCount(cs101))
	assert.Equal(t, []shared.EventType{
		shared.EventStudentEnrolled,
		shared.EventStudentEnrolled,
		shared.EventEnrollmentRejected,
	}, *events)
}

func TestEnrollStudent_UnknownCourseIsNotLogged(t *testing.T) {
	sys, rec, events := newTestSystem(t, 0)

	err := sys.EnrollStudent("S001", shared.CourseRef(42))
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	assert.Empty(t, rec.errs)
	assert.Empty(t, *events)
}

func TestEnrollStudent_DefaultCapacity(t *testing.T) {
	sys, rec, _ := newTestSystem(t, 0)
	course := mustCourse(t, sys, "CS101")

	for i := 0; i < enrollment.DefaultCapacity; i++ {
		require.NoError(t, sys.EnrollStudent("S001", course))
	}
	assert.Error(t, sys.EnrollStudent("S001", course))
	assert.Len(t, rec.errs, 1)
}

func TestEnrollStudent_WritesOneLinePerRejection(t *testing.T) {
	var buf bytes.Buffer
	sys := New(Options{
		Enrollment: enrollment.Policy{Capacity: 1},
		Recorder:   errorlog.New(&buf),
	})
	course := mustCourse(t, sys, "CS101")

	require.NoError(t, sys.EnrollStudent("S001", course))
	assert.Error(t, sys.EnrollStudent("S002", course))
	assert.Error(t, sys.EnrollStudent("S003", course))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Regexp(t, `^Exception at \w{3} \w{3} [ \d]\d \d{2}:\d{2}:\d{2} \d{4}: Course is full$`, line)
	}
}

func TestDropStudent(t *testing.T) {
	sys, _, events := newTestSystem(t, 0)
	course := mustCourse(t, sys, "CS101")
	require.NoError(t, sys.EnrollStudent("S001", course))

	assert.False(t, sys.DropStudent("S999", course))
	assert.True(t, sys.DropStudent("S001", course))
	assert.Equal(t, 0, sys.EnrollmentCount(course))
	assert.Equal(t, shared.EventStudentDropped, (*events)[len(*events)-1])
}

func TestRemoveCourse_PurgesRosterAndSchedule(t *testing.T) {
	sys, _, events := newTestSystem(t, 0)
	cs101 := mustCourse(t, sys, "CS101")
	cs201 := mustCourse(t, sys, "CS201")
	room := sys.AddClassroom("A-101", 40)
	require.NoError(t, sys.ScheduleCourse(cs101, room, "Mon 09:00"))
	require.NoError(t, sys.ScheduleCourse(cs201, room, "Tue 09:00"))
	require.NoError(t, sys.EnrollStudent("S001", cs101))
	require.NoError(t, sys.EnrollStudent("S002", cs101))
	require.NoError(t, sys.EnrollStudent("S001", cs201))

	require.NoError(t, sys.RemoveCourse(cs101))

	assert.Equal(t, 0, sys.EnrollmentCount(cs101))
	assert.Equal(t, 1, sys.EnrollmentCount(cs201))
	assert.Empty(t, sys.University().Schedule().ForCourse(cs101))
	assert.Len(t, sys.University().Schedule().Slots(), 1)
	assert.Equal(t, shared.EventCourseRemoved, (*events)[len(*events)-1])

	assert.True(t, shared.IsNotFound(sys.EnrollStudent("S003", cs101)))
	assert.True(t, shared.IsNotFound(sys.RemoveCourse(cs101)))
}

func TestPaymentAndDetails(t *testing.T) {
	sys, _, _ := newTestSystem(t, 0)

	ug, err := person.NewUndergraduate(
		person.Params{Name: "Raj Grover", Age: 20, ID: "S001"},
		person.StudentParams{Program: "Computer Science", GPA: 3.8},
		person.UndergraduateParams{Major: "CS", Minor: "Math", ExpectedGraduation: "2026"},
	)
	require.NoError(t, err)
	ref := sys.AddPerson(ug)

	amount, err := sys.Payment(ref)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, amount)

	lines, err := sys.Details(ref)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Person: Raj Grover, Age: 20, ID: S001",
		"Student - Program: Computer Science, GPA: 3.8",
		"Undergraduate - Major: CS, Minor: Math, Expected Graduation: 2026",
	}, lines)

	_, err = sys.Payment(shared.PersonRef(9))
	assert.True(t, shared.IsNotFound(err))
	_, err = sys.Details(shared.PersonRef(9))
	assert.True(t, shared.IsNotFound(err))
}

func TestPayment_CustomFees(t *testing.T) {
	fees := person.DefaultFeeSchedule()
	fees.TenureBonus = 0
	sys := New(Options{Fees: &fees})

	prof, err := person.NewFullProfessor(
		person.Params{Name: "Dr. Jack", Age: 45, ID: "P001"},
		person.ProfessorParams{YearsOfService: 15},
		true,
	)
	require.NoError(t, err)

	amount, err := sys.Payment(sys.AddPerson(prof))
	require.NoError(t, err)
	assert.Equal(t, 65000.0, amount)
}

func TestRemovePerson_ClearsInstructor(t *testing.T) {
	sys, _, events := newTestSystem(t, 0)
	course := mustCourse(t, sys, "CS101")
	dept := sys.AddDepartment("Computer Science", "Building A", 1000000)

	prof, err := person.NewFullProfessor(
		person.Params{Name: "Dr. Jack", Age: 45, ID: "P001"},
		person.ProfessorParams{YearsOfService: 15},
		true,
	)
	require.NoError(t, err)
	pref := sys.AddPerson(prof)
	require.NoError(t, sys.AssignInstructor(course, pref))
	require.NoError(t, sys.AddProfessorToDepartment(dept, pref))

	require.NoError(t, sys.RemovePerson(pref))

	c, err := sys.University().Course(course)
	require.NoError(t, err)
	_, ok := c.Instructor()
	assert.False(t, ok)
	assert.Empty(t, sys.University().AllProfessors())
	assert.Equal(t, shared.EventPersonRemoved, (*events)[len(*events)-1])
}

func TestNewGradeBook(t *testing.T) {
	sys, _, _ := newTestSystem(t, 0)
	course := mustCourse(t, sys, "CS101")

	gb, err := sys.NewGradeBook(course)
	require.NoError(t, err)
	assert.Equal(t, course, gb.Course())

	_, err = sys.NewGradeBook(shared.CourseRef(7))
	assert.True(t, shared.IsNotFound(err))
}

func TestAddCourse_InvalidCredits(t *testing.T) {
	sys, _, _ := newTestSystem(t, 0)
	_, err := sys.AddCourse("CS101", "Intro", 0, "")
	assert.True(t, shared.IsValidation(err))
}

func TestClose_Idempotent(t *testing.T) {
	sys, rec, _ := newTestSystem(t, 0)
	require.NoError(t, sys.Close())
	require.NoError(t, sys.Close())
	assert.Equal(t, 1, rec.closes)
}

func TestOpen_AppendsToConfiguredFile(t *testing.T) {
	cfg := config.Default()
	cfg.ErrorLog.Path = filepath.Join(t.TempDir(), "errors.log")
	cfg.Enrollment.Capacity = 1

	for run := 0; run < 2; run++ {
		sys, err := Open(cfg, nil)
		require.NoError(t, err)
		course := mustCourse(t, sys, "CS101")
		require.NoError(t, sys.EnrollStudent("S001", course))
		assert.Error(t, sys.EnrollStudent("S002", course))
		require.NoError(t, sys.Close())
	}

	data, err := os.ReadFile(cfg.ErrorLog.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], ": Course is full"))
}

func TestOpen_BadPath(t *testing.T) {
	cfg := config.Default()
	cfg.ErrorLog.Path = filepath.Join(t.TempDir(), "missing", "dir", "errors.log")

	_, err := Open(cfg, nil)
	assert.Error(t, err)
}

func TestFeesFromConfig(t *testing.T) {
	assert.Equal(t, person.DefaultFeeSchedule(), FeesFromConfig(config.Default().Payment))
}

func TestOpen_ZeroFeesAreKept(t *testing.T) {
	cfg := config.Default()
	cfg.ErrorLog.Path = filepath.Join(t.TempDir(), "errors.log")
	cfg.Payment = config.PaymentConfig{}
	require.NoError(t, cfg.Validate())

	sys, err := Open(cfg, nil)
	require.NoError(t, err)
	defer sys.Close()

	ug, err := person.NewUndergraduate(
		person.Params{Name: "Raj Grover", Age: 20, ID: "S001"},
		person.StudentParams{GPA: 3.8},
		person.UndergraduateParams{},
	)
	require.NoError(t, err)

	amount, err := sys.Payment(sys.AddPerson(ug))
	require.NoError(t, err)
	assert.Equal(t, 0.0, amount)
}

func TestEvents_Subscribe(t *testing.T) {
	sys := New(Options{})
	course := mustCourse(t, sys, "CS101")

	var enrolled []string
	require.NoError(t, sys.Events().Subscribe(shared.EventStudentEnrolled, func(e shared.Event) error {
		enrolled = append(enrolled, e.Payload()["student_id"].(string))
		return nil
	}))

	require.NoError(t, sys.EnrollStudent("S001", course))
	require.NoError(t, sys.EnrollStudent("S002", course))
	assert.Equal(t, []string{"S001", "S002"}, enrolled)
}

func TestRemoveClassroom(t *testing.T) {
	sys, _, _ := newTestSystem(t, 0)
	course := mustCourse(t, sys, "CS101")
	room := sys.AddClassroom("A-101", 40)
	require.NoError(t, sys.ScheduleCourse(course, room, "Mon 09:00"))

	require.NoError(t, sys.RemoveClassroom(room))
	assert.Empty(t, sys.University().Schedule().Slots())
	assert.True(t, shared.IsNotFound(sys.RemoveClassroom(room)))
}
