// Package system is the application facade of the registry. It owns the
// university aggregate and the enrollment roster, computes payments, and
// records every rejected enrollment in the failure log before handing the
// error back to the caller.
package system

import (
	"errors"
	"io"

	"github.com/alem-hub/university-registry/config"
	"github.com/alem-hub/university-registry/internal/domain/academic"
	"github.com/alem-hub/university-registry/internal/domain/enrollment"
	"github.com/alem-hub/university-registry/internal/domain/person"
	"github.com/alem-hub/university-registry/internal/domain/shared"
	"github.com/alem-hub/university-registry/internal/domain/university"
	"github.com/alem-hub/university-registry/internal/infrastructure/errorlog"
	"github.com/alem-hub/university-registry/internal/infrastructure/messaging"
	"github.com/alem-hub/university-registry/pkg/logger"
)

// Recorder persists domain failures.
type Recorder interface {
	Record(err *shared.DomainError) error
	Close() error
}

// Options configures a System. Nil fields select the defaults.
type Options struct {
	Enrollment enrollment.Policy
	Fees       *person.FeeSchedule
	Recorder   Recorder
	Logger     *logger.Logger
	Bus        shared.EventBus
}

// System is the registry facade.
type System struct {
	uni        *university.University
	enrollment *enrollment.Manager
	payments   person.PaymentCalculator
	recorder   Recorder
	bus        shared.EventBus
	log        *logger.Logger
	closed     bool
}

// New creates a system from opts.
func New(opts Options) *System {
	fees := person.DefaultFeeSchedule()
	if opts.Fees != nil {
		fees = *opts.Fees
	}
	if opts.Recorder == nil {
		opts.Recorder = errorlog.New(io.Discard)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Bus == nil {
		opts.Bus = messaging.NewInMemoryEventBus(opts.Logger)
	}

	return &System{
		uni:        university.New(),
		enrollment: enrollment.NewManager(opts.Enrollment),
		payments:   person.NewPaymentCalculator(fees),
		recorder:   opts.Recorder,
		bus:        opts.Bus,
		log:        opts.Logger.With(logger.Component("system")),
	}
}

// Open builds a system from cfg and opens the failure log at
// cfg.ErrorLog.Path. The caller must Close the system.
func Open(cfg *config.Config, log *logger.Logger) (*System, error) {
	if log == nil {
		log = logger.Nop()
	}

	rec, err := errorlog.Open(cfg.ErrorLog.Path)
	if err != nil {
		return nil, err
	}

	fees := FeesFromConfig(cfg.Payment)
	sys := New(Options{
		Enrollment: enrollment.Policy{Capacity: cfg.Enrollment.Capacity},
		Fees:       &fees,
		Recorder:   rec,
		Logger:     log,
		Bus:        messaging.NewInMemoryEventBus(log),
	})

	audit := messaging.Chain(func(e shared.Event) error {
		log.Debug("domain event",
			logger.EventType(string(e.EventType())),
			logger.String("event_id", e.EventID()),
			logger.Any("payload", e.Payload()),
		)
		return nil
	}, messaging.RecoveryMiddleware(log), messaging.LoggingMiddleware(log))
	if err := sys.Events().SubscribeAll(audit); err != nil {
		_ = sys.Close()
		return nil, err
	}
	return sys, nil
}

// FeesFromConfig maps the payment section of the configuration.
func FeesFromConfig(p config.PaymentConfig) person.FeeSchedule {
	return person.FeeSchedule{
		BaseTuition:         p.BaseTuition,
		UndergraduateFee:    p.UndergraduateFee,
		GraduateResearchFee: p.GraduateResearchFee,
		ProfessorBaseSalary: p.ProfessorBaseSalary,
		PerYearOfService:    p.PerYearOfService,
		PerPublication:      p.PerPublication,
		PerGrant:            p.PerGrant,
		TenureBonus:         p.TenureBonus,
	}
}

// University exposes the aggregate for read access.
func (s *System) University() *university.University { return s.uni }

// Enrollment exposes the roster for read access.
func (s *System) Enrollment() *enrollment.Manager { return s.enrollment }

// Events lets callers subscribe to the domain events the system publishes.
func (s *System) Events() shared.EventSubscriber { return s.bus }

// ══════════════════════════════════════════════════════════════════════════════
// CATALOG
// ══════════════════════════════════════════════════════════════════════════════

// AddDepartment creates a department and returns its handle.
func (s *System) AddDepartment(name, location string, budget float64) shared.DepartmentRef {
	ref := s.uni.AddDepartment(academic.NewDepartment(name, location, budget))
	s.log.Debug("department added",
		logger.String("department", name),
		logger.Float64("budget", budget),
	)
	return ref
}

// AddCourse creates a course and returns its handle.
func (s *System) AddCourse(code, title string, credits int, description string) (shared.CourseRef, error) {
	c, err := academic.NewCourse(code, title, credits, description)
	if err != nil {
		return 0, err
	}
	return s.uni.AddCourse(c), nil
}

// AddPerson stores p and returns its handle.
func (s *System) AddPerson(p *person.Person) shared.PersonRef {
	return s.uni.AddPerson(p)
}

// AddClassroom creates a classroom and returns its handle.
func (s *System) AddClassroom(roomNumber string, capacity int) shared.ClassroomRef {
	return s.uni.AddClassroom(academic.NewClassroom(roomNumber, capacity))
}

// RemoveClassroom deletes a classroom and every timetable slot booked in it.
func (s *System) RemoveClassroom(ref shared.ClassroomRef) error {
	r, dropped, err := s.uni.RemoveClassroom(ref)
	if err != nil {
		return err
	}
	s.log.Info("classroom removed",
		logger.Operation("RemoveClassroom"),
		logger.String("room", r.RoomNumber()),
		logger.Int("dropped_slots", dropped),
	)
	return nil
}

// AssignInstructor makes prof the instructor of course.
func (s *System) AssignInstructor(course shared.CourseRef, prof shared.PersonRef) error {
	return s.uni.AssignInstructor(course, prof)
}

// AddProfessorToDepartment links prof to dept.
func (s *System) AddProfessorToDepartment(dept shared.DepartmentRef, prof shared.PersonRef) error {
	return s.uni.AddProfessorToDepartment(dept, prof)
}

// ScheduleCourse books course into room at timeSlot.
func (s *System) ScheduleCourse(course shared.CourseRef, room shared.ClassroomRef, timeSlot string) error {
	return s.uni.ScheduleCourse(course, room, timeSlot)
}

// RemoveCourse deletes a course together with its roster entries and
// timetable slots.
func (s *System) RemoveCourse(ref shared.CourseRef) error {
	c, err := s.uni.RemoveCourse(ref)
	if err != nil {
		return err
	}
	dropped := s.enrollment.DropCourse(ref)

	s.log.Info("course removed",
		logger.Operation("RemoveCourse"),
		logger.CourseCode(c.Code()),
		logger.CourseRef(int(ref)),
		logger.Int("dropped_seats", dropped),
	)
	s.publish(shared.NewCourseRemovedEvent(ref, c.Code(), dropped))
	return nil
}

// RemovePerson deletes a person and clears every reference to them.
func (s *System) RemovePerson(ref shared.PersonRef) error {
	p, err := s.uni.RemovePerson(ref)
	if err != nil {
		return err
	}

	s.log.Info("person removed",
		logger.Operation("RemovePerson"),
		logger.PersonID(p.ID()),
	)
	s.publish(shared.NewPersonRemovedEvent(ref, p.ID()))
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ENROLLMENT
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudent adds studentID to course. A full course is written to the
// failure log and the roster's error is returned unchanged.
func (s *System) EnrollStudent(studentID string, course shared.CourseRef) error {
	c, err := s.uni.Course(course)
	if err != nil {
		return err
	}

	if err := s.enrollment.Enroll(studentID, course); err != nil {
		s.reject(studentID, course, c.Code(), err)
		return err
	}

	s.log.Debug("student enrolled",
		logger.StudentID(studentID),
		logger.CourseCode(c.Code()),
	)
	s.publish(shared.NewStudentEnrolledEvent(studentID, course))
	return nil
}

// DropStudent removes one enrollment of studentID in course. It reports
// whether anything was removed.
func (s *System) DropStudent(studentID string, course shared.CourseRef) bool {
	dropped := s.enrollment.Drop(studentID, course)
	s.log.Debug("drop requested",
		logger.StudentID(studentID),
		logger.CourseRef(int(course)),
		logger.Bool("dropped", dropped),
	)
	if !dropped {
		return false
	}
	s.publish(shared.NewStudentDroppedEvent(studentID, course))
	return true
}

// EnrollmentCount returns the number of seats taken in course.
func (s *System) EnrollmentCount(course shared.CourseRef) int {
	return s.enrollment.EnrollmentCount(course)
}

func (s *System) reject(studentID string, course shared.CourseRef, code string, cause error) {
	var de *shared.DomainError
	if errors.As(cause, &de) {
		if err := s.recorder.Record(de); err != nil {
			s.log.Error("failed to record enrollment failure", logger.Err(err))
		}
	}

	s.log.Warn("enrollment rejected",
		logger.Operation("EnrollStudent"),
		logger.StudentID(studentID),
		logger.CourseCode(code),
		logger.CourseRef(int(course)),
		logger.Err(cause),
	)
	s.publish(shared.NewEnrollmentRejectedEvent(studentID, course, shared.MessageOf(cause)))
}

// ══════════════════════════════════════════════════════════════════════════════
// PEOPLE
// ══════════════════════════════════════════════════════════════════════════════

// Payment returns the tuition owed by, or the salary paid to, the person.
func (s *System) Payment(ref shared.PersonRef) (float64, error) {
	p, err := s.uni.Person(ref)
	if err != nil {
		return 0, err
	}
	return s.payments.Payment(p), nil
}

// Details returns the display lines of the person.
func (s *System) Details(ref shared.PersonRef) ([]string, error) {
	p, err := s.uni.Person(ref)
	if err != nil {
		return nil, err
	}
	return person.Details(p), nil
}

// NewGradeBook opens an empty grade book for an existing course.
func (s *System) NewGradeBook(course shared.CourseRef) (*academic.GradeBook, error) {
	if _, err := s.uni.Course(course); err != nil {
		return nil, err
	}
	return academic.NewGradeBook(course), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// LIFECYCLE
// ══════════════════════════════════════════════════════════════════════════════

// Close releases the failure log and stops the event bus. Calling it again
// does nothing.
func (s *System) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if c, ok := s.bus.(interface{ Close() }); ok {
		c.Close()
	}
	return s.recorder.Close()
}

func (s *System) publish(e shared.Event) {
	if err := s.bus.Publish(e); err != nil {
		s.log.Warn("failed to publish event",
			logger.EventType(string(e.EventType())),
			logger.Err(err),
		)
	}
}
