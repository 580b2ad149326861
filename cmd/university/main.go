// Package main is the entry point of the university registry demo.
//
// It builds a small university (one department, two courses, two students
// and a professor), prints every person with their payment, enrolls the
// students and prints grade statistics for the first course.
//
// Exit codes: 0 on success, 1 when a domain operation fails, 2 when the
// configuration or the failure log cannot be set up.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alem-hub/university-registry/config"
	"github.com/alem-hub/university-registry/internal/application/system"
	"github.com/alem-hub/university-registry/internal/domain/person"
	"github.com/alem-hub/university-registry/internal/domain/shared"
	"github.com/alem-hub/university-registry/internal/interface/console"
	"github.com/alem-hub/university-registry/pkg/logger"
)

const (
	exitOK     = 0
	exitDomain = 1
	exitSetup  = 2
)

// setupError marks failures that happen before the demo starts.
type setupError struct{ err error }

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a YAML config file (optional)")
	flag.Parse()

	os.Exit(exitCode(run(configPath, os.Stdout, os.Stderr), os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	var se *setupError
	if errors.As(err, &se) {
		fmt.Fprintf(stderr, "Setup error: %v\n", se.err)
		return exitSetup
	}
	fmt.Fprintf(stderr, "Error: %s\n", shared.MessageOf(err))
	return exitDomain
}

func run(configPath string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return &setupError{err: err}
	}

	log := logger.New(logger.Options{
		Output: stderr,
		Level:  logger.ParseLevel(cfg.Observability.LogLevel),
		Format: cfg.Observability.LogFormat,
	})
	defer func() { _ = log.Sync() }()

	sys, err := system.Open(cfg, log)
	if err != nil {
		return &setupError{err: err}
	}
	defer func() {
		if err := sys.Close(); err != nil {
			log.Error("failed to close failure log", logger.Err(err))
		}
	}()

	log.Info("university registry started",
		logger.String("app", cfg.App.Name),
		logger.String("env", string(cfg.App.Environment)),
		logger.Int("capacity", cfg.Enrollment.Capacity),
		logger.String("error_log", cfg.ErrorLog.Path),
	)

	out := console.NewPresenter(stdout)
	if err := demo(sys, out); err != nil {
		return err
	}
	return out.Err()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// ══════════════════════════════════════════════════════════════════════════════
// DEMO
// ══════════════════════════════════════════════════════════════════════════════

func demo(sys *system.System, out *console.Presenter) error {
	dept := sys.AddDepartment("Computer Science", "Building A", 1000000.0)

	cs101, err := sys.AddCourse("CS101", "Intro to Programming", 3, "Basic programming")
	if err != nil {
		return err
	}
	if _, err := sys.AddCourse("CS201", "Data Structures", 3, "Advanced programming"); err != nil {
		return err
	}

	undergrad, err := person.NewUndergraduate(
		person.Params{Name: "Raj Grover", Age: 20, ID: "S001", ContactInfo: "raj@gmail.com"},
		person.StudentParams{EnrollmentDate: "2022-01-01", Program: "Computer Science", GPA: 3.8},
		person.UndergraduateParams{Major: "CS", Minor: "Math", ExpectedGraduation: "2027-01-01"},
	)
	if err != nil {
		return err
	}

	grad, err := person.NewGraduate(
		person.Params{Name: "Kajal Sharma", Age: 25, ID: "S002", ContactInfo: "kajal@gmail.com"},
		person.StudentParams{EnrollmentDate: "2024-01-01", Program: "Computer Science", GPA: 3.6},
		person.GraduateParams{ResearchTopic: "AI", Advisor: "Dr. Jack", ThesisTitle: "ML Optimization"},
	)
	if err != nil {
		return err
	}

	prof, err := person.NewFullProfessor(
		person.Params{Name: "Dr.Jack ", Age: 45, ID: "P001", ContactInfo: "jack@gmail.com"},
		person.ProfessorParams{
			Department:     "Computer Science",
			Specialization: "AI",
			HireDate:       "2018-01-01",
			YearsOfService: 15,
		},
		true,
	)
	if err != nil {
		return err
	}

	people := []shared.PersonRef{
		sys.AddPerson(undergrad),
		sys.AddPerson(grad),
		sys.AddPerson(prof),
	}
	if err := sys.AddProfessorToDepartment(dept, people[2]); err != nil {
		return err
	}
	if err := sys.AssignInstructor(cs101, people[2]); err != nil {
		return err
	}

	out.Heading("Polymorphic Display")
	for _, ref := range people {
		details, err := sys.Details(ref)
		if err != nil {
			return err
		}
		payment, err := sys.Payment(ref)
		if err != nil {
			return err
		}
		out.PersonCard(details, payment)
	}

	if err := sys.EnrollStudent("S001", cs101); err != nil {
		return err
	}
	if err := sys.EnrollStudent("S002", cs101); err != nil {
		return err
	}

	gb, err := sys.NewGradeBook(cs101)
	if err != nil {
		return err
	}
	if err := gb.AddGrade("S001", 96.0); err != nil {
		return err
	}
	if err := gb.AddGrade("S002", 90.0); err != nil {
		return err
	}

	out.Heading("Grade Statistics")
	out.GradeStatistics(gb)
	return nil
}
