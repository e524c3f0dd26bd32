// Package document assembles the personalized tests of a whole roster into
// one LaTeX document.
package document

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/stdexam/internal/apperr"
	"github.com/abhisek/stdexam/internal/bank"
	"github.com/abhisek/stdexam/internal/course"
	"github.com/abhisek/stdexam/internal/roster"
)

type options struct {
	course course.Course
	logger *slog.Logger
}

// Option configures Assemble and PlanFiles.
type Option func(*options)

// WithCourse sets the course configuration. Default: course.DefaultCourse().
func WithCourse(c course.Course) Option {
	return func(o *options) { o.course = c }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{
		course: course.DefaultCourse(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// PlanFiles parses the roster and problem bank and selects every student's
// problems. Nothing is written.
func PlanFiles(rosterPath, bankPath string, opts ...Option) (Plan, error) {
	o := buildOptions(opts)
	return planFiles(rosterPath, bankPath, o)
}

func planFiles(rosterPath, bankPath string, o options) (Plan, error) {
	if err := o.course.Validate(); err != nil {
		return Plan{}, fmt.Errorf("course config: %w", err)
	}

	r, err := roster.ParseFile(rosterPath, o.course.Layout(), roster.WithLogger(o.logger))
	if err != nil {
		return Plan{}, fmt.Errorf("read roster: %w", err)
	}
	o.logger.Debug("roster loaded", "path", rosterPath, "students", r.Len(), "objectives", r.NumObjectives())

	b, err := bank.ParseFile(bankPath, o.course.Marker, bank.WithLogger(o.logger))
	if err != nil {
		return Plan{}, fmt.Errorf("read problem bank: %w", err)
	}
	o.logger.Debug("problem bank loaded", "path", bankPath, "problems", b.Len())

	plan, err := BuildPlan(r, b)
	if err != nil {
		return Plan{}, fmt.Errorf("select problems: %w", err)
	}
	return plan, nil
}

// Assemble reads the roster at rosterPath and the problem bank at bankPath
// and writes one LaTeX document with a personalized test per student to
// destPath. Both inputs are fully parsed before destPath is created, so a
// malformed input leaves the destination untouched.
func Assemble(rosterPath, bankPath, destPath string, opts ...Option) (err error) {
	o := buildOptions(opts)

	plan, err := planFiles(rosterPath, bankPath, o)
	if err != nil {
		return err
	}

	f, err := os.Create(destPath)
	if err != nil {
		return &apperr.IOError{Op: "create", Path: destPath, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &apperr.IOError{Op: "close", Path: destPath, Err: cerr}
		}
	}()

	if err := Write(f, plan, o.course); err != nil {
		return &apperr.IOError{Op: "write", Path: destPath, Err: err}
	}

	o.logger.Info("document assembled",
		"path", destPath,
		"students", len(plan.Sections),
		"problems", plan.BankSize,
	)
	return nil
}
