// Package course holds the per-course settings: the text of each student's
// title block, the problem marker, and the gradebook export layout.
package course

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/abhisek/stdexam/internal/bank"
	"github.com/abhisek/stdexam/internal/roster"
)

// Course holds all course configuration.
type Course struct {
	// Title is printed centered at the top of every test.
	Title string `yaml:"title"`

	// Pledge is the honor pledge printed in the signature box.
	Pledge string `yaml:"pledge"`

	// Directions are LaTeX paragraphs printed below the pledge box. The
	// first is prefixed with a bold "Directions:" label.
	Directions []string `yaml:"directions"`

	// Marker is the LaTeX command that opens each problem in the bank and
	// is defined in the document preamble.
	Marker string `yaml:"marker"`

	Roster RosterConfig `yaml:"roster"`
}

// RosterConfig mirrors roster.Layout for the config file.
type RosterConfig struct {
	SkipColumns int    `yaml:"skip_columns"`
	Sentinel    string `yaml:"sentinel"`
	Sheet       string `yaml:"sheet"`
	Encoding    string `yaml:"encoding"`
}

var markerPattern = regexp.MustCompile(`^\\[A-Za-z]+$`)

// DefaultCourse returns the settings used when no config file is given.
func DefaultCourse() Course {
	layout := roster.DefaultLayout()
	return Course{
		Title:  "Math 121 - Standards Assessment 6",
		Pledge: "On my honor, I pledge that I have not given, received, or tolerated others use of unauthorized aid in completing this work.",
		Directions: []string{
			"For any problem you skip, place a line through the problem number and the objective number next to it. " +
				"For any problem you want graded, circle the problem number and the objective number next to it.",
			"The objective of this assessment is for you to demonstrate that you have mastered learning objectives.  " +
				"A correct answer with no work shown does not demonstrate mastery!",
		},
		Marker: bank.DefaultMarker,
		Roster: RosterConfig{
			SkipColumns: layout.SkipColumns,
			Sentinel:    layout.Sentinel,
		},
	}
}

// Layout returns the roster layout described by the config.
func (c Course) Layout() roster.Layout {
	return roster.Layout{
		SkipColumns: c.Roster.SkipColumns,
		Sentinel:    c.Roster.Sentinel,
		Sheet:       c.Roster.Sheet,
		Encoding:    c.Roster.Encoding,
	}
}

// ApplyEnv overrides fields from STDEXAM_* environment variables.
func (c *Course) ApplyEnv() error {
	if v := os.Getenv("STDEXAM_TITLE"); v != "" {
		c.Title = v
	}
	if v := os.Getenv("STDEXAM_MARKER"); v != "" {
		c.Marker = v
	}
	if v := os.Getenv("STDEXAM_SENTINEL"); v != "" {
		c.Roster.Sentinel = v
	}
	if v := os.Getenv("STDEXAM_SHEET"); v != "" {
		c.Roster.Sheet = v
	}
	if v := os.Getenv("STDEXAM_ENCODING"); v != "" {
		c.Roster.Encoding = v
	}
	if v := os.Getenv("STDEXAM_SKIP_COLUMNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("STDEXAM_SKIP_COLUMNS: %w", err)
		}
		c.Roster.SkipColumns = n
	}
	return nil
}

// Validate checks that the config can drive a run.
func (c Course) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !markerPattern.MatchString(c.Marker) {
		return fmt.Errorf("marker must be a LaTeX command such as \\standarditem, got %q", c.Marker)
	}
	if err := c.Layout().Validate(); err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	return nil
}
