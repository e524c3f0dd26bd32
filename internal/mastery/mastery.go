// Package mastery derives which objectives a student has already mastered.
package mastery

import (
	"github.com/abhisek/stdexam/internal/objective"
	"github.com/abhisek/stdexam/internal/roster"
)

// RequiredCompletions is the status code that marks an objective mastered:
// exactly two satisfactory completions recorded in the gradebook.
const RequiredCompletions = 2

// Mastered returns the 1-based objective numbers whose status code equals
// RequiredCompletions.
func Mastered(rec roster.StudentRecord) objective.Set {
	set := objective.Of()
	for i, code := range rec.Statuses {
		if code == RequiredCompletions {
			set.Add(i + 1)
		}
	}
	return set
}

// Summary counts a student's objectives by state.
type Summary struct {
	NotAttempted int
	InProgress   int
	Mastered     int
}

// Summarize tallies every objective of rec by StatusOf.
func Summarize(rec roster.StudentRecord) Summary {
	var s Summary
	for _, code := range rec.Statuses {
		switch StatusOf(code) {
		case StateMastered:
			s.Mastered++
		case StateNotAttempted:
			s.NotAttempted++
		default:
			s.InProgress++
		}
	}
	return s
}
