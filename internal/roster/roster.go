// Package roster reads per-student objective scores exported from a
// gradebook and keeps them in the order the gradebook listed them.
package roster

import (
	"fmt"

	"github.com/abhisek/stdexam/internal/apperr"
)

// StudentRecord holds one student's identity and objective status codes.
// Statuses[i] is the status of objective i+1.
type StudentRecord struct {
	Identity string
	First    string
	Last     string
	ID       string
	Statuses []int
}

// NewRecord builds a StudentRecord with the standard identity key.
func NewRecord(first, last, id string, statuses ...int) StudentRecord {
	return StudentRecord{
		Identity: IdentityOf(first, last, id),
		First:    first,
		Last:     last,
		ID:       id,
		Statuses: statuses,
	}
}

// IdentityOf returns the roster key "<first> <last>: <id>".
func IdentityOf(first, last, id string) string {
	return fmt.Sprintf("%s %s: %s", first, last, id)
}

// Roster maps student identity to record, preserving insertion order.
type Roster struct {
	order   []string
	records map[string]StudentRecord
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{records: make(map[string]StudentRecord)}
}

// Add inserts rec. A record whose identity is already present replaces the
// earlier one but keeps its original position. Reports whether a record was
// replaced.
func (r *Roster) Add(rec StudentRecord) bool {
	_, exists := r.records[rec.Identity]
	if !exists {
		r.order = append(r.order, rec.Identity)
	}
	r.records[rec.Identity] = rec
	return exists
}

// Get returns the record for identity, or a *apperr.LookupError.
func (r *Roster) Get(identity string) (StudentRecord, error) {
	rec, ok := r.records[identity]
	if !ok {
		return StudentRecord{}, &apperr.LookupError{Kind: "student", Key: identity}
	}
	return rec, nil
}

// Identities returns student identities in insertion order.
func (r *Roster) Identities() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Records returns all records in insertion order.
func (r *Roster) Records() []StudentRecord {
	out := make([]StudentRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.order)
}

// NumObjectives returns the number of objective columns, or 0 for an
// empty roster. Parsed rosters guarantee every record has this length.
func (r *Roster) NumObjectives() int {
	if len(r.order) == 0 {
		return 0
	}
	return len(r.records[r.order[0]].Statuses)
}
