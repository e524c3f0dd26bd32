package document

import (
	"strings"

	"github.com/abhisek/stdexam/internal/bank"
	"github.com/abhisek/stdexam/internal/mastery"
	"github.com/abhisek/stdexam/internal/objective"
	"github.com/abhisek/stdexam/internal/roster"
	"github.com/abhisek/stdexam/internal/selector"
	"github.com/google/uuid"
)

// formNamespace scopes form IDs so they never collide with other
// name-based UUIDs.
var formNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("stdexam.form"))

// Section is one student's part of the document.
type Section struct {
	Identity string
	FormID   uuid.UUID
	Mastered objective.Set
	Summary  mastery.Summary
	Problems []bank.Problem
	Excluded int
}

// Plan is the full set of sections, in roster order.
type Plan struct {
	Sections []Section
	BankSize int
}

// BuildPlan selects each student's problems. Students appear in roster
// order and problems in bank order.
func BuildPlan(r *roster.Roster, b *bank.Bank) (Plan, error) {
	plan := Plan{
		Sections: make([]Section, 0, r.Len()),
		BankSize: b.Len(),
	}
	for _, identity := range r.Identities() {
		rec, err := r.Get(identity)
		if err != nil {
			return Plan{}, err
		}
		mastered := mastery.Mastered(rec)
		problems, err := selector.Select(b, mastered)
		if err != nil {
			return Plan{}, err
		}
		plan.Sections = append(plan.Sections, Section{
			Identity: identity,
			FormID:   FormID(identity, problems),
			Mastered: mastered,
			Summary:  mastery.Summarize(rec),
			Problems: problems,
			Excluded: b.Len() - len(problems),
		})
	}
	return plan, nil
}

// FormID returns a stable identifier for a student's test: the same student
// receiving the same problems always gets the same ID.
func FormID(identity string, problems []bank.Problem) uuid.UUID {
	var b strings.Builder
	b.WriteString(identity)
	for _, p := range problems {
		b.WriteByte(0)
		b.WriteString(p.Statement)
	}
	return uuid.NewSHA1(formNamespace, []byte(b.String()))
}
