// Package selector decides which bank problems go on a student's test.
package selector

import (
	"github.com/abhisek/stdexam/internal/bank"
	"github.com/abhisek/stdexam/internal/objective"
)

// ShouldInclude reports whether a problem tagged with tags belongs on the
// test of a student who has mastered the given objectives. A problem is
// left off only when every one of its tags is mastered, so an empty tag
// set is always left off.
func ShouldInclude(tags, mastered objective.Set) bool {
	return !tags.SubsetOf(mastered)
}

// Select returns the problems of b to include for mastered, in bank order.
func Select(b *bank.Bank, mastered objective.Set) ([]bank.Problem, error) {
	var out []bank.Problem
	for _, statement := range b.Statements() {
		p, err := b.Get(statement)
		if err != nil {
			return nil, err
		}
		if ShouldInclude(p.TagSet(), mastered) {
			out = append(out, p)
		}
	}
	return out, nil
}
