// Package bank reads a problem bank: LaTeX problem statements, each tagged
// with the objectives it exercises.
package bank

import (
	"github.com/abhisek/stdexam/internal/apperr"
	"github.com/abhisek/stdexam/internal/objective"
)

// Problem is one tagged problem. Statement is the block's text exactly as
// it appeared in the source, marker line included.
type Problem struct {
	Statement string
	Tags      []int
}

// TagSet returns the problem's tags as a set.
func (p Problem) TagSet() objective.Set {
	return objective.Of(p.Tags...)
}

// Bank maps problem statement to problem, preserving insertion order.
type Bank struct {
	order    []string
	problems map[string]Problem
}

// New returns an empty bank.
func New() *Bank {
	return &Bank{problems: make(map[string]Problem)}
}

// Add appends p. A statement already present is left in place and Add
// reports false.
func (b *Bank) Add(p Problem) bool {
	if _, exists := b.problems[p.Statement]; exists {
		return false
	}
	b.order = append(b.order, p.Statement)
	b.problems[p.Statement] = p
	return true
}

// Get returns the problem with the given statement, or a *apperr.LookupError.
func (b *Bank) Get(statement string) (Problem, error) {
	p, ok := b.problems[statement]
	if !ok {
		return Problem{}, &apperr.LookupError{Kind: "problem", Key: statement}
	}
	return p, nil
}

// Tags returns the tag set of statement, or a *apperr.LookupError.
func (b *Bank) Tags(statement string) (objective.Set, error) {
	p, err := b.Get(statement)
	if err != nil {
		return nil, err
	}
	return p.TagSet(), nil
}

// Statements returns problem statements in insertion order.
func (b *Bank) Statements() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Problems returns all problems in insertion order.
func (b *Bank) Problems() []Problem {
	out := make([]Problem, 0, len(b.order))
	for _, s := range b.order {
		out = append(out, b.problems[s])
	}
	return out
}

// Len returns the number of problems.
func (b *Bank) Len() int {
	return len(b.order)
}
