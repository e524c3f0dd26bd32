// Package objective models numbered learning objectives (standards).
package objective

import (
	"slices"
	"strconv"
	"strings"
)

// Set is an unordered set of objective numbers.
type Set map[int]struct{}

// Of builds a Set from the given objective numbers.
func Of(ids ...int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s Set) Add(id int) {
	s[id] = struct{}{}
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s Set) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of objectives in the set.
func (s Set) Len() int {
	return len(s)
}

// SubsetOf reports whether every member of s is also in other.
// The empty set is a subset of every set.
func (s Set) SubsetOf(other Set) bool {
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// String renders the set as "{1,2,5}".
func (s Set) String() string {
	return Format(s.Sorted())
}

// Format renders ids as "{1,2,5}" in the given order.
func Format(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
