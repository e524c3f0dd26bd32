package mastery

import (
	"testing"

	"github.com/abhisek/stdexam/internal/roster"
	"github.com/stretchr/testify/assert"
)

func TestMastered(t *testing.T) {
	tests := []struct {
		name     string
		statuses []int
		want     []int
	}{
		{"two of three mastered", []int{2, 2, 0}, []int{1, 2}},
		{"ones and threes excluded", []int{1, 2, 3, 0, 2}, []int{2, 5}},
		{"nothing mastered", []int{0, 1, 3, 4}, []int{}},
		{"all mastered", []int{2, 2, 2}, []int{1, 2, 3}},
		{"no objectives", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := roster.NewRecord("Ada", "Lovelace", "1", tt.statuses...)
			assert.Equal(t, tt.want, Mastered(rec).Sorted())
		})
	}
}

func TestMastered_IndexMatchesCode(t *testing.T) {
	statuses := []int{0, 1, 2, 3, 2, 0, 5, 2}
	got := Mastered(roster.NewRecord("a", "b", "c", statuses...))

	for i, code := range statuses {
		assert.Equal(t, code == 2, got.Contains(i+1), "objective %d (code %d)", i+1, code)
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StateNotAttempted, StatusOf(0))
	assert.Equal(t, StateInProgress, StatusOf(1))
	assert.Equal(t, StateMastered, StatusOf(2))
	assert.Equal(t, StateInProgress, StatusOf(3))
	assert.Equal(t, "Mastered", StateMastered.Label())
	assert.Equal(t, "Unknown", State("other").Label())
}

func TestSummarize(t *testing.T) {
	s := Summarize(roster.NewRecord("a", "b", "c", 2, 0, 1, 3, 2, 0))
	assert.Equal(t, Summary{NotAttempted: 2, InProgress: 2, Mastered: 2}, s)
}
