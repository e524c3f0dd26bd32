package selector

import (
	"testing"

	"github.com/abhisek/stdexam/internal/bank"
	"github.com/abhisek/stdexam/internal/objective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldInclude(t *testing.T) {
	tests := []struct {
		name     string
		tags     objective.Set
		mastered objective.Set
		want     bool
	}{
		{"single mastered tag", objective.Of(1), objective.Of(1, 2), false},
		{"all tags mastered", objective.Of(1, 2), objective.Of(1, 2), false},
		{"one tag missing", objective.Of(1, 3), objective.Of(1, 2), true},
		{"nothing mastered", objective.Of(4), objective.Of(), true},
		{"nil mastered", objective.Of(4), nil, true},
		{"empty tags excluded", objective.Of(), objective.Of(1), false},
		{"empty tags, empty mastered", objective.Of(), objective.Of(), false},
		{"nil tags", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldInclude(tt.tags, tt.mastered))
		})
	}
}

func TestShouldInclude_IsNegatedSubset(t *testing.T) {
	mastered := objective.Of(1, 2, 5)
	for a := 1; a <= 6; a++ {
		for b := 1; b <= 6; b++ {
			tags := objective.Of(a, b)
			subset := mastered.Contains(a) && mastered.Contains(b)
			assert.Equal(t, !subset, ShouldInclude(tags, mastered), "tags %v", tags)
		}
	}
}

func TestSelect_KeepsBankOrder(t *testing.T) {
	b := bank.New()
	b.Add(bank.Problem{Statement: "p1", Tags: []int{1}})
	b.Add(bank.Problem{Statement: "p2", Tags: []int{2}})
	b.Add(bank.Problem{Statement: "p3", Tags: []int{3, 1}})
	b.Add(bank.Problem{Statement: "p4", Tags: []int{4}})

	got, err := Select(b, objective.Of(1, 2))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "p3", got[0].Statement)
	assert.Equal(t, []int{3, 1}, got[0].Tags)
	assert.Equal(t, "p4", got[1].Statement)
}

func TestSelect_EmptyBank(t *testing.T) {
	got, err := Select(bank.New(), objective.Of(1))
	require.NoError(t, err)
	assert.Empty(t, got)
}
