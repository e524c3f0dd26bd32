package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_SubsetOf(t *testing.T) {
	tests := []struct {
		name  string
		s     Set
		other Set
		want  bool
	}{
		{"equal", Of(1, 2), Of(1, 2), true},
		{"proper subset", Of(2), Of(1, 2, 3), true},
		{"missing member", Of(1, 3), Of(1, 2), false},
		{"empty is subset", Of(), Of(1), true},
		{"empty of empty", Of(), Of(), true},
		{"nil other", Of(1), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.SubsetOf(tt.other))
		})
	}
}

func TestSet_SortedAndString(t *testing.T) {
	s := Of(5, 1, 3, 1)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 3, 5}, s.Sorted())
	assert.Equal(t, "{1,3,5}", s.String())
	assert.Equal(t, "{}", Of().String())
}

func TestFormat_KeepsOrder(t *testing.T) {
	assert.Equal(t, "{3,1}", Format([]int{3, 1}))
}
