package theme

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSetEnabled_PlainRendersInput(t *testing.T) {
	SetEnabled(false)
	t.Cleanup(func() { SetEnabled(true) })

	assert.Equal(t, "Students", Title.Render("Students"))
	assert.Equal(t, "{1,2}", Mastered.Render("{1,2}"))
	assert.Equal(t, "───", Rule(3))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"fits", "Ada Lovelace: 1001", 40, "Ada Lovelace: 1001"},
		{"ascii", "Ada Lovelace: 1001", 8, "Ada L..."},
		{"multibyte kept whole", "Zoë Ångström: 1001", 8, "Zoë Å..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
