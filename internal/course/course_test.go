package course

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/stdexam/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCourse_IsValid(t *testing.T) {
	c := DefaultCourse()
	require.NoError(t, c.Validate())
	assert.Equal(t, `\standarditem`, c.Marker)
	assert.Len(t, c.Directions, 2)

	layout := c.Layout()
	assert.Equal(t, 3, layout.SkipColumns)
	assert.Equal(t, "-", layout.Sentinel)
}

func TestParse_OverridesOnlyGivenKeys(t *testing.T) {
	c, err := Parse([]byte(`
title: "Calculus I - Assessment 2"
roster:
  skip_columns: 1
  encoding: windows-1252
`))
	require.NoError(t, err)

	assert.Equal(t, "Calculus I - Assessment 2", c.Title)
	assert.Equal(t, 1, c.Roster.SkipColumns)
	assert.Equal(t, "windows-1252", c.Roster.Encoding)
	assert.Equal(t, "-", c.Roster.Sentinel)
	assert.Equal(t, DefaultCourse().Pledge, c.Pledge)
	assert.Equal(t, DefaultCourse().Directions, c.Directions)
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultCourse(), c)
}

func TestParse_Directions(t *testing.T) {
	c, err := Parse([]byte("directions:\n  - Show all work.\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Show all work."}, c.Directions)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "titel: typo\n"},
		{"empty title", "title: \"\"\n"},
		{"negative skip", "roster:\n  skip_columns: -1\n"},
		{"string skip", "roster:\n  skip_columns: three\n"},
		{"bad marker", "marker: standarditem\n"},
		{"unknown encoding", "roster:\n  encoding: ebcdic\n"},
		{"not a mapping", "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("title: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marker: \"\\\\objitem\"\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, `\objitem`, c.Marker)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var ioErr *apperr.IOError
	require.True(t, errors.As(err, &ioErr))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("STDEXAM_TITLE", "Env Title")
	t.Setenv("STDEXAM_SKIP_COLUMNS", "2")
	t.Setenv("STDEXAM_SENTINEL", "n/a")

	c := DefaultCourse()
	require.NoError(t, c.ApplyEnv())

	assert.Equal(t, "Env Title", c.Title)
	assert.Equal(t, 2, c.Roster.SkipColumns)
	assert.Equal(t, "n/a", c.Roster.Sentinel)
	assert.Equal(t, `\standarditem`, c.Marker)
}

func TestApplyEnv_BadInt(t *testing.T) {
	t.Setenv("STDEXAM_SKIP_COLUMNS", "many")

	c := DefaultCourse()
	err := c.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STDEXAM_SKIP_COLUMNS")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Course)
		want   string
	}{
		{"missing title", func(c *Course) { c.Title = "" }, "title"},
		{"bad marker", func(c *Course) { c.Marker = `\std item` }, "marker"},
		{"blank sentinel", func(c *Course) { c.Roster.Sentinel = " " }, "sentinel"},
		{"negative skip", func(c *Course) { c.Roster.SkipColumns = -2 }, "skip columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCourse()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
