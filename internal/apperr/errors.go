// Package apperr defines the error types shared by the parsers and the
// document assembler.
package apperr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatError indicates malformed input: a short or ragged roster row, a
// non-numeric score cell, a non-integer objective tag, or a problem bank
// that does not open with a marker line.
type FormatError struct {
	Source string // file name or "<input>"
	Line   int    // 1-based row or line, 0 if unknown
	Column int    // 1-based column, 0 if not applicable
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	if e.Column > 0 {
		fmt.Fprintf(&b, ":%d", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *FormatError) Unwrap() error { return e.Err }

// LookupError indicates a student or problem key that was expected but absent.
type LookupError struct {
	Kind string // "student" or "problem"
	Key  string
}

func (e *LookupError) Error() string {
	key := e.Key
	if utf8.RuneCountInString(key) > 60 {
		key = string([]rune(key)[:57]) + "..."
	}
	return fmt.Sprintf("%s not found: %q", e.Kind, key)
}

// IOError indicates an unreadable source or unwritable destination.
type IOError struct {
	Op   string // "open", "read", "create", "write", "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
