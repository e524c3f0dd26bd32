package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CellKind distinguishes the two forms an objective cell may take.
type CellKind int

const (
	CellScore    CellKind = iota // numeric score, truncated to an integer
	CellSentinel                 // "no data" marker, status 0
)

// Cell is a parsed objective cell.
type Cell struct {
	Kind  CellKind
	Score int
}

// Status returns the status code the cell contributes to a StudentRecord.
func (c Cell) Status() int {
	if c.Kind == CellSentinel {
		return 0
	}
	return c.Score
}

// ParseCell parses one objective cell. Text equal to sentinel (after
// trimming) yields CellSentinel; anything else must be a finite number.
func ParseCell(text, sentinel string) (Cell, error) {
	v := strings.TrimSpace(text)
	if v == sentinel {
		return Cell{Kind: CellSentinel}, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Cell{}, fmt.Errorf("invalid score %q: %w", v, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Cell{}, fmt.Errorf("invalid score %q: not a finite number", v)
	}
	return Cell{Kind: CellScore, Score: int(f)}, nil
}
