package roster

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// identityColumns is the count of leading first/last/id columns.
const identityColumns = 3

// trailingColumns is the count of columns after the objectives that are
// discarded (the gradebook's "last downloaded" timestamp).
const trailingColumns = 1

// Layout describes where the objective columns sit in an export.
type Layout struct {
	// SkipColumns is the number of columns between the id and the first
	// objective (institution, department, email in a Moodle export).
	SkipColumns int

	// Sentinel is the cell text that means "no data". Default: "-".
	Sentinel string

	// Sheet selects the worksheet of an .xlsx export. Empty means the
	// first sheet.
	Sheet string

	// Encoding names the character set of a CSV export: "utf-8" (default),
	// "windows-1252", or "latin1". A byte order mark always wins.
	Encoding string
}

// DefaultLayout returns the layout of a Moodle grade export.
func DefaultLayout() Layout {
	return Layout{
		SkipColumns: 3,
		Sentinel:    "-",
	}
}

// MinColumns returns the fewest columns a data row may have.
func (l Layout) MinColumns() int {
	return identityColumns + l.SkipColumns + trailingColumns
}

// Validate checks the layout for impossible values.
func (l Layout) Validate() error {
	if l.SkipColumns < 0 {
		return fmt.Errorf("skip columns must not be negative, got %d", l.SkipColumns)
	}
	if strings.TrimSpace(l.Sentinel) == "" {
		return fmt.Errorf("sentinel must not be blank")
	}
	if _, err := l.encoding(); err != nil {
		return err
	}
	return nil
}

func (l Layout) encoding() (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(l.Encoding)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", l.Encoding)
	}
}
