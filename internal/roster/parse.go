package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/stdexam/internal/apperr"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// row is one record of the export with its 1-based source line.
type row struct {
	line  int
	cells []string
}

type options struct {
	logger *slog.Logger
}

// Option configures Parse and ParseFile.
type Option func(*options)

// WithLogger sets the logger that receives duplicate-row warnings.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ParseFile reads a roster from path. Files ending in .xlsx are read as
// spreadsheets; everything else is read as CSV.
func ParseFile(path string, layout Layout, opts ...Option) (*Roster, error) {
	o := buildOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, &apperr.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return parseXLSX(path, f, layout, o)
	}
	return parse(path, f, layout, o)
}

// Parse reads a CSV roster from r.
func Parse(r io.Reader, layout Layout, opts ...Option) (*Roster, error) {
	return parse("<input>", r, layout, buildOptions(opts))
}

func parse(source string, r io.Reader, layout Layout, o options) (*Roster, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("roster layout: %w", err)
	}
	enc, _ := layout.encoding()

	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())))
	cr.FieldsPerRecord = -1 // column counts are checked against the layout below
	cr.LazyQuotes = true

	var rows []row
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &apperr.FormatError{Source: source, Line: pe.Line, Column: pe.Column, Msg: "malformed CSV", Err: pe.Err}
			}
			return nil, &apperr.IOError{Op: "read", Path: source, Err: err}
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, row{line: line, cells: cells})
	}

	return build(source, rows, layout, o)
}

func parseXLSX(source string, r io.Reader, layout Layout, o options) (*Roster, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("roster layout: %w", err)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &apperr.FormatError{Source: source, Msg: "not a readable spreadsheet", Err: err}
	}
	defer f.Close()

	sheet := layout.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return New(), nil
		}
		sheet = sheets[0]
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, &apperr.FormatError{Source: source, Msg: fmt.Sprintf("reading sheet %q", sheet), Err: err}
	}

	rows := make([]row, 0, len(cells))
	for i, c := range cells {
		if len(c) == 0 {
			continue // blank spreadsheet row
		}
		rows = append(rows, row{line: i + 1, cells: c})
	}

	// GetRows drops blank cells at the end of a row, so a row whose
	// trailing columns are empty comes back short. The header fixes the
	// width.
	if len(rows) > 0 {
		width := len(rows[0].cells)
		for i := range rows[1:] {
			rw := &rows[i+1]
			if n := len(rw.cells); n < width {
				rw.cells = append(rw.cells, make([]string, width-n)...)
			}
		}
	}
	return build(source, rows, layout, o)
}

// build turns raw rows into a Roster. The first row is the header.
func build(source string, rows []row, layout Layout, o options) (*Roster, error) {
	roster := New()
	if len(rows) == 0 {
		return roster, nil
	}

	minCols := layout.MinColumns()
	width := -1
	for _, rw := range rows[1:] {
		n := len(rw.cells)
		if n < minCols {
			return nil, &apperr.FormatError{
				Source: source,
				Line:   rw.line,
				Msg:    fmt.Sprintf("row has %d columns, need at least %d", n, minCols),
			}
		}
		if width < 0 {
			width = n
		} else if n != width {
			return nil, &apperr.FormatError{
				Source: source,
				Line:   rw.line,
				Msg:    fmt.Sprintf("row has %d columns, earlier rows have %d", n, width),
			}
		}

		rec, err := parseRecord(source, rw, layout)
		if err != nil {
			return nil, err
		}
		if roster.Add(rec) {
			o.logger.Warn("duplicate student row replaces earlier one", "source", source, "line", rw.line, "student", rec.Identity)
		}
	}

	o.logger.Debug("roster parsed", "source", source, "students", roster.Len(), "objectives", roster.NumObjectives())
	return roster, nil
}

func parseRecord(source string, rw row, layout Layout) (StudentRecord, error) {
	first := strings.TrimSpace(rw.cells[0])
	last := strings.TrimSpace(rw.cells[1])
	id := strings.TrimSpace(rw.cells[2])

	start := identityColumns + layout.SkipColumns
	end := len(rw.cells) - trailingColumns
	statuses := make([]int, 0, end-start)
	for col := start; col < end; col++ {
		cell, err := ParseCell(rw.cells[col], layout.Sentinel)
		if err != nil {
			return StudentRecord{}, &apperr.FormatError{
				Source: source,
				Line:   rw.line,
				Column: col + 1,
				Msg:    fmt.Sprintf("objective %d", col-start+1),
				Err:    err,
			}
		}
		statuses = append(statuses, cell.Status())
	}

	return NewRecord(first, last, id, statuses...), nil
}
