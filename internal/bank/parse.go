package bank

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/stdexam/internal/apperr"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMarker is the LaTeX command that opens a tagged problem.
const DefaultMarker = `\standarditem`

// state is the tokenizer state.
type state int

const (
	awaitingMarker state = iota
	accumulatingBody
)

// Parser splits a problem bank into tagged blocks.
type Parser struct {
	marker string
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives duplicate-problem warnings.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// NewParser returns a Parser for blocks opened by marker. An empty marker
// selects DefaultMarker.
func NewParser(marker string, opts ...Option) *Parser {
	if marker == "" {
		marker = DefaultMarker
	}
	p := &Parser{marker: marker, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads the problem bank at path.
func ParseFile(path, marker string, opts ...Option) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &apperr.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return NewParser(marker, opts...).parse(path, f)
}

// Parse reads a problem bank from r.
func (p *Parser) Parse(r io.Reader) (*Bank, error) {
	return p.parse("<input>", r)
}

func (p *Parser) parse(source string, r io.Reader) (*Bank, error) {
	// A leading byte order mark is dropped. Without one the bytes pass
	// through untouched so statements stay verbatim.
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	b := New()

	st := awaitingMarker
	var (
		body    strings.Builder
		tags    []int
		lineNo  int
		blockAt int
	)

	emit := func() {
		if !b.Add(Problem{Statement: body.String(), Tags: tags}) {
			p.logger.Warn("duplicate problem ignored", "source", source, "line", blockAt)
		}
		body.Reset()
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &apperr.IOError{Op: "read", Path: source, Err: err}
		}
		if line == "" && err != nil {
			break
		}
		lineNo++

		isMarker := p.isMarkerLine(line)
		switch st {
		case awaitingMarker:
			if !isMarker {
				return nil, &apperr.FormatError{Source: source, Line: lineNo, Msg: fmt.Sprintf("expected %s line", p.marker)}
			}
		case accumulatingBody:
			if !isMarker {
				body.WriteString(line)
				break
			}
			emit()
		}

		if isMarker {
			ids, perr := p.parseTags(line)
			if perr != nil {
				return nil, &apperr.FormatError{Source: source, Line: lineNo, Msg: "objective tags", Err: perr}
			}
			tags = ids
			blockAt = lineNo
			body.WriteString(line)
			st = accumulatingBody
		}

		if err != nil {
			break
		}
	}

	if st == awaitingMarker {
		return nil, &apperr.FormatError{Source: source, Line: 1, Msg: fmt.Sprintf("expected %s line, found empty input", p.marker)}
	}
	emit()

	p.logger.Debug("problem bank parsed", "source", source, "problems", b.Len())
	return b, nil
}

// isMarkerLine reports whether line opens a new block: the marker followed
// by an opening brace, optionally after spaces. A longer command sharing the
// marker as prefix does not match.
func (p *Parser) isMarkerLine(line string) bool {
	rest, ok := strings.CutPrefix(line, p.marker)
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(rest, " \t"), "{")
}

// parseTags extracts the comma separated identifiers between the first
// pair of braces after the marker.
func (p *Parser) parseTags(line string) ([]int, error) {
	rest := strings.TrimLeft(strings.TrimPrefix(line, p.marker), " \t")
	rest = strings.TrimPrefix(rest, "{")
	inner, _, ok := strings.Cut(rest, "}")
	if !ok {
		return nil, fmt.Errorf("missing closing brace")
	}

	fields := strings.Split(inner, ",")
	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid objective %q: %w", f, err)
		}
		if id <= 0 {
			return nil, fmt.Errorf("invalid objective %d: must be positive", id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
