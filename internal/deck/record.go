package deck

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/phrazzld/scry-flashcards/internal/domain"
)

// FieldSeparator separates the fields of a persisted line. It is not escaped
// inside terms or definitions, so a value containing it does not round-trip.
const FieldSeparator = "|"

const maxLineBytes = 1 << 20

// Record is the persisted form of a card, shared by every storage backend.
type Record struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
	Errors     int    `yaml:"errors"`
}

// RecordFromCard converts a card to its persisted form.
func RecordFromCard(c domain.Card) Record {
	return Record{Term: c.Term, Definition: c.Definition, Errors: c.Errors}
}

// Card converts the record back to a card.
func (r Record) Card() domain.Card {
	return domain.Card{Term: r.Term, Definition: r.Definition, Errors: r.Errors}
}

// FormatLine renders a record as "term|definition|errors".
func FormatLine(r Record) string {
	return r.Term + FieldSeparator + r.Definition + FieldSeparator + strconv.Itoa(r.Errors)
}

// ParseLine parses a "term|definition|errors" line. Surrounding whitespace
// is ignored, as are any fields after the third.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), FieldSeparator)
	if len(fields) < 3 {
		return Record{}, fmt.Errorf("%w: expected 3 fields separated by %q, got %d",
			domain.ErrMalformedRecord, FieldSeparator, len(fields))
	}

	errorCount, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: error count %q is not an integer",
			domain.ErrMalformedRecord, fields[2])
	}
	if errorCount < 0 {
		return Record{}, fmt.Errorf("%w: error count %d is negative",
			domain.ErrMalformedRecord, errorCount)
	}

	return Record{Term: fields[0], Definition: fields[1], Errors: errorCount}, nil
}

// ReadRecords parses every non-blank line of r. All malformed lines are
// reported together, each prefixed with its 1-based line number; no records
// are returned in that case.
func ReadRecords(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		records []Record
		errs    error
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	if errs != nil {
		return nil, errs
	}
	return records, nil
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteRecords writes records in the line format.
func WriteRecords(w io.Writer, records []Record) error {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, FormatLine(r))
	}
	return WriteLines(w, lines)
}
