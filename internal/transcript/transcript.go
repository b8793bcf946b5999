// Package transcript records every line of an interactive session so it can
// be written to a file on request.
package transcript

import (
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/scry-flashcards/internal/platform/textfile"
)

// Transcript is an append-only list of session lines. The zero value is
// ready to use.
type Transcript struct {
	lines []string
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// Append records line. Embedded newlines split it into several entries so
// that every entry is one line in the saved file.
func (t *Transcript) Append(line string) {
	t.lines = append(t.lines, strings.Split(strings.TrimRight(line, "\n"), "\n")...)
}

// Appendf records a formatted line.
func (t *Transcript) Appendf(format string, args ...any) {
	t.Append(fmt.Sprintf(format, args...))
}

// Len returns the number of recorded lines.
func (t *Transcript) Len() int {
	return len(t.lines)
}

// Lines returns a copy of the recorded lines in order.
func (t *Transcript) Lines() []string {
	return slices.Clone(t.lines)
}

// Save writes the transcript to path, one newline-terminated line per entry,
// replacing any existing file.
func (t *Transcript) Save(path string) error {
	if err := textfile.WriteLines(path, t.lines); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}
