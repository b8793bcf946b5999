package deck

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/phrazzld/scry-flashcards/internal/domain"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		want    Record
		wantErr bool
	}{
		{name: "plain", line: "cat|animal|2", want: Record{Term: "cat", Definition: "animal", Errors: 2}},
		{name: "surrounding whitespace", line: "  cat|animal|0 \r\n", want: Record{Term: "cat", Definition: "animal"}},
		{name: "inner spaces kept", line: "big cat|large animal|1", want: Record{Term: "big cat", Definition: "large animal", Errors: 1}},
		{name: "extra fields ignored", line: "cat|animal|1|extra", want: Record{Term: "cat", Definition: "animal", Errors: 1}},
		{name: "empty term", line: "|animal|0", want: Record{Definition: "animal"}},
		{name: "two fields", line: "cat|animal", wantErr: true},
		{name: "one field", line: "cat", wantErr: true},
		{name: "non numeric errors", line: "cat|animal|many", wantErr: true},
		{name: "negative errors", line: "cat|animal|-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrMalformedRecord), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatLineDoesNotEscapeSeparator(t *testing.T) {
	t.Parallel()

	line := FormatLine(Record{Term: "a|b", Definition: "c", Errors: 1})

	assert.Equal(t, "a|b|c|1", line)
}

func TestReadRecords(t *testing.T) {
	t.Parallel()
	input := "cat|animal|2\n\nrun|move|0\n   \nred|color|1"

	records, err := ReadRecords(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Term: "cat", Definition: "animal", Errors: 2},
		{Term: "run", Definition: "move"},
		{Term: "red", Definition: "color", Errors: 1},
	}, records)
}

func TestReadRecordsReportsEveryMalformedLine(t *testing.T) {
	t.Parallel()
	input := "cat|animal|2\nbroken\nrun|move|x\nred|color|0\n"

	records, err := ReadRecords(strings.NewReader(input))

	assert.Nil(t, records)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedRecord))
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "line 2")
	assert.Contains(t, errs[1].Error(), "line 3")
}

func TestWriteRecords(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	err := WriteRecords(&buf, []Record{
		{Term: "cat", Definition: "animal", Errors: 2},
		{Term: "run", Definition: "move"},
	})

	require.NoError(t, err)
	assert.Equal(t, "cat|animal|2\nrun|move|0\n", buf.String())
}
