package manager

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedRecord marks a persisted line that does not parse.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrPersistenceWrite marks a record that could not be written.
	ErrPersistenceWrite = errors.New("persistence write failure")
	// ErrPlacementExhausted marks a collectible that found no free cell.
	ErrPlacementExhausted = errors.New("collectible placement exhausted")
)

// LineError describes one skipped line of the records file.
type LineError struct {
	Line int
	Text string
	Err  error
}

// maxQuotedLine caps how much of a bad line ends up in error messages.
const maxQuotedLine = 60

func (e LineError) Error() string {
	text := e.Text
	if len(text) > maxQuotedLine {
		text = text[:maxQuotedLine] + "..."
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, text, e.Err)
}

// MalformedRecordsError collects every line skipped while loading records.
// It matches ErrMalformedRecord with errors.Is.
type MalformedRecordsError struct {
	Lines []LineError
}

func (e *MalformedRecordsError) Error() string {
	parts := make([]string, len(e.Lines))
	for i, l := range e.Lines {
		parts[i] = l.Error()
	}
	return fmt.Sprintf("%v: %d line(s) skipped: %s", ErrMalformedRecord, len(e.Lines), strings.Join(parts, "; "))
}

func (e *MalformedRecordsError) Is(target error) bool {
	return target == ErrMalformedRecord
}
