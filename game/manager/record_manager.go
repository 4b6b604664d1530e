package manager

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"snake-walls/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const (
	// RecordsFile is the default location of the score table.
	RecordsFile = "records.txt"
	// RecordTimeLayout is dd.mm.yyyy HH:MM:SS.
	RecordTimeLayout = "02.01.2006 15:04:05"

	recordSeparator = " | "
)

// RunRecord is one finished run.
type RunRecord struct {
	Score      int
	Difficulty types.Difficulty
	Time       time.Time
}

// FormatRecord renders r as one persisted line, newline included.
func FormatRecord(r RunRecord) string {
	return fmt.Sprintf("%d%s%d%s%s\n", r.Score, recordSeparator, r.Difficulty.Code(), recordSeparator, r.Time.Format(RecordTimeLayout))
}

// ParseRecord parses one persisted line. The trailing newline is optional.
func ParseRecord(line string) (RunRecord, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, recordSeparator)
	if len(fields) != 3 {
		return RunRecord{}, errors.Wrapf(ErrMalformedRecord, "expected 3 fields, got %d", len(fields))
	}

	score, err := strconv.Atoi(fields[0])
	if err != nil {
		return RunRecord{}, errors.Wrapf(ErrMalformedRecord, "score %q", fields[0])
	}

	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return RunRecord{}, errors.Wrapf(ErrMalformedRecord, "difficulty %q", fields[1])
	}
	difficulty, ok := types.DifficultyFromCode(code)
	if !ok {
		return RunRecord{}, errors.Wrapf(ErrMalformedRecord, "difficulty code %d out of range", code)
	}

	ts, err := time.ParseInLocation(RecordTimeLayout, fields[2], time.Local)
	if err != nil {
		return RunRecord{}, errors.Wrapf(ErrMalformedRecord, "timestamp %q", fields[2])
	}

	return RunRecord{Score: score, Difficulty: difficulty, Time: ts}, nil
}

// RecordManager is the sole writer of the score table. Records are only
// ever appended; sorting happens on read.
type RecordManager struct {
	path string
}

func NewRecordManager(path string) *RecordManager {
	if path == "" {
		path = RecordsFile
	}
	return &RecordManager{path: path}
}

func (rm *RecordManager) Path() string {
	return rm.path
}

// Append adds one record at the end of the table. Failures match
// ErrPersistenceWrite.
func (rm *RecordManager) Append(r RunRecord) error {
	f, err := os.OpenFile(rm.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(ErrPersistenceWrite, "open %s: %v", rm.path, err)
	}

	if _, err := f.WriteString(FormatRecord(r)); err != nil {
		f.Close()
		return errors.Wrapf(ErrPersistenceWrite, "write %s: %v", rm.path, err)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(ErrPersistenceWrite, "close %s: %v", rm.path, err)
	}
	return nil
}

// LoadSorted reads every record and orders them by score, highest first,
// keeping file order among equal scores. A missing file is an empty
// table. Unparseable lines are skipped; when any were, the records are
// still returned together with a *MalformedRecordsError.
func (rm *RecordManager) LoadSorted() ([]RunRecord, error) {
	f, err := os.Open(rm.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunRecord{}, nil
		}
		return nil, errors.Wrapf(err, "open %s", rm.path)
	}
	defer f.Close()

	records := make([]RunRecord, 0)
	var malformed []LineError

	// Lines are read whole, whatever their length; an oversized line is
	// just another malformed record.
	reader := bufio.NewReader(f)
	lineNo := 0
	for {
		text, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrapf(readErr, "read %s", rm.path)
		}
		if text != "" {
			lineNo++
			if strings.TrimSpace(text) != "" {
				r, err := ParseRecord(text)
				if err != nil {
					malformed = append(malformed, LineError{Line: lineNo, Text: strings.TrimRight(text, "\r\n"), Err: err})
				} else {
					records = append(records, r)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	slices.SortStableFunc(records, func(a, b RunRecord) int {
		return b.Score - a.Score
	})

	if len(malformed) > 0 {
		return records, &MalformedRecordsError{Lines: malformed}
	}
	return records, nil
}
