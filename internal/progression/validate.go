package progression

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/claude/repcoach/internal/models"
)

// MinSessions is the minimum history length needed to compute a delta.
const MinSessions = 2

// ErrInsufficientHistory is returned when fewer than MinSessions records are
// present.
var ErrInsufficientHistory = errors.New("at least 2 sessions are required to analyze progression")

// MalformedRecordError reports a single invalid session record. It is the
// caller's fault and maps to a client-facing validation error.
type MalformedRecordError struct {
	Index  int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed session record at index %d: %s", e.Index, e.Reason)
}

// ValidateHistory checks a raw session sequence for completeness and
// ordering. It returns a copy re-sorted by date ascending, with stable
// tie-break by original input order for equal dates. A missing date defaults
// to today.
func ValidateHistory(records []models.SessionRecord) (models.History, error) {
	if len(records) < MinSessions {
		return nil, ErrInsufficientHistory
	}

	type keyed struct {
		rec  models.SessionRecord
		when time.Time
	}
	keyedRecords := make([]keyed, 0, len(records))

	for i, r := range records {
		if r.RPE < 1 || r.RPE > 10 {
			return nil, &MalformedRecordError{Index: i, Reason: fmt.Sprintf("rpe must be 1-10 (got %d)", r.RPE)}
		}
		if r.Sets <= 0 {
			return nil, &MalformedRecordError{Index: i, Reason: fmt.Sprintf("sets must be positive (got %d)", r.Sets)}
		}
		if r.Reps <= 0 {
			return nil, &MalformedRecordError{Index: i, Reason: fmt.Sprintf("reps must be positive (got %d)", r.Reps)}
		}
		if r.Weight < 0 {
			return nil, &MalformedRecordError{Index: i, Reason: fmt.Sprintf("weight must be non-negative (got %g)", r.Weight)}
		}

		when, err := parseSessionDate(r.Date)
		if err != nil {
			return nil, &MalformedRecordError{Index: i, Reason: fmt.Sprintf("unparsable date %q", r.Date)}
		}
		keyedRecords = append(keyedRecords, keyed{rec: r, when: when})
	}

	sort.SliceStable(keyedRecords, func(a, b int) bool {
		return keyedRecords[a].when.Before(keyedRecords[b].when)
	})

	hist := make(models.History, len(keyedRecords))
	for i, k := range keyedRecords {
		hist[i] = k.rec
	}
	return hist, nil
}

// parseSessionDate accepts YYYY-MM-DD or RFC 3339. An empty date defaults to
// today, matching how clients omit the field when logging a live session.
func parseSessionDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}
