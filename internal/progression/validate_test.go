package progression

import (
	"errors"
	"testing"

	"github.com/claude/repcoach/internal/models"
)

func rec(weight float64, sets, reps, rpe int, date string) models.SessionRecord {
	return models.SessionRecord{Exercise: "Barbell Squat", Weight: weight, Sets: sets, Reps: reps, RPE: rpe, Date: date}
}

// TestValidateInsufficientHistory verifies that fewer than 2 records is
// rejected — a delta needs at least two points.
func TestValidateInsufficientHistory(t *testing.T) {
	for _, records := range [][]models.SessionRecord{
		nil,
		{rec(60, 3, 5, 7, "2026-08-01")},
	} {
		_, err := ValidateHistory(records)
		if !errors.Is(err, ErrInsufficientHistory) {
			t.Errorf("ValidateHistory(%d records) error = %v, want ErrInsufficientHistory", len(records), err)
		}
	}
}

// TestValidateMalformedRecords verifies each field-level rejection and that
// the error reports the offending index.
func TestValidateMalformedRecords(t *testing.T) {
	valid := rec(60, 3, 5, 7, "2026-08-01")

	tests := []struct {
		name string
		bad  models.SessionRecord
	}{
		{"rpe too high", rec(60, 3, 5, 11, "2026-08-04")},
		{"rpe too low", rec(60, 3, 5, 0, "2026-08-04")},
		{"zero sets", rec(60, 0, 5, 7, "2026-08-04")},
		{"zero reps", rec(60, 3, 0, 7, "2026-08-04")},
		{"negative weight", rec(-5, 3, 5, 7, "2026-08-04")},
		{"unparsable date", rec(60, 3, 5, 7, "next tuesday")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateHistory([]models.SessionRecord{valid, tt.bad})
			var malformed *MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %v, want MalformedRecordError", err)
			}
			if malformed.Index != 1 {
				t.Errorf("Index = %d, want 1", malformed.Index)
			}
		})
	}
}

// TestValidateSortsByDate verifies re-sorting ascending with a stable
// tie-break by input order for equal dates.
func TestValidateSortsByDate(t *testing.T) {
	a := rec(65, 3, 5, 8, "2026-08-07")
	b := rec(60, 3, 5, 7, "2026-08-01")
	c := rec(62.5, 3, 5, 7, "2026-08-07") // same date as a, later in input
	c.Notes = "second of the day"

	hist, err := ValidateHistory([]models.SessionRecord{a, b, c})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hist[0].Weight != 60 {
		t.Errorf("hist[0].Weight = %g, want 60 (earliest date first)", hist[0].Weight)
	}
	if hist[1].Weight != 65 || hist[2].Notes != "second of the day" {
		t.Errorf("equal dates not stable: hist[1].Weight = %g, hist[2].Notes = %q", hist[1].Weight, hist[2].Notes)
	}
}

// TestValidateDefaultsMissingDate verifies a record without a date is
// accepted (defaults to today) rather than rejected.
func TestValidateDefaultsMissingDate(t *testing.T) {
	hist, err := ValidateHistory([]models.SessionRecord{
		rec(60, 3, 5, 7, "2026-08-01"),
		rec(62.5, 3, 5, 7, ""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hist.Last().Weight != 62.5 {
		t.Errorf("undated record should sort last (today), got last weight %g", hist.Last().Weight)
	}
}

// TestValidateAcceptsRFC3339 verifies both supported date layouts parse.
func TestValidateAcceptsRFC3339(t *testing.T) {
	_, err := ValidateHistory([]models.SessionRecord{
		rec(60, 3, 5, 7, "2026-08-01T10:00:00Z"),
		rec(62.5, 3, 5, 7, "2026-08-04"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestValidateZeroWeightAllowed verifies bodyweight sessions (weight 0) are
// valid input.
func TestValidateZeroWeightAllowed(t *testing.T) {
	_, err := ValidateHistory([]models.SessionRecord{
		rec(0, 3, 10, 6, "2026-08-01"),
		rec(0, 3, 12, 6, "2026-08-04"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
