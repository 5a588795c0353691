package progression

import (
	"math"
	"testing"

	"github.com/claude/repcoach/internal/models"
)

func mustValidate(t *testing.T, records []models.SessionRecord) models.History {
	t.Helper()
	hist, err := ValidateHistory(records)
	if err != nil {
		t.Fatalf("ValidateHistory: %v", err)
	}
	return hist
}

// TestSummarizeWeightDelta verifies absolute and percentage weight change
// between first and last session.
func TestSummarizeWeightDelta(t *testing.T) {
	hist := mustValidate(t, []models.SessionRecord{
		rec(60, 3, 5, 7, "2026-08-01"),
		rec(63, 3, 5, 7, "2026-08-04"),
	})

	s := Summarize(hist, models.GoalStrength)
	if s.WeightDeltaAbs != 3 {
		t.Errorf("WeightDeltaAbs = %g, want 3", s.WeightDeltaAbs)
	}
	if math.Abs(s.WeightDeltaPct-0.05) > 1e-9 {
		t.Errorf("WeightDeltaPct = %g, want 0.05", s.WeightDeltaPct)
	}
	if s.SessionCount != 2 {
		t.Errorf("SessionCount = %d, want 2", s.SessionCount)
	}
}

// TestSummarizeZeroFirstWeight verifies the division guard: a zero starting
// weight yields 0% rather than an error or NaN.
func TestSummarizeZeroFirstWeight(t *testing.T) {
	hist := mustValidate(t, []models.SessionRecord{
		rec(0, 3, 10, 6, "2026-08-01"),
		rec(20, 3, 10, 6, "2026-08-04"),
	})

	s := Summarize(hist, models.GoalStrength)
	if s.WeightDeltaPct != 0 {
		t.Errorf("WeightDeltaPct = %g, want 0 (division guard)", s.WeightDeltaPct)
	}
	if s.VolumeTrend != models.TrendFlat {
		t.Errorf("VolumeTrend = %s, want flat (zero baseline)", s.VolumeTrend)
	}
}

// TestSummarizeVolumeTrend verifies the ±2% band on first-vs-last volume.
func TestSummarizeVolumeTrend(t *testing.T) {
	tests := []struct {
		name       string
		lastWeight float64
		want       models.Trend
	}{
		{"rising beyond 2%", 62.5, models.TrendRising},   // +4.2% volume
		{"flat within 2%", 60.5, models.TrendFlat},       // +0.8%
		{"falling beyond 2%", 57.5, models.TrendFalling}, // -4.2%
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist := mustValidate(t, []models.SessionRecord{
				rec(60, 3, 5, 7, "2026-08-01"),
				rec(tt.lastWeight, 3, 5, 7, "2026-08-04"),
			})
			if got := Summarize(hist, models.GoalStrength).VolumeTrend; got != tt.want {
				t.Errorf("VolumeTrend = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestSummarizeRPETrend verifies the linear direction over the recent
// window.
func TestSummarizeRPETrend(t *testing.T) {
	tests := []struct {
		name string
		rpes []int
		want models.Trend
	}{
		{"rising", []int{6, 7, 8, 9}, models.TrendRising},
		{"falling", []int{9, 8, 7, 6}, models.TrendFalling},
		{"flat", []int{7, 7, 7, 7}, models.TrendFlat},
		{"jitter is flat", []int{7, 8, 8, 7}, models.TrendFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]models.SessionRecord, len(tt.rpes))
			for i, rpe := range tt.rpes {
				records[i] = rec(60, 3, 5, rpe, dateFor(i))
			}
			if got := Summarize(mustValidate(t, records), models.GoalStrength).RPETrend; got != tt.want {
				t.Errorf("RPETrend(%v) = %s, want %s", tt.rpes, got, tt.want)
			}
		})
	}
}

// TestSummarizeRPETrendWindow verifies sessions beyond the 5 most recent are
// ignored: a long falling prefix must not mask a recent rise.
func TestSummarizeRPETrendWindow(t *testing.T) {
	rpes := []int{10, 9, 8, 7, 5, 6, 7, 8, 9} // last five: 5,6,7,8,9
	records := make([]models.SessionRecord, len(rpes))
	for i, rpe := range rpes {
		records[i] = rec(60, 3, 5, rpe, dateFor(i))
	}

	if got := Summarize(mustValidate(t, records), models.GoalStrength).RPETrend; got != models.TrendRising {
		t.Errorf("RPETrend = %s, want rising (only last 5 sessions count)", got)
	}
}

// TestSummarizeConsecutiveHighRPE verifies trailing RPE ≥ 9 counting stops
// at the first lower session.
func TestSummarizeConsecutiveHighRPE(t *testing.T) {
	tests := []struct {
		rpes []int
		want int
	}{
		{[]int{7, 7}, 0},
		{[]int{7, 9}, 1},
		{[]int{9, 7, 9, 10}, 2},
		{[]int{9, 9, 9}, 3},
	}

	for _, tt := range tests {
		records := make([]models.SessionRecord, len(tt.rpes))
		for i, rpe := range tt.rpes {
			records[i] = rec(60, 3, 5, rpe, dateFor(i))
		}
		if got := Summarize(mustValidate(t, records), models.GoalStrength).ConsecutiveHighRPECount; got != tt.want {
			t.Errorf("ConsecutiveHighRPECount(%v) = %d, want %d", tt.rpes, got, tt.want)
		}
	}
}

// TestSummarizeMissedTargets verifies counting reps below the goal's rep
// floor within the recent window.
func TestSummarizeMissedTargets(t *testing.T) {
	// Strength floor is 3; two sessions of doubles miss it.
	hist := mustValidate(t, []models.SessionRecord{
		rec(100, 3, 5, 7, "2026-08-01"),
		rec(102.5, 3, 2, 8, "2026-08-04"),
		rec(102.5, 3, 2, 8, "2026-08-07"),
	})
	if got := Summarize(hist, models.GoalStrength).MissedTargetCount; got != 2 {
		t.Errorf("MissedTargetCount = %d, want 2", got)
	}

	// Hypertrophy floor is 8, so fives all miss.
	if got := Summarize(hist, models.GoalHypertrophy).MissedTargetCount; got != 3 {
		t.Errorf("MissedTargetCount (hypertrophy) = %d, want 3", got)
	}
}

// TestSummarizeDeterminism verifies identical input yields identical output.
func TestSummarizeDeterminism(t *testing.T) {
	hist := mustValidate(t, []models.SessionRecord{
		rec(60, 3, 5, 7, "2026-08-01"),
		rec(62.5, 3, 4, 8, "2026-08-04"),
		rec(65, 3, 5, 9, "2026-08-07"),
	})

	first := Summarize(hist, models.GoalStrength)
	second := Summarize(hist, models.GoalStrength)
	if first != second {
		t.Errorf("Summarize not deterministic: %+v vs %+v", first, second)
	}
}

func dateFor(i int) string {
	return "2026-08-" + twoDigit(i+1)
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
