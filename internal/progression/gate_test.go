package progression

import (
	"testing"

	"github.com/claude/repcoach/internal/models"
)

func summarizeFor(t *testing.T, goal models.Goal, records ...models.SessionRecord) (models.TrendSummary, models.History) {
	t.Helper()
	hist := mustValidate(t, records)
	return Summarize(hist, goal), hist
}

// TestBoundsDefault verifies the normal case: 5% ceiling, no deload.
func TestBoundsDefault(t *testing.T) {
	summary, hist := summarizeFor(t, models.GoalStrength,
		rec(60, 3, 5, 7, "2026-08-01"),
		rec(62.5, 3, 5, 7, "2026-08-04"),
	)

	b := Bounds(summary, models.GoalStrength, hist)
	if b.MaxWeightIncreasePct != 0.05 {
		t.Errorf("MaxWeightIncreasePct = %g, want 0.05", b.MaxWeightIncreasePct)
	}
	if b.DeloadRecommended {
		t.Error("DeloadRecommended = true, want false")
	}
	if b.MinSessionsRequired != 2 {
		t.Errorf("MinSessionsRequired = %d, want 2", b.MinSessionsRequired)
	}
}

// TestBoundsConsecutiveHighRPEDeload verifies rule 1: two or more trailing
// near-maximal sessions trigger a 15% deload.
func TestBoundsConsecutiveHighRPEDeload(t *testing.T) {
	summary, hist := summarizeFor(t, models.GoalStrength,
		rec(100, 3, 5, 9, "2026-08-01"),
		rec(100, 3, 5, 9, "2026-08-04"),
		rec(100, 3, 5, 10, "2026-08-07"),
	)

	b := Bounds(summary, models.GoalStrength, hist)
	if !b.DeloadRecommended {
		t.Fatal("DeloadRecommended = false, want true")
	}
	if b.DeloadWeightReductionPct != 0.15 {
		t.Errorf("DeloadWeightReductionPct = %g, want 0.15", b.DeloadWeightReductionPct)
	}
	if b.MaxWeightIncreasePct != 0 {
		t.Errorf("MaxWeightIncreasePct = %g, want 0 during deload", b.MaxWeightIncreasePct)
	}
}

// TestBoundsMissedTargetDeload verifies rule 2: two missed rep targets
// trigger a 10% deload.
func TestBoundsMissedTargetDeload(t *testing.T) {
	// Strength rep floor is 3; two sessions of doubles miss it. RPE stays
	// moderate so rule 1 cannot fire first.
	summary, hist := summarizeFor(t, models.GoalStrength,
		rec(100, 3, 5, 7, "2026-08-01"),
		rec(102.5, 3, 2, 8, "2026-08-04"),
		rec(102.5, 3, 2, 8, "2026-08-07"),
	)

	b := Bounds(summary, models.GoalStrength, hist)
	if !b.DeloadRecommended {
		t.Fatal("DeloadRecommended = false, want true")
	}
	if b.DeloadWeightReductionPct != 0.10 {
		t.Errorf("DeloadWeightReductionPct = %g, want 0.10", b.DeloadWeightReductionPct)
	}
}

// TestBoundsSustainedRisingRPEDeload verifies rule 3: rising RPE over ≥3
// sessions ending at 9+ triggers a 10% deload even with only one trailing
// high-RPE session.
func TestBoundsSustainedRisingRPEDeload(t *testing.T) {
	summary, hist := summarizeFor(t, models.GoalStrength,
		rec(100, 3, 5, 7, "2026-08-01"),
		rec(102.5, 3, 5, 8, "2026-08-04"),
		rec(105, 3, 5, 9, "2026-08-07"),
	)

	if summary.ConsecutiveHighRPECount != 1 {
		t.Fatalf("test setup: ConsecutiveHighRPECount = %d, want 1", summary.ConsecutiveHighRPECount)
	}

	b := Bounds(summary, models.GoalStrength, hist)
	if !b.DeloadRecommended {
		t.Fatal("DeloadRecommended = false, want true")
	}
	if b.DeloadWeightReductionPct != 0.10 {
		t.Errorf("DeloadWeightReductionPct = %g, want 0.10", b.DeloadWeightReductionPct)
	}
}

// TestBoundsRulePriority verifies the first matching rule wins: when both
// the high-RPE and missed-target conditions hold, the 15% reduction applies.
func TestBoundsRulePriority(t *testing.T) {
	summary, hist := summarizeFor(t, models.GoalStrength,
		rec(100, 3, 2, 9, "2026-08-01"),
		rec(100, 3, 2, 9, "2026-08-04"),
	)

	if summary.MissedTargetCount < 2 {
		t.Fatalf("test setup: MissedTargetCount = %d, want >= 2", summary.MissedTargetCount)
	}

	b := Bounds(summary, models.GoalStrength, hist)
	if b.DeloadWeightReductionPct != 0.15 {
		t.Errorf("DeloadWeightReductionPct = %g, want 0.15 (rule 1 wins)", b.DeloadWeightReductionPct)
	}
}

// TestBoundsHighLastRPEHoldsLoad verifies a single RPE 9-10 session without
// a deload caps the increase at 0%.
func TestBoundsHighLastRPEHoldsLoad(t *testing.T) {
	// Trailing high count is 1 and the RPE series is flat overall, so no
	// deload rule fires — but the last session was near-maximal.
	summary, hist := summarizeFor(t, models.GoalStrength,
		rec(100, 3, 5, 9, "2026-08-01"),
		rec(100, 3, 5, 7, "2026-08-04"),
		rec(100, 3, 5, 9, "2026-08-07"),
	)

	b := Bounds(summary, models.GoalStrength, hist)
	if b.DeloadRecommended {
		t.Fatal("DeloadRecommended = true, want false")
	}
	if b.MaxWeightIncreasePct != 0 {
		t.Errorf("MaxWeightIncreasePct = %g, want 0 (last RPE 9)", b.MaxWeightIncreasePct)
	}
}

// TestBoundsRepsDeclinedHoldsLoad verifies a rep drop vs the prior session
// caps the increase at 0%.
func TestBoundsRepsDeclinedHoldsLoad(t *testing.T) {
	summary, hist := summarizeFor(t, models.GoalStrength,
		rec(100, 3, 5, 7, "2026-08-01"),
		rec(102.5, 3, 4, 7, "2026-08-04"),
	)

	b := Bounds(summary, models.GoalStrength, hist)
	if b.DeloadRecommended {
		t.Fatal("DeloadRecommended = true, want false")
	}
	if b.MaxWeightIncreasePct != 0 {
		t.Errorf("MaxWeightIncreasePct = %g, want 0 (reps declined)", b.MaxWeightIncreasePct)
	}
}
