package progression

import "github.com/claude/repcoach/internal/models"

// Hard limits on next-session prescriptions. The increase ceiling cannot be
// raised by any goal policy or oracle suggestion.
const (
	maxIncreasePct = 0.05

	deloadHighRPEReduction   = 0.15
	deloadMissedReduction    = 0.10
	deloadSustainedReduction = 0.10
)

// Bounds derives the safety envelope for the next recommendation from the
// summary and the validated history. It never consults the oracle: a safe
// recommendation must be producible from these bounds alone.
//
// Deload rules apply in priority order; the first match wins.
func Bounds(summary models.TrendSummary, goal models.Goal, hist models.History) models.SafetyBounds {
	bounds := models.SafetyBounds{
		MaxWeightIncreasePct: maxIncreasePct,
		MinSessionsRequired:  MinSessions,
	}

	switch {
	case summary.ConsecutiveHighRPECount >= 2:
		bounds.DeloadRecommended = true
		bounds.DeloadWeightReductionPct = deloadHighRPEReduction
	case summary.MissedTargetCount >= 2:
		bounds.DeloadRecommended = true
		bounds.DeloadWeightReductionPct = deloadMissedReduction
	case summary.RPETrend == models.TrendRising && summary.SessionCount >= 3 && summary.LastRPE >= highRPE:
		bounds.DeloadRecommended = true
		bounds.DeloadWeightReductionPct = deloadSustainedReduction
	}

	if bounds.DeloadRecommended {
		// A deload recommendation caps the increase at 0 so the final
		// weight can never exceed the last session's.
		bounds.MaxWeightIncreasePct = 0
	} else {
		// Last session at RPE 9-10: hold the load.
		if summary.LastRPE >= highRPE {
			bounds.MaxWeightIncreasePct = 0
		}
		// Performance declined vs the prior session: maintain or reduce.
		if repsDeclined(hist) {
			bounds.MaxWeightIncreasePct = 0
		}
	}

	return bounds
}

// repsDeclined reports whether the most recent session completed fewer reps
// than the one before it.
func repsDeclined(hist models.History) bool {
	if len(hist) < 2 {
		return false
	}
	return hist[len(hist)-1].Reps < hist[len(hist)-2].Reps
}
