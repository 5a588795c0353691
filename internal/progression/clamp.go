package progression

import (
	"math"

	"github.com/claude/repcoach/internal/models"
)

// fallbackIncreasePct is the conservative default progression applied when
// the oracle is unavailable and no deload is triggered.
const fallbackIncreasePct = 0.02

// fallbackRationale is the fixed explanation used on the deterministic
// fallback path.
const fallbackRationale = "AI coach unavailable; applying a conservative default progression within the computed safety bounds."

// Rate thresholds on the clamped relative weight delta.
const (
	moderateThreshold   = 0.0
	aggressiveThreshold = 0.025
)

// Finalize turns an untrusted oracle draft (possibly nil) into a
// bounds-validated Recommendation. A valid history always yields a
// recommendation: draft violations are clamped, and an absent or malformed
// draft takes the deterministic fallback path.
func Finalize(draft *models.OracleDraft, bounds models.SafetyBounds, hist models.History, goal models.Goal) models.Recommendation {
	last := hist.Last()
	policy := models.PolicyFor(goal)

	if draft == nil {
		return fallback(bounds, last, policy)
	}

	rec := models.Recommendation{
		RecommendedWeight: clampWeight(draft.Weight, bounds, last.Weight),
		RecommendedSets:   draft.Sets,
		RecommendedReps:   draft.Reps,
		TargetRPE:         draft.TargetRPE,
		Rationale:         draft.Rationale,
		DeloadAlert:       bounds.DeloadRecommended, // the gate's verdict always wins
		CoachingTips:      draft.Tips,
	}

	if rec.RecommendedSets <= 0 {
		rec.RecommendedSets = last.Sets
	}
	if rec.RecommendedReps <= 0 {
		rec.RecommendedReps = last.Reps
	}
	if rec.TargetRPE < 1 || rec.TargetRPE > 10 {
		rec.TargetRPE = policy.TargetRPE
	}
	if rec.Rationale == "" {
		rec.Rationale = fallbackRationale
	}

	rec.ProgressionRate = validateRate(draft.ProgressionRate, rec.RecommendedWeight, last.Weight)
	rec.CoachingTips = normalizeTips(rec.CoachingTips, policy)
	return rec
}

// fallback synthesizes the deterministic recommendation used when no usable
// draft exists.
func fallback(bounds models.SafetyBounds, last models.SessionRecord, policy models.GoalPolicy) models.Recommendation {
	weight := last.Weight * (1 + math.Min(fallbackIncreasePct, bounds.MaxWeightIncreasePct))
	if bounds.DeloadRecommended {
		weight = last.Weight * (1 - bounds.DeloadWeightReductionPct)
	}

	return models.Recommendation{
		RecommendedWeight: weight,
		RecommendedSets:   last.Sets,
		RecommendedReps:   last.Reps,
		TargetRPE:         policy.TargetRPE,
		ProgressionRate:   models.RateConservative,
		Rationale:         fallbackRationale,
		DeloadAlert:       bounds.DeloadRecommended,
		CoachingTips:      normalizeTips(nil, policy),
	}
}

// clampWeight forces a drafted weight into
// [last×(1−deload_reduction), last×(1+max_increase)].
func clampWeight(drafted float64, bounds models.SafetyBounds, lastWeight float64) float64 {
	low := lastWeight * (1 - bounds.DeloadWeightReductionPct)
	high := lastWeight * (1 + bounds.MaxWeightIncreasePct)
	return math.Min(math.Max(drafted, low), high)
}

// rateFromDelta derives the progression rate from the clamped relative
// weight change.
func rateFromDelta(recommended, lastWeight float64) models.ProgressionRate {
	if lastWeight <= 0 {
		return models.RateConservative
	}
	switch pct := (recommended - lastWeight) / lastWeight; {
	case pct > aggressiveThreshold:
		return models.RateAggressive
	case pct > moderateThreshold:
		return models.RateModerate
	default:
		return models.RateConservative
	}
}

// validateRate reconciles the oracle's claimed rate with the clamped delta.
// The claim is kept when recognized but can never exceed the derived rate —
// an oracle claiming "aggressive" on a 0% delta is corrected down.
func validateRate(claimed string, recommended, lastWeight float64) models.ProgressionRate {
	derived := rateFromDelta(recommended, lastWeight)
	claim := models.ProgressionRate(claimed)

	order := map[models.ProgressionRate]int{
		models.RateConservative: 0,
		models.RateModerate:     1,
		models.RateAggressive:   2,
	}

	claimRank, ok := order[claim]
	if !ok {
		return derived
	}
	if claimRank > order[derived] {
		return derived
	}
	return claim
}

// normalizeTips truncates tips to at most 3 and guarantees at least 1 by
// filling from the goal's static fallback table.
func normalizeTips(tips []string, policy models.GoalPolicy) []string {
	cleaned := make([]string, 0, 3)
	for _, tip := range tips {
		if tip == "" {
			continue
		}
		cleaned = append(cleaned, tip)
		if len(cleaned) == 3 {
			return cleaned
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, policy.FallbackTips...)
		if len(cleaned) > 3 {
			cleaned = cleaned[:3]
		}
	}
	return cleaned
}
