package progression

import "github.com/claude/repcoach/internal/models"

// trendWindow is the number of most recent sessions the short-term trends
// (RPE direction, missed targets) are computed over.
const trendWindow = 5

// flatBandPct is the relative change below which a first-vs-last comparison
// counts as flat.
const flatBandPct = 0.02

// highRPE marks a session as near-maximal effort.
const highRPE = 9

// Summarize computes deterministic trend statistics from a validated
// history. Pure function of its inputs — no oracle involvement, reproducible
// on every call.
func Summarize(hist models.History, goal models.Goal) models.TrendSummary {
	first, last := hist.First(), hist.Last()

	summary := models.TrendSummary{
		SessionCount:   len(hist),
		WeightDeltaAbs: last.Weight - first.Weight,
		LastRPE:        last.RPE,
	}

	// Division guard: a zero starting weight (bodyweight work) yields 0%,
	// never an error.
	if first.Weight > 0 {
		summary.WeightDeltaPct = (last.Weight - first.Weight) / first.Weight
	}

	summary.VolumeTrend = relativeTrend(first.Volume(), last.Volume())
	summary.RPETrend = rpeDirection(recentWindow(hist))
	summary.ConsecutiveHighRPECount = trailingHighRPE(hist)
	summary.MissedTargetCount = missedTargets(recentWindow(hist), models.PolicyFor(goal).RepFloor)

	return summary
}

// recentWindow returns the last up-to-trendWindow sessions.
func recentWindow(hist models.History) models.History {
	if len(hist) <= trendWindow {
		return hist
	}
	return hist[len(hist)-trendWindow:]
}

// relativeTrend classifies last vs first with a ±flatBandPct band. A zero
// baseline is treated as flat (division guard).
func relativeTrend(first, last float64) models.Trend {
	if first == 0 {
		return models.TrendFlat
	}
	switch pct := (last - first) / first; {
	case pct > flatBandPct:
		return models.TrendRising
	case pct < -flatBandPct:
		return models.TrendFalling
	default:
		return models.TrendFlat
	}
}

// rpeDirection fits a least-squares line through the window's RPE values and
// classifies the slope. A slope within ±0.15 RPE per session is flat —
// subjective effort scores jitter by that much on identical sessions.
func rpeDirection(window models.History) models.Trend {
	n := float64(len(window))
	if n < 2 {
		return models.TrendFlat
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, s := range window {
		x, y := float64(i), float64(s.RPE)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return models.TrendFlat
	}
	slope := (n*sumXY - sumX*sumY) / denom

	const slopeBand = 0.15
	switch {
	case slope > slopeBand:
		return models.TrendRising
	case slope < -slopeBand:
		return models.TrendFalling
	default:
		return models.TrendFlat
	}
}

// trailingHighRPE counts sessions from most recent backward with RPE ≥ 9,
// stopping at the first session below.
func trailingHighRPE(hist models.History) int {
	count := 0
	for i := len(hist) - 1; i >= 0; i-- {
		if hist[i].RPE < highRPE {
			break
		}
		count++
	}
	return count
}

// missedTargets counts sessions in the window where recorded reps fell below
// the goal's rep floor.
func missedTargets(window models.History, repFloor int) int {
	count := 0
	for _, s := range window {
		if s.Reps < repFloor {
			count++
		}
	}
	return count
}
