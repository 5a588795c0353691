package workout

import "github.com/claude/repcoach/internal/models"

// Condition thresholds for the readiness assessment.
const (
	highFatigue = 7
	highStress  = 8
	minSleepHrs = 5.0
)

// Assess derives today's training caps from the reported daily conditions.
// Pure function — runs before the oracle is consulted, and its ceilings are
// enforced on whatever the oracle returns.
func Assess(req models.WorkoutRequest) models.Readiness {
	r := models.Readiness{IntensityCeiling: "high"}

	if req.FitnessLevel == "beginner" {
		// Beginners never get maximal loads or advanced techniques.
		r.IntensityCeiling = "moderate"
	}
	if req.Fatigue > highFatigue {
		r.ReducedVolume = true
		r.IntensityCeiling = "low"
		r.Flags = append(r.Flags, "high fatigue: reduced volume and intensity")
	}
	if req.SleepHours < minSleepHrs {
		r.MobilityFocus = true
		r.IntensityCeiling = "low"
		r.Flags = append(r.Flags, "short sleep: mobility and light activity focus")
	}
	if req.Stress > highStress {
		r.IncludeCalming = true
		r.Flags = append(r.Flags, "high stress: calming elements included")
	}

	return r
}

// intensityRank orders intensity levels for ceiling enforcement.
func intensityRank(level string) int {
	switch level {
	case "low":
		return 0
	case "moderate":
		return 1
	case "high":
		return 2
	default:
		return 1
	}
}

// capIntensity lowers a drafted intensity to the readiness ceiling when the
// draft exceeds it.
func capIntensity(drafted string, ceiling string) string {
	if intensityRank(drafted) > intensityRank(ceiling) {
		return ceiling
	}
	if intensityRank(drafted) == 1 && drafted != "moderate" {
		// Unrecognized label from the oracle — normalize.
		return "moderate"
	}
	return drafted
}
