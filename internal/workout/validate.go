package workout

import (
	"fmt"
	"strings"

	"github.com/claude/repcoach/internal/models"
)

var fitnessLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

var allowedGoals = map[string]bool{
	"strength":    true,
	"cardio":      true,
	"flexibility": true,
	"mobility":    true,
	"endurance":   true,
	"power":       true,
}

// ValidateRequest normalizes and validates a workout request. Errors are the
// caller's fault and map to client-facing validation failures.
func ValidateRequest(req models.WorkoutRequest) (models.WorkoutRequest, error) {
	req.FitnessLevel = strings.ToLower(strings.TrimSpace(req.FitnessLevel))
	if !fitnessLevels[req.FitnessLevel] {
		return req, fmt.Errorf("fitness_level must be one of: beginner, intermediate, advanced (got %q)", req.FitnessLevel)
	}

	if len(req.Goals) == 0 {
		return req, fmt.Errorf("at least one goal must be specified")
	}
	for i, g := range req.Goals {
		g = strings.ToLower(strings.TrimSpace(g))
		if !allowedGoals[g] {
			return req, fmt.Errorf("invalid goal %q; allowed: strength, cardio, flexibility, mobility, endurance, power", req.Goals[i])
		}
		req.Goals[i] = g
	}

	if req.TimeAvailable < 5 || req.TimeAvailable > 120 {
		return req, fmt.Errorf("time_available must be 5-120 minutes (got %d)", req.TimeAvailable)
	}
	if req.Fatigue < 1 || req.Fatigue > 10 {
		return req, fmt.Errorf("fatigue must be 1-10 (got %d)", req.Fatigue)
	}
	if req.Stress < 1 || req.Stress > 10 {
		return req, fmt.Errorf("stress must be 1-10 (got %d)", req.Stress)
	}
	if req.SleepHours < 0 || req.SleepHours > 24 {
		return req, fmt.Errorf("sleep_hours must be 0-24 (got %g)", req.SleepHours)
	}

	if len(req.Equipment) == 0 {
		req.Equipment = []string{"bodyweight"}
	}

	return req, nil
}
