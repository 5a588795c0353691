package workout

import "github.com/claude/repcoach/internal/models"

const fallbackRationale = "AI coach unavailable; serving a conservative default plan matched to your level and today's readiness."

// fallbackPlans are deterministic bodyweight plans per fitness level, used
// when the oracle fails. Bodyweight keeps the fallback safe regardless of
// what equipment the athlete actually listed.
var fallbackPlans = map[string][]models.PlannedExercise{
	"beginner": {
		{Exercise: "Bodyweight Squat", Sets: 3, Reps: "10-12", Rest: "60s", Notes: "Keep chest up"},
		{Exercise: "Incline Push-up", Sets: 3, Reps: "8-10", Rest: "60s", Notes: "Hands on a bench or wall"},
		{Exercise: "Glute Bridge", Sets: 3, Reps: "12-15", Rest: "45s", Notes: "Pause at the top"},
		{Exercise: "Dead Bug", Sets: 2, Reps: "8 per side", Rest: "45s", Notes: "Lower back stays down"},
	},
	"intermediate": {
		{Exercise: "Bodyweight Squat", Sets: 4, Reps: "15-20", Rest: "60s", Notes: "Full depth"},
		{Exercise: "Push-up", Sets: 4, Reps: "10-15", Rest: "60s", Notes: "Elbows at 45 degrees"},
		{Exercise: "Reverse Lunge", Sets: 3, Reps: "10 per side", Rest: "60s", Notes: "Knee tracks over toes"},
		{Exercise: "Plank", Sets: 3, Reps: "45s hold", Rest: "45s", Notes: "Squeeze glutes"},
		{Exercise: "Superman Hold", Sets: 2, Reps: "30s hold", Rest: "45s", Notes: "Reach long"},
	},
	"advanced": {
		{Exercise: "Jump Squat", Sets: 4, Reps: "8-10", Rest: "90s", Notes: "Land softly"},
		{Exercise: "Decline Push-up", Sets: 4, Reps: "12-15", Rest: "60s", Notes: "Feet elevated"},
		{Exercise: "Bulgarian Split Squat", Sets: 3, Reps: "10 per side", Rest: "90s", Notes: "Rear foot elevated"},
		{Exercise: "Pike Push-up", Sets: 3, Reps: "8-10", Rest: "60s", Notes: "Hips high"},
		{Exercise: "Hollow Body Hold", Sets: 3, Reps: "30s hold", Rest: "45s", Notes: "Ribs down"},
	},
}

// mobilityPlan replaces the level plan when the readiness gate demands a
// mobility focus.
var mobilityPlan = []models.PlannedExercise{
	{Exercise: "Cat-Cow", Sets: 2, Reps: "10", Rest: "30s", Notes: "Move with breath"},
	{Exercise: "World's Greatest Stretch", Sets: 2, Reps: "5 per side", Rest: "30s", Notes: "Slow transitions"},
	{Exercise: "Hip Flexor Stretch", Sets: 2, Reps: "30s per side", Rest: "30s", Notes: "Gentle range"},
	{Exercise: "Easy Walk or March", Sets: 1, Reps: "10 min", Rest: "-", Notes: "Conversational pace"},
}

// fallbackPlan builds the deterministic default plan for a validated request.
func fallbackPlan(req models.WorkoutRequest, readiness models.Readiness) models.WorkoutPlan {
	exercises := fallbackPlans[req.FitnessLevel]
	if readiness.MobilityFocus {
		exercises = mobilityPlan
	}

	return models.WorkoutPlan{
		Exercises:     exercises,
		TotalDuration: req.TimeAvailable,
		Intensity:     readiness.IntensityCeiling,
		Rationale:     fallbackRationale,
	}
}
