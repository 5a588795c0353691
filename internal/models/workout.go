package models

// WorkoutRequest is the inbound payload for daily-conditions workout
// generation.
type WorkoutRequest struct {
	FitnessLevel  string   `json:"fitness_level"`
	Goals         []string `json:"goals"`
	TimeAvailable int      `json:"time_available"`
	Equipment     []string `json:"equipment"`
	Fatigue       int      `json:"fatigue"`
	Stress        int      `json:"stress"`
	SleepHours    float64  `json:"sleep_hours"`
}

// Readiness is the deterministic daily-condition assessment computed before
// the oracle is consulted. Its caps hold regardless of what the oracle
// returns.
type Readiness struct {
	IntensityCeiling string   `json:"intensity_ceiling"`
	MobilityFocus    bool     `json:"mobility_focus"`
	IncludeCalming   bool     `json:"include_calming"`
	ReducedVolume    bool     `json:"reduced_volume"`
	Flags            []string `json:"flags,omitempty"`
}

// PlannedExercise is one exercise prescription within a generated workout.
type PlannedExercise struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reps     string `json:"reps"`
	Rest     string `json:"rest"`
	Notes    string `json:"notes,omitempty"`
}

// WorkoutPlan is the validated generated workout.
type WorkoutPlan struct {
	ID            string            `json:"id"`
	Exercises     []PlannedExercise `json:"workout"`
	TotalDuration int               `json:"total_duration"`
	Intensity     string            `json:"intensity_level"`
	Rationale     string            `json:"rationale"`
}

// WorkoutResponse is the full generation result returned to callers.
type WorkoutResponse struct {
	Input     WorkoutRequest `json:"input"`
	Readiness Readiness      `json:"readiness"`
	Plan      WorkoutPlan    `json:"plan"`
}
