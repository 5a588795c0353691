package models

// EmotionRequest is the inbound payload for emotion-aligned session
// recommendations.
type EmotionRequest struct {
	Mood   string `json:"mood"`
	Energy int    `json:"energy"`
	Stress int    `json:"stress"`
}

// MoodProfile holds the fixed per-mood training parameters. Profiles are a
// static lookup table, not user-mutable.
type MoodProfile struct {
	Mood            string   `json:"mood"`
	CoachingTone    string   `json:"coaching_tone"`
	Intensity       string   `json:"intensity"`
	WorkoutTypes    []string `json:"workout_types"`
	DurationRange   [2]int   `json:"duration_range"`
	ExampleSessions []string `json:"example_sessions"`
	Reason          string   `json:"reason"`
}

// EmotionRecommendation is the full emotion-aligned result returned to
// callers. Everything except Message is deterministic; Message is the only
// oracle-drafted field and falls back to a fixed template.
type EmotionRecommendation struct {
	Mood               string   `json:"mood"`
	Energy             int      `json:"energy"`
	Stress             int      `json:"stress"`
	RecommendedSession string   `json:"recommended_session"`
	CoachingStyle      string   `json:"coaching_style"`
	Reason             string   `json:"reason"`
	WorkoutTypes       []string `json:"workout_types"`
	DurationRange      [2]int   `json:"duration_range"`
	Intensity          string   `json:"intensity"`
	ExamplePhrases     []string `json:"example_phrases"`
	Message            string   `json:"message"`
	Flags              []string `json:"flags,omitempty"`
}
