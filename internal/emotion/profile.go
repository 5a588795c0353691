package emotion

import "github.com/claude/repcoach/internal/models"

// moodProfiles maps each supported mood to its training parameters. The table
// is the deterministic core of this package: the oracle only ever decorates
// its output, never changes it.
var moodProfiles = map[string]models.MoodProfile{
	"anxious": {
		Mood:          "anxious",
		CoachingTone:  "calming",
		Intensity:     "low",
		WorkoutTypes:  []string{"yoga", "walking", "stretching"},
		DurationRange: [2]int{20, 40},
		ExampleSessions: []string{
			"Slow flow yoga with extended exhales",
			"30-minute walk at a conversational pace",
		},
		Reason: "Low-intensity rhythmic movement lowers arousal and gives a racing mind a steady anchor.",
	},
	"energetic": {
		Mood:          "energetic",
		CoachingTone:  "energizing",
		Intensity:     "high",
		WorkoutTypes:  []string{"HIIT", "running", "circuit training"},
		DurationRange: [2]int{30, 60},
		ExampleSessions: []string{
			"20-minute HIIT circuit plus a cooldown jog",
			"Interval run: 6 x 2 minutes hard",
		},
		Reason: "High energy is the best window for demanding work; spend it while it's there.",
	},
	"tired": {
		Mood:          "tired",
		CoachingTone:  "gentle",
		Intensity:     "low",
		WorkoutTypes:  []string{"mobility", "easy walk", "stretching"},
		DurationRange: [2]int{15, 30},
		ExampleSessions: []string{
			"Full-body mobility sequence",
			"Easy 20-minute walk",
		},
		Reason: "Light movement aids recovery without adding fatigue debt to an already tired body.",
	},
	"motivated": {
		Mood:          "motivated",
		CoachingTone:  "encouraging",
		Intensity:     "high",
		WorkoutTypes:  []string{"strength training", "intervals"},
		DurationRange: [2]int{45, 75},
		ExampleSessions: []string{
			"Heavy compound session: squat, press, row",
			"Tempo intervals on the bike",
		},
		Reason: "Motivation sustains focus through hard, technical work; use it on what matters most.",
	},
	"frustrated": {
		Mood:          "frustrated",
		CoachingTone:  "energizing",
		Intensity:     "high",
		WorkoutTypes:  []string{"boxing", "sprints", "rowing"},
		DurationRange: [2]int{30, 45},
		ExampleSessions: []string{
			"Heavy bag rounds: 8 x 2 minutes",
			"Hill sprint session",
		},
		Reason: "Explosive, repetitive effort gives frustration a physical outlet and leaves you spent, not stewing.",
	},
	"sad": {
		Mood:          "sad",
		CoachingTone:  "gentle",
		Intensity:     "low",
		WorkoutTypes:  []string{"walking outdoors", "light cycling", "yoga"},
		DurationRange: [2]int{20, 40},
		ExampleSessions: []string{
			"Outdoor walk in daylight",
			"Easy spin with music",
		},
		Reason: "Gentle movement, ideally outdoors, reliably lifts mood without demanding more than you have.",
	},
	"overwhelmed": {
		Mood:          "overwhelmed",
		CoachingTone:  "calming",
		Intensity:     "low",
		WorkoutTypes:  []string{"breathwork", "restorative yoga", "walking"},
		DurationRange: [2]int{15, 30},
		ExampleSessions: []string{
			"Box breathing plus restorative poses",
			"Short walk with no phone",
		},
		Reason: "A short, simple session shrinks the decision load and restores a sense of control.",
	},
	"confident": {
		Mood:          "confident",
		CoachingTone:  "encouraging",
		Intensity:     "high",
		WorkoutTypes:  []string{"strength training", "skill work"},
		DurationRange: [2]int{45, 60},
		ExampleSessions: []string{
			"Top-set day on a main lift",
			"Skill practice: handstands or cleans",
		},
		Reason: "Confidence improves execution under load; a good day to attempt quality over comfort.",
	},
	"restless": {
		Mood:          "restless",
		CoachingTone:  "energizing",
		Intensity:     "moderate",
		WorkoutTypes:  []string{"circuit training", "swimming", "cycling"},
		DurationRange: [2]int{30, 45},
		ExampleSessions: []string{
			"Full-body circuit, minimal rest",
			"Steady swim with stroke variety",
		},
		Reason: "Continuous varied movement absorbs restless energy better than stop-start training.",
	},
	"content": {
		Mood:          "content",
		CoachingTone:  "steady",
		Intensity:     "moderate",
		WorkoutTypes:  []string{"strength training", "steady-state cardio"},
		DurationRange: [2]int{30, 60},
		ExampleSessions: []string{
			"Standard programmed strength session",
			"Zone 2 run or ride",
		},
		Reason: "A settled mood is ideal for consistent, boring-but-effective base work.",
	},
	"excited": {
		Mood:          "excited",
		CoachingTone:  "energizing",
		Intensity:     "high",
		WorkoutTypes:  []string{"group classes", "intervals", "dance"},
		DurationRange: [2]int{30, 60},
		ExampleSessions: []string{
			"High-energy group class",
			"Play-based intervals with a partner",
		},
		Reason: "Excitement pairs well with social, fast-changing formats that keep the spark going.",
	},
	"neutral": {
		Mood:          "neutral",
		CoachingTone:  "steady",
		Intensity:     "moderate",
		WorkoutTypes:  []string{"full-body strength", "jogging"},
		DurationRange: [2]int{30, 45},
		ExampleSessions: []string{
			"Full-body strength session",
			"30-minute easy jog",
		},
		Reason: "No strong signal either way; a balanced default session keeps the habit moving.",
	},
}

// tonePhrases maps each coaching tone to example phrases a coach in that tone
// would use. Surfaced to callers so downstream UIs can match the voice.
var tonePhrases = map[string][]string{
	"calming": {
		"There's no rush today. Settle into the movement.",
		"Let the breath set the pace.",
	},
	"gentle": {
		"Showing up is the win today.",
		"Take whatever range feels available, nothing more.",
	},
	"energizing": {
		"Let's put that energy to work.",
		"Strong start. Keep the pace honest.",
	},
	"encouraging": {
		"You've earned the right to push today.",
		"Trust the preparation. Attack the session.",
	},
	"steady": {
		"Same standards as always. Quality reps.",
		"Consistent work is what compounds.",
	},
}

// ProfileFor returns the static profile for a validated mood.
func ProfileFor(mood string) (models.MoodProfile, bool) {
	p, ok := moodProfiles[mood]
	return p, ok
}

// Moods returns the supported moods in a stable order for validation errors
// and form rendering.
func Moods() []string {
	return []string{
		"anxious", "energetic", "tired", "motivated", "frustrated", "sad",
		"overwhelmed", "confident", "restless", "content", "excited", "neutral",
	}
}
