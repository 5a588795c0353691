package oracle

import (
	"fmt"
	"strings"

	"github.com/claude/repcoach/internal/models"
)

// progressionPrompt renders the structured progression request. The prompt
// contains only derived statistics and bounds — never raw history — and
// states the safety bounds as hard constraints the draft must respect.
func progressionPrompt(req DraftRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert strength coach drafting the next-session prescription.\n\n")
	fmt.Fprintf(&b, "EXERCISE: %s\n", req.Exercise)
	fmt.Fprintf(&b, "TRAINING GOAL: %s (%s; %d-%d reps; %s)\n\n",
		req.Goal, req.Policy.Emphasis, req.Policy.RepFloor, req.Policy.RepCeiling, req.Policy.RestGuidance)

	fmt.Fprintf(&b, "TREND SUMMARY (computed deterministically from the athlete's log):\n")
	fmt.Fprintf(&b, "- Sessions analyzed: %d\n", req.Summary.SessionCount)
	fmt.Fprintf(&b, "- Weight change: %+.1f kg (%+.1f%%)\n", req.Summary.WeightDeltaAbs, req.Summary.WeightDeltaPct*100)
	fmt.Fprintf(&b, "- Volume trend: %s\n", req.Summary.VolumeTrend)
	fmt.Fprintf(&b, "- RPE trend: %s, last RPE %d/10\n", req.Summary.RPETrend, req.Summary.LastRPE)
	fmt.Fprintf(&b, "- Consecutive near-maximal (RPE >= 9) sessions: %d\n", req.Summary.ConsecutiveHighRPECount)
	fmt.Fprintf(&b, "- Sessions below the goal rep floor (last %d): %d\n\n", 5, req.Summary.MissedTargetCount)

	fmt.Fprintf(&b, "HARD CONSTRAINTS (your draft will be clamped to these regardless):\n")
	fmt.Fprintf(&b, "- Maximum weight increase: %.1f%%\n", req.Bounds.MaxWeightIncreasePct*100)
	if req.Bounds.DeloadRecommended {
		fmt.Fprintf(&b, "- Deload required: reduce weight by %.0f%%\n", req.Bounds.DeloadWeightReductionPct*100)
	} else {
		fmt.Fprintf(&b, "- Deload required: no\n")
	}

	b.WriteString(`
Return ONLY a JSON object in exactly this shape, no other text:
{
  "weight": <recommended weight in kg>,
  "sets": <recommended sets>,
  "reps": <recommended reps>,
  "target_rpe": <target RPE 1-10>,
  "progression_rate": "conservative|moderate|aggressive",
  "rationale": "<one or two sentences>",
  "deload_suggested": <true|false>,
  "tips": ["<coaching tip>", "<coaching tip>", "<coaching tip>"]
}
`)
	return b.String()
}

// emotionPrompt renders the session-intro request. The structured parameters
// are already decided deterministically; the oracle only writes the voice.
func emotionPrompt(rec models.EmotionRecommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an empathetic fitness coach writing a personalized session introduction.\n\n")
	fmt.Fprintf(&b, "ATHLETE'S STATE:\n")
	fmt.Fprintf(&b, "- Mood: %s\n", rec.Mood)
	fmt.Fprintf(&b, "- Energy: %d/10\n", rec.Energy)
	fmt.Fprintf(&b, "- Stress: %d/10\n\n", rec.Stress)

	fmt.Fprintf(&b, "SESSION PARAMETERS (already decided, do not change them):\n")
	fmt.Fprintf(&b, "- Intensity: %s\n", rec.Intensity)
	fmt.Fprintf(&b, "- Coaching tone: %s\n", rec.CoachingStyle)
	fmt.Fprintf(&b, "- Duration: %d-%d minutes\n", rec.DurationRange[0], rec.DurationRange[1])
	fmt.Fprintf(&b, "- Workout types: %s\n", strings.Join(rec.WorkoutTypes, ", "))

	b.WriteString(`
Write a warm 2-3 sentence session introduction that acknowledges their state,
explains why this session helps, and stays in the given coaching tone.
Return ONLY the introduction text. No JSON, no headings, no fitness cliches.
`)
	return b.String()
}

// workoutPrompt renders the daily-conditions workout request with the
// readiness gate's caps stated as constraints.
func workoutPrompt(req models.WorkoutRequest, readiness models.Readiness) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert fitness coach writing today's workout.\n\n")
	fmt.Fprintf(&b, "ATHLETE:\n")
	fmt.Fprintf(&b, "- Fitness level: %s\n", req.FitnessLevel)
	fmt.Fprintf(&b, "- Goals: %s\n", strings.Join(req.Goals, ", "))
	fmt.Fprintf(&b, "- Time available: %d minutes\n", req.TimeAvailable)
	fmt.Fprintf(&b, "- Equipment: %s\n", strings.Join(req.Equipment, ", "))
	fmt.Fprintf(&b, "- Fatigue %d/10, stress %d/10, sleep %.1f h\n\n", req.Fatigue, req.Stress, req.SleepHours)

	fmt.Fprintf(&b, "HARD CONSTRAINTS (your plan will be adjusted to these regardless):\n")
	fmt.Fprintf(&b, "- Intensity at most: %s\n", readiness.IntensityCeiling)
	if readiness.ReducedVolume {
		fmt.Fprintf(&b, "- Reduce volume: high fatigue reported\n")
	}
	if readiness.MobilityFocus {
		fmt.Fprintf(&b, "- Focus on mobility and light activity: under 5 hours of sleep\n")
	}
	if readiness.IncludeCalming {
		fmt.Fprintf(&b, "- Include calming elements: high stress reported\n")
	}
	fmt.Fprintf(&b, "- 4-6 exercises, total duration within %d minutes\n", req.TimeAvailable)

	b.WriteString(`
Return ONLY a JSON object in exactly this shape, no other text:
{
  "workout": [
    {"exercise": "<name>", "sets": <n>, "reps": "<range>", "rest": "<duration>", "notes": "<form cue>"}
  ],
  "total_duration": <minutes>,
  "intensity_level": "low|moderate|high",
  "rationale": "<why this plan suits today's condition>"
}
`)
	return b.String()
}
