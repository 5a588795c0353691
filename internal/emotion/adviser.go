package emotion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/claude/repcoach/internal/models"
	"github.com/claude/repcoach/internal/oracle"
)

// Energy/stress thresholds that override the mood profile.
const (
	lowEnergy  = 3
	highStress = 8
)

// Adviser produces emotion-aligned session recommendations with the same
// untrusted-oracle architecture as the progression engine: deterministic mood
// mapping first, oracle decoration second. The oracle only drafts the
// personalized message; every structured field comes from the static tables.
type Adviser struct {
	oracle  oracle.Oracle
	timeout time.Duration
	log     *slog.Logger
}

// NewAdviser creates an Adviser.
func NewAdviser(o oracle.Oracle, timeout time.Duration, log *slog.Logger) *Adviser {
	return &Adviser{oracle: o, timeout: timeout, log: log}
}

// Recommend validates the request, applies the mood mapping with energy and
// stress modifiers, and asks the oracle for a personalized session intro.
// Oracle failures are absorbed by a fixed template message.
func (a *Adviser) Recommend(ctx context.Context, req models.EmotionRequest) (*models.EmotionRecommendation, error) {
	req, err := ValidateRequest(req)
	if err != nil {
		return nil, err
	}

	rec := buildRecommendation(req)
	rec.Message = a.draftMessage(ctx, rec)
	return &rec, nil
}

// buildRecommendation is the deterministic core: profile lookup plus the
// energy and stress overrides. Pure function of its input.
func buildRecommendation(req models.EmotionRequest) models.EmotionRecommendation {
	profile := moodProfiles[req.Mood]

	rec := models.EmotionRecommendation{
		Mood:               req.Mood,
		Energy:             req.Energy,
		Stress:             req.Stress,
		RecommendedSession: profile.ExampleSessions[0],
		CoachingStyle:      profile.CoachingTone,
		Reason:             profile.Reason,
		WorkoutTypes:       append([]string(nil), profile.WorkoutTypes...),
		DurationRange:      profile.DurationRange,
		Intensity:          profile.Intensity,
	}

	// Depleted energy overrides whatever the mood suggests: no high-output
	// session on a 1-3 energy day.
	if req.Energy <= lowEnergy && intensityRank(rec.Intensity) > intensityRank("low") {
		rec.Intensity = "low"
		rec.Flags = append(rec.Flags, "low energy: intensity capped at low")
	}
	// High stress pulls the session toward regulation regardless of mood.
	if req.Stress >= highStress {
		rec.CoachingStyle = "calming"
		if !containsType(rec.WorkoutTypes, "breathwork") {
			rec.WorkoutTypes = append(rec.WorkoutTypes, "breathwork")
		}
		rec.Flags = append(rec.Flags, "high stress: calming tone and breathwork added")
	}

	rec.ExamplePhrases = append([]string(nil), tonePhrases[rec.CoachingStyle]...)
	return rec
}

// draftMessage consults the oracle within the configured timeout. Any failure
// or empty reply falls back to the deterministic template.
func (a *Adviser) draftMessage(ctx context.Context, rec models.EmotionRecommendation) string {
	if a.oracle == nil {
		return fallbackMessage(rec)
	}

	draftCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	msg, err := a.oracle.DraftEmotionMessage(draftCtx, rec)
	if err != nil {
		a.log.Warn("oracle emotion message failed, using template", "mood", rec.Mood, "error", err)
		return fallbackMessage(rec)
	}
	if msg = strings.TrimSpace(msg); msg == "" {
		return fallbackMessage(rec)
	}
	return msg
}

// fallbackMessage renders the fixed session intro used when the oracle is
// unavailable.
func fallbackMessage(rec models.EmotionRecommendation) string {
	return fmt.Sprintf(
		"Given how you're feeling %s today, this %s intensity session is designed to meet you where you are. %s",
		rec.Mood, rec.Intensity, rec.Reason,
	)
}

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

func containsType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
