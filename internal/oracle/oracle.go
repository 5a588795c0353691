// Package oracle isolates the external text-generation service behind a
// narrow interface. The oracle is untrusted: it may be unreachable, slow, or
// return garbage, and every reply is re-validated by the caller before it
// reaches a user.
package oracle

import (
	"context"
	"errors"

	"github.com/claude/repcoach/internal/models"
)

// ErrUnavailable indicates the oracle could not be reached or timed out.
// Callers recover via their deterministic fallback path.
var ErrUnavailable = errors.New("oracle unavailable")

// ErrMalformedReply indicates the oracle responded but the reply could not
// be parsed into the expected structure.
var ErrMalformedReply = errors.New("oracle returned a malformed reply")

// DraftRequest carries everything the oracle needs to draft a progression
// recommendation: the deterministic summary, the goal policy, and the safety
// bounds stated as explicit constraints.
type DraftRequest struct {
	Exercise string
	Goal     models.Goal
	Policy   models.GoalPolicy
	Summary  models.TrendSummary
	Bounds   models.SafetyBounds
}

// Oracle drafts structured recommendations. Implementations signal failure
// upward rather than inventing values.
type Oracle interface {
	DraftProgression(ctx context.Context, req DraftRequest) (*models.OracleDraft, error)
	DraftWorkout(ctx context.Context, req models.WorkoutRequest, readiness models.Readiness) (*models.WorkoutPlan, error)
	// DraftEmotionMessage drafts the short personalized session intro for an
	// emotion-aligned recommendation. The reply is plain text, not JSON.
	DraftEmotionMessage(ctx context.Context, rec models.EmotionRecommendation) (string, error)
}
