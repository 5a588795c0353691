package emotion

import (
	"fmt"
	"strings"

	"github.com/claude/repcoach/internal/models"
)

// ValidateRequest normalizes and validates an emotion request. Errors are the
// caller's fault and map to client-facing validation failures.
func ValidateRequest(req models.EmotionRequest) (models.EmotionRequest, error) {
	req.Mood = strings.ToLower(strings.TrimSpace(req.Mood))
	if _, ok := moodProfiles[req.Mood]; !ok {
		return req, fmt.Errorf("mood must be one of: %s (got %q)", strings.Join(Moods(), ", "), req.Mood)
	}
	if req.Energy < 1 || req.Energy > 10 {
		return req, fmt.Errorf("energy must be 1-10 (got %d)", req.Energy)
	}
	if req.Stress < 1 || req.Stress > 10 {
		return req, fmt.Errorf("stress must be 1-10 (got %d)", req.Stress)
	}
	return req, nil
}
