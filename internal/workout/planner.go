package workout

import (
	"context"
	"log/slog"
	"time"

	"github.com/claude/repcoach/internal/models"
	"github.com/claude/repcoach/internal/oracle"
	"github.com/google/uuid"
)

// Drafted plans carry minExercises to maxExercises entries. Oversized drafts
// are truncated; undersized ones are topped up from the fallback table.
const (
	minExercises = 4
	maxExercises = 6
)

// Planner generates daily workouts with the same untrusted-oracle
// architecture as the progression engine: deterministic readiness gate
// first, oracle draft second, validation and clamping last.
type Planner struct {
	oracle  oracle.Oracle
	timeout time.Duration
	log     *slog.Logger
}

// NewPlanner creates a Planner.
func NewPlanner(o oracle.Oracle, timeout time.Duration, log *slog.Logger) *Planner {
	return &Planner{oracle: o, timeout: timeout, log: log}
}

// GenerateWorkout validates the request, assesses readiness, and produces a
// plan. Oracle failures are absorbed by the deterministic fallback plan.
func (p *Planner) GenerateWorkout(ctx context.Context, req models.WorkoutRequest) (*models.WorkoutResponse, error) {
	req, err := ValidateRequest(req)
	if err != nil {
		return nil, err
	}

	readiness := Assess(req)

	plan := p.draft(ctx, req, readiness)
	if plan == nil {
		fb := fallbackPlan(req, readiness)
		plan = &fb
	} else {
		p.clampPlan(plan, req, readiness)
	}
	plan.ID = uuid.NewString()

	return &models.WorkoutResponse{
		Input:     req,
		Readiness: readiness,
		Plan:      *plan,
	}, nil
}

func (p *Planner) draft(ctx context.Context, req models.WorkoutRequest, readiness models.Readiness) *models.WorkoutPlan {
	if p.oracle == nil {
		return nil
	}

	draftCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	plan, err := p.oracle.DraftWorkout(draftCtx, req, readiness)
	if err != nil {
		p.log.Warn("oracle workout draft failed, using fallback plan", "error", err)
		return nil
	}
	return plan
}

// clampPlan enforces the readiness ceilings and request limits on a drafted
// plan.
func (p *Planner) clampPlan(plan *models.WorkoutPlan, req models.WorkoutRequest, readiness models.Readiness) {
	if len(plan.Exercises) > maxExercises {
		plan.Exercises = plan.Exercises[:maxExercises]
	}
	if len(plan.Exercises) < minExercises {
		plan.Exercises = topUpExercises(plan.Exercises, req.FitnessLevel)
	}
	if plan.TotalDuration <= 0 || plan.TotalDuration > req.TimeAvailable {
		plan.TotalDuration = req.TimeAvailable
	}
	plan.Intensity = capIntensity(plan.Intensity, readiness.IntensityCeiling)
	if plan.Rationale == "" {
		plan.Rationale = fallbackRationale
	}
}

// topUpExercises fills an undersized draft to minExercises with entries from
// the level's fallback plan, skipping names the draft already has.
func topUpExercises(exercises []models.PlannedExercise, level string) []models.PlannedExercise {
	seen := make(map[string]bool, len(exercises))
	for _, e := range exercises {
		seen[e.Exercise] = true
	}
	for _, e := range fallbackPlans[level] {
		if len(exercises) >= minExercises {
			break
		}
		if seen[e.Exercise] {
			continue
		}
		exercises = append(exercises, e)
	}
	return exercises
}
