package progression

import (
	"context"
	"log/slog"
	"time"

	"github.com/claude/repcoach/internal/models"
	"github.com/claude/repcoach/internal/oracle"
	"github.com/google/uuid"
)

// Engine runs the full analysis pipeline: validate → summarize → gate →
// (oracle draft) → clamp. Each call is isolated — no cross-request state, no
// memoization.
type Engine struct {
	oracle  oracle.Oracle
	timeout time.Duration
	log     *slog.Logger
}

// NewEngine creates an Engine. The timeout bounds the oracle call, the only
// operation that may block on network I/O.
func NewEngine(o oracle.Oracle, timeout time.Duration, log *slog.Logger) *Engine {
	return &Engine{oracle: o, timeout: timeout, log: log}
}

// ComputeRecommendation is the single entry point the serving layer invokes.
// Validation errors are returned to the caller; oracle failures are absorbed
// by the deterministic fallback so a valid history always yields a
// recommendation.
func (e *Engine) ComputeRecommendation(ctx context.Context, exercise string, goal models.Goal, records []models.SessionRecord) (*models.AnalyzeResponse, error) {
	hist, err := ValidateHistory(records)
	if err != nil {
		return nil, err
	}

	summary := Summarize(hist, goal)
	bounds := Bounds(summary, goal, hist)

	draft := e.draft(ctx, exercise, goal, summary, bounds)
	rec := Finalize(draft, bounds, hist, goal)
	rec.ID = uuid.NewString()

	last := hist.Last()
	return &models.AnalyzeResponse{
		Exercise: exercise,
		Goal:     goal,
		Summary:  summary,
		Bounds:   bounds,
		Current: models.CurrentPerformance{
			Weight: last.Weight,
			Sets:   last.Sets,
			Reps:   last.Reps,
			RPE:    last.RPE,
			Volume: last.Volume(),
		},
		Recommendation: rec,
		Chart:          chartSeries(hist),
	}, nil
}

// AnalyzeProgression adapts a wire-level request onto
// ComputeRecommendation. Used by the HTTP handlers and the MCP tools.
func (e *Engine) AnalyzeProgression(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	goal, err := models.ParseGoal(req.Goal)
	if err != nil {
		return nil, err
	}
	return e.ComputeRecommendation(ctx, req.Exercise, goal, req.History)
}

// draft consults the oracle within the configured timeout. Any failure is
// logged and reported as an absent draft — the clamper's fallback path takes
// over from there.
func (e *Engine) draft(ctx context.Context, exercise string, goal models.Goal, summary models.TrendSummary, bounds models.SafetyBounds) *models.OracleDraft {
	if e.oracle == nil {
		return nil
	}

	draftCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	draft, err := e.oracle.DraftProgression(draftCtx, oracle.DraftRequest{
		Exercise: exercise,
		Goal:     goal,
		Policy:   models.PolicyFor(goal),
		Summary:  summary,
		Bounds:   bounds,
	})
	if err != nil {
		e.log.Warn("oracle draft failed, using deterministic fallback", "exercise", exercise, "error", err)
		return nil
	}
	return draft
}

// chartSeries extracts per-session series for the dashboard charts.
func chartSeries(hist models.History) models.ChartSeries {
	chart := models.ChartSeries{
		Dates:   make([]string, len(hist)),
		Weights: make([]float64, len(hist)),
		Volumes: make([]float64, len(hist)),
		RPEs:    make([]int, len(hist)),
	}
	for i, s := range hist {
		chart.Dates[i] = s.Date
		chart.Weights[i] = s.Weight
		chart.Volumes[i] = s.Volume()
		chart.RPEs[i] = s.RPE
	}
	return chart
}
