package mcp

import (
	"context"

	"github.com/claude/repcoach/internal/emotion"
	"github.com/claude/repcoach/internal/models"
	"github.com/claude/repcoach/internal/progression"
	"github.com/claude/repcoach/internal/workout"
)

// Analyzer abstracts the analysis layer for MCP tools. Local (in-process
// engine) and HTTPClient (remote via REST API) both satisfy this interface.
type Analyzer interface {
	AnalyzeProgression(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error)
	GenerateWorkout(ctx context.Context, req models.WorkoutRequest) (*models.WorkoutResponse, error)
	RecommendEmotion(ctx context.Context, req models.EmotionRequest) (*models.EmotionRecommendation, error)
}

// Local bundles the in-process engine, planner, and adviser into an Analyzer.
type Local struct {
	Engine  *progression.Engine
	Planner *workout.Planner
	Adviser *emotion.Adviser
}

// Compile-time checks.
var (
	_ Analyzer = (*Local)(nil)
	_ Analyzer = (*HTTPClient)(nil)
)

func (l *Local) AnalyzeProgression(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	return l.Engine.AnalyzeProgression(ctx, req)
}

func (l *Local) GenerateWorkout(ctx context.Context, req models.WorkoutRequest) (*models.WorkoutResponse, error) {
	return l.Planner.GenerateWorkout(ctx, req)
}

func (l *Local) RecommendEmotion(ctx context.Context, req models.EmotionRequest) (*models.EmotionRecommendation, error) {
	return l.Adviser.Recommend(ctx, req)
}
