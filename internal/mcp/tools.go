package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/claude/repcoach/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// splitList splits a comma-separated argument into trimmed, non-empty items.
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// --- Tool definitions ---

var toolAnalyzeProgression = mcp.NewTool("analyze_progression",
	mcp.WithDescription("Analyze workout progression for one exercise and get a safety-bounded next-session recommendation. The history is validated and summarized deterministically; the recommendation can never exceed a 5% weight increase."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (e.g. 'Barbell Squat')")),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"), mcp.Enum("strength", "hypertrophy", "endurance")),
	mcp.WithString("history", mcp.Required(), mcp.Description(`JSON array of session records, oldest first. Each record: {"exercise","weight","sets","reps","rpe","date","notes"}. At least 2 records required.`)),
)

var toolGenerateWorkout = mcp.NewTool("generate_workout",
	mcp.WithDescription("Generate a workout adapted to today's conditions. A deterministic readiness gate caps intensity before the AI drafts the plan."),
	mcp.WithString("fitness_level", mcp.Required(), mcp.Description("Fitness level"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithString("goals", mcp.Required(), mcp.Description("Comma-separated goals (strength, cardio, flexibility, mobility, endurance, power)")),
	mcp.WithNumber("time_available", mcp.Required(), mcp.Description("Available time in minutes (5-120)")),
	mcp.WithString("equipment", mcp.Description("Comma-separated equipment list. Defaults to bodyweight.")),
	mcp.WithNumber("fatigue", mcp.Required(), mcp.Description("Current fatigue level (1-10)")),
	mcp.WithNumber("stress", mcp.Required(), mcp.Description("Current stress level (1-10)")),
	mcp.WithNumber("sleep_hours", mcp.Required(), mcp.Description("Hours of sleep last night (0-24)")),
)

var toolRecommendEmotion = mcp.NewTool("recommend_emotion",
	mcp.WithDescription("Recommend a training session matched to the athlete's emotional state. A deterministic mood table picks intensity, tone, and workout types; the AI only writes the session introduction."),
	mcp.WithString("mood", mcp.Required(), mcp.Description("Current mood"), mcp.Enum("anxious", "confident", "content", "energetic", "excited", "frustrated", "motivated", "neutral", "overwhelmed", "restless", "sad", "tired")),
	mcp.WithNumber("energy", mcp.Required(), mcp.Description("Energy level (1-10)")),
	mcp.WithNumber("stress", mcp.Required(), mcp.Description("Stress level (1-10)")),
)

var toolListGoals = mcp.NewTool("list_goals",
	mcp.WithDescription("List the static training goal policies: rep ranges, target RPE, emphasis, and rest guidance."),
)

// --- Tool handlers ---

func (h *handlers) analyzeProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}
	historyJSON, err := req.RequireString("history")
	if err != nil {
		return mcp.NewToolResultError("history parameter is required"), nil
	}

	var history []models.SessionRecord
	if err := json.Unmarshal([]byte(historyJSON), &history); err != nil {
		return mcp.NewToolResultError("history must be a JSON array of session records: " + err.Error()), nil
	}

	resp, err := h.analyzer.AnalyzeProgression(ctx, models.AnalyzeRequest{
		Exercise: exercise,
		Goal:     goal,
		History:  history,
	})
	if err != nil {
		h.log.Error("mcp analyze_progression", "error", err)
		return mcp.NewToolResultError("analysis failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := req.RequireString("fitness_level")
	if err != nil {
		return mcp.NewToolResultError("fitness_level parameter is required"), nil
	}
	goals, err := req.RequireString("goals")
	if err != nil {
		return mcp.NewToolResultError("goals parameter is required"), nil
	}
	timeAvailable, err := req.RequireFloat("time_available")
	if err != nil {
		return mcp.NewToolResultError("time_available parameter is required"), nil
	}
	fatigue, err := req.RequireFloat("fatigue")
	if err != nil {
		return mcp.NewToolResultError("fatigue parameter is required"), nil
	}
	stress, err := req.RequireFloat("stress")
	if err != nil {
		return mcp.NewToolResultError("stress parameter is required"), nil
	}
	sleepHours, err := req.RequireFloat("sleep_hours")
	if err != nil {
		return mcp.NewToolResultError("sleep_hours parameter is required"), nil
	}

	workoutReq := models.WorkoutRequest{
		FitnessLevel:  level,
		Goals:         splitList(goals),
		TimeAvailable: int(timeAvailable),
		Equipment:     splitList(req.GetString("equipment", "")),
		Fatigue:       int(fatigue),
		Stress:        int(stress),
		SleepHours:    sleepHours,
	}

	resp, err := h.analyzer.GenerateWorkout(ctx, workoutReq)
	if err != nil {
		h.log.Error("mcp generate_workout", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) recommendEmotion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mood, err := req.RequireString("mood")
	if err != nil {
		return mcp.NewToolResultError("mood parameter is required"), nil
	}
	energy, err := req.RequireFloat("energy")
	if err != nil {
		return mcp.NewToolResultError("energy parameter is required"), nil
	}
	stress, err := req.RequireFloat("stress")
	if err != nil {
		return mcp.NewToolResultError("stress parameter is required"), nil
	}

	resp, err := h.analyzer.RecommendEmotion(ctx, models.EmotionRequest{
		Mood:   mood,
		Energy: int(energy),
		Stress: int(stress),
	})
	if err != nil {
		h.log.Error("mcp recommend_emotion", "error", err)
		return mcp.NewToolResultError("recommendation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listGoals(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(models.Policies())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
