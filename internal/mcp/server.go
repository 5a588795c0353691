package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/claude/repcoach/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(a Analyzer, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RepCoach", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RepCoach training analysis server. Analyze workout progression with deterministic safety bounds, generate daily workouts from current conditions, and inspect goal policies. All analysis is stateless — pass the full history with each call."),
	)

	h := &handlers{analyzer: a, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolAnalyzeProgression, Handler: h.analyzeProgression},
		server.ServerTool{Tool: toolGenerateWorkout, Handler: h.generateWorkout},
		server.ServerTool{Tool: toolRecommendEmotion, Handler: h.recommendEmotion},
		server.ServerTool{Tool: toolListGoals, Handler: h.listGoals},
	)

	s.AddResources(
		server.ServerResource{Resource: resGoalCatalog, Handler: h.goalCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	analyzer Analyzer
	log      *slog.Logger
}

// --- Resource definitions ---

var resGoalCatalog = mcp.NewResource(
	"repcoach://goal_catalog",
	"Goal Catalog",
	mcp.WithResourceDescription("Static training goal policies: rep ranges, target RPE, emphasis, and rest guidance per goal"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) goalCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	payload, err := policiesJSON()
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     payload,
		},
	}, nil
}

func policiesJSON() (string, error) {
	b, err := json.MarshalIndent(models.Policies(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
