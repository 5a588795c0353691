package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/claude/repcoach/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a careful, evidence-based fitness coach. You always respect the stated hard constraints and reply with the requested JSON shape."

// Client talks to an OpenAI-compatible chat completion endpoint. The base
// URL is configurable so the same client works against OpenAI, a local
// server, or Gemini's compatibility endpoint.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	log         *slog.Logger
}

// Compile-time check: Client satisfies Oracle.
var _ Oracle = (*Client)(nil)

// NewClient creates a chat-completion oracle client.
func NewClient(baseURL, apiKey, model string, temperature float32, log *slog.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
		log:         log,
	}
}

// complete sends a single-turn chat completion and returns the raw reply
// text. Network and API failures map to ErrUnavailable.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrMalformedReply)
	}
	return resp.Choices[0].Message.Content, nil
}

// DraftProgression asks the oracle for a next-session draft. The reply is
// parsed tolerantly (prose and code fences around the JSON are fine) but a
// reply with no parseable object is an error — the adapter never invents
// values.
func (c *Client) DraftProgression(ctx context.Context, req DraftRequest) (*models.OracleDraft, error) {
	reply, err := c.complete(ctx, progressionPrompt(req))
	if err != nil {
		return nil, err
	}

	payload, err := ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	var draft models.OracleDraft
	if err := json.Unmarshal([]byte(payload), &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	c.log.Debug("oracle progression draft", "exercise", req.Exercise, "weight", draft.Weight)
	return &draft, nil
}

// DraftEmotionMessage asks the oracle for a personalized session intro. The
// reply is free text; an empty reply is an error so the caller's template
// fallback takes over.
func (c *Client) DraftEmotionMessage(ctx context.Context, rec models.EmotionRecommendation) (string, error) {
	reply, err := c.complete(ctx, emotionPrompt(rec))
	if err != nil {
		return "", err
	}
	msg := strings.TrimSpace(reply)
	if msg == "" {
		return "", fmt.Errorf("%w: empty session intro", ErrMalformedReply)
	}

	c.log.Debug("oracle emotion message", "mood", rec.Mood, "length", len(msg))
	return msg, nil
}

// DraftWorkout asks the oracle for a daily workout plan draft.
func (c *Client) DraftWorkout(ctx context.Context, req models.WorkoutRequest, readiness models.Readiness) (*models.WorkoutPlan, error) {
	reply, err := c.complete(ctx, workoutPrompt(req, readiness))
	if err != nil {
		return nil, err
	}

	payload, err := ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	var plan models.WorkoutPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if len(plan.Exercises) == 0 {
		return nil, fmt.Errorf("%w: plan contains no exercises", ErrMalformedReply)
	}

	c.log.Debug("oracle workout draft", "exercises", len(plan.Exercises))
	return &plan, nil
}
