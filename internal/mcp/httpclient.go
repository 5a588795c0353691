package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/repcoach/internal/models"
)

// HTTPClient implements Analyzer by calling the RepCoach REST API. Used for
// remote MCP mode where the binary runs locally (stdio) but the analysis
// service runs elsewhere.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates an HTTPClient targeting the given base URL. The API
// key may be empty when the remote server runs without auth.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

func (c *HTTPClient) AnalyzeProgression(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	body, err := c.post(ctx, "/api/v1/progression/analyze", req)
	if err != nil {
		return nil, err
	}

	var resp models.AnalyzeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode analysis: %w", err)
	}
	return &resp, nil
}

func (c *HTTPClient) GenerateWorkout(ctx context.Context, req models.WorkoutRequest) (*models.WorkoutResponse, error) {
	body, err := c.post(ctx, "/api/v1/workout/generate", req)
	if err != nil {
		return nil, err
	}

	var resp models.WorkoutResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode workout: %w", err)
	}
	return &resp, nil
}

func (c *HTTPClient) RecommendEmotion(ctx context.Context, req models.EmotionRequest) (*models.EmotionRecommendation, error) {
	body, err := c.post(ctx, "/api/v1/emotion/recommend", req)
	if err != nil {
		return nil, err
	}

	var resp models.EmotionRecommendation
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode recommendation: %w", err)
	}
	return &resp, nil
}
