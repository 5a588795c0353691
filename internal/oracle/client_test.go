package oracle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/repcoach/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// chatServer returns a httptest server that answers every chat completion
// with the given assistant message content.
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body := `{"choices":[{"message":{"role":"assistant","content":` + jsonString(content) + `}}]}`
		io.WriteString(w, body)
	}))
}

// jsonString quotes a string for embedding in a JSON body.
func jsonString(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, c)
		}
	}
	return string(append(out, '"'))
}

// TestClientDraftProgression verifies a fenced JSON reply round-trips into an
// OracleDraft.
func TestClientDraftProgression(t *testing.T) {
	reply := "```json\n" + `{
  "weight": 63.75,
  "sets": 3,
  "reps": 5,
  "target_rpe": 8,
  "progression_rate": "conservative",
  "rationale": "Small load increase after two steady sessions.",
  "deload_suggested": false,
  "tips": ["Brace before the descent.", "Keep bar speed consistent."]
}` + "\n```"
	srv := chatServer(t, reply)
	defer srv.Close()

	c := NewClient(srv.URL+"/v1", "test-key", "test-model", 0.2, testLogger())
	draft, err := c.DraftProgression(context.Background(), DraftRequest{
		Exercise: "Barbell Squat",
		Goal:     models.GoalStrength,
		Policy:   models.PolicyFor(models.GoalStrength),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Weight != 63.75 || draft.Sets != 3 || draft.Reps != 5 {
		t.Errorf("draft = %+v, want 63.75×3×5", draft)
	}
	if draft.ProgressionRate != "conservative" || draft.DeloadAlert {
		t.Errorf("rate/deload = %q/%v, want conservative/false", draft.ProgressionRate, draft.DeloadAlert)
	}
	if len(draft.Tips) != 2 {
		t.Errorf("tips length = %d, want 2", len(draft.Tips))
	}
}

// TestClientMalformedReply verifies a prose-only reply maps to
// ErrMalformedReply rather than a zero-valued draft.
func TestClientMalformedReply(t *testing.T) {
	srv := chatServer(t, "I recommend adding a little weight next time.")
	defer srv.Close()

	c := NewClient(srv.URL+"/v1", "test-key", "test-model", 0.2, testLogger())
	_, err := c.DraftProgression(context.Background(), DraftRequest{Exercise: "Barbell Squat"})
	if !errors.Is(err, ErrMalformedReply) {
		t.Errorf("error = %v, want ErrMalformedReply", err)
	}
}

// TestClientUnavailable verifies transport-level failures map to
// ErrUnavailable.
func TestClientUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v1", "test-key", "test-model", 0.2, testLogger())
	_, err := c.DraftProgression(context.Background(), DraftRequest{Exercise: "Barbell Squat"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}

	srv.Close()
	_, err = c.DraftProgression(context.Background(), DraftRequest{Exercise: "Barbell Squat"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error after close = %v, want ErrUnavailable", err)
	}
}

// TestClientDraftEmotionMessage verifies the plain-text reply is trimmed and
// an empty reply maps to ErrMalformedReply.
func TestClientDraftEmotionMessage(t *testing.T) {
	srv := chatServer(t, "  You said you're feeling anxious, so today is about slowing down.\n")
	defer srv.Close()

	c := NewClient(srv.URL+"/v1", "test-key", "test-model", 0.2, testLogger())
	msg, err := c.DraftEmotionMessage(context.Background(), models.EmotionRecommendation{Mood: "anxious"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "You said you're feeling anxious, so today is about slowing down." {
		t.Errorf("message = %q, want trimmed reply", msg)
	}

	empty := chatServer(t, "   ")
	defer empty.Close()

	c = NewClient(empty.URL+"/v1", "test-key", "test-model", 0.2, testLogger())
	if _, err := c.DraftEmotionMessage(context.Background(), models.EmotionRecommendation{Mood: "anxious"}); !errors.Is(err, ErrMalformedReply) {
		t.Errorf("error = %v, want ErrMalformedReply for empty reply", err)
	}
}

// TestClientDraftWorkout verifies the workout draft path, including the
// rejection of an empty exercise list.
func TestClientDraftWorkout(t *testing.T) {
	reply := `{
  "workout": [
    {"exercise": "Goblet Squat", "sets": 3, "reps": "10-12", "rest": "60s", "notes": "Chest tall."}
  ],
  "total_duration": 30,
  "intensity_level": "moderate",
  "rationale": "Short, focused session."
}`
	srv := chatServer(t, reply)
	defer srv.Close()

	c := NewClient(srv.URL+"/v1", "test-key", "test-model", 0.2, testLogger())
	plan, err := c.DraftWorkout(context.Background(), models.WorkoutRequest{FitnessLevel: "beginner"}, models.Readiness{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Exercises) != 1 || plan.Exercises[0].Exercise != "Goblet Squat" {
		t.Errorf("plan = %+v, want one Goblet Squat entry", plan)
	}

	empty := chatServer(t, `{"workout": [], "total_duration": 30, "intensity_level": "low", "rationale": "x"}`)
	defer empty.Close()

	c = NewClient(empty.URL+"/v1", "test-key", "test-model", 0.2, testLogger())
	if _, err := c.DraftWorkout(context.Background(), models.WorkoutRequest{}, models.Readiness{}); !errors.Is(err, ErrMalformedReply) {
		t.Errorf("error = %v, want ErrMalformedReply for empty plan", err)
	}
}
