package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/repcoach/internal/models"
)

// demoHistory is the pre-filled progression example served on /demo.
var demoHistory = models.AnalyzeRequest{
	Exercise: "Barbell Squat",
	Goal:     "strength",
	History: []models.SessionRecord{
		{Exercise: "Barbell Squat", Weight: 60, Sets: 3, Reps: 5, RPE: 7, Date: "2026-08-01", Notes: "Felt strong"},
		{Exercise: "Barbell Squat", Weight: 62.5, Sets: 3, Reps: 5, RPE: 7, Date: "2026-08-04", Notes: "Good form"},
		{Exercise: "Barbell Squat", Weight: 65, Sets: 3, Reps: 4, RPE: 8, Date: "2026-08-07", Notes: "Slight struggle on last set"},
		{Exercise: "Barbell Squat", Weight: 65, Sets: 3, Reps: 5, RPE: 7, Date: "2026-08-11", Notes: "Better than last time"},
		{Exercise: "Barbell Squat", Weight: 67.5, Sets: 3, Reps: 5, RPE: 8, Date: "2026-08-14", Notes: "Ready for more"},
	},
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "home.html", nil)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	resp, err := s.engine.AnalyzeProgression(r.Context(), demoHistory)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "progression.html", resp)
}

func (s *Server) handleAnalyzeHTML(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := s.engine.AnalyzeProgression(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.render(w, "progression.html", resp)
}

func (s *Server) handleGenerateWorkoutHTML(w http.ResponseWriter, r *http.Request) {
	var req models.WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := s.planner.GenerateWorkout(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.render(w, "workout.html", resp)
}

func (s *Server) handleEmotionRecommendHTML(w http.ResponseWriter, r *http.Request) {
	var req models.EmotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := s.adviser.Recommend(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.render(w, "emotion.html", resp)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if s.tmpl == nil {
		http.Error(w, "templates not configured", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("template render failed", "template", name, "error", err)
	}
}
