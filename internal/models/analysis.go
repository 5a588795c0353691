package models

// Trend is the direction of a short time series.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendFlat    Trend = "flat"
)

// ProgressionRate classifies how aggressive a weight recommendation is
// relative to the last session.
type ProgressionRate string

const (
	RateConservative ProgressionRate = "conservative"
	RateModerate     ProgressionRate = "moderate"
	RateAggressive   ProgressionRate = "aggressive"
)

// TrendSummary holds the deterministic statistics derived from a validated
// history. Ephemeral — recomputed from scratch on every request.
type TrendSummary struct {
	SessionCount            int     `json:"session_count"`
	WeightDeltaAbs          float64 `json:"weight_delta_abs"`
	WeightDeltaPct          float64 `json:"weight_delta_pct"`
	VolumeTrend             Trend   `json:"volume_trend"`
	RPETrend                Trend   `json:"rpe_trend"`
	LastRPE                 int     `json:"last_rpe"`
	ConsecutiveHighRPECount int     `json:"consecutive_high_rpe_count"`
	MissedTargetCount       int     `json:"missed_target_count"`
}

// SafetyBounds are the hard limits on the next-session recommendation,
// derived from the summary alone — never from oracle output.
type SafetyBounds struct {
	MaxWeightIncreasePct     float64 `json:"max_weight_increase_pct"`
	DeloadRecommended        bool    `json:"deload_recommended"`
	DeloadWeightReductionPct float64 `json:"deload_weight_reduction_pct,omitempty"`
	MinSessionsRequired      int     `json:"min_sessions_required"`
}

// CurrentPerformance echoes the most recent session back to the caller.
type CurrentPerformance struct {
	Weight float64 `json:"weight"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	RPE    int     `json:"rpe"`
	Volume float64 `json:"volume"`
}

// Recommendation is the final, bounds-validated output. Always present for a
// valid history: oracle failures fall back to a deterministic default.
type Recommendation struct {
	ID                string          `json:"id"`
	RecommendedWeight float64         `json:"recommended_weight"`
	RecommendedSets   int             `json:"recommended_sets"`
	RecommendedReps   int             `json:"recommended_reps"`
	TargetRPE         int             `json:"target_rpe"`
	ProgressionRate   ProgressionRate `json:"progression_rate"`
	Rationale         string          `json:"rationale"`
	DeloadAlert       bool            `json:"deload_alert"`
	CoachingTips      []string        `json:"coaching_tips"`
}

// OracleDraft is the untrusted structured reply parsed out of the oracle's
// text. Every field is re-validated and clamped before it reaches a caller.
type OracleDraft struct {
	Weight          float64  `json:"weight"`
	Sets            int      `json:"sets"`
	Reps            int      `json:"reps"`
	TargetRPE       int      `json:"target_rpe"`
	ProgressionRate string   `json:"progression_rate"`
	Rationale       string   `json:"rationale"`
	DeloadAlert     bool     `json:"deload_suggested"`
	Tips            []string `json:"tips"`
}

// AnalyzeRequest is the inbound progression analysis payload.
type AnalyzeRequest struct {
	Exercise string          `json:"exercise"`
	Goal     string          `json:"goal"`
	History  []SessionRecord `json:"history"`
}

// ChartSeries carries per-session series for the dashboard charts.
type ChartSeries struct {
	Dates   []string  `json:"dates"`
	Weights []float64 `json:"weights"`
	Volumes []float64 `json:"volumes"`
	RPEs    []int     `json:"rpes"`
}

// AnalyzeResponse is the full analysis result returned to callers.
type AnalyzeResponse struct {
	Exercise       string             `json:"exercise"`
	Goal           Goal               `json:"goal"`
	Summary        TrendSummary       `json:"summary"`
	Bounds         SafetyBounds       `json:"bounds"`
	Current        CurrentPerformance `json:"current_performance"`
	Recommendation Recommendation     `json:"recommendation"`
	Chart          ChartSeries        `json:"chart"`
}
