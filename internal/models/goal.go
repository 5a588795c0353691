package models

import (
	"fmt"
	"strings"
)

// Goal is the training goal driving rep targets and progression emphasis.
type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalEndurance   Goal = "endurance"
)

// ParseGoal normalizes and validates a goal string.
func ParseGoal(s string) (Goal, error) {
	switch Goal(strings.ToLower(strings.TrimSpace(s))) {
	case GoalStrength:
		return GoalStrength, nil
	case GoalHypertrophy:
		return GoalHypertrophy, nil
	case GoalEndurance:
		return GoalEndurance, nil
	}
	return "", fmt.Errorf("goal must be one of: strength, hypertrophy, endurance (got %q)", s)
}

// GoalPolicy holds the fixed per-goal training constants. Policies are a
// static lookup table, not user-mutable.
type GoalPolicy struct {
	Goal         Goal     `json:"goal"`
	RepFloor     int      `json:"rep_floor"`
	RepCeiling   int      `json:"rep_ceiling"`
	TargetRPE    int      `json:"target_rpe"`
	Emphasis     string   `json:"emphasis"`
	RestGuidance string   `json:"rest_guidance"`
	FallbackTips []string `json:"-"`
}

var goalPolicies = map[Goal]GoalPolicy{
	GoalStrength: {
		Goal:         GoalStrength,
		RepFloor:     3,
		RepCeiling:   6,
		TargetRPE:    8,
		Emphasis:     "progressive overload on load",
		RestGuidance: "3-5 min between sets",
		FallbackTips: []string{
			"Keep bar speed consistent across working sets",
			"Add weight only when all prescribed reps feel controlled",
		},
	},
	GoalHypertrophy: {
		Goal:         GoalHypertrophy,
		RepFloor:     8,
		RepCeiling:   12,
		TargetRPE:    8,
		Emphasis:     "volume and time under tension",
		RestGuidance: "60-90 s between sets",
		FallbackTips: []string{
			"Control the eccentric for 2-3 seconds each rep",
			"Stop each set 1-2 reps shy of failure",
		},
	},
	GoalEndurance: {
		Goal:         GoalEndurance,
		RepFloor:     12,
		RepCeiling:   20,
		TargetRPE:    7,
		Emphasis:     "reps and work capacity",
		RestGuidance: "30-60 s between sets",
		FallbackTips: []string{
			"Keep rest periods short and consistent",
			"Focus on smooth breathing throughout each set",
		},
	},
}

// PolicyFor returns the static policy for a goal. Unknown goals fall back to
// the strength policy so downstream math always has rep targets to work with.
func PolicyFor(g Goal) GoalPolicy {
	if p, ok := goalPolicies[g]; ok {
		return p
	}
	return goalPolicies[GoalStrength]
}

// Policies returns all goal policies in a stable order for the catalog
// endpoint.
func Policies() []GoalPolicy {
	return []GoalPolicy{
		goalPolicies[GoalStrength],
		goalPolicies[GoalHypertrophy],
		goalPolicies[GoalEndurance],
	}
}
