package models

// SessionRecord is a single logged workout session for one exercise.
// Date is kept as the wire string (YYYY-MM-DD or RFC 3339); the history
// validator parses and orders it. Records are immutable once created.
type SessionRecord struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	RPE      int     `json:"rpe"`
	Date     string  `json:"date,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// Volume is the session training stress proxy: weight × sets × reps.
func (s SessionRecord) Volume() float64 {
	return s.Weight * float64(s.Sets) * float64(s.Reps)
}

// History is a validated sequence of sessions ordered by date ascending,
// with stable tie-break by original input order for equal dates.
type History []SessionRecord

// Last returns the most recent session. Only valid on a validated history
// (≥2 records).
func (h History) Last() SessionRecord { return h[len(h)-1] }

// First returns the earliest session.
func (h History) First() SessionRecord { return h[0] }
