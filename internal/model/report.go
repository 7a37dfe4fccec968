package model

import "time"

// Report is the complete verification report for one company run
type Report struct {
	Company    string    `json:"company"`
	VerifiedAt time.Time `json:"verified_at"`

	Fields   map[FieldID]VerificationResult   `json:"fields"`
	Sections map[SectionID]VerificationResult `json:"sections"`

	FieldSummary   Summary `json:"field_summary"`
	SectionSummary Summary `json:"section_summary"`

	Judge string `json:"judge,omitempty"` // Provider/model that produced the judgments
}

// Summary holds the aggregate statistics over one result set
type Summary struct {
	AverageScore      float64 `json:"average_score"`      // Mean accuracy score, 0 if no results
	Passed            int     `json:"passed"`             // Count of PASS statuses
	Total             int     `json:"total"`              // Total results
	ContextualMatches int     `json:"contextual_matches"` // contextual_match true or wrong_info == "None"
}
