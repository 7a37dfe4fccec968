// Package score aggregates per-item verification results into the
// summary statistics reported at the end of a run.
package score

import (
	"memoscan/internal/model"
)

// Aggregate computes summary statistics over a set of verification
// results. Contextual matches count both explicitly flagged field
// matches and sections the oracle cleared of wrong information.
func Aggregate(results []model.VerificationResult) model.Summary {
	s := model.Summary{Total: len(results)}
	if len(results) == 0 {
		return s
	}

	sum := 0
	for _, r := range results {
		sum += r.AccuracyScore
		if r.Status == model.StatusPass {
			s.Passed++
		}
		if r.ContextualMatch || r.WrongInfo == "None" {
			s.ContextualMatches++
		}
	}

	s.AverageScore = float64(sum) / float64(len(results))
	return s
}
