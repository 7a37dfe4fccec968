package score

import (
	"testing"

	"memoscan/internal/model"
)

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)

	if s.Total != 0 || s.Passed != 0 || s.AverageScore != 0 || s.ContextualMatches != 0 {
		t.Errorf("Aggregate(nil) = %+v, want zero summary", s)
	}
}

func TestAggregate_MixedResults(t *testing.T) {
	results := []model.VerificationResult{
		{AccuracyScore: 100, Status: model.StatusPass, ContextualMatch: true},
		{AccuracyScore: 80, Status: model.StatusPass},
		{AccuracyScore: 20, Status: model.StatusFail},
		{AccuracyScore: 0, Status: model.StatusFail},
	}

	s := Aggregate(results)

	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.Passed != 2 {
		t.Errorf("Passed = %d, want 2", s.Passed)
	}
	if s.AverageScore != 50 {
		t.Errorf("AverageScore = %.1f, want 50", s.AverageScore)
	}
	if s.ContextualMatches != 1 {
		t.Errorf("ContextualMatches = %d, want 1", s.ContextualMatches)
	}
}

func TestAggregate_CleanSectionsCountAsContextual(t *testing.T) {
	results := []model.VerificationResult{
		{AccuracyScore: 85, Status: model.StatusPass, WrongInfo: "None"},
		{AccuracyScore: 40, Status: model.StatusFail, WrongInfo: "wrong year"},
	}

	s := Aggregate(results)

	if s.ContextualMatches != 1 {
		t.Errorf("ContextualMatches = %d, want 1 for WrongInfo None", s.ContextualMatches)
	}
}
