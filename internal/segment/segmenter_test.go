package segment

import (
	"strings"
	"testing"

	"memoscan/internal/model"
)

func TestSegment_BasicHeaders(t *testing.T) {
	memo := "Executive Summary\n\n" +
		"Acme Corp is a logistics startup operating across Texas.\n\n" +
		"Management Team\n\n" +
		"Jane Doe serves as chief executive and John Roe leads engineering.\n"

	sections := NewSegmenter().Segment(memo)

	if got := sections[model.SectionExecutiveSummary]; got != "Acme Corp is a logistics startup operating across Texas." {
		t.Errorf("executive summary = %q", got)
	}
	if got := sections[model.SectionManagementTeam]; got != "Jane Doe serves as chief executive and John Roe leads engineering." {
		t.Errorf("management team = %q", got)
	}
	if got := sections[model.SectionDealSummary]; got != "" {
		t.Errorf("deal summary = %q, want empty", got)
	}
}

func TestSegment_HeaderDirectlyAboveBody(t *testing.T) {
	// No blank line between header and body
	memo := "Executive Summary\nWe are a great company.\n\nManagement Team\nJane Doe, CEO."

	sections := NewSegmenter().Segment(memo)

	if got := sections[model.SectionExecutiveSummary]; got != "We are a great company." {
		t.Errorf("executive summary = %q", got)
	}
	if got := sections[model.SectionManagementTeam]; got != "Jane Doe, CEO." {
		t.Errorf("management team = %q", got)
	}
}

func TestSegment_AlwaysReturnsEverySection(t *testing.T) {
	for _, memo := range []string{"", "   \n\n  ", "no recognizable structure"} {
		sections := NewSegmenter().Segment(memo)
		if len(sections) != len(model.Sections()) {
			t.Fatalf("Segment(%q) returned %d sections, want %d", memo, len(sections), len(model.Sections()))
		}
		for _, id := range model.Sections() {
			if _, ok := sections[id]; !ok {
				t.Errorf("Segment(%q) missing section %s", memo, id)
			}
		}
	}
}

func TestSegment_WrappedHeader(t *testing.T) {
	memo := "Investment Considerations &\n" +
		"Risk Factors\n\n" +
		"High customer concentration and a concentrated vendor base.\n"

	sections := NewSegmenter().Segment(memo)

	if got := sections[model.SectionInvestmentConsiderations]; got != "High customer concentration and a concentrated vendor base." {
		t.Errorf("investment considerations = %q", got)
	}
}

func TestSegment_AlternativePhrasings(t *testing.T) {
	memo := "Company Overview\n\n" +
		"Acme ships freight management software to regional carriers.\n"

	sections := NewSegmenter().Segment(memo)

	if got := sections[model.SectionCompanyInformation]; !strings.Contains(got, "freight management software") {
		t.Errorf("company information = %q, want body under alternative header", got)
	}
}

func TestSegment_FuzzyFallback(t *testing.T) {
	// No headers at all; the paragraph dense in company keywords is
	// rescued for the company information section
	memo := "Our company runs a growing business alongside an established organization and a partner firm.\n"

	sections := NewSegmenter().Segment(memo)

	if got := sections[model.SectionCompanyInformation]; !strings.Contains(got, "growing business") {
		t.Errorf("company information fallback = %q", got)
	}
}

func TestSegment_ShortBodyDiscarded(t *testing.T) {
	memo := "Deal Summary\n\nab\n"

	sections := NewSegmenter().Segment(memo)

	if got := sections[model.SectionDealSummary]; got != "" {
		t.Errorf("deal summary = %q, want empty for sub-minimum body", got)
	}
}

func TestIsPotentialHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Executive Summary", true},
		{"Management Team", true},
		{"ab", false},
		{"Totally unrelated words", false},
		{strings.Repeat("summary ", 20), false}, // Too long
	}

	for _, tt := range tests {
		if got := isPotentialHeader(tt.line); got != tt.want {
			t.Errorf("isPotentialHeader(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
