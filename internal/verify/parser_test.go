package verify

import (
	"strings"
	"testing"

	"memoscan/internal/model"
)

func TestParseResponse_DirectJSON(t *testing.T) {
	raw := `{"accuracy_score": 95, "source_value": "Acme Corp", "citation": "Acme Corp overview", "contextual_match": true}`

	p := ParseResponse(raw)

	if p.Tier != TierDirect {
		t.Fatalf("Tier = %s, want direct", p.Tier)
	}
	if p.AccuracyScore != 95 || p.SourceValue != "Acme Corp" || !p.ContextualMatch {
		t.Errorf("Parsed = %+v", p)
	}
	if p.Status != model.StatusPass {
		t.Errorf("Status = %s, want PASS", p.Status)
	}
}

func TestParseResponse_FencedJSON(t *testing.T) {
	raw := "Here is my analysis:\n```json\n" +
		`{"accuracy_score": 72, "source_value": "Austin", "citation": "based in Austin, TX"}` +
		"\n```\nLet me know if you need anything else."

	p := ParseResponse(raw)

	if p.Tier != TierEmbedded {
		t.Fatalf("Tier = %s, want embedded", p.Tier)
	}
	if p.AccuracyScore != 72 || p.SourceValue != "Austin" {
		t.Errorf("Parsed = %+v", p)
	}
}

func TestParseResponse_NestedBraces(t *testing.T) {
	raw := `Result: {"accuracy_score": 64, "details": {"note": "ok"}, "source_value": "x1234"}`

	p := ParseResponse(raw)

	if p.Tier != TierEmbedded {
		t.Fatalf("Tier = %s, want embedded", p.Tier)
	}
	if p.AccuracyScore != 64 || p.SourceValue != "x1234" {
		t.Errorf("Parsed = %+v", p)
	}
}

func TestParseResponse_FieldExtraction(t *testing.T) {
	// Broken JSON with no parseable object; individual fields still
	// come out by regex
	raw := `My verdict: "accuracy_score": 85, and "source_value": "Acme Corp" based on the deck`

	p := ParseResponse(raw)

	if p.Tier != TierFields {
		t.Fatalf("Tier = %s, want fields", p.Tier)
	}
	if p.AccuracyScore != 85 || p.SourceValue != "Acme Corp" {
		t.Errorf("Parsed = %+v", p)
	}
	if p.Status != model.StatusPass {
		t.Errorf("Status = %s, want PASS", p.Status)
	}
}

func TestParseResponse_Fallback(t *testing.T) {
	raw := "I am unable to verify this information."

	p := ParseResponse(raw)

	if p.Tier != TierFallback {
		t.Fatalf("Tier = %s, want fallback", p.Tier)
	}
	if p.AccuracyScore != 0 || p.Status != model.StatusFail {
		t.Errorf("Parsed = %+v", p)
	}
	if !strings.HasPrefix(p.SourceValue, "Parse error: ") {
		t.Errorf("SourceValue = %q", p.SourceValue)
	}
}

func TestParseResponse_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		p := ParseResponse(raw)
		if p.Tier != TierFallback {
			t.Errorf("ParseResponse(%q).Tier = %s, want fallback", raw, p.Tier)
		}
	}
}

func TestParseResponse_StringScoreCoerced(t *testing.T) {
	raw := `{"accuracy_score": "90", "source_value": "verified"}`

	p := ParseResponse(raw)

	if p.AccuracyScore != 90 {
		t.Errorf("AccuracyScore = %d, want 90 from string", p.AccuracyScore)
	}
}

func TestParseResponse_ExplicitStatusWins(t *testing.T) {
	raw := `{"accuracy_score": 95, "status": "FAIL"}`

	p := ParseResponse(raw)

	if p.Status != model.StatusFail {
		t.Errorf("Status = %s, want explicit FAIL", p.Status)
	}
}

func TestParseResponse_SectionFields(t *testing.T) {
	raw := `{"accuracy_score": 40, "wrong_info": "says 2019, deck says 2021", "correct_info": "founded 2021", "citation": "Founded in 2021"}`

	p := ParseResponse(raw)

	if p.Tier != TierDirect {
		t.Fatalf("Tier = %s, want direct", p.Tier)
	}
	if p.WrongInfo != "says 2019, deck says 2021" || p.CorrectInfo != "founded 2021" {
		t.Errorf("Parsed = %+v", p)
	}
	if p.Status != model.StatusFail {
		t.Errorf("Status = %s, want FAIL at score 40", p.Status)
	}
}

func TestParseResponse_NeverPanics(t *testing.T) {
	inputs := []string{
		"{", "}", "{}", "```json\n```", `{"accuracy_score": null}`,
		"{{{{", `{"accuracy_score": [1,2]}`, strings.Repeat("x", 5000),
	}
	for _, raw := range inputs {
		p := ParseResponse(raw)
		if p.Status != model.StatusPass && p.Status != model.StatusFail {
			t.Errorf("ParseResponse(%.20q) produced status %q", raw, p.Status)
		}
	}
}
