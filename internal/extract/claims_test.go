package extract

import (
	"strings"
	"testing"
)

func TestClaimExtractor_Signals(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		signal   string
	}{
		{"money", "The company closed its round with $5M in committed capital", "money"},
		{"date", "Operations began across three states in 2019", "date"},
		{"metric", "Monthly churn dropped below 2% after the relaunch", "metric"},
		{"entity", "She was appointed CEO after leading the product group", "entity"},
		{"location", "All hands gathered in Austin, TX for the offsite", "location"},
		{"corporate", "A supply deal was signed with Globex Logistics Inc last month", "corporate"},
	}

	e := NewClaimExtractor(8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := e.Extract(tt.sentence)
			if len(claims) != 1 {
				t.Fatalf("Extract() = %d claims, want 1", len(claims))
			}
			if claims[0].Signal != tt.signal {
				t.Errorf("signal = %s, want %s", claims[0].Signal, tt.signal)
			}
		})
	}
}

func TestClaimExtractor_SkipsNonFactual(t *testing.T) {
	e := NewClaimExtractor(8)

	claims := e.Extract("We believe the future looks very bright for everyone involved. Short. Our mission is to delight users everywhere they go.")

	if len(claims) != 0 {
		t.Errorf("Extract() = %d claims, want 0: %v", len(claims), claims)
	}
}

func TestClaimExtractor_CapsClaims(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("The business raised another round of growth funding that year. ")
	}

	e := NewClaimExtractor(8)
	claims := e.Extract(sb.String())

	if len(claims) != 8 {
		t.Errorf("Extract() = %d claims, want cap of 8", len(claims))
	}
}

func TestClaimExtractor_ZeroMaxUsesDefault(t *testing.T) {
	e := NewClaimExtractor(0)
	if e.max != maxClaims {
		t.Errorf("max = %d, want default %d", e.max, maxClaims)
	}
}

func TestClaimExtractor_EmptySection(t *testing.T) {
	e := NewClaimExtractor(8)
	if claims := e.Extract("   \n  "); claims != nil {
		t.Errorf("Extract() = %v, want nil", claims)
	}
}

func TestJoinClaims(t *testing.T) {
	e := NewClaimExtractor(8)
	claims := e.Extract("Revenue reached $2M in 2023. The team grew to 40 employees over the year.")

	joined := JoinClaims(claims)
	if !strings.Contains(joined, "$2M") || !strings.Contains(joined, "40 employees") {
		t.Errorf("JoinClaims() = %q", joined)
	}
}
