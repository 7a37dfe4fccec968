package model

import "testing"

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Status
	}{
		{0, StatusFail},
		{49, StatusFail},
		{50, StatusPass},
		{85, StatusPass},
		{100, StatusPass},
	}

	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.want {
			t.Errorf("StatusForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSectionsAndFieldsClosed(t *testing.T) {
	if got := len(Sections()); got != 13 {
		t.Errorf("len(Sections()) = %d, want 13", got)
	}
	if got := len(Fields()); got != 14 {
		t.Errorf("len(Fields()) = %d, want 14", got)
	}

	seen := map[SectionID]bool{}
	for _, s := range Sections() {
		if seen[s] {
			t.Errorf("duplicate section %s", s)
		}
		seen[s] = true
	}
}
