package segment

import (
	"strings"
	"testing"
)

func TestStripHTML_BlockBoundaries(t *testing.T) {
	input := `<html><body><h2>Executive Summary</h2><p>Acme builds freight software.</p></body></html>`

	text, err := StripHTML(input)
	if err != nil {
		t.Fatalf("StripHTML() error: %v", err)
	}

	if !strings.Contains(text, "Executive Summary") {
		t.Errorf("missing header text: %q", text)
	}
	if !strings.Contains(text, "Acme builds freight software.") {
		t.Errorf("missing body text: %q", text)
	}
	// Header and body must end up on separate lines for detection
	lines := strings.Split(text, "\n")
	sameLine := false
	for _, line := range lines {
		if strings.Contains(line, "Executive Summary") && strings.Contains(line, "Acme builds") {
			sameLine = true
		}
	}
	if sameLine {
		t.Errorf("header and body share a line: %q", text)
	}
}

func TestStripHTML_SkipsScriptsAndStyles(t *testing.T) {
	input := `<html><head><style>body { color: red }</style></head>` +
		`<body><script>var x = 1;</script><p>visible text</p></body></html>`

	text, err := StripHTML(input)
	if err != nil {
		t.Fatalf("StripHTML() error: %v", err)
	}

	if strings.Contains(text, "color: red") || strings.Contains(text, "var x") {
		t.Errorf("script/style leaked into output: %q", text)
	}
	if !strings.Contains(text, "visible text") {
		t.Errorf("visible text missing: %q", text)
	}
}

func TestStripHTML_PlainTextPassesThrough(t *testing.T) {
	text, err := StripHTML("just plain words")
	if err != nil {
		t.Fatalf("StripHTML() error: %v", err)
	}
	if !strings.Contains(text, "just plain words") {
		t.Errorf("plain text mangled: %q", text)
	}
}
