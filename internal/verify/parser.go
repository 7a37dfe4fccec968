package verify

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"memoscan/internal/model"
)

// Tier identifies which parsing strategy produced the response fields.
// Downstream code can tell a fully parsed judgment from a degraded one.
type Tier string

const (
	TierDirect   Tier = "direct"   // Whole response was a JSON object
	TierEmbedded Tier = "embedded" // JSON object found inside wrapping text
	TierFields   Tier = "fields"   // Field-by-field regex extraction
	TierFallback Tier = "fallback" // Nothing extractable; fixed error object
)

// Parsed holds the judgment fields recovered from a raw oracle
// response. Every field is populated on every path; Tier records how.
type Parsed struct {
	AccuracyScore   int
	SourceValue     string
	Citation        string
	WrongInfo       string
	CorrectInfo     string
	ContextualMatch bool
	Status          model.Status
	Tier            Tier
}

// Embedded-JSON wrappers, in priority order: fenced code blocks first,
// then bare brace objects
var embeddedPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```"),
	regexp.MustCompile("(?s)```\\s*(\\{.*?\\})\\s*```"),
	regexp.MustCompile(`(?s)\{[^{}]*\{[^{}]*\}[^{}]*\}`),
	regexp.MustCompile(`\{[^{}]*\}`),
}

var (
	scoreField      = regexp.MustCompile(`"accuracy_score":\s*(\d+)`)
	sourceField     = regexp.MustCompile(`"source_value":\s*"([^"]*)"`)
	citationField   = regexp.MustCompile(`"citation":\s*"([^"]*)"`)
	contextualField = regexp.MustCompile(`"contextual_match":\s*(true|false)`)
	statusField     = regexp.MustCompile(`"status":\s*"([^"]*)"`)
	wrongField      = regexp.MustCompile(`"wrong_info":\s*"([^"]*)"`)
	correctField    = regexp.MustCompile(`"correct_info":\s*"([^"]*)"`)
)

// ParseResponse recovers judgment fields from raw oracle output. It
// never fails: four strategies are tried in order and the last one
// always yields a usable (if degraded) result.
func ParseResponse(text string) Parsed {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallbackParsed(text)
	}

	// Strategy 1: the whole response is a JSON object
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil && obj != nil {
		return fromObject(obj, TierDirect)
	}

	// Strategy 2: a JSON object wrapped in prose or a code fence
	for _, pattern := range embeddedPatterns {
		for _, match := range pattern.FindAllStringSubmatch(trimmed, -1) {
			candidate := match[0]
			if len(match) > 1 {
				candidate = match[1]
			}
			var obj map[string]interface{}
			if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &obj); err == nil && obj != nil {
				return fromObject(obj, TierEmbedded)
			}
		}
	}

	// Strategy 3: field-by-field extraction, each independently defaulted
	if p, ok := fromFields(trimmed); ok {
		return p
	}

	// Strategy 4: nothing extractable
	return fallbackParsed(text)
}

func fromObject(obj map[string]interface{}, tier Tier) Parsed {
	p := Parsed{
		AccuracyScore:   intValue(obj, "accuracy_score"),
		SourceValue:     stringValue(obj, "source_value"),
		Citation:        stringValue(obj, "citation"),
		WrongInfo:       stringValue(obj, "wrong_info"),
		CorrectInfo:     stringValue(obj, "correct_info"),
		ContextualMatch: boolValue(obj, "contextual_match"),
		Tier:            tier,
	}
	p.Status = statusValue(obj, p.AccuracyScore)
	return p
}

// fromFields extracts each judgment field with its own regex. Reports
// failure only when no field matched at all.
func fromFields(text string) (Parsed, bool) {
	matched := false

	p := Parsed{
		AccuracyScore: 0,
		SourceValue:   "Not found",
		Tier:          TierFields,
	}

	if m := scoreField.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			p.AccuracyScore = n
			matched = true
		}
	}
	if m := sourceField.FindStringSubmatch(text); m != nil {
		p.SourceValue = m[1]
		matched = true
	}
	if m := citationField.FindStringSubmatch(text); m != nil {
		p.Citation = m[1]
		matched = true
	}
	if m := contextualField.FindStringSubmatch(text); m != nil {
		p.ContextualMatch = m[1] == "true"
		matched = true
	}
	if m := wrongField.FindStringSubmatch(text); m != nil {
		p.WrongInfo = m[1]
		matched = true
	}
	if m := correctField.FindStringSubmatch(text); m != nil {
		p.CorrectInfo = m[1]
		matched = true
	}

	if m := statusField.FindStringSubmatch(text); m != nil {
		p.Status = model.Status(m[1])
		matched = true
	} else {
		p.Status = model.StatusForScore(p.AccuracyScore)
	}

	return p, matched
}

func fallbackParsed(text string) Parsed {
	excerpt := text
	if len(excerpt) > 100 {
		excerpt = excerpt[:100]
	}
	return Parsed{
		AccuracyScore: 0,
		Status:        model.StatusFail,
		SourceValue:   "Parse error: " + excerpt + "...",
		Tier:          TierFallback,
	}
}

func intValue(obj map[string]interface{}, key string) int {
	switch v := obj[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

func stringValue(obj map[string]interface{}, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

func boolValue(obj map[string]interface{}, key string) bool {
	if b, ok := obj[key].(bool); ok {
		return b
	}
	return false
}

func statusValue(obj map[string]interface{}, score int) model.Status {
	if s, ok := obj["status"].(string); ok && s != "" {
		return model.Status(s)
	}
	return model.StatusForScore(score)
}
