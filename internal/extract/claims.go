package extract

import (
	"regexp"
	"strings"

	"memoscan/internal/model"
)

const (
	minSentenceLen = 15
	maxClaims      = 8
)

// factSignal pairs a name with the pattern that flags a sentence as
// carrying a verifiable fact
type factSignal struct {
	name    string
	pattern *regexp.Regexp
}

// factSignals are checked in order; the first hit labels the claim
var factSignals = []factSignal{
	{"money", regexp.MustCompile(`\$[\d,]+(?:\.\d+)?[MBK]?`)},
	{"date", regexp.MustCompile(`\b\d{4}\b|\b\d{1,2}[-/]\d{1,2}[-/]\d{4}\b`)},
	{"metric", regexp.MustCompile(`\d+(?:\.\d+)?%|\d+(?:,\d{3})*\s*(?:users|customers|employees)`)},
	{"entity", regexp.MustCompile(`(?i)\b(?:founded|headquarters|CEO|CTO|Series [A-Z]|raised|funding|valuation|employees|customers|revenue|located|based)\b`)},
	{"location", regexp.MustCompile(`\b[A-Z][a-zA-Z]+,\s*[A-Z]{2}\b`)},
	{"corporate", regexp.MustCompile(`\b[A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*\s+(?:Inc|LLC|Corp|Ltd|Company)\b`)},
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// ClaimExtractor pulls verifiable factual claims out of memo sections
type ClaimExtractor struct {
	max int
}

// NewClaimExtractor creates a claim extractor capping claims per section
func NewClaimExtractor(max int) *ClaimExtractor {
	if max <= 0 {
		max = maxClaims
	}
	return &ClaimExtractor{max: max}
}

// Extract returns the sentences of a section likely to contain a
// verifiable fact: money amounts, dates, percentages or counts,
// role/entity keywords, or City, ST locations. Capped to keep the
// judgment prompt small.
func (e *ClaimExtractor) Extract(section string) []model.Claim {
	if strings.TrimSpace(section) == "" {
		return nil
	}

	var claims []model.Claim
	for i, sentence := range sentenceSplit.Split(section, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < minSentenceLen {
			continue
		}

		for _, sig := range factSignals {
			if sig.pattern.MatchString(sentence) {
				claims = append(claims, model.Claim{
					Text:     sentence,
					Signal:   sig.name,
					Sentence: i,
				})
				break // Only match once per sentence
			}
		}

		if len(claims) == e.max {
			break
		}
	}

	return claims
}

// JoinClaims concatenates claim texts for chunk-selector input, biasing
// retrieval toward the verifiable facts rather than the full section
func JoinClaims(claims []model.Claim) string {
	texts := make([]string, len(claims))
	for i, c := range claims {
		texts[i] = c.Text
	}
	return strings.Join(texts, " ")
}
