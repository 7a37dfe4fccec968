package corpus

import (
	"regexp"
	"strings"

	"memoscan/internal/model"
)

const locateThreshold = 25

var (
	moneyPattern   = regexp.MustCompile(`\$[\d,]+(?:\.\d+)?[MBK]?`)
	yearPattern    = regexp.MustCompile(`\b\d{4}\b`)
	keyTermPattern = regexp.MustCompile(`\b[A-Za-z]{3,}\b|\$[\d,]+(?:\.\d+)?[MBK]?|\b\d{4}\b`)
)

// Locate finds the document and page most likely to contain the given
// fragment (a citation or extracted source value). Returns nil when the
// fragment is empty, a sentinel non-value, or no page clears the score
// threshold. Documents are visited in sorted order and pages ascending,
// and only a strictly higher score displaces the current best, so ties
// resolve to the lowest (document, page) pair deterministically.
func Locate(fragment string, idx Index) *model.Provenance {
	fragment = strings.TrimSpace(fragment)
	switch strings.ToLower(fragment) {
	case "", "n/a", "not found", "error":
		return nil
	}
	if len(idx) == 0 {
		return nil
	}

	fragLower := strings.ToLower(fragment)
	keyTerms := keyTermPattern.FindAllString(fragLower, -1)

	// First few words carry the most identity
	var leadWords []string
	for _, w := range strings.Fields(fragLower) {
		if len(w) > 2 {
			leadWords = append(leadWords, w)
		}
		if len(leadWords) == 5 {
			break
		}
	}

	fragHasMoney := moneyPattern.MatchString(fragment)
	fragHasYear := yearPattern.MatchString(fragment)
	fragHasEmail := strings.Contains(fragment, "@")

	var best *model.Provenance
	bestScore := 0

	for _, doc := range idx.Documents() {
		for _, page := range idx.Pages(doc) {
			pageLower := strings.ToLower(idx[doc][page])

			score := 0

			// Exact substring match is the strongest signal
			if strings.Contains(pageLower, fragLower) {
				score = 100
			}

			// Fraction of key terms present
			if len(keyTerms) > 0 {
				found := 0
				for _, term := range keyTerms {
					if strings.Contains(pageLower, term) {
						found++
					}
				}
				if s := found * 80 / len(keyTerms); s > score {
					score = s
				}
			}

			// Fraction of leading words present
			if len(leadWords) > 0 {
				found := 0
				for _, w := range leadWords {
					if strings.Contains(pageLower, w) {
						found++
					}
				}
				if s := found * 60 / len(leadWords); s > score {
					score = s
				}
			}

			// Structural co-occurrence signals
			if fragHasMoney && moneyPattern.MatchString(pageLower) && score < 70 {
				score = 70
			}
			if fragHasYear && yearPattern.MatchString(pageLower) && score < 60 {
				score = 60
			}
			if fragHasEmail && strings.Contains(pageLower, "@") && score < 80 {
				score = 80
			}

			if score > bestScore && score > locateThreshold {
				bestScore = score
				best = &model.Provenance{Document: doc, Page: page}
			}
		}
	}

	return best
}
