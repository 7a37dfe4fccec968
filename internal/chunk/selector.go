package chunk

import (
	"regexp"
	"sort"
	"strings"
)

// maxSections caps how many scored sections one chunk may concatenate
const maxSections = 15

// backfillMarker separates the plain document prefix from the scored
// selection when term matching was too sparse to fill the budget
const backfillMarker = "\n\n[...ADDITIONAL RELEVANT CONTENT...]\n\n"

var (
	termPattern     = regexp.MustCompile(`\b[A-Za-z]{3,}\b|\$[\d,]+(?:\.\d+)?[MBK]?|\b\d{4}\b`)
	splitPattern    = regexp.MustCompile(`\n\s*\n|\n={3,}|\n-{3,}`)
	moneyPattern    = regexp.MustCompile(`\$[\d,]+(?:\.\d+)?[MBK]?`)
	yearPattern     = regexp.MustCompile(`\b\d{4}\b`)
	locationPattern = regexp.MustCompile(`[A-Z][a-zA-Z ]+,\s*[A-Z]{2}\b`)
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	stagePattern    = regexp.MustCompile(`(?i)Series [A-Z]|Seed|Pre-seed`)
)

// topicContext maps a topic (a profile field being verified) to terms
// that signal relevant source passages even when the value itself is
// absent or paraphrased
var topicContext = map[string][]string{
	"company_name":      {"company", "corporation", "inc", "llc", "ltd", "business", "startup", "firm"},
	"industry":          {"industry", "sector", "market", "vertical", "space", "domain", "field"},
	"location":          {"located", "headquarters", "based", "address", "city", "state", "country", "office"},
	"founders":          {"founder", "co-founder", "ceo", "started", "established", "created"},
	"founder_email":     {"email", "contact", "@", "reach", "founder", "ceo"},
	"year_founded":      {"founded", "established", "started", "incorporated", "began", "launched"},
	"funding_stage":     {"stage", "funding", "round", "series", "seed", "pre-seed", "growth"},
	"latest_valuation":  {"valuation", "valued", "worth", "value", "post-money", "pre-money"},
	"fund_raise_target": {"raise", "raising", "target", "seeking", "funding", "round"},
	"amount_raised":     {"raised", "funding", "investment", "capital", "money"},
	"revenue":           {"revenue", "income", "sales", "earnings", "arr", "mrr"},
	"list_of_investors": {"investor", "investors", "backed", "funding", "investment"},
	"lead_investor":     {"lead", "leading", "investor", "primary"},
	"verticals":         {"vertical", "verticals", "market", "markets", "sector", "focus"},
}

// genericTerms are business terms that are almost always relevant
var genericTerms = []string{"company", "business", "startup", "founded", "ceo", "team"}

type scoredSection struct {
	score int
	text  string
}

// Select assembles the most relevant excerpt of fullText for verifying
// the given topic/value pair, within a character budget. Text that
// already fits is returned unchanged. Otherwise sections are scored by
// weighted term matches plus structural signals, and the top sections
// are concatenated up to the budget.
func Select(topic, value, fullText string, budget int) string {
	if len(fullText) <= budget {
		return fullText
	}

	contextTerms := topicContext[strings.ToLower(topic)]

	var searchTerms []string
	valueLower := strings.ToLower(value)
	if value != "" && value != "N/A" {
		searchTerms = append(searchTerms, termPattern.FindAllString(value, -1)...)
		if strings.Contains(value, "@") {
			searchTerms = append(searchTerms, strings.Split(value, "@")...)
		}
		if strings.Contains(value, ".") && len(value) < 50 {
			searchTerms = append(searchTerms, strings.Split(value, ".")...)
		}
	}
	searchTerms = append(searchTerms, contextTerms...)
	searchTerms = append(searchTerms, genericTerms...)

	contextSet := make(map[string]bool, len(contextTerms))
	for _, t := range contextTerms {
		contextSet[strings.ToLower(t)] = true
	}

	var terms []string
	for _, t := range searchTerms {
		if len(t) > 2 {
			terms = append(terms, strings.ToLower(t))
		}
	}

	var scored []scoredSection
	for _, section := range splitPattern.Split(fullText, -1) {
		if len(strings.TrimSpace(section)) < 30 {
			continue
		}

		sectionLower := strings.ToLower(section)
		score := 0

		for _, term := range terms {
			count := strings.Count(sectionLower, term)
			if count == 0 {
				continue
			}
			switch {
			case valueLower != "" && strings.Contains(valueLower, term):
				score += count * 5
			case contextSet[term]:
				score += count * 3
			default:
				score += count
			}
		}

		// Structured data signals
		if moneyPattern.MatchString(section) {
			score += 10
		}
		if yearPattern.MatchString(section) {
			score += 5
		}
		if locationPattern.MatchString(section) {
			score += 5
		}
		if emailPattern.MatchString(section) {
			score += 8
		}
		if stagePattern.MatchString(section) {
			score += 7
		}

		scored = append(scored, scoredSection{score: score, text: section})
	}

	// Stable: equal scores keep document order
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	var sb strings.Builder
	used := 0
	count := 0
	for _, s := range scored {
		if used+len(s.text) > budget || count >= maxSections {
			break
		}
		sb.WriteString(s.text)
		sb.WriteString("\n\n")
		used += len(s.text) + 2
		count++
	}
	selected := sb.String()

	// Sparse term matches can leave the oracle with too little context;
	// backfill with a plain prefix of the document
	if used < budget*2/5 {
		remaining := budget - used
		if remaining > len(fullText) {
			remaining = len(fullText)
		}
		selected = fullText[:remaining] + backfillMarker + selected
	}

	return strings.TrimSpace(selected)
}
