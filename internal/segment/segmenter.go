package segment

import (
	"regexp"
	"sort"
	"strings"

	"memoscan/internal/model"
)

const (
	minHeaderLen = 3
	maxHeaderLen = 100
	minBodyLen   = 5

	// Keyword-density fallback acceptance bounds
	minFallbackScore = 2
	minFallbackLen   = 20
)

// MatchType records how a section header was detected
type MatchType string

const (
	MatchExact   MatchType = "exact"   // Canonical phrase table hit
	MatchPattern MatchType = "pattern" // Alternative-phrasing regex hit
	MatchFuzzy   MatchType = "fuzzy"   // Keyword-density paragraph fallback
)

// Detection describes one detected section header
type Detection struct {
	Section    model.SectionID
	Line       int // Line number in the preprocessed text (0-based)
	Header     string
	Match      MatchType
	Confidence int
}

var (
	blankRunPattern = regexp.MustCompile(`\n\s*\n\s*\n+`)
	cleanPattern    = regexp.MustCompile(`[^\w\s&]`)
)

// Segmenter splits a narrative memo document into its named sections
type Segmenter struct {
	patterns map[model.SectionID][]*regexp.Regexp
}

// NewSegmenter creates a segmenter with all phrasing patterns compiled
func NewSegmenter() *Segmenter {
	compiled := make(map[model.SectionID][]*regexp.Regexp, len(sectionPatterns))
	for section, patterns := range sectionPatterns {
		for _, p := range patterns {
			compiled[section] = append(compiled[section], regexp.MustCompile(p))
		}
	}
	return &Segmenter{patterns: compiled}
}

// Segment extracts every memo section's body text from the document.
// The returned map always contains every section; undetected sections
// map to the empty string. Section bodies never overlap: each runs from
// the line after its header to the line before the next header.
func (s *Segmenter) Segment(document string) map[model.SectionID]string {
	sections := make(map[model.SectionID]string, len(model.Sections()))
	for _, id := range model.Sections() {
		sections[id] = ""
	}
	if strings.TrimSpace(document) == "" {
		return sections
	}

	text := s.preprocess(document)
	detections := s.detect(text)
	lines := strings.Split(text, "\n")

	for section, body := range s.extractBodies(lines, detections) {
		sections[section] = body
	}

	// Keyword-density rescue for sections with no detected header
	for _, id := range model.Sections() {
		if sections[id] == "" {
			sections[id] = fuzzyParagraph(text, id)
		}
	}

	return sections
}

// preprocess normalizes line whitespace, collapses runs of blank lines,
// and re-joins section headers that wrapped across a line break
func (s *Segmenter) preprocess(document string) string {
	lines := strings.Split(document, "\n")
	var processed []string

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if line != "" && isPotentialHeader(line) && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && isHeaderContinuation(line, next) {
				line = line + " " + next
				i++
			}
		}

		processed = append(processed, line)
	}

	return blankRunPattern.ReplaceAllString(strings.Join(processed, "\n"), "\n\n")
}

// detect scans every line for section headers, keeping only the
// highest-confidence detection per section
func (s *Segmenter) detect(text string) []Detection {
	best := make(map[model.SectionID]Detection)
	lines := strings.Split(text, "\n")

	for lineNum, raw := range lines {
		line := strings.TrimSpace(raw)
		if len(line) < minHeaderLen {
			continue
		}

		lineLower := strings.ToLower(line)
		cleanLine := strings.TrimSpace(cleanPattern.ReplaceAllString(lineLower, ""))

		for _, section := range model.Sections() {
			var d Detection

			if canonicalHeaders[cleanLine] == section {
				d = Detection{Section: section, Line: lineNum, Header: line, Match: MatchExact, Confidence: 100}
			} else {
				for i, re := range s.patterns[section] {
					if re.MatchString(lineLower) {
						// Longer patterns are more specific and win ties
						d = Detection{
							Section:    section,
							Line:       lineNum,
							Header:     line,
							Match:      MatchPattern,
							Confidence: 80 + len(sectionPatterns[section][i]),
						}
						break
					}
				}
			}

			if d.Match != "" {
				if prev, ok := best[section]; !ok || prev.Confidence < d.Confidence {
					best[section] = d
				}
			}
		}
	}

	// One line is one header: when two sections claim the same line,
	// the higher-confidence detection keeps it
	byLine := make(map[int]Detection, len(best))
	for _, d := range best {
		if prev, ok := byLine[d.Line]; !ok || prev.Confidence < d.Confidence {
			byLine[d.Line] = d
		}
	}

	detections := make([]Detection, 0, len(byLine))
	for _, d := range byLine {
		detections = append(detections, d)
	}
	sort.Slice(detections, func(i, j int) bool { return detections[i].Line < detections[j].Line })
	return detections
}

// extractBodies assigns each section the lines between its header and
// the next detected header, trimming surrounding blanks. A body line
// that is itself a definite header of another section ends the body
// early. Bodies shorter than minBodyLen are discarded.
func (s *Segmenter) extractBodies(lines []string, detections []Detection) map[model.SectionID]string {
	bodies := make(map[model.SectionID]string)

	for i, d := range detections {
		start := d.Line + 1
		end := len(lines)
		if i+1 < len(detections) {
			end = detections[i+1].Line
		}

		var body []string
		for n := start; n < end && n < len(lines); n++ {
			line := strings.TrimSpace(lines[n])

			if len(body) == 0 && line == "" {
				continue
			}
			if line != "" && n != start && isPotentialHeader(line) && isDefiniteHeader(line) {
				break
			}
			body = append(body, line)
		}

		for len(body) > 0 && body[len(body)-1] == "" {
			body = body[:len(body)-1]
		}

		content := strings.TrimSpace(strings.Join(body, "\n"))
		if len(content) >= minBodyLen {
			bodies[d.Section] = content
		}
	}

	return bodies
}

// fuzzyParagraph finds the blank-line-delimited paragraph most dense in
// the section's body keywords. Accepts only paragraphs matching at
// least minFallbackScore keywords and minFallbackLen characters; empty
// sections are valid and handled downstream.
func fuzzyParagraph(text string, section model.SectionID) string {
	keywords := fallbackKeywords[section]
	if len(keywords) == 0 {
		return ""
	}

	var best string
	bestScore := 0

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if len(paragraph) < minFallbackLen {
			continue
		}

		lower := strings.ToLower(paragraph)
		score := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}

		if score > bestScore && score >= minFallbackScore {
			bestScore = score
			best = paragraph
		}
	}

	return best
}

// isPotentialHeader reports whether a line could plausibly be a section
// header: short enough and mentioning at least one topic keyword
func isPotentialHeader(line string) bool {
	if len(line) < minHeaderLen || len(line) > maxHeaderLen {
		return false
	}
	lower := strings.ToLower(line)
	for _, indicator := range headerIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// isHeaderContinuation reports whether the second line completes a
// header phrase that wrapped across a page or line break. A first line
// that already holds a complete header never merges; only the wrapped
// remainder of a phrase does.
func isHeaderContinuation(first, second string) bool {
	if len(second) > 50 {
		return false
	}

	firstLower := strings.ToLower(first)
	for phrase := range canonicalHeaders {
		if strings.Contains(firstLower, phrase) {
			return false
		}
	}

	combined := firstLower + " " + strings.ToLower(second)
	for phrase := range canonicalHeaders {
		if strings.Contains(combined, phrase) {
			return true
		}
	}
	return false
}

// isDefiniteHeader reports whether a line unambiguously starts another
// section
func isDefiniteHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range definiteHeaders {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
