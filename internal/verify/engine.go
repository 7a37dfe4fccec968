package verify

import (
	"context"
	"strings"

	"memoscan/internal/chunk"
	"memoscan/internal/corpus"
	"memoscan/internal/extract"
	"memoscan/internal/llm"
	"memoscan/internal/model"
)

const (
	// Score awarded to empty memo sections: absence of content is not
	// adversarial, so they pass without an oracle call
	emptySectionScore = 70

	// Floor applied when the oracle reports no wrong information
	cleanSectionScore = 85

	// Scores at or above this are a direct (near-verbatim) match
	directMatchScore = 80

	// Section excerpt length included verbatim in the prompt
	sectionExcerptChars = 600

	minSectionLen = 5
)

// cleanWrongInfo are wrong_info values that all mean "no errors found"
var cleanWrongInfo = map[string]bool{
	"":                     true,
	"none":                 true,
	"no errors":            true,
	"no wrong information": true,
	"verified correct":     true,
}

// Engine runs one judgment per field or per memo section: it selects
// context, invokes the judgment oracle, parses the response, resolves
// provenance, and derives the final status. Each unit of work is
// isolated; an oracle failure degrades that unit to a fallback result
// and never aborts the batch.
type Engine struct {
	judge  llm.Judge
	claims *extract.ClaimExtractor
	cfg    model.VerifyConfig
}

// NewEngine creates a verification engine using the given judge
func NewEngine(judge llm.Judge, cfg model.VerifyConfig) *Engine {
	return &Engine{
		judge:  judge,
		claims: extract.NewClaimExtractor(cfg.MaxClaims),
		cfg:    cfg,
	}
}

// VerifyField judges one AI-generated field value against the source
// text. The oracle is called exactly once; transport failures produce
// an error-tagged FAIL result, never a retry.
func (e *Engine) VerifyField(ctx context.Context, field model.FieldID, aiValue, sourceText string, idx corpus.Index) model.VerificationResult {
	relevant := chunk.Select(string(field), aiValue, sourceText, e.cfg.FieldChunkChars)
	prompt := fieldPrompt(field, aiValue, relevant)

	raw, err := e.judge.Complete(ctx, prompt)
	if err != nil {
		return fieldFallback(field, aiValue, err)
	}

	p := ParseResponse(raw)

	result := model.VerificationResult{
		Name:            string(field),
		AIValue:         aiValue,
		AccuracyScore:   p.AccuracyScore,
		Status:          model.StatusForScore(p.AccuracyScore),
		SourceValue:     p.SourceValue,
		Citation:        p.Citation,
		ContextualMatch: p.ContextualMatch,
		ParseTier:       string(p.Tier),
	}

	// Prefer the citation for provenance; fall back to the source value
	result.Provenance = corpus.Locate(p.Citation, idx)
	if result.Provenance == nil && p.SourceValue != "" && p.SourceValue != "Not found" {
		result.Provenance = corpus.Locate(p.SourceValue, idx)
	}

	switch {
	case p.ContextualMatch:
		result.Type = model.TypeContextualMatch
	case p.AccuracyScore >= directMatchScore:
		result.Type = model.TypeDirectMatch
	default:
		result.Type = model.TypeNoMatch
	}

	return result
}

// VerifySection fact-checks one memo section. Sections shorter than
// minSectionLen never reach the oracle; they auto-pass as empty. The
// contextual chunk is keyed on the section's extracted claims, biasing
// retrieval toward the verifiable facts.
func (e *Engine) VerifySection(ctx context.Context, section model.SectionID, content, sourceText string, idx corpus.Index) model.VerificationResult {
	if len(strings.TrimSpace(content)) < minSectionLen {
		return emptySectionResult(section)
	}

	claims := e.claims.Extract(content)
	relevant := chunk.Select(string(section), extract.JoinClaims(claims), sourceText, e.cfg.SectionChunkChars)

	excerpt := content
	if len(excerpt) > sectionExcerptChars {
		excerpt = excerpt[:sectionExcerptChars]
	}
	prompt := sectionPrompt(section, excerpt, relevant)

	raw, err := e.judge.Complete(ctx, prompt)
	if err != nil {
		return sectionFallback(section, err)
	}

	p := ParseResponse(raw)

	result := model.VerificationResult{
		Name:        string(section),
		WrongInfo:   p.WrongInfo,
		CorrectInfo: p.CorrectInfo,
		Citation:    p.Citation,
		ParseTier:   string(p.Tier),
	}

	score := p.AccuracyScore
	if cleanWrongInfo[strings.ToLower(strings.TrimSpace(p.WrongInfo))] {
		// No contradictions reported: treat as verified even when the
		// oracle returned a cautious score
		if score < cleanSectionScore {
			score = cleanSectionScore
		}
		result.WrongInfo = "None"
		if result.CorrectInfo == "" {
			result.CorrectInfo = "Verified correct"
		}
		result.Type = model.TypeContextuallyVerified
	} else {
		result.Type = model.TypeIssuesFound
	}

	result.AccuracyScore = score
	result.Status = model.StatusForScore(score)
	result.Provenance = corpus.Locate(p.Citation, idx)

	return result
}

func emptySectionResult(section model.SectionID) model.VerificationResult {
	return model.VerificationResult{
		Name:          string(section),
		AccuracyScore: emptySectionScore,
		Status:        model.StatusPass,
		WrongInfo:     "Section is empty",
		CorrectInfo:   "No content to verify",
		Type:          model.TypeEmptySection,
	}
}

func fieldFallback(field model.FieldID, aiValue string, err error) model.VerificationResult {
	return model.VerificationResult{
		Name:          string(field),
		AIValue:       aiValue,
		AccuracyScore: 0,
		Status:        model.StatusFail,
		SourceValue:   "Error: " + err.Error(),
		Type:          model.TypeError,
		Error:         err.Error(),
	}
}

func sectionFallback(section model.SectionID, err error) model.VerificationResult {
	return model.VerificationResult{
		Name:          string(section),
		AccuracyScore: 0,
		Status:        model.StatusFail,
		WrongInfo:     "Error: " + err.Error(),
		CorrectInfo:   "N/A",
		Type:          model.TypeError,
		Error:         err.Error(),
	}
}
