// Package pipeline orchestrates a full verification run: corpus
// indexing, memo segmentation, sequential field and section judgments,
// and summary aggregation into one report.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"memoscan/internal/corpus"
	"memoscan/internal/llm"
	"memoscan/internal/model"
	"memoscan/internal/score"
	"memoscan/internal/segment"
	"memoscan/internal/verify"
)

// Input describes one verification run
type Input struct {
	Company    string
	SourceText string                   // Concatenated source documents with page markers
	Fields     map[model.FieldID]string // AI-generated structured field values
	Memo       string                   // AI-generated narrative memo (plain text or HTML)
}

// Pipeline wires the indexer, segmenter and verification engine for
// repeated runs against the same judge
type Pipeline struct {
	indexer   *corpus.Indexer
	segmenter *segment.Segmenter
	engine    *verify.Engine
	renderer  *Renderer
	judge     llm.Judge
	verbose   bool
}

// New creates a pipeline around the given judge
func New(judge llm.Judge, cfg model.VerifyConfig, verbose bool) *Pipeline {
	return &Pipeline{
		indexer:   corpus.NewIndexer(nil),
		segmenter: segment.NewSegmenter(),
		engine:    verify.NewEngine(judge, cfg),
		renderer:  NewRenderer(),
		judge:     judge,
		verbose:   verbose,
	}
}

// Run verifies every provided field and every memo section against the
// source corpus, in canonical order, one judgment call at a time.
func (p *Pipeline) Run(ctx context.Context, in Input) (*model.Report, error) {
	if strings.TrimSpace(in.SourceText) == "" {
		return nil, fmt.Errorf("no usable source text")
	}

	idx := p.indexer.Index(in.SourceText)

	memo := in.Memo
	if looksLikeHTML(memo) {
		stripped, err := segment.StripHTML(memo)
		if err != nil {
			return nil, fmt.Errorf("strip memo HTML: %w", err)
		}
		memo = stripped
	}
	sections := p.segmenter.Segment(memo)

	report := &model.Report{
		Company:    in.Company,
		VerifiedAt: time.Now().UTC(),
		Fields:     make(map[model.FieldID]model.VerificationResult, len(in.Fields)),
		Sections:   make(map[model.SectionID]model.VerificationResult, len(model.Sections())),
		Judge:      p.judge.Name(),
	}

	fieldResults := make([]model.VerificationResult, 0, len(in.Fields))
	for _, field := range model.Fields() {
		value, ok := in.Fields[field]
		if !ok {
			continue
		}
		if p.verbose {
			fmt.Printf("Verifying field: %s\n", field)
		}
		result := p.engine.VerifyField(ctx, field, value, in.SourceText, idx)
		report.Fields[field] = result
		fieldResults = append(fieldResults, result)
	}

	sectionResults := make([]model.VerificationResult, 0, len(model.Sections()))
	for _, section := range model.Sections() {
		if p.verbose {
			fmt.Printf("Verifying section: %s\n", section)
		}
		result := p.engine.VerifySection(ctx, section, sections[section], in.SourceText, idx)
		report.Sections[section] = result
		sectionResults = append(sectionResults, result)
	}

	report.FieldSummary = score.Aggregate(fieldResults)
	report.SectionSummary = score.Aggregate(sectionResults)

	return report, nil
}

// RenderReport renders the report to the specified outputs and prints
// the summary to stdout
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if p.verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if p.verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}

// looksLikeHTML detects markup-heavy memos that need tag stripping
// before segmentation
func looksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	for _, tag := range []string{"<html", "<body", "<div", "<p>", "<br", "<h1", "<h2", "<h3"} {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}
