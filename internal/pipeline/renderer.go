package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"memoscan/internal/model"
)

// Renderer writes verification reports as JSON or Markdown and prints
// the run summary to stdout
type Renderer struct{}

// NewRenderer creates a report renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a human-readable Markdown file
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Verification Report: %s\n\n", report.Company)
	fmt.Fprintf(&b, "Verified: %s  \n", report.VerifiedAt.Format("2006-01-02 15:04 UTC"))
	if report.Judge != "" {
		fmt.Fprintf(&b, "Judge: %s\n", report.Judge)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Fields (%d/%d passed, avg %.1f)\n\n",
		report.FieldSummary.Passed, report.FieldSummary.Total, report.FieldSummary.AverageScore)
	b.WriteString("| Field | Score | Status | Type | Source Value | Provenance |\n")
	b.WriteString("|-------|-------|--------|------|--------------|------------|\n")
	for _, field := range model.Fields() {
		res, ok := report.Fields[field]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			res.Name, res.AccuracyScore, res.Status, res.Type,
			mdCell(res.SourceValue), provenanceCell(res.Provenance))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Memo Sections (%d/%d passed, avg %.1f)\n\n",
		report.SectionSummary.Passed, report.SectionSummary.Total, report.SectionSummary.AverageScore)
	for _, section := range model.Sections() {
		res, ok := report.Sections[section]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", res.Name)
		fmt.Fprintf(&b, "- Score: %d (%s, %s)\n", res.AccuracyScore, res.Status, res.Type)
		if res.WrongInfo != "" {
			fmt.Fprintf(&b, "- Wrong info: %s\n", res.WrongInfo)
		}
		if res.CorrectInfo != "" {
			fmt.Fprintf(&b, "- Correct info: %s\n", res.CorrectInfo)
		}
		if res.Provenance != nil {
			fmt.Fprintf(&b, "- Provenance: %s\n", provenanceCell(res.Provenance))
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints the run summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n=== Verification Summary: %s ===\n", report.Company)
	fmt.Printf("Fields:   %d/%d passed, avg score %.1f, %d contextual matches\n",
		report.FieldSummary.Passed, report.FieldSummary.Total,
		report.FieldSummary.AverageScore, report.FieldSummary.ContextualMatches)
	fmt.Printf("Sections: %d/%d passed, avg score %.1f, %d verified clean\n",
		report.SectionSummary.Passed, report.SectionSummary.Total,
		report.SectionSummary.AverageScore, report.SectionSummary.ContextualMatches)
}

func mdCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 80 {
		s = s[:80] + "..."
	}
	return s
}

func provenanceCell(p *model.Provenance) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s p.%d", p.Document, p.Page)
}
