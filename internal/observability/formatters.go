// Package observability provides formatted output utilities for verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/prakash/ats-cv-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// listPreview formats up to maxItemsToShow items as bullet lines.
func listPreview(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintKeywordSet outputs a human-readable summary of the extracted keywords.
func (p *Printer) PrintKeywordSet(keywords *types.JDKeywordSet) {
	if keywords == nil {
		return
	}

	var sb strings.Builder

	if len(keywords.Skills) > 0 {
		sb.WriteString("Skills:\n")
		listPreview(&sb, keywords.Skills)
		sb.WriteString("\n")
	}
	if len(keywords.Technologies) > 0 {
		sb.WriteString("Technologies:\n")
		listPreview(&sb, keywords.Technologies)
		sb.WriteString("\n")
	}
	if len(keywords.Keywords) > 0 {
		sb.WriteString("Other keywords:\n")
		listPreview(&sb, keywords.Keywords)
	}

	p.printBox("EXTRACTED JD KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAttempt outputs the score summary of one generation attempt.
func (p *Printer) PrintAttempt(attempt *types.GenerationAttempt) {
	if attempt == nil || attempt.Analysis == nil {
		return
	}

	var sb strings.Builder
	analysis := attempt.Analysis

	sb.WriteString(fmt.Sprintf("ATS Score:      %d/100\n", analysis.Score))
	sb.WriteString(fmt.Sprintf("Keyword match:  %.1f%%\n", analysis.KeywordMatchPercentage))
	sb.WriteString(fmt.Sprintf("Semantic:       %.1f%%\n", analysis.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Bullets:        %d optimal of %d\n",
		analysis.BulletAnalysis.OptimalBullets, analysis.BulletAnalysis.TotalBullets))
	if analysis.KeywordStuffing.IsStuffed {
		sb.WriteString("Warning:        keyword stuffing detected\n")
	}

	p.printBox(fmt.Sprintf("ATTEMPT %d", attempt.Attempt), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs a human-readable summary of a full scoring pass.
func (p *Printer) PrintAnalysis(analysis *types.AnalysisResult) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ATS Score:      %d/100\n", analysis.Score))
	sb.WriteString(fmt.Sprintf("Keyword match:  %.1f%%\n", analysis.KeywordMatchPercentage))
	sb.WriteString("\n")

	if len(analysis.AlignedSkills) > 0 {
		sb.WriteString("Aligned skills:\n")
		listPreview(&sb, analysis.AlignedSkills)
		sb.WriteString("\n")
	}
	if len(analysis.MissingKeywords) > 0 {
		sb.WriteString("Missing keywords:\n")
		listPreview(&sb, analysis.MissingKeywords)
		sb.WriteString("\n")
	}
	if len(analysis.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		listPreview(&sb, analysis.Recommendations)
	}

	p.printBox("ATS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
