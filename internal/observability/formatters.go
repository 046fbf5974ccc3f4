// Package observability provides structured logging and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-agent/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to n runes, marking the cut with "...".
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// PrintPlan outputs the stages the planner scheduled and its template choice.
func (p *Printer) PrintPlan(stages []string, templateID types.TemplateID, reason string, fallback bool) {
	var sb strings.Builder

	source := "model"
	if fallback {
		source = "fallback"
	}
	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	sb.WriteString(fmt.Sprintf("Template: %s\n", templateID))
	if reason != "" {
		sb.WriteString(fmt.Sprintf("Reason:   %s\n", reason))
	}
	sb.WriteString("\n")

	if len(stages) == 0 {
		sb.WriteString("Nothing left to do")
	}
	for i, s := range stages {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
	}

	p.printBox("STAGE PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIndustryContext outputs the detected industry, job function and seniority.
func (p *Printer) PrintIndustryContext(ctx types.IndustryContext, inputType types.InputType) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industry:     %s\n", ctx.Industry))
	sb.WriteString(fmt.Sprintf("Job function: %s\n", ctx.JobFunction))
	sb.WriteString(fmt.Sprintf("Seniority:    %s\n", ctx.Seniority))
	if inputType != "" {
		sb.WriteString(fmt.Sprintf("Input type:   %s", inputType))
	}
	p.printBox("INDUSTRY CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs each rewritten section and whether it fell back to
// local bullet-ification.
func (p *Printer) PrintSections(secs []types.ResumeSection, fallbacks []string) {
	if len(secs) == 0 {
		return
	}

	fellBack := make(map[string]bool, len(fallbacks))
	for _, f := range fallbacks {
		fellBack[f] = true
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sections: %d (fallback: %d)\n\n", len(secs), len(fallbacks)))
	for i, s := range secs {
		heading := s.Heading
		if heading == "" {
			heading = "(preamble)"
		}
		mark := "✓"
		if fellBack[heading] || fellBack[string(s.Kind)] {
			mark = "↺"
		}
		sb.WriteString(fmt.Sprintf("%s %-14s %s\n", mark, s.Kind, heading))
		if i == maxItemsToShow*2-1 && len(secs) > maxItemsToShow*2 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(secs)-maxItemsToShow*2))
			break
		}
	}

	p.printBox("REWRITTEN SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocumentSummary outputs a short summary of the structured document.
func (p *Printer) PrintDocumentSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Basic.Name))
	if doc.Basic.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", doc.Basic.Title))
	}
	sb.WriteString(fmt.Sprintf("Template: %s\n\n", doc.TemplateID))

	sb.WriteString(fmt.Sprintf("Experience: %d\n", len(doc.Experience)))
	count := min(len(doc.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := doc.Experience[i]
		sb.WriteString(fmt.Sprintf("  • %s", e.Company))
		if e.Position != "" {
			sb.WriteString(fmt.Sprintf(" / %s", e.Position))
		}
		if e.Date != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", e.Date))
		}
		sb.WriteString("\n")
	}
	if len(doc.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(doc.Projects)))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", len(doc.Education)))
	skills := "no"
	if strings.TrimSpace(doc.SkillContent) != "" {
		skills = "yes"
	}
	sb.WriteString(fmt.Sprintf("Skills:     %s", skills))

	p.printBox("STRUCTURED DOCUMENT", sb.String())
}

// PrintArtifacts outputs the written files and any PDF degradation.
func (p *Printer) PrintArtifacts(paths []string, degraded bool, warnings []string) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("  • %s\n", path))
	}
	if degraded {
		sb.WriteString("\nPDF unavailable, fell back to Word\n")
	}
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠️  %s\n", w))
	}

	p.printBox("ARTIFACTS", strings.TrimSuffix(sb.String(), "\n"))
}
