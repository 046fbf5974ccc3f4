// Package rewriting rewrites resume text section by section, personalised by
// the detected industry context and a gap analysis against the target role.
package rewriting

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-agent/internal/industry"
	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/prompts"
	"github.com/jonathan/resume-agent/internal/sections"
	"github.com/jonathan/resume-agent/internal/types"
)

// Prompt truncation limits, in characters.
const (
	MaxGapContentChars = 3000
	MaxGapTargetChars  = 1000
	MaxAnalysisChars   = 800
)

// Request is the input of one rewrite run.
type Request struct {
	Text           string
	InputType      types.InputType // empty means DetectInputType
	TargetRole     string
	JobDescription string
}

// Result is the outcome of one rewrite run. Sections and Checks are aligned
// by index; Fallbacks names the sections that were bullet-ified locally.
type Result struct {
	Text      string
	InputType types.InputType
	Context   types.IndustryContext
	Analysis  string
	Sections  []types.ResumeSection
	Checks    []StyleChecksResult
	Fallbacks []string
}

// Rewriter runs the context detection, gap analysis and per-section rewrite.
type Rewriter struct {
	client      llm.Client
	table       *industry.Table
	detector    *industry.Detector
	logger      *slog.Logger
	concurrency int
}

// Option customises a Rewriter.
type Option func(*Rewriter)

// WithLogger sets the logger used for fallback reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rewriter) { r.logger = logger }
}

// WithConcurrency bounds how many sections are rewritten at once.
func WithConcurrency(n int) Option {
	return func(r *Rewriter) { r.concurrency = n }
}

// NewRewriter creates a rewriter. A nil client disables every LLM call and
// each section is bullet-ified locally. A nil table uses industry.DefaultTable.
func NewRewriter(client llm.Client, table *industry.Table, opts ...Option) *Rewriter {
	r := &Rewriter{client: client, table: table, concurrency: 1}
	for _, opt := range opts {
		opt(r)
	}
	if r.table == nil {
		r.table = industry.DefaultTable()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.concurrency < 1 {
		r.concurrency = 1
	}
	r.detector = industry.NewDetector(client, r.table, r.logger)
	return r
}

// Rewrite never fails: every LLM problem degrades to its documented fallback.
func (r *Rewriter) Rewrite(ctx context.Context, req Request) *Result {
	inputType := req.InputType
	if inputType == "" {
		inputType = DetectInputType(req.Text)
	}

	ictx := r.detector.Detect(ctx, req.Text, req.TargetRole, req.JobDescription)
	profile := r.table.Lookup(ictx.Industry)
	analysis := r.AnalyzeGap(ctx, req.Text, req.TargetRole, req.JobDescription, profile)

	secs := sections.Split(req.Text)
	fellBack := make([]bool, len(secs))
	checks := make([]StyleChecksResult, len(secs))

	shared := sharedContext{
		profile:    profile,
		targetRole: req.TargetRole,
		analysis:   llm.Truncate(analysis, MaxAnalysisChars),
		guidance:   guidanceFor(inputType),
	}

	// Sections only read shared context, so they can be rewritten in any order.
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i := range secs {
		g.Go(func() error {
			secs[i].EnhancedContent, fellBack[i] = r.rewriteSection(ctx, secs[i], shared)
			checks[i] = ValidateStyle(secs[i].Text(), profile)
			return nil
		})
	}
	_ = g.Wait()

	var fallbacks []string
	for i, fb := range fellBack {
		if fb {
			fallbacks = append(fallbacks, sectionLabel(secs[i]))
		}
	}

	return &Result{
		Text:      Merge(secs),
		InputType: inputType,
		Context:   ictx,
		Analysis:  analysis,
		Sections:  secs,
		Checks:    checks,
		Fallbacks: fallbacks,
	}
}

// AnalyzeGap asks for a persona-styled review of the document against the
// target role. Any failure yields "".
func (r *Rewriter) AnalyzeGap(ctx context.Context, text, targetRole, jobDescription string, profile industry.Profile) string {
	if r.client == nil {
		return ""
	}

	system, err := prompts.Render("rewriting.json", "gap-system", map[string]string{
		"Persona": profile.Persona,
	})
	if err != nil {
		r.logger.Warn("gap analysis prompt unavailable", "error", err)
		return ""
	}
	user, err := prompts.Render("rewriting.json", "gap-user", map[string]string{
		"TargetRole":     orUnspecified(targetRole),
		"JobDescription": orUnspecified(llm.Truncate(jobDescription, MaxGapTargetChars)),
		"Content":        llm.Truncate(text, MaxGapContentChars),
	})
	if err != nil {
		r.logger.Warn("gap analysis prompt unavailable", "error", err)
		return ""
	}

	reply, err := r.client.Chat(ctx, system, user)
	if err != nil {
		r.logger.Warn("gap analysis failed, continuing without it", "error", err)
		return ""
	}
	return strings.TrimSpace(trimPreamble(reply))
}

// rewriteSection returns the enhanced content and whether it came from the
// local fallback.
func (r *Rewriter) rewriteSection(ctx context.Context, sec types.ResumeSection, shared sharedContext) (string, bool) {
	if !sections.HasBody(sec) {
		return sec.Content, false
	}
	if r.client == nil {
		return Bulletify(sec.Content), true
	}

	prompt, err := buildSectionPrompt(sec, shared)
	if err != nil {
		r.logger.Warn("section prompt unavailable, bullet-ifying", "section", sectionLabel(sec), "error", err)
		return Bulletify(sec.Content), true
	}

	reply, err := r.client.Chat(ctx, prompt.System, prompt.User)
	if err != nil {
		r.logger.Warn("section rewrite failed, bullet-ifying", "section", sectionLabel(sec), "error", err)
		return Bulletify(sec.Content), true
	}

	out := strings.TrimSpace(trimPreamble(stripFence(reply)))
	if out == "" {
		r.logger.Warn("section rewrite empty, bullet-ifying", "section", sectionLabel(sec))
		return Bulletify(sec.Content), true
	}
	return ensureHeading(sec, out), false
}

// DetectInputType guesses how mature a document is from its recognised
// section headings.
func DetectInputType(text string) types.InputType {
	recognised := 0
	for _, line := range strings.Split(text, "\n") {
		if !sections.IsTopLevel(line) {
			continue
		}
		_, heading := sections.HeadingLevel(line)
		if _, ok := sections.Recognize(heading); ok {
			recognised++
		}
	}
	switch {
	case recognised >= 3:
		return types.InputMatureResume
	case recognised >= 1:
		return types.InputImmatureResume
	default:
		return types.InputRawText
	}
}

func guidanceFor(t types.InputType) string {
	key := "guidance-" + string(t)
	g, err := prompts.Get("rewriting.json", key)
	if err != nil {
		g, _ = prompts.Get("rewriting.json", "guidance-"+string(types.InputRawText))
	}
	return g
}

// ensureHeading puts the section's heading line back when the model dropped it.
func ensureHeading(sec types.ResumeSection, out string) string {
	if sec.Heading == "" {
		return out
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, heading := sections.HeadingLevel(line); heading == sec.Heading {
			return out
		}
		break
	}
	headingLine := strings.TrimSpace(strings.SplitN(sec.Content, "\n", 2)[0])
	return headingLine + "\n" + out
}

func sectionLabel(sec types.ResumeSection) string {
	if sec.Heading != "" {
		return sec.Heading
	}
	return string(sec.Kind)
}

// stripFence removes a ``` fence the model wrapped around markdown.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.HasPrefix(strings.TrimSpace(lines[n-1]), "```") {
		lines = lines[:n-1]
	}
	return strings.Join(lines, "\n")
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "未指定"
	}
	return s
}
