package industry

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/prompts"
	"github.com/jonathan/resume-agent/internal/types"
)

// Prompt truncation limits, in characters.
const (
	MaxContentChars = 1500
	MaxTargetChars  = 500
)

type detectResponse struct {
	Industry    string `json:"industry"`
	JobFunction string `json:"jobFunction"`
	Seniority   string `json:"seniority"`
}

// Detector classifies documents against a Table.
type Detector struct {
	client llm.Client
	table  *Table
	logger *slog.Logger
}

// NewDetector creates a detector. A nil client always yields the default context.
func NewDetector(client llm.Client, table *Table, logger *slog.Logger) *Detector {
	if table == nil {
		table = DefaultTable()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{client: client, table: table, logger: logger}
}

// Detect asks the model for {industry, jobFunction, seniority}. It never
// fails: any call or parse problem yields types.DefaultIndustryContext.
func (d *Detector) Detect(ctx context.Context, text, targetRole, jobDescription string) types.IndustryContext {
	if d.client == nil {
		return types.DefaultIndustryContext()
	}

	systemPrompt, userPrompt, err := d.buildPrompts(text, targetRole, jobDescription)
	if err != nil {
		d.logger.Warn("industry prompt unavailable, using default context", "error", err)
		return types.DefaultIndustryContext()
	}

	reply, err := d.client.Chat(ctx, systemPrompt, userPrompt)
	if err != nil {
		d.logger.Warn("industry detection failed, using default context", "error", err)
		return types.DefaultIndustryContext()
	}

	var resp detectResponse
	if err := llm.DecodeJSONObject(reply, &resp); err != nil {
		d.logger.Warn("industry detection reply unparseable, using default context", "error", err)
		return types.DefaultIndustryContext()
	}
	return d.resolve(resp)
}

// Detect classifies text against the default table.
func Detect(ctx context.Context, client llm.Client, text, targetRole, jobDescription string) types.IndustryContext {
	return NewDetector(client, nil, nil).Detect(ctx, text, targetRole, jobDescription)
}

// resolve turns a raw reply into a valid context.
func (d *Detector) resolve(resp detectResponse) types.IndustryContext {
	raw := strings.ToLower(strings.TrimSpace(resp.Industry))
	if raw == "" {
		return types.DefaultIndustryContext()
	}

	out := types.DefaultIndustryContext()
	ind := types.Industry(raw)
	if d.table.Has(ind) {
		out.Industry = ind
	} else {
		d.logger.Warn("unknown industry, using general", "industry", resp.Industry)
	}
	if fn := strings.TrimSpace(resp.JobFunction); fn != "" {
		out.JobFunction = fn
	}
	if s := types.Seniority(strings.ToLower(strings.TrimSpace(resp.Seniority))); s.Valid() {
		out.Seniority = s
	}
	return out
}

func (d *Detector) buildPrompts(text, targetRole, jobDescription string) (string, string, error) {
	names := make([]string, 0, len(d.table.profiles))
	for _, ind := range d.table.Industries() {
		names = append(names, string(ind))
	}

	system, err := prompts.Render("industry.json", "detect-system", map[string]string{
		"Industries": strings.Join(names, ", "),
	})
	if err != nil {
		return "", "", err
	}
	user, err := prompts.Render("industry.json", "detect-user", map[string]string{
		"Content":        llm.Truncate(text, MaxContentChars),
		"TargetRole":     orUnspecified(llm.Truncate(targetRole, MaxTargetChars)),
		"JobDescription": orUnspecified(llm.Truncate(jobDescription, MaxTargetChars)),
	})
	if err != nil {
		return "", "", err
	}
	return llm.BuildSystemPrompt(system, llm.IndustryContextSchema(names)), user, nil
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "未指定"
	}
	return s
}
