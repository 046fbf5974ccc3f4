// Package pipeline provides the high-level orchestration for the resume generation process.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/db"
	"github.com/jonathan/resume-agent/internal/document"
	"github.com/jonathan/resume-agent/internal/industry"
	"github.com/jonathan/resume-agent/internal/ingestion"
	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/observability"
	"github.com/jonathan/resume-agent/internal/output"
	"github.com/jonathan/resume-agent/internal/parsing"
	"github.com/jonathan/resume-agent/internal/planner"
	"github.com/jonathan/resume-agent/internal/rewriting"
	"github.com/jonathan/resume-agent/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	// Input: Text wins over InputPath.
	InputPath      string
	Text           string
	InputType      types.InputType
	TargetRole     string
	JobDescription string
	CandidateName  string

	// TemplateID overrides the planner's choice when set.
	TemplateID types.TemplateID
	Style      *types.SettingsOverrides

	Format      output.Format
	PDFEngine   output.Engine
	OutputDir   string
	ChromePath  string
	Concurrency int

	// Client is the chat client; nil disables every LLM call.
	Client llm.Client

	// HTMLPrinter and TeXCompiler replace the default PDF renderers.
	HTMLPrinter output.HTMLPrinter
	TeXCompiler output.TeXCompiler

	DatabaseURL string
	Verbose     bool
	Out         io.Writer
	Logger      *slog.Logger
	OnProgress  ProgressCallback
}

// Result is everything one run produced.
type Result struct {
	RunID    uuid.UUID
	Source   *ingestion.Document
	Plan     planner.State
	Status   planner.Status
	Markdown string
	Rewrite  *rewriting.Result
	Document *types.ResumeDocument
	Output   *output.Result
}

// run carries the per-invocation collaborators. Nothing here outlives one
// RunPipeline call.
type run struct {
	opts     RunOptions
	logger   *slog.Logger
	printer  *observability.Printer
	database *db.DB
	runID    uuid.UUID
}

// emitProgress calls the progress callback if configured
func (r *run) emitProgress(step, category, message string, content any) {
	if r.opts.OnProgress == nil {
		return
	}
	ev := ProgressEvent{Step: step, Category: category, Message: message, Content: content}
	if r.runID != uuid.Nil {
		ev.RunID = r.runID.String()
	}
	r.opts.OnProgress(ev)
}

// RunPipeline ingests the input, asks the planner which stages remain and
// executes them in order: rewrite, then parse and render. Only caller
// errors (empty input, unsupported format), missing tools for an explicitly
// requested PDF engine and I/O failures are returned; LLM problems degrade
// to their fallbacks.
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	r := newRun(opts)
	if r.opts.DatabaseURL != "" {
		r.connect(ctx)
		if r.database != nil {
			defer r.database.Close()
		}
	}

	res, err := r.execute(ctx)
	r.finish(ctx, res, err)
	return res, err
}

func newRun(opts RunOptions) *run {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Format == "" {
		opts.Format = output.FormatPDF
	}
	if opts.PDFEngine == "" {
		opts.PDFEngine = output.EngineAuto
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}
	if opts.HTMLPrinter == nil {
		opts.HTMLPrinter = output.NewChromePrinter(opts.ChromePath, 0)
	}
	if opts.TeXCompiler == nil {
		opts.TeXCompiler = output.NewLaTeXCompiler()
	}
	return &run{
		opts:    opts,
		logger:  opts.Logger.With("component", "pipeline"),
		printer: observability.NewPrinter(opts.Out),
	}
}

// connect opens the optional run store. Failure only warns.
func (r *run) connect(ctx context.Context) {
	database, err := db.Connect(ctx, r.opts.DatabaseURL)
	if err != nil {
		r.logger.Warn("failed to connect to database, continuing without persistence", "error", err)
		return
	}
	if err := database.EnsureSchema(ctx); err != nil {
		r.logger.Warn("failed to prepare database schema, continuing without persistence", "error", err)
		database.Close()
		return
	}
	r.database = database
	r.logger.Debug("connected to database")
}

func (r *run) execute(ctx context.Context) (*Result, error) {
	res := &Result{}
	plan := planner.New(r.opts.Client, r.opts.Logger)
	defer func() {
		res.Plan = plan.State()
		res.Status = plan.Status()
	}()

	// Ingestion always runs first: the planner only plans once text exists.
	source, err := ingestion.Ingest(ctx, ingestion.Payload{Text: r.opts.Text, Path: r.opts.InputPath})
	if err != nil {
		return res, err
	}
	res.Source = source
	res.Markdown = source.Text
	plan.MarkComplete(planner.StageExtractInput)

	r.startRun(ctx, source)
	r.saveText(ctx, db.StepSourceText, db.CategoryIngestion, source.Text)
	r.saveJSON(ctx, db.StepSourceMetadata, db.CategoryIngestion, source.Metadata)
	r.emitProgress(string(planner.StageExtractInput), db.CategoryIngestion,
		fmt.Sprintf("Ingested %d characters of %s input", source.Metadata.Chars, source.Kind), source.Metadata)

	stages := plan.Decide(ctx, source.Text, r.opts.TargetRole, r.opts.JobDescription)
	state := plan.State()
	templateID := state.TemplateID
	if r.opts.TemplateID != "" {
		templateID = r.opts.TemplateID
	}
	if r.opts.Verbose {
		names := make([]string, len(stages))
		for i, s := range stages {
			names[i] = string(s)
		}
		r.printer.PrintPlan(names, templateID, state.TemplateReason, state.FromFallback)
	}
	r.saveJSON(ctx, db.StepPlan, db.CategoryPlanning, state)
	r.updateTemplate(ctx, templateID)
	r.emitProgress("plan", db.CategoryPlanning, fmt.Sprintf("Planned %d stage(s), template %s", len(stages), templateID), state)

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		r.stepStatus(ctx, stage, db.StepStatusInProgress, nil)

		var stageErr error
		switch stage {
		case planner.StageExtractInput:
			// Already done above; a model that asks for it again is ignored.
		case planner.StageRewriteContent:
			r.rewrite(ctx, res)
		case planner.StageGenerateOutput:
			stageErr = r.generate(ctx, res, templateID)
		}
		if stageErr != nil {
			r.stepStatus(ctx, stage, db.StepStatusFailed, stageErr)
			return res, stageErr
		}
		plan.MarkComplete(stage)
		r.stepStatus(ctx, stage, db.StepStatusCompleted, nil)
	}
	return res, nil
}

func (r *run) rewrite(ctx context.Context, res *Result) {
	rw := rewriting.NewRewriter(r.opts.Client, industry.DefaultTable(),
		rewriting.WithLogger(r.opts.Logger),
		rewriting.WithConcurrency(r.opts.Concurrency),
	)
	out := rw.Rewrite(ctx, rewriting.Request{
		Text:           res.Markdown,
		InputType:      r.opts.InputType,
		TargetRole:     r.opts.TargetRole,
		JobDescription: r.opts.JobDescription,
	})
	res.Rewrite = out
	res.Markdown = out.Text

	if r.opts.Verbose {
		r.printer.PrintIndustryContext(out.Context, out.InputType)
		r.printer.PrintSections(out.Sections, out.Fallbacks)
	}
	r.saveJSON(ctx, db.StepIndustryContext, db.CategoryRewriting, out.Context)
	if out.Analysis != "" {
		r.saveText(ctx, db.StepGapAnalysis, db.CategoryRewriting, out.Analysis)
	}
	r.saveText(ctx, db.StepPolishedMarkdown, db.CategoryRewriting, out.Text)
	r.emitProgress(string(planner.StageRewriteContent), db.CategoryRewriting,
		fmt.Sprintf("Rewrote %d section(s), %d by local fallback", len(out.Sections), len(out.Fallbacks)), out.Context)
}

func (r *run) generate(ctx context.Context, res *Result, templateID types.TemplateID) error {
	b := document.New(templateID, r.opts.Logger)
	b.SetGlobalSettings(r.opts.Style)
	doc := parsing.Populate(b, res.Markdown, r.opts.CandidateName).Build()
	res.Document = doc

	if r.opts.Verbose {
		r.printer.PrintDocumentSummary(doc)
	}
	r.saveJSON(ctx, db.StepDocument, db.CategoryParsing, doc)

	gen := output.NewGenerator(r.opts.HTMLPrinter, r.opts.TeXCompiler, r.opts.Logger)
	out, err := gen.Run(ctx, output.Request{
		Markdown:      res.Markdown,
		Document:      doc,
		TemplateID:    doc.TemplateID,
		OutputDir:     r.opts.OutputDir,
		Format:        r.opts.Format,
		Engine:        r.opts.PDFEngine,
		CandidateName: r.opts.CandidateName,
	})
	if err != nil {
		return err
	}
	res.Output = out

	if r.opts.Verbose {
		r.printer.PrintArtifacts(out.Artifacts, out.Degraded, out.Warnings)
	}
	for _, path := range out.Artifacts {
		if strings.HasSuffix(path, output.TeXFile) {
			if tex, err := os.ReadFile(path); err == nil {
				r.saveText(ctx, db.StepResumeTex, db.CategoryRendering, string(tex))
			}
		}
	}
	r.emitProgress(string(planner.StageGenerateOutput), db.CategoryRendering,
		fmt.Sprintf("Generated %s", out.Path), out)
	return nil
}

func (r *run) startRun(ctx context.Context, source *ingestion.Document) {
	if r.database == nil {
		return
	}
	id, err := r.database.CreateRun(ctx, db.RunInput{
		TargetRole: r.opts.TargetRole,
		SourceKind: string(source.Kind),
		Format:     string(r.opts.Format),
	})
	if err != nil {
		r.logger.Warn("failed to create database run", "error", err)
		return
	}
	r.runID = id
	r.logger.Debug("created database run", "run_id", id)
}

func (r *run) finish(ctx context.Context, res *Result, err error) {
	if res != nil {
		res.RunID = r.runID
	}
	if r.database == nil || r.runID == uuid.Nil {
		return
	}
	status, path := db.RunStatusCompleted, ""
	if err != nil {
		status = db.RunStatusFailed
	} else if res.Output != nil {
		path = res.Output.Path
	}
	if err := r.database.FinishRun(ctx, r.runID, status, path); err != nil {
		r.logger.Warn("failed to complete database run", "error", err)
	}
}

func (r *run) updateTemplate(ctx context.Context, templateID types.TemplateID) {
	if r.database == nil || r.runID == uuid.Nil {
		return
	}
	if err := r.database.SetRunTemplate(ctx, r.runID, string(templateID)); err != nil {
		r.logger.Warn("failed to record template", "error", err)
	}
}

// stepStatus records a stage transition in run_steps.
func (r *run) stepStatus(ctx context.Context, stage planner.Stage, status string, stageErr error) {
	if r.database == nil || r.runID == uuid.Nil {
		return
	}
	var err error
	if status == db.StepStatusInProgress {
		err = r.database.StartStep(ctx, r.runID, string(stage), stageCategory(stage))
	} else {
		msg := ""
		if stageErr != nil {
			msg = stageErr.Error()
		}
		err = r.database.FinishStep(ctx, r.runID, string(stage), status, msg)
	}
	if err != nil {
		r.logger.Warn("failed to record stage", "stage", stage, "status", status, "error", err)
	}
}

func stageCategory(stage planner.Stage) string {
	switch stage {
	case planner.StageExtractInput:
		return db.StepCategoryIngestion
	case planner.StageRewriteContent:
		return db.StepCategoryRewriting
	default:
		return db.StepCategoryOutput
	}
}

func (r *run) saveText(ctx context.Context, step, category, text string) {
	if r.database == nil || r.runID == uuid.Nil {
		return
	}
	if err := r.database.SaveTextArtifact(ctx, r.runID, step, category, text); err != nil {
		r.logger.Warn("failed to save artifact", "step", step, "error", err)
	}
}

func (r *run) saveJSON(ctx context.Context, step, category string, content any) {
	if r.database == nil || r.runID == uuid.Nil {
		return
	}
	if err := r.database.SaveArtifact(ctx, r.runID, step, category, content); err != nil {
		r.logger.Warn("failed to save artifact", "step", step, "error", err)
	}
}
