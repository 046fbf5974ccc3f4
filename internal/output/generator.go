// Package output writes the persisted artifacts of a run and produces the
// requested résumé file: JSON, Word or PDF. PDF generation walks a chain of
// renderers and degrades to Word when none of them is available.
package output

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-agent/internal/rendering"
	"github.com/jonathan/resume-agent/internal/schemas"
	"github.com/jonathan/resume-agent/internal/types"
)

// Artifact file names inside the output directory.
const (
	MarkdownFile = "resume.md"
	JSONFile     = "resume.json"
	WordFile     = "resume.docx"
	HTMLFile     = "resume.html"
	TeXFile      = "resume.tex"
	PDFFile      = "resume.pdf"
)

// Request describes one artifact generation.
type Request struct {
	Markdown      string
	Document      *types.ResumeDocument
	TemplateID    types.TemplateID
	OutputDir     string
	Format        Format
	Engine        Engine
	CandidateName string
}

// Result reports what was written.
type Result struct {
	// Path is the artifact the caller asked for, or the best substitute.
	Path      string
	Format    Format
	Engine    Engine
	Degraded  bool
	Pages     int
	Artifacts []string
	Warnings  []string
}

// Generator renders and writes artifacts.
type Generator struct {
	Printer  HTMLPrinter
	Compiler TeXCompiler
	Logger   *slog.Logger
}

// NewGenerator creates a generator. Nil renderers disable their PDF tier.
func NewGenerator(printer HTMLPrinter, compiler TeXCompiler, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{Printer: printer, Compiler: compiler, Logger: logger}
}

// Run writes resume.md and resume.json, then the requested format.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Document == nil {
		return nil, fmt.Errorf("document is required")
	}
	format := req.Format
	if format == "" {
		format = FormatPDF
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	engine := req.Engine
	if engine == "" {
		engine = EngineAuto
	}
	if _, err := ParseEngine(string(engine)); err != nil {
		return nil, err
	}
	dir := req.OutputDir
	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	templateID := rendering.ResolveTemplate(req.TemplateID, g.logger())
	res := &Result{Format: format}

	if err := g.write(res, dir, MarkdownFile, []byte(req.Markdown)); err != nil {
		return nil, err
	}

	jsonData, err := rendering.RenderJSON(req.Document, templateID)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateDocument(jsonData); err != nil {
		return nil, fmt.Errorf("resume.json does not match the document schema: %w", err)
	}
	if err := g.write(res, dir, JSONFile, jsonData); err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		res.Path = filepath.Join(dir, JSONFile)
		return res, nil
	case FormatDocx:
		path, err := g.writeWord(res, dir, req.Document, templateID)
		if err != nil {
			return nil, err
		}
		res.Path = path
		return res, nil
	}

	if err := g.pdf(ctx, res, dir, req, templateID, engine); err != nil {
		return nil, err
	}
	return res, nil
}

// pdf runs the PDF chain. Explicit engines surface their failure; auto
// tries chrome, then LaTeX, then falls back to Word.
func (g *Generator) pdf(ctx context.Context, res *Result, dir string, req Request, templateID types.TemplateID, engine Engine) error {
	htmlData, err := rendering.RenderHTML(req.Document, templateID)
	if err != nil {
		return err
	}
	htmlPath := filepath.Join(dir, HTMLFile)
	if err := g.write(res, dir, HTMLFile, htmlData); err != nil {
		return err
	}
	pdfPath := filepath.Join(dir, PDFFile)

	switch engine {
	case EngineChrome:
		if err := g.chrome(ctx, res, htmlPath, pdfPath); err != nil {
			return err
		}
		return nil
	case EngineLaTeX:
		if err := g.latex(ctx, res, dir, req); err != nil {
			return err
		}
		return nil
	}

	chromeErr := g.chrome(ctx, res, htmlPath, pdfPath)
	if chromeErr == nil {
		return nil
	}
	g.warn(res, "chrome pdf renderer unavailable, trying LaTeX", chromeErr)

	latexErr := g.latex(ctx, res, dir, req)
	if latexErr == nil {
		return nil
	}
	g.warn(res, "LaTeX pdf renderer unavailable, falling back to Word", latexErr)

	res.Degraded = true
	path, err := g.writeWord(res, dir, req.Document, templateID)
	if err != nil {
		g.warn(res, "Word fallback failed, returning HTML", err)
		res.Path = htmlPath
		res.Format = ""
		return nil
	}
	res.Path = path
	res.Format = FormatDocx
	return nil
}

func (g *Generator) chrome(ctx context.Context, res *Result, htmlPath, pdfPath string) error {
	if g.Printer == nil {
		return &MissingToolError{Tool: "chrome", Message: "no HTML printer configured"}
	}
	data, err := g.Printer.PrintPDF(ctx, htmlPath)
	if err != nil {
		return err
	}
	if err := g.write(res, filepath.Dir(pdfPath), PDFFile, data); err != nil {
		return err
	}
	g.finishPDF(res, pdfPath, EngineChrome)
	return nil
}

func (g *Generator) latex(ctx context.Context, res *Result, dir string, req Request) error {
	if g.Compiler == nil {
		return &MissingToolError{Tool: "latex", Message: "no LaTeX compiler configured"}
	}
	source, err := rendering.MarkdownToLaTeX(req.Markdown, candidateName(req))
	if err != nil {
		return err
	}
	texPath := filepath.Join(dir, TeXFile)
	if err := g.write(res, dir, TeXFile, []byte(source)); err != nil {
		return err
	}
	pdfPath, err := g.Compiler.Compile(ctx, texPath)
	if err != nil {
		return err
	}
	CleanupAuxFiles(texPath)
	res.Artifacts = append(res.Artifacts, pdfPath)
	g.finishPDF(res, pdfPath, EngineLaTeX)
	return nil
}

func (g *Generator) finishPDF(res *Result, pdfPath string, engine Engine) {
	res.Path = pdfPath
	res.Format = FormatPDF
	res.Engine = engine
	pages, err := CountPDFPages(pdfPath)
	if err != nil {
		g.logger().Debug("could not count pdf pages", "component", "output", "error", err)
		return
	}
	res.Pages = pages
}

func (g *Generator) writeWord(res *Result, dir string, doc *types.ResumeDocument, templateID types.TemplateID) (string, error) {
	data, err := rendering.RenderWord(doc, templateID)
	if err != nil {
		return "", err
	}
	if err := g.write(res, dir, WordFile, data); err != nil {
		return "", err
	}
	return filepath.Join(dir, WordFile), nil
}

func (g *Generator) write(res *Result, dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	res.Artifacts = append(res.Artifacts, path)
	return nil
}

func (g *Generator) warn(res *Result, msg string, err error) {
	res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", msg, err))
	g.logger().Warn(msg, "component", "output", "error", err)
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func candidateName(req Request) string {
	if req.Document != nil && req.Document.Basic.Name != "" {
		return req.Document.Basic.Name
	}
	return req.CandidateName
}

// IsMissingTool reports whether err means an external program is absent.
func IsMissingTool(err error) bool {
	var missing *MissingToolError
	return errors.As(err, &missing)
}
