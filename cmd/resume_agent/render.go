package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/observability"
	"github.com/jonathan/resume-agent/internal/output"
	"github.com/jonathan/resume-agent/internal/schemas"
	"github.com/jonathan/resume-agent/internal/types"
)

type renderFlags struct {
	document   string
	markdown   string
	name       string
	template   string
	format     string
	pdfEngine  string
	chromePath string
	outputDir  string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a structured résumé document as PDF, Word or JSON",
		Long: `Reads a résumé document JSON (for example the output of parse) and writes the requested format
to the output directory. The LaTeX engine typesets --markdown, so pass it when the Chrome engine is
unavailable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, root, f)
		},
	}
	cmd.Flags().StringVarP(&f.document, "document", "d", "", "Path to the résumé document JSON (required)")
	cmd.Flags().StringVarP(&f.markdown, "markdown", "m", "", "Path to the polished Markdown (used by the LaTeX engine)")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Candidate name for the LaTeX title when the document has none")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template override (defaults to the document's templateId)")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(output.FormatPDF), "Output format: pdf, docx or json")
	cmd.Flags().StringVar(&f.pdfEngine, "pdf-engine", string(output.EngineAuto), "PDF engine: auto, chrome or latex")
	cmd.Flags().StringVar(&f.chromePath, "chrome-path", "", "Chrome/Chromium executable")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "output", "Directory for generated files")

	if err := cmd.MarkFlagRequired("document"); err != nil {
		panic(fmt.Sprintf("failed to mark document flag as required: %v", err))
	}
	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, f *renderFlags) error {
	format, err := output.ParseFormat(f.format)
	if err != nil {
		return err
	}
	engine, err := output.ParseEngine(f.pdfEngine)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(f.document)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}
	if err := schemas.ValidateDocument(data); err != nil {
		return fmt.Errorf("document failed schema validation: %w", err)
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal document: %w", err)
	}

	var markdown string
	if f.markdown != "" {
		md, err := os.ReadFile(f.markdown)
		if err != nil {
			return fmt.Errorf("failed to read markdown file: %w", err)
		}
		markdown = string(md)
	}

	templateID := doc.TemplateID
	if f.template != "" {
		templateID = types.TemplateID(f.template)
	}

	logger := newLogger(cmd, root.verbose)
	gen := output.NewGenerator(output.NewChromePrinter(f.chromePath, 0), output.NewLaTeXCompiler(), logger)
	res, err := gen.Run(cmd.Context(), output.Request{
		Markdown:      markdown,
		Document:      &doc,
		TemplateID:    templateID,
		OutputDir:     f.outputDir,
		Format:        format,
		Engine:        engine,
		CandidateName: f.name,
	})
	if err != nil {
		return err
	}

	if root.verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintArtifacts(res.Artifacts, res.Degraded, res.Warnings)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}
