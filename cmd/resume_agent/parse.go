package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/document"
	"github.com/jonathan/resume-agent/internal/observability"
	"github.com/jonathan/resume-agent/internal/parsing"
	"github.com/jonathan/resume-agent/internal/rendering"
	"github.com/jonathan/resume-agent/internal/schemas"
	"github.com/jonathan/resume-agent/internal/types"
)

type parseFlags struct {
	input      string
	name       string
	template   string
	themeColor string
	out        string
}

func newParseCmd(root *rootOptions) *cobra.Command {
	f := &parseFlags{}
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse polished Markdown into the structured résumé document",
		Long:  "Reads Markdown (for example the output of rewrite) and prints the structured résumé document as JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParse(cmd, root, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Path to the Markdown file (required)")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Candidate name used when the document has none")
	cmd.Flags().StringVarP(&f.template, "template", "t", string(types.DefaultTemplate), "Template identifier")
	cmd.Flags().StringVar(&f.themeColor, "theme-color", "", "Override the theme color, e.g. #1a73e8")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write the document JSON to this file instead of stdout")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	return cmd
}

func runParse(cmd *cobra.Command, root *rootOptions, f *parseFlags) error {
	data, err := os.ReadFile(f.input)
	if err != nil {
		return fmt.Errorf("failed to read markdown file: %w", err)
	}
	logger := newLogger(cmd, root.verbose)
	templateID := rendering.ResolveTemplate(types.TemplateID(f.template), logger)

	b := document.New(templateID, logger)
	if f.themeColor != "" {
		b.SetGlobalSettings(&types.SettingsOverrides{ThemeColor: &f.themeColor})
	}
	doc := parsing.Populate(b, string(data), f.name).Build()

	if root.verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintDocumentSummary(doc)
	}

	out, err := rendering.RenderJSON(doc, templateID)
	if err != nil {
		return err
	}
	if err := schemas.ValidateDocument(out); err != nil {
		return fmt.Errorf("document failed schema validation: %w", err)
	}
	return writeOutput(cmd, f.out, out)
}
