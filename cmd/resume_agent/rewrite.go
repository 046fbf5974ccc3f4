package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/industry"
	"github.com/jonathan/resume-agent/internal/observability"
	"github.com/jonathan/resume-agent/internal/rewriting"
	"github.com/jonathan/resume-agent/internal/types"
)

type rewriteFlags struct {
	input       string
	text        string
	inputType   string
	targetRole  string
	jd          string
	concurrency int
	out         string
	asJSON      bool
}

// rewriteReport is the --json view of a rewrite.
type rewriteReport struct {
	Markdown  string                `json:"markdown"`
	InputType types.InputType       `json:"inputType"`
	Context   types.IndustryContext `json:"industryContext"`
	Analysis  string                `json:"analysis,omitempty"`
	Fallbacks []string              `json:"fallbacks,omitempty"`
}

func newRewriteCmd(root *rootOptions) *cobra.Command {
	f := &rewriteFlags{}
	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite a résumé for its detected industry and target role",
		Long:  "Detects the industry, runs the gap analysis and rewrites every section. Prints the polished Markdown.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRewrite(cmd, root, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Path to the résumé (.txt, .md, .pdf, .docx)")
	cmd.Flags().StringVar(&f.text, "text", "", "Raw résumé text (wins over --input)")
	cmd.Flags().StringVar(&f.inputType, "input-type", "", "Input maturity: raw_text, mature_resume or immature_resume")
	cmd.Flags().StringVarP(&f.targetRole, "target-role", "r", "", "Target role")
	cmd.Flags().StringVar(&f.jd, "jd", "", "Job description text")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 1, "Sections rewritten in parallel")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the industry context, analysis and fallbacks as JSON")
	return cmd
}

func runRewrite(cmd *cobra.Command, root *rootOptions, f *rewriteFlags) error {
	ctx := cmd.Context()
	switch types.InputType(f.inputType) {
	case "", types.InputRawText, types.InputMatureResume, types.InputImmatureResume:
	default:
		return fmt.Errorf("invalid --input-type %q", f.inputType)
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, root.verbose)

	doc, err := ingest(ctx, f.input, f.text)
	if err != nil {
		return err
	}

	client := newClient(ctx, &cfg, logger)
	defer closeClient(client, logger)

	rw := rewriting.NewRewriter(client, industry.DefaultTable(),
		rewriting.WithLogger(logger),
		rewriting.WithConcurrency(f.concurrency),
	)
	res := rw.Rewrite(ctx, rewriting.Request{
		Text:           doc.Text,
		InputType:      types.InputType(f.inputType),
		TargetRole:     f.targetRole,
		JobDescription: f.jd,
	})

	if root.verbose {
		p := observability.NewPrinter(cmd.ErrOrStderr())
		p.PrintIndustryContext(res.Context, res.InputType)
		p.PrintSections(res.Sections, res.Fallbacks)
	}

	if f.asJSON {
		return writeJSON(cmd, f.out, rewriteReport{
			Markdown:  res.Text,
			InputType: res.InputType,
			Context:   res.Context,
			Analysis:  res.Analysis,
			Fallbacks: res.Fallbacks,
		})
	}
	return writeOutput(cmd, f.out, []byte(res.Text))
}
