package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/planner"
)

type planFlags struct {
	input      string
	text       string
	targetRole string
	jd         string
	out        string
}

func newPlanCmd(root *rootOptions) *cobra.Command {
	f := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the stages and template the planner would choose",
		Long:  "Ingests the input and asks the planner for the remaining stages and a template. Prints the planner state as JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, root, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Path to the résumé (.txt, .md, .pdf, .docx)")
	cmd.Flags().StringVar(&f.text, "text", "", "Raw résumé text (wins over --input)")
	cmd.Flags().StringVarP(&f.targetRole, "target-role", "r", "", "Target role")
	cmd.Flags().StringVar(&f.jd, "jd", "", "Job description text")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write the plan JSON to this file instead of stdout")
	return cmd
}

func runPlan(cmd *cobra.Command, root *rootOptions, f *planFlags) error {
	ctx := cmd.Context()
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

	p := planner.New(client, logger)
	p.MarkComplete(planner.StageExtractInput)
	p.Decide(ctx, doc.Text, f.targetRole, f.jd)

	return writeJSON(cmd, f.out, p.State())
}
