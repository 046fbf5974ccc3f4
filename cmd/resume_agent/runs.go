package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/db"
)

// runsView is the JSON shape of "runs show".
type runsView struct {
	Run       *db.Run              `json:"run"`
	Steps     []db.RunStep         `json:"steps"`
	Artifacts []db.ArtifactSummary `json:"artifacts"`
}

func newRunsCmd(root *rootOptions) *cobra.Command {
	var dbURL string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect persisted pipeline runs",
		Long:  "Lists and inspects runs recorded by \"run --db-url\". Requires --db-url or DATABASE_URL.",
	}
	cmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	connect := func(ctx context.Context) (*db.DB, error) {
		url := dbURL
		if url == "" {
			url = os.Getenv("DATABASE_URL")
		}
		if url == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
		}
		return db.Connect(ctx, url)
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			runs, err := database.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tSTATUS\tFORMAT\tTEMPLATE\tROLE\tCREATED\tOUTPUT")
			for _, r := range runs {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Status, r.Format, r.TemplateID, r.TargetRole,
					r.CreatedAt.Format("2006-01-02 15:04"), r.OutputPath)
			}
			return w.Flush()
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs")

	show := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run with its stages and artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid run id: %w", err)
			}
			database, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			ctx := cmd.Context()
			run, err := database.GetRun(ctx, runID)
			if err != nil {
				return err
			}
			steps, err := database.ListRunSteps(ctx, runID)
			if err != nil {
				return err
			}
			artifacts, err := database.ListArtifacts(ctx, runID)
			if err != nil {
				return err
			}
			return writeJSON(cmd, "", runsView{Run: run, Steps: steps, Artifacts: artifacts})
		},
	}

	artifact := &cobra.Command{
		Use:   "artifact <run-id> <step>",
		Short: "Print one stored artifact, e.g. polished_markdown or resume_document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid run id: %w", err)
			}
			database, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			a, err := database.GetArtifact(cmd.Context(), runID, args[1])
			if err != nil {
				return err
			}
			return writeOutput(cmd, "", a.Body())
		},
	}

	del := &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a run and its artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid run id: %w", err)
			}
			database, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()
			if err := database.DeleteRun(cmd.Context(), runID); err != nil {
				return err
			}
			if root.verbose {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "deleted run %s\n", runID)
			}
			return nil
		},
	}

	cmd.AddCommand(list, show, artifact, del)
	return cmd
}
