// Package main implements the resume_agent CLI: ingest a résumé, rewrite it
// for a target role and render it with one of the built-in templates.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "resume_agent",
		Short: "Resume polishing agent",
		Long: `resume_agent turns raw notes or an existing résumé (text, Markdown, PDF or Word) into a polished,
industry-aware résumé rendered as PDF, Word or structured JSON.

LLM access is read from DEEPSEEK_API_KEY (OpenAI-compatible) or GEMINI_API_KEY. Without a key every
step uses its local fallback.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a JSON or TOML config file (flags override its values)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	cmd.AddCommand(
		newRunCmd(opts),
		newPlanCmd(opts),
		newRewriteCmd(opts),
		newParseCmd(opts),
		newRenderCmd(opts),
		newTemplatesCmd(),
		newSchemaCmd(),
		newRunsCmd(opts),
	)
	return cmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
