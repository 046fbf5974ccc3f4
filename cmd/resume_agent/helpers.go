package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/config"
	"github.com/jonathan/resume-agent/internal/fetch"
	"github.com/jonathan/resume-agent/internal/ingestion"
	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/observability"
)

// loadConfig reads --config when given. A missing flag yields an empty config.
func loadConfig(root *rootOptions) (config.Config, error) {
	if root.configPath == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(root.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// newLogger writes structured logs to the command's stderr.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	return observability.NewLogger(cmd.ErrOrStderr(), verbose)
}

// newClient builds the chat client from cfg. A nil client disables the LLM;
// construction failures are logged and also disable it.
func newClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) llm.Client {
	client, err := llm.NewClient(ctx, cfg.LLMClientConfig())
	if err != nil {
		logger.Warn("LLM client unavailable, using local fallbacks", "error", err)
		return nil
	}
	if client == nil {
		logger.Debug("no LLM API key configured, using local fallbacks")
	}
	return client
}

func closeClient(client llm.Client, logger *slog.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Debug("failed to close LLM client", "error", err)
	}
}

// readJobDescription resolves the inline, file or URL job description.
// Posting pages that need scripts are rendered with headless Chrome.
func readJobDescription(ctx context.Context, cfg *config.Config, logger *slog.Logger) (string, error) {
	if cfg.JobDescriptionURL == "" {
		return cfg.ReadJobDescription()
	}
	text, err := fetch.JobDescription(ctx, cfg.JobDescriptionURL, &fetch.Options{
		Renderer: fetch.NewBrowserRenderer(cfg.ChromePath),
		Logger:   logger,
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	logger.Debug("fetched job description", "url", cfg.JobDescriptionURL, "chars", len([]rune(text)))
	return text, nil
}

// ingest reads --text or --input through the ingestion package.
func ingest(ctx context.Context, path, text string) (*ingestion.Document, error) {
	if path == "" && text == "" {
		return nil, fmt.Errorf("either --input or --text must be provided")
	}
	return ingestion.Ingest(ctx, ingestion.Payload{Text: text, Path: path})
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		if err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
			_, err = io.WriteString(cmd.OutOrStdout(), "\n")
		}
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(cmd, path, data)
}
