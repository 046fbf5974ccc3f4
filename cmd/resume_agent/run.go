package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/config"
	"github.com/jonathan/resume-agent/internal/output"
	"github.com/jonathan/resume-agent/internal/pipeline"
	"github.com/jonathan/resume-agent/internal/types"
)

type runFlags struct {
	input       string
	text        string
	inputType   string
	targetRole  string
	jd          string
	jdFile      string
	jdURL       string
	name        string
	format      string
	outputDir   string
	template    string
	pdfEngine   string
	chromePath  string
	concurrency int
	dbURL       string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Run the full pipeline: ingest, rewrite, parse and render",
		Long: `Runs every stage the planner asks for: input extraction, industry-aware rewriting and output
generation. The input can be a .txt, .md, .pdf or .docx file, or raw text via --text.

Configuration can be loaded from a JSON or TOML file using --config. Command-line flags override
config file values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && !cmd.Flags().Changed("input") {
				if err := cmd.Flags().Set("input", args[0]); err != nil {
					return err
				}
			}
			return runPipelineCmd(cmd, root, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "Path to the résumé (.txt, .md, .pdf, .docx)")
	fl.StringVar(&f.text, "text", "", "Raw résumé text (wins over --input)")
	fl.StringVar(&f.inputType, "input-type", "", "Input maturity: raw_text, mature_resume or immature_resume (detected when empty)")
	fl.StringVarP(&f.targetRole, "target-role", "r", "", "Target role, e.g. \"Backend Engineer\"")
	fl.StringVar(&f.jd, "jd", "", "Job description text (mutually exclusive with --jd-file)")
	fl.StringVar(&f.jdFile, "jd-file", "", "Path to a job description file")
	fl.StringVar(&f.jdURL, "jd-url", "", "URL of a job posting to fetch the description from")
	fl.StringVarP(&f.name, "name", "n", "", "Candidate name used when the document has none")
	fl.StringVarP(&f.format, "format", "f", "", "Output format: pdf, docx or json (default pdf)")
	fl.StringVarP(&f.outputDir, "output-dir", "o", "", "Directory for generated files (default output)")
	fl.StringVarP(&f.template, "template", "t", "", "Template: classic, modern, left-right or timeline (planner decides when empty)")
	fl.StringVar(&f.pdfEngine, "pdf-engine", "", "PDF engine: auto, chrome or latex (default auto)")
	fl.StringVar(&f.chromePath, "chrome-path", "", "Chrome/Chromium executable (defaults to CHROME_PATH or PATH lookup)")
	fl.IntVar(&f.concurrency, "concurrency", 0, "Sections rewritten in parallel (default 1)")
	fl.StringVar(&f.dbURL, "db-url", "", "PostgreSQL URL for run history (optional, defaults to DATABASE_URL env var)")
	return cmd
}

// resolveRunConfig layers the config file, explicitly set flags and the
// built-in defaults, then validates the result.
func resolveRunConfig(cmd *cobra.Command, root *rootOptions, f *runFlags) (config.Config, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return cfg, err
	}

	// Only override if the flag was explicitly set
	changed := cmd.Flags().Changed
	set := func(name string, dst *string, v string) {
		if changed(name) {
			*dst = v
		}
	}
	set("input", &cfg.Input, f.input)
	set("text", &cfg.Text, f.text)
	set("input-type", &cfg.InputType, f.inputType)
	set("target-role", &cfg.TargetRole, f.targetRole)
	set("name", &cfg.Name, f.name)
	set("format", &cfg.Format, f.format)
	set("output-dir", &cfg.OutputDir, f.outputDir)
	set("template", &cfg.Template, f.template)
	set("pdf-engine", &cfg.PDFEngine, f.pdfEngine)
	set("chrome-path", &cfg.ChromePath, f.chromePath)
	set("db-url", &cfg.DatabaseURL, f.dbURL)
	jdFlags := 0
	for _, name := range []string{"jd", "jd-file", "jd-url"} {
		if changed(name) {
			jdFlags++
		}
	}
	if jdFlags > 1 {
		return cfg, fmt.Errorf("--jd, --jd-file and --jd-url are mutually exclusive; provide only one")
	}
	if jdFlags == 1 {
		cfg.JobDescription, cfg.JobDescriptionFile, cfg.JobDescriptionURL = f.jd, f.jdFile, f.jdURL
	}
	if changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if changed("verbose") {
		cfg.Verbose = root.verbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Input == "" && cfg.Text == "" {
		return cfg, fmt.Errorf("either --input or --text must be provided (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPipelineCmd(cmd *cobra.Command, root *rootOptions, f *runFlags) error {
	ctx := cmd.Context()

	cfg, err := resolveRunConfig(cmd, root, f)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg.Verbose)
	if root.configPath != "" {
		logger.Debug("loaded config", "path", root.configPath)
	}

	jd, err := readJobDescription(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	engine, err := output.ParseEngine(cfg.PDFEngine)
	if err != nil {
		return err
	}
	var templateID types.TemplateID
	if cfg.Template != "" {
		templateID, _ = types.ParseTemplateID(cfg.Template)
	}

	client := newClient(ctx, &cfg, logger)
	defer closeClient(client, logger)

	res, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		InputPath:      cfg.Input,
		Text:           cfg.Text,
		InputType:      types.InputType(cfg.InputType),
		TargetRole:     cfg.TargetRole,
		JobDescription: jd,
		CandidateName:  cfg.Name,
		TemplateID:     templateID,
		Style:          cfg.Style,
		Format:         format,
		PDFEngine:      engine,
		OutputDir:      cfg.OutputDir,
		ChromePath:     cfg.ChromePath,
		Concurrency:    cfg.Concurrency,
		Client:         client,
		DatabaseURL:    cfg.DatabaseURL,
		Verbose:        cfg.Verbose,
		Out:            cmd.OutOrStdout(),
		Logger:         logger,
	})
	if err != nil {
		if output.IsMissingTool(err) {
			return fmt.Errorf("%w (use --pdf-engine auto to fall back to Word)", err)
		}
		return err
	}

	out := res.Output
	if out.Degraded {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "PDF rendering unavailable, wrote %s instead\n", out.Format)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Path)
	return nil
}
