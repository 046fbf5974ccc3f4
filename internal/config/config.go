// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/types"
)

// Defaults applied by Defaults and MergeWithDefaults.
const (
	DefaultFormat      = "pdf"
	DefaultOutputDir   = "output"
	DefaultName        = "候选人"
	DefaultPDFEngine   = "auto"
	DefaultConcurrency = 1
)

// Config represents the CLI configuration that can be loaded from a JSON or
// TOML file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Input
	// Input is a .txt/.md/.pdf/.docx résumé; Text wins over it when both are set.
	Input              string `json:"input,omitempty" toml:"input"`
	Text               string `json:"text,omitempty" toml:"text"`
	InputType          string `json:"input_type,omitempty" toml:"input_type" validate:"omitempty,oneof=raw_text mature_resume immature_resume"`
	TargetRole         string `json:"target_role,omitempty" toml:"target_role"`
	JobDescription     string `json:"job_description,omitempty" toml:"job_description"`
	JobDescriptionFile string `json:"job_description_file,omitempty" toml:"job_description_file"`
	JobDescriptionURL  string `json:"job_description_url,omitempty" toml:"job_description_url" validate:"omitempty,url"`

	// Candidate
	Name string `json:"name,omitempty" toml:"name"`

	// Output
	Format     string                   `json:"format,omitempty" toml:"format" validate:"omitempty,oneof=pdf docx word json"`
	OutputDir  string                   `json:"output_dir,omitempty" toml:"output_dir"`
	Template   string                   `json:"template,omitempty" toml:"template" validate:"omitempty,oneof=classic modern left-right timeline"`
	PDFEngine  string                   `json:"pdf_engine,omitempty" toml:"pdf_engine" validate:"omitempty,oneof=auto chrome chromium latex tex"`
	ChromePath string                   `json:"chrome_path,omitempty" toml:"chrome_path"`
	Style      *types.SettingsOverrides `json:"style,omitempty" toml:"style"`

	// Behavior
	LLM LLMConfig `json:"llm,omitempty" toml:"llm"`
	// Concurrency bounds parallel section rewrites.
	Concurrency int    `json:"concurrency,omitempty" toml:"concurrency" validate:"gte=0,lte=16"`
	Verbose     bool   `json:"verbose,omitempty" toml:"verbose"`
	DatabaseURL string `json:"database_url,omitempty" toml:"database_url"`
}

// LLMConfig overrides the environment-derived chat client settings.
type LLMConfig struct {
	Provider       string `json:"provider,omitempty" toml:"provider" validate:"omitempty,oneof=openai gemini"`
	APIKey         string `json:"api_key,omitempty" toml:"api_key"`
	BaseURL        string `json:"base_url,omitempty" toml:"base_url" validate:"omitempty,url"`
	Model          string `json:"model,omitempty" toml:"model"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" toml:"timeout_seconds" validate:"gte=0,lte=600"`
}

var validate = validator.New()

// Defaults returns the built-in defaults.
func Defaults() Config {
	return Config{
		Format:      DefaultFormat,
		OutputDir:   DefaultOutputDir,
		Name:        DefaultName,
		PDFEngine:   DefaultPDFEngine,
		Concurrency: DefaultConcurrency,
	}
}

// LoadConfig loads configuration from a JSON or TOML file, chosen by
// extension. Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %s", describeValidationError(err))
	}

	sources := 0
	for _, v := range []string{c.JobDescription, c.JobDescriptionFile, c.JobDescriptionURL} {
		if v != "" {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'job_description', 'job_description_file' and 'job_description_url' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.Input != "" && c.Text == "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.JobDescriptionFile != "" {
		if _, err := os.Stat(c.JobDescriptionFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JobDescriptionFile)
		}
	}

	return nil
}

// describeValidationError reports the first failing field.
func describeValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		if ve.Param() != "" {
			return fmt.Sprintf("'%s' failed %s=%s (got %v)", ve.Namespace(), ve.Tag(), ve.Param(), ve.Value())
		}
		return fmt.Sprintf("'%s' failed %s (got %v)", ve.Namespace(), ve.Tag(), ve.Value())
	}
	return err.Error()
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.Input, defaults.Input)
	fill(&result.Text, defaults.Text)
	fill(&result.InputType, defaults.InputType)
	fill(&result.TargetRole, defaults.TargetRole)
	fill(&result.JobDescription, defaults.JobDescription)
	fill(&result.JobDescriptionFile, defaults.JobDescriptionFile)
	fill(&result.JobDescriptionURL, defaults.JobDescriptionURL)
	fill(&result.Name, defaults.Name)
	fill(&result.Format, defaults.Format)
	fill(&result.OutputDir, defaults.OutputDir)
	fill(&result.Template, defaults.Template)
	fill(&result.PDFEngine, defaults.PDFEngine)
	fill(&result.ChromePath, defaults.ChromePath)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.LLM.Provider, defaults.LLM.Provider)
	fill(&result.LLM.APIKey, defaults.LLM.APIKey)
	fill(&result.LLM.BaseURL, defaults.LLM.BaseURL)
	fill(&result.LLM.Model, defaults.LLM.Model)

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.LLM.TimeoutSeconds == 0 {
		result.LLM.TimeoutSeconds = defaults.LLM.TimeoutSeconds
	}

	if result.Style == nil {
		result.Style = defaults.Style
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMClientConfig returns the chat client settings: the environment first,
// then any explicit values from the file. It returns nil when no API key
// is available, which disables the LLM.
func (c *Config) LLMClientConfig() *llm.Config {
	cfg := llm.ConfigFromEnv()
	if c.LLM.APIKey != "" {
		if cfg == nil {
			cfg = llm.DefaultConfig()
		}
		cfg.APIKey = c.LLM.APIKey
	}
	if cfg == nil {
		return nil
	}

	if c.LLM.Provider != "" && llm.Provider(c.LLM.Provider) != cfg.Provider {
		cfg.Provider = llm.Provider(c.LLM.Provider)
		if cfg.Provider == llm.ProviderGemini {
			cfg.Model = llm.DefaultGeminiModel
		} else {
			cfg.Model = llm.DefaultModel
		}
	}
	if c.LLM.BaseURL != "" {
		cfg.BaseURL = c.LLM.BaseURL
	}
	if c.LLM.Model != "" {
		cfg.Model = c.LLM.Model
	}
	if c.LLM.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.LLM.TimeoutSeconds) * time.Second
	}
	return cfg
}

// ReadJobDescription returns the inline job description or the contents of
// job_description_file. job_description_url is fetched by the caller.
func (c *Config) ReadJobDescription() (string, error) {
	if c.JobDescription != "" || c.JobDescriptionFile == "" {
		return c.JobDescription, nil
	}
	data, err := os.ReadFile(c.JobDescriptionFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
