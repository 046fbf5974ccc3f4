package output

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompilationTimeout is the maximum time to wait for one LaTeX run.
const CompilationTimeout = 30 * time.Second

// DefaultLaTeXEngines are tried in order. xelatex handles CJK text.
var DefaultLaTeXEngines = []string{"xelatex", "pdflatex"}

// TeXCompiler compiles a .tex file into a PDF next to it.
type TeXCompiler interface {
	Compile(ctx context.Context, texPath string) (string, error)
}

// LaTeXCompiler shells out to the first installed engine that succeeds.
type LaTeXCompiler struct {
	Engines []string
	Timeout time.Duration
}

// NewLaTeXCompiler creates a compiler with the default engines and timeout.
func NewLaTeXCompiler() *LaTeXCompiler {
	return &LaTeXCompiler{Engines: DefaultLaTeXEngines, Timeout: CompilationTimeout}
}

// Compile runs each available engine in order until one produces the PDF.
// It returns *MissingToolError when no engine is installed and
// *RenderTargetError when every installed engine failed.
func (c *LaTeXCompiler) Compile(ctx context.Context, texPath string) (string, error) {
	engines := c.Engines
	if len(engines) == 0 {
		engines = DefaultLaTeXEngines
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = CompilationTimeout
	}

	if _, err := os.Stat(texPath); err != nil {
		return "", fmt.Errorf("failed to read LaTeX file %s: %w", texPath, err)
	}
	workDir := filepath.Dir(texPath)
	base := filepath.Base(texPath)
	pdfPath := filepath.Join(workDir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")

	var (
		installed []string
		lastErr   *RenderTargetError
	)
	for _, engine := range engines {
		bin, err := exec.LookPath(engine)
		if err != nil {
			continue
		}
		installed = append(installed, engine)

		_ = os.Remove(pdfPath)
		logOutput, runErr := runEngine(ctx, bin, workDir, base, timeout)
		if _, err := os.Stat(pdfPath); err == nil {
			return pdfPath, nil
		}
		lastErr = &RenderTargetError{
			Target:    engine,
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	if len(installed) == 0 {
		return "", &MissingToolError{
			Tool:    strings.Join(engines, "/"),
			Message: "no LaTeX engine found in PATH; install a TeX distribution (e.g. TeX Live)",
		}
	}
	return "", lastErr
}

func runEngine(ctx context.Context, bin, workDir, texName string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts on errors.
	cmd := exec.CommandContext(ctx, bin, "-interaction=nonstopmode", "-halt-on-error", texName)
	cmd.Dir = workDir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String() + stderr.String(), err
}

// CleanupAuxFiles removes LaTeX auxiliary files left next to texPath.
func CleanupAuxFiles(texPath string) {
	stem := strings.TrimSuffix(texPath, filepath.Ext(texPath))
	for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
		_ = os.Remove(stem + ext)
	}
}
