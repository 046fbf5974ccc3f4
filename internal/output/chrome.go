package output

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultChromeTimeout bounds one HTML-to-PDF print.
const DefaultChromeTimeout = 60 * time.Second

// ChromeEnvVar overrides the browser executable.
const ChromeEnvVar = "CHROME_PATH"

// HTMLPrinter prints an HTML file to PDF bytes.
type HTMLPrinter interface {
	PrintPDF(ctx context.Context, htmlPath string) ([]byte, error)
}

// ChromePrinter prints through a headless Chrome/Chromium driven by chromedp.
type ChromePrinter struct {
	ExecPath string
	Timeout  time.Duration
}

// NewChromePrinter creates a printer. An empty execPath falls back to
// $CHROME_PATH and then to chromedp's own lookup.
func NewChromePrinter(execPath string, timeout time.Duration) *ChromePrinter {
	if execPath == "" {
		execPath = os.Getenv(ChromeEnvVar)
	}
	if timeout <= 0 {
		timeout = DefaultChromeTimeout
	}
	return &ChromePrinter{ExecPath: execPath, Timeout: timeout}
}

// PrintPDF loads htmlPath and prints it on A4 with backgrounds.
func (c *ChromePrinter) PrintPDF(ctx context.Context, htmlPath string) ([]byte, error) {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, &RenderTargetError{Target: "chrome", Message: "failed to resolve html path", Cause: err}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.Timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(abs)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> 8.27 x 11.69 inches
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, &MissingToolError{Tool: "chrome", Message: "Chrome/Chromium not found; set " + ChromeEnvVar, Cause: err}
		}
		return nil, &RenderTargetError{Target: "chrome", Message: "print to pdf failed", Cause: err}
	}
	if len(pdf) == 0 {
		return nil, &RenderTargetError{Target: "chrome", Message: "empty pdf"}
	}
	return pdf, nil
}
