package fetch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the shortest extracted description, in characters,
// accepted without a browser render.
const MinContentLength = 200

// ShouldUseBrowser reports whether extracted text is too short to be a real
// posting, which usually means the page is rendered client-side.
func ShouldUseBrowser(extractedText string) bool {
	return len([]rune(strings.TrimSpace(extractedText))) < MinContentLength
}

// PageRenderer returns the rendered HTML of a page.
type PageRenderer interface {
	RenderPage(ctx context.Context, url string) (string, error)
}

// BrowserRenderer renders pages with headless Chrome.
type BrowserRenderer struct {
	ExecPath string
	Timeout  time.Duration
	// Settle is how long scripts get to populate the page after load.
	Settle time.Duration
}

// NewBrowserRenderer returns a renderer for execPath, falling back to
// CHROME_PATH and then a PATH lookup.
func NewBrowserRenderer(execPath string) *BrowserRenderer {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	return &BrowserRenderer{ExecPath: execPath, Timeout: DefaultTimeout, Settle: 2 * time.Second}
}

// RenderPage navigates to url and returns the page's outer HTML.
func (b *BrowserRenderer) RenderPage(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(DefaultUserAgent),
	)
	if b.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.ExecPath))
	}
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(b.Settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
