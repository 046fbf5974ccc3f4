// Package fetch retrieves a job posting from a URL and reduces it to the
// plain-text job description used for gap analysis.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeAgent/1.0)"

// MaxBodyBytes caps how much of a response is read.
const MaxBodyBytes = 4 << 20

// Result holds the raw and processed content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string

	// Renderer re-renders pages whose static HTML is too thin, typically
	// single-page apps. Nil disables the browser fallback.
	Renderer PageRenderer
	Logger   *slog.Logger
}

// DefaultOptions returns the HTTP-only defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

func (o *Options) withDefaults() *Options {
	out := DefaultOptions()
	if o == nil {
		out.Logger = slog.Default()
		return out
	}
	*out = *o
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.UserAgent == "" {
		out.UserAgent = DefaultUserAgent
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}

// URL retrieves HTML content from a URL. A non-200 response returns both
// the result and an *Error.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := validateURL(urlStr); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// JobDescription fetches a posting and extracts its description text using
// the selectors of the detected job board. When the static page yields less
// than MinContentLength characters and a Renderer is configured, the page is
// rendered in a headless browser and extracted again.
func JobDescription(ctx context.Context, urlStr string, opts *Options) (string, error) {
	opts = opts.withDefaults()
	platform := DetectPlatform(urlStr)
	logger := opts.Logger.With("component", "fetch", "platform", platform)

	res, err := URL(ctx, urlStr, opts)
	if err != nil && opts.Renderer == nil {
		return "", err
	}

	var text string
	if err == nil {
		if strings.Contains(res.ContentType, "text/plain") {
			text = cleanWhitespace(res.HTML)
		} else if text, err = ExtractMainText(res.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...); err != nil {
			return "", &Error{URL: urlStr, Message: "failed to extract job description", Cause: err}
		}
		if !ShouldUseBrowser(text) || opts.Renderer == nil {
			return requireText(urlStr, text)
		}
		logger.Debug("static page too short, rendering in browser", "chars", len([]rune(text)))
	} else {
		logger.Debug("HTTP fetch failed, rendering in browser", "error", err)
	}

	html, rerr := opts.Renderer.RenderPage(ctx, urlStr)
	if rerr != nil {
		logger.Warn("browser rendering failed", "error", rerr)
		if text != "" {
			return text, nil
		}
		return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: rerr}
	}
	rendered, err := ExtractMainText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract job description", Cause: err}
	}
	if len([]rune(rendered)) < len([]rune(text)) {
		rendered = text
	}
	return requireText(urlStr, rendered)
}

func requireText(urlStr, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &Error{URL: urlStr, Message: "no job description text found"}
	}
	return text, nil
}

func validateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	return nil
}

// ExtractMainText parses HTML and returns the main body text. It removes
// common chrome and the given noise selectors, then takes the first
// content selector that matches, falling back to body.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, iframe, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Block elements need a line break or their text runs together.
	main.Find("br").ReplaceWithHtml("\n")
	main.Find("p, li, h1, h2, h3, h4, div, tr").AppendHtml("\n")
	return cleanWhitespace(main.Text()), nil
}

// cleanWhitespace trims every line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
