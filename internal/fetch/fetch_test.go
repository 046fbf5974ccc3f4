package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	html  string
	err   error
	calls int
}

func (s *stubRenderer) RenderPage(context.Context, string) (string, error) {
	s.calls++
	return s.html, s.err
}

func serve(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func longRequirements() string {
	return strings.Repeat("Build and operate Go services on Kubernetes. ", 10)
}

func TestURL_Success(t *testing.T) {
	server := serve(t, http.StatusOK, "text/html", "<html><body><h1>Test</h1></body></html>")

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, u := range []string{"not-a-valid-url", "ftp://example.com/job", "file:///etc/passwd"} {
		_, err := URL(context.Background(), u, nil)
		require.Error(t, err, u)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, err.Error(), "invalid URL")
	}
}

func TestURL_HTTPError(t *testing.T) {
	server := serve(t, http.StatusNotFound, "text/html", "")

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `<html><body>
		<nav>Navigation</nav>
		<main><h1>Main Content</h1><p>This is the important text.</p></main>
		<footer>Footer</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Main Content\nThis is the important text.", text)
}

func TestExtractMainText_KeepsListItemsOnSeparateLines(t *testing.T) {
	html := `<div class="job-description"><h2>Requirements</h2><ul><li>5 years of Go</li><li>Kafka</li></ul>Remote<br>OK</div>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Requirements\n5 years of Go\nKafka\nRemote\nOK", text)
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><span>Some content here.</span></body></html>`, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Some content here.", text)
}

func TestExtractMainText_PlatformNoise(t *testing.T) {
	html := `<div class="job-sec-text">岗位职责：负责后端服务开发</div><div class="job-sider">推荐职位</div>`

	text, err := ExtractMainText(html, PlatformContentSelectors(PlatformBoss), PlatformNoiseSelectors(PlatformBoss)...)
	require.NoError(t, err)
	assert.Equal(t, "岗位职责：负责后端服务开发", text)
}

func TestJobDescription_StaticPage(t *testing.T) {
	server := serve(t, http.StatusOK, "text/html; charset=utf-8",
		`<html><body><nav>Jobs</nav><div class="job-description"><p>`+longRequirements()+`</p></div></body></html>`)
	renderer := &stubRenderer{}

	text, err := JobDescription(context.Background(), server.URL, &Options{Renderer: renderer})
	require.NoError(t, err)
	assert.Contains(t, text, "Build and operate Go services")
	assert.NotContains(t, text, "Jobs")
	assert.Equal(t, 0, renderer.calls)
}

func TestJobDescription_PlainText(t *testing.T) {
	server := serve(t, http.StatusOK, "text/plain", "  Senior Go Engineer  \n\n  Kafka, Postgres \n")

	text, err := JobDescription(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer\nKafka, Postgres", text)
}

func TestJobDescription_BrowserFallbackForThinPage(t *testing.T) {
	server := serve(t, http.StatusOK, "text/html", `<html><body><div id="root">Loading</div></body></html>`)
	renderer := &stubRenderer{html: `<html><body><main><p>` + longRequirements() + `</p></main></body></html>`}

	text, err := JobDescription(context.Background(), server.URL, &Options{Renderer: renderer})
	require.NoError(t, err)
	assert.Equal(t, 1, renderer.calls)
	assert.Contains(t, text, "Kubernetes")
}

func TestJobDescription_BrowserFailureKeepsStaticText(t *testing.T) {
	server := serve(t, http.StatusOK, "text/html", `<html><body><main>Go engineer wanted</main></body></html>`)
	renderer := &stubRenderer{err: errors.New("chrome not found")}

	text, err := JobDescription(context.Background(), server.URL, &Options{Renderer: renderer})
	require.NoError(t, err)
	assert.Equal(t, "Go engineer wanted", text)
}

func TestJobDescription_HTTPErrorWithoutRenderer(t *testing.T) {
	server := serve(t, http.StatusForbidden, "text/html", "denied")

	_, err := JobDescription(context.Background(), server.URL, nil)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "403")
}

func TestJobDescription_HTTPErrorFallsBackToBrowser(t *testing.T) {
	server := serve(t, http.StatusForbidden, "text/html", "denied")
	renderer := &stubRenderer{html: `<main>` + longRequirements() + `</main>`}

	text, err := JobDescription(context.Background(), server.URL, &Options{Renderer: renderer})
	require.NoError(t, err)
	assert.Contains(t, text, "Go services")
}

func TestJobDescription_EmptyPage(t *testing.T) {
	server := serve(t, http.StatusOK, "text/html", `<html><body><script>app()</script></body></html>`)

	_, err := JobDescription(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no job description text")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("Loading"))
	assert.False(t, ShouldUseBrowser(longRequirements()))
}

func TestNewBrowserRenderer_Defaults(t *testing.T) {
	t.Setenv("CHROME_PATH", "/opt/chrome")
	r := NewBrowserRenderer("")
	assert.Equal(t, "/opt/chrome", r.ExecPath)
	assert.Equal(t, DefaultTimeout, r.Timeout)

	assert.Equal(t, "/usr/bin/chromium", NewBrowserRenderer("/usr/bin/chromium").ExecPath)
}
