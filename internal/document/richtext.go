package document

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	boldStarRe  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderRe = regexp.MustCompile(`__(.+?)__`)
	italicRe    = regexp.MustCompile(`\*(.+?)\*`)
	codeRe      = regexp.MustCompile("`(.+?)`")
)

// MarkdownToHTML converts lightly marked-up text into rich-text HTML.
// Bullet lines become <ul class="custom-list"> items, other lines become
// paragraphs. Text is HTML-escaped before inline markup is applied.
func MarkdownToHTML(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}

	var parts []string
	inList := false
	closeList := func() {
		if inList {
			parts = append(parts, "</ul>")
			inList = false
		}
	}

	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			closeList()
			continue
		}

		if item, ok := listItem(line); ok {
			if !inList {
				parts = append(parts, `<ul class="custom-list">`)
				inList = true
			}
			parts = append(parts, "<li><p>"+inline(item)+"</p></li>")
			continue
		}

		closeList()
		parts = append(parts, "<p>"+inline(line)+"</p>")
	}
	closeList()

	return strings.Join(parts, "\n")
}

func listItem(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") {
		return strings.TrimSpace(line[2:]), true
	}
	if strings.HasPrefix(line, "* ") {
		return strings.TrimSpace(line[2:]), true
	}
	if strings.HasPrefix(line, "• ") {
		return strings.TrimSpace(strings.TrimPrefix(line, "• ")), true
	}
	return "", false
}

func inline(text string) string {
	text = html.EscapeString(text)
	text = boldStarRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = boldUnderRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicRe.ReplaceAllString(text, "<em>$1</em>")
	text = codeRe.ReplaceAllString(text, "<code>$1</code>")
	return text
}

// HTMLToLines flattens rich text into logical display lines: one per list
// item or top-level paragraph, in document order.
func HTMLToLines(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return plainLines(content)
	}

	var lines []string
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		if !s.Is("li, p") || s.ParentsFiltered("li").Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) > 0 {
		return lines
	}

	return plainLines(doc.Text())
}

func plainLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
