package ingestion

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads the text of every page and joins pages with newlines.
func extractPDF(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, &ExtractionError{Path: path, Kind: SourcePDF, Message: "failed to open pdf", Cause: err}
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, &ExtractionError{Path: path, Kind: SourcePDF, Message: "failed to read page text", Cause: err}
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), total, nil
}
