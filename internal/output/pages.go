package output

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// CountPDFPages returns the number of pages in the PDF at path.
func CountPDFPages(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer f.Close()
	return r.NumPage(), nil
}
