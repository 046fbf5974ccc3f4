package ingestion

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const wordMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// extractWord returns the text of every non-empty paragraph, one per line.
func extractWord(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Kind: SourceWord, Message: "not a Word (OOXML) package", Cause: err}
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractionError{Path: path, Kind: SourceWord, Message: "failed to open document part", Cause: err}
		}
		defer rc.Close()

		paragraphs, err := wordParagraphs(rc)
		if err != nil {
			return "", &ExtractionError{Path: path, Kind: SourceWord, Message: "failed to parse document part", Cause: err}
		}
		return strings.Join(paragraphs, "\n"), nil
	}
	return "", &ExtractionError{Path: path, Kind: SourceWord, Message: "no word/document.xml found"}
}

// wordParagraphs walks WordprocessingML and collects paragraph text.
// Empty paragraphs are dropped.
func wordParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		out    []string
		cur    strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordMain {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				cur.WriteByte('\t')
			case "br", "cr":
				cur.WriteByte('\n')
			case "p":
				cur.Reset()
			}
		case xml.EndElement:
			if t.Name.Space != wordMain {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimSpace(cur.String()); text != "" {
					out = append(out, text)
				}
				cur.Reset()
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return out, nil
}
