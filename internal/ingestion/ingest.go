// Package ingestion turns raw text or a résumé file into normalized text
// for the pipeline.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceKind tags where the text came from.
type SourceKind string

// Source kinds.
const (
	SourceText     SourceKind = "text"
	SourceMarkdown SourceKind = "markdown"
	SourcePDF      SourceKind = "pdf"
	SourceWord     SourceKind = "docx"
)

// Payload is the input to Ingest. Text wins over Path when both are set.
type Payload struct {
	Text string
	Path string
}

// Document is normalized input text with its provenance.
type Document struct {
	Text     string
	Kind     SourceKind
	Metadata *Metadata
}

// Ingest reads the payload and returns normalized text. It returns
// ErrEmptyInput when nothing is left after normalization and
// *UnsupportedFormatError for an unknown file extension.
func Ingest(ctx context.Context, p Payload) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(p.Text) != "" || p.Path == "" {
		return finish(Normalize(p.Text), "", SourceText, 0)
	}

	kind, err := DetectKind(p.Path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case SourcePDF:
		text, pages, err := extractPDF(p.Path)
		if err != nil {
			return nil, err
		}
		return finish(CleanExtracted(text), p.Path, kind, pages)
	case SourceWord:
		text, err := extractWord(p.Path)
		if err != nil {
			return nil, err
		}
		return finish(CleanExtracted(text), p.Path, kind, 0)
	default:
		content, err := os.ReadFile(p.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("file not found: %w", err)
			}
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return finish(Normalize(string(content)), p.Path, kind, 0)
	}
}

// DetectKind maps a file extension to its source kind.
func DetectKind(path string) (SourceKind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt":
		return SourceText, nil
	case ".md", ".markdown":
		return SourceMarkdown, nil
	case ".pdf":
		return SourcePDF, nil
	case ".docx", ".doc":
		return SourceWord, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
}

func finish(text, path string, kind SourceKind, pages int) (*Document, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	return &Document{Text: text, Kind: kind, Metadata: NewMetadata(text, path, kind, pages)}, nil
}
