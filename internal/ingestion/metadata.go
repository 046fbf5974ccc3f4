package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"
)

// Metadata describes normalized ingested text. It is stored with the run as
// the source_metadata artifact.
type Metadata struct {
	Path       string     `json:"path,omitempty"`
	Kind       SourceKind `json:"kind"`
	IngestedAt time.Time  `json:"ingested_at"`
	SHA256     string     `json:"sha256"`
	Chars      int        `json:"chars"`
	Lines      int        `json:"lines"`
	Pages      int        `json:"pages,omitempty"`
}

// NewMetadata fingerprints text. pages is zero for non-PDF sources.
func NewMetadata(text, path string, kind SourceKind, pages int) *Metadata {
	sum := sha256.Sum256([]byte(text))
	m := &Metadata{
		Path:       path,
		Kind:       kind,
		IngestedAt: time.Now().UTC().Truncate(time.Second),
		SHA256:     hex.EncodeToString(sum[:]),
		Chars:      utf8.RuneCountInString(text),
		Pages:      pages,
	}
	if text != "" {
		m.Lines = strings.Count(text, "\n") + 1
	}
	return m
}
