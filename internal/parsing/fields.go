package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-agent/internal/types"
)

var (
	datePattern = regexp.MustCompile(`(?i)(\b(19|20)\d{2}\b|\bpresent\b|\bcurrent\b|\bnow\b|至今|现在|\b(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4})`)

	degreePattern = regexp.MustCompile(`(?i)(\bbachelor|\bmaster|\bph\.?\s?d\b|\bdoctor(ate)?\b|\bassociate\b|\bhigh\s+school\b|\bmba\b|\bb\.?s\.?c?\b|\bm\.?s\.?c?\b|\bb\.a\.|\bm\.a\.|本科|学士|硕士|研究生|博士|大专|专科|高中)`)

	gpaPattern       = regexp.MustCompile(`(?i)^(?:gpa|绩点)\s*[:：]?\s*(\S.*)$`)
	bareGPAPattern   = regexp.MustCompile(`^\d\.\d{1,2}\s*/\s*[45](?:\.0+)?$`)
	linkPattern      = regexp.MustCompile(`(?i)^(https?://|www\.)\S+$`)
	dateRangePattern = regexp.MustCompile(`(?i)^\s*(\d{4}(?:[.\-/]\d{1,2})?)\s*(?:-|–|—|~|～|至|to)\s*(\d{4}(?:[.\-/]\d{1,2})?|present|current|now|至今|现在)\s*$`)
)

// Fields is the classification of the pipe-separated tokens that follow an
// entry's name.
type Fields struct {
	Date       string
	Degree     string
	GPA        string
	Link       string
	Positional string // position, role or major depending on the section kind
}

// InferFields classifies tokens by content, not position. The first
// unclassified token fills the positional slot; further ones are dropped.
func InferFields(kind types.SectionKind, tokens []string) Fields {
	var f Fields
	for _, raw := range tokens {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}

		if m := gpaPattern.FindStringSubmatch(tok); m != nil && f.GPA == "" {
			f.GPA = strings.TrimSpace(m[1])
			continue
		}
		if kind == types.SectionEducation && bareGPAPattern.MatchString(tok) && f.GPA == "" {
			f.GPA = tok
			continue
		}
		if linkPattern.MatchString(tok) && f.Link == "" {
			f.Link = tok
			continue
		}
		if f.Date == "" && datePattern.MatchString(tok) {
			f.Date = tok
			continue
		}
		if kind == types.SectionEducation && f.Degree == "" && degreePattern.MatchString(tok) {
			f.Degree = tok
			continue
		}
		if f.Positional == "" {
			f.Positional = tok
		}
	}
	return f
}

// SplitDateRange splits "2018-2022" into ("2018", "2022"). Anything that is
// not a two-ended range becomes the start date with an empty end.
func SplitDateRange(token string) (string, string) {
	token = strings.TrimSpace(token)
	if m := dateRangePattern.FindStringSubmatch(token); m != nil {
		return m[1], m[2]
	}
	return token, ""
}

// splitTokens splits on ASCII and full-width pipes and trims each token.
func splitTokens(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == '｜' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func hasPipe(s string) bool {
	return strings.ContainsAny(s, "|｜")
}
