package rewriting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-agent/internal/industry"
)

// Common strong action verbs for English bullets (heuristic check)
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "engineered": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "optimized": true, "reduced": true, "scaled": true,
	"shipped": true, "transformed": true,
}

var digitPattern = regexp.MustCompile(`\d`)

// StyleChecksResult holds the heuristic quality checks of one section.
type StyleChecksResult struct {
	Bullets    int  // number of bullet lines
	StrongVerb bool // some bullet opens with a strong verb
	Quantified bool // the section contains a number or percentage
	NoLeakage  bool // no reasoning-trace phrase survived in the output
}

// ValidateStyle checks a rewritten section against the industry profile.
func ValidateStyle(text string, profile industry.Profile) StyleChecksResult {
	result := StyleChecksResult{
		Quantified: checkQuantifiedImpact(text),
		NoLeakage:  !hasNarration(text),
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !isBulletLine(trimmed) || strings.HasPrefix(trimmed, "**") {
			continue
		}
		result.Bullets++
		body := strings.TrimSpace(strings.TrimLeft(trimmed, "-*• "))
		if checkStrongVerb(body, profile.Verbs) {
			result.StrongVerb = true
		}
	}
	return result
}

// checkStrongVerb checks if text starts with a strong action verb, either a
// verb of the industry profile or a common English one.
func checkStrongVerb(text string, verbs []string) bool {
	for _, v := range verbs {
		if v != "" && strings.HasPrefix(text, v) {
			return true
		}
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return false
	}
	firstWord := strings.TrimRight(words[0], ".,!?;:")
	if strongVerbs[firstWord] {
		return true
	}

	// verbs ending in -ed are often action verbs (past tense)
	return strings.HasSuffix(firstWord, "ed") && len(firstWord) > 3
}

// checkQuantifiedImpact checks if text contains numbers or metrics
func checkQuantifiedImpact(text string) bool {
	return digitPattern.MatchString(text) || strings.Contains(text, "%") || strings.Contains(text, "％")
}
