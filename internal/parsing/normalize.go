package parsing

import (
	"regexp"
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"mysql":      "MySQL",
	"postgresql": "PostgreSQL",
	"postgres":   "PostgreSQL",
	"mongodb":    "MongoDB",
	"redis":      "Redis",
	"docker":     "Docker",
	"python":     "Python",
	"java":       "Java",
}

// skillToken matches one item of a comma/enumeration separated skill list.
var skillToken = regexp.MustCompile(`[^,，、;；/]+`)

// NormalizeSkillName returns the canonical spelling of a known skill and
// the trimmed input otherwise.
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if canonical, ok := skillNormalizations[strings.ToLower(normalized)]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkillLine canonicalises every known skill in a skills line while
// keeping its bullet marker, "label:" prefix, separators and spacing.
func NormalizeSkillLine(line string) string {
	prefix, body := splitSkillPrefix(line)
	body = skillToken.ReplaceAllStringFunc(body, func(tok string) string {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" {
			return tok
		}
		canonical := NormalizeSkillName(trimmed)
		if canonical == trimmed {
			return tok
		}
		lead := tok[:strings.Index(tok, trimmed)]
		trail := tok[len(lead)+len(trimmed):]
		return lead + canonical + trail
	})
	return prefix + body
}

// splitSkillPrefix separates "- 编程语言：" from the list that follows.
func splitSkillPrefix(line string) (string, string) {
	i := 0
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			i = len(marker)
			break
		}
	}
	rest := line[i:]
	if idx := strings.IndexAny(rest, ":："); idx >= 0 {
		sep := 1
		if strings.HasPrefix(rest[idx:], "：") {
			sep = len("：")
		}
		return line[:i+idx+sep], rest[idx+sep:]
	}
	return line[:i], rest
}
