package parsing

import (
	"regexp"
	"strings"
)

// Keywords only count as whole words, so "Intel" is not "tel" and
// "excellent" is not "cell". Go's \b is ASCII-only, hence the bare CJK terms.
var (
	emailLabel    = regexp.MustCompile(`(?i)(\be-?mail\b|邮箱|邮件)`)
	phoneLabel    = regexp.MustCompile(`(?i)(\b(phone|tel|mobile|cell)\b|电话|手机)`)
	locationLabel = regexp.MustCompile(`(?i)(\b(address|location|city)\b|地址|城市|所在地|现居)`)

	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-()]{6,}\d`)
)

// contact is the subset of basic info found on contact lines.
type contact struct {
	Email    string
	Phone    string
	Location string

	// locationGuessed is set when Location came from an unlabelled part.
	locationGuessed bool
}

// isContactLine reports whether line carries contact details: an email
// address, a part labelled with a contact keyword, or a phone keyword
// followed by a number.
func isContactLine(line string) bool {
	for _, part := range splitTokens(line) {
		part = strings.ReplaceAll(part, "*", "")
		label, value := splitLabel(part)
		switch {
		case strings.Contains(value, "@"):
			return true
		case label != "" && isContactLabel(label):
			return true
		case label == "" && phoneLabel.MatchString(value) && phonePattern.MatchString(value):
			return true
		}
	}
	return false
}

func isContactLabel(label string) bool {
	return emailLabel.MatchString(label) || phoneLabel.MatchString(label) || locationLabel.MatchString(label)
}

// parseContactLine splits line on pipes and assigns each part by its label
// or, when unlabelled, by its shape. A labelled location replaces one that
// was guessed from an unlabelled part; other fields keep their first value.
func parseContactLine(line string, c *contact) {
	for _, part := range splitTokens(line) {
		part = strings.TrimSpace(strings.ReplaceAll(part, "*", ""))
		label, value := splitLabel(part)

		switch {
		case value == "":
			continue
		case label != "":
			switch {
			case emailLabel.MatchString(label):
				setOnce(&c.Email, value)
			case phoneLabel.MatchString(label):
				setOnce(&c.Phone, value)
			case locationLabel.MatchString(label):
				if c.locationGuessed {
					c.Location, c.locationGuessed = "", false
				}
				setOnce(&c.Location, value)
			}
		case strings.Contains(value, "@"):
			setOnce(&c.Email, value)
		case phonePattern.MatchString(value):
			setOnce(&c.Phone, strings.TrimSpace(phoneLabel.ReplaceAllString(value, "")))
		case isLink(value):
			continue
		case c.Location == "":
			c.Location, c.locationGuessed = value, true
		}
	}
}

// splitLabel splits "邮箱：a@b.com" into ("邮箱", "a@b.com"). Parts
// without a label return ("", part). A colon inside a URL is not a label.
func splitLabel(part string) (string, string) {
	idx := strings.IndexAny(part, ":：")
	if idx < 0 || strings.Contains(part[:idx], "@") || strings.HasPrefix(part[idx:], "://") {
		return "", strings.TrimSpace(part)
	}
	sep := ":"
	if strings.HasPrefix(part[idx:], "：") {
		sep = "："
	}
	return strings.TrimSpace(part[:idx]), strings.TrimSpace(part[idx+len(sep):])
}

func isLink(value string) bool {
	lower := strings.ToLower(value)
	return strings.Contains(lower, "://") || strings.HasPrefix(lower, "www.") ||
		strings.Contains(lower, "github.com") || strings.Contains(lower, "linkedin.com")
}

func setOnce(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
