package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject locates the JSON object in a model reply. Code fences and
// surrounding prose are ignored: decoding starts at the first '{' and stops
// after one complete value. When that value is malformed the text up to the
// last '}' is returned so the caller can report the parse error. Returns ""
// when the reply contains no object.
func ExtractJSONObject(text string) string {
	text = stripCodeFence(strings.TrimSpace(text))
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	var raw json.RawMessage
	if err := json.NewDecoder(strings.NewReader(text[start:])).Decode(&raw); err == nil {
		return string(raw)
	}
	end := strings.LastIndexByte(text, '}')
	if end <= start {
		return ""
	}
	return text[start : end+1]
}

// stripCodeFence removes a surrounding ``` fence and its language tag.
func stripCodeFence(text string) string {
	body, ok := strings.CutPrefix(text, "```")
	if !ok {
		return text
	}
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], " {[") {
		body = body[nl+1:]
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// DecodeJSONObject extracts the JSON object from a model reply and
// unmarshals it into v.
func DecodeJSONObject(text string, v any) error {
	obj := ExtractJSONObject(text)
	if obj == "" {
		return fmt.Errorf("no JSON object in response")
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
