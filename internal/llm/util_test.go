package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"key": "value"}`, `{"key": "value"}`},
		{"json fence", "```json\n{\"stageList\": [\"rewrite_content\"]}\n```", `{"stageList": ["rewrite_content"]}`},
		{"bare fence", "```\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"other language tag", "```javascript\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"prose around object", "好的，结果如下：{\"industry\": \"finance\"} 希望有帮助", `{"industry": "finance"}`},
		{"preamble and fence", "Sure!\n```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"braces inside strings", `{"template": "Hello {name}!"} trailing`, `{"template": "Hello {name}!"}`},
		{"escaped quotes", `Result: {"message": "He said \"hi\""}`, `{"message": "He said \"hi\""}`},
		{"nested", `Here: {"a": {"b": {"c": "deep"}}}`, `{"a": {"b": {"c": "deep"}}}`},
		{"extra closing brace ignored", `{"a": {"b": 1} }}`, `{"a": {"b": 1} }`},
		{"unterminated uses last brace", `{"a": "x", "b": {"c": 1}`, `{"a": "x", "b": {"c": 1}`},
		{"array only", `["a", "b"]`, ""},
		{"no object", "no json here", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONObject(tt.input))
		})
	}
}

func TestDecodeJSONObject(t *testing.T) {
	var out struct {
		Industry  string `json:"industry"`
		Seniority string `json:"seniority"`
	}
	err := DecodeJSONObject("Sure!\n```json\n{\"industry\":\"finance\",\"seniority\":\"senior\"}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, "finance", out.Industry)
	assert.Equal(t, "senior", out.Seniority)

	err = DecodeJSONObject("nothing", &out)
	assert.EqualError(t, err, "no JSON object in response")

	err = DecodeJSONObject(`{"industry": }`, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON response")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "简历", Truncate("简历优化", 2))
	assert.Equal(t, "", Truncate("abc", 0))
}
