package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("planner.json", "plan-system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "rewrite_content")

	_, err = Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt file nonexistent.json not found")

	_, err = Get("planner.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nonexistent-key" not found`)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{
			name:     "fills every placeholder",
			template: "Hello {{.Name}}, welcome to {{.Company}}!",
			data:     map[string]string{"Name": "Alice", "Company": "Acme Corp"},
			want:     "Hello Alice, welcome to Acme Corp!",
		},
		{
			name:     "no placeholders",
			template: "No placeholders here",
			data:     map[string]string{"Key": "Value"},
			want:     "No placeholders here",
		},
		{
			name:     "unknown placeholder stays",
			template: "Hello {{.Name}}",
			data:     map[string]string{},
			want:     "Hello {{.Name}}",
		},
		{
			name:     "values are not expanded again",
			template: "{{.A}} and {{.B}}",
			data:     map[string]string{"A": "{{.B}}", "B": "b"},
			want:     "{{.B}} and b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.data))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("{{.B}} {{.A}} {{.B}} {{ .C }}")
	assert.Equal(t, []string{"B", "A"}, got)
}

func TestRender(t *testing.T) {
	out, err := Render("rewriting.json", "section-user", map[string]string{
		"Guidance":   "保持结构",
		"TargetRole": "后端工程师",
		"Analysis":   "",
		"Metrics":    "QPS",
		"Verbs":      "主导",
		"Content":    "## 工作经历",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "目标岗位: 后端工程师")
	assert.Contains(t, out, "## 工作经历")

	_, err = Render("rewriting.json", "missing", nil)
	assert.Error(t, err)
}

func TestRender_MissingValue(t *testing.T) {
	_, err := Render("industry.json", "detect-system", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing values for Industries")
}

func TestList(t *testing.T) {
	keys, err := List("planner.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"plan-system", "plan-user"}, keys)

	keys, err = List("rewriting.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "section-system")
	assert.Contains(t, keys, "guidance-raw_text")
}

func TestRewritingPrompts_EverySectionKindHasInstruction(t *testing.T) {
	for _, kind := range []string{"summary", "experience", "projects", "education", "skills", "personal_info", "general"} {
		prompt, err := Get("rewriting.json", "instruction-"+kind)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, prompt)
	}
}

func TestIndustryPrompt_Format(t *testing.T) {
	out, err := Render("industry.json", "detect-system", map[string]string{"Industries": "finance, general"})
	require.NoError(t, err)
	assert.Contains(t, out, "finance, general")
	assert.NotContains(t, out, "{{.Industries}}")
}

func TestEveryPromptFileParses(t *testing.T) {
	for _, f := range []string{"planner.json", "industry.json", "rewriting.json"} {
		keys, err := List(f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, keys, f)
	}
}
