package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseSchema_Instruction(t *testing.T) {
	schema := ResponseSchema{
		Name: "Test",
		Fields: []SchemaField{
			{Name: "a", Type: "\"string\"", Required: true, Description: "first"},
			{Name: "b"},
		},
	}

	out := schema.Instruction()
	assert.Contains(t, out, `"a": "string" (必填) // first,`)
	assert.Contains(t, out, `"b": "string"`)
	assert.True(t, strings.HasSuffix(out, "不要输出 Markdown 代码块或任何解释。"))
}

func TestStagePlanSchema_Fields(t *testing.T) {
	var names []string
	for _, f := range StagePlanSchema().Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"stageList", "templateChoice", "templateReason", "isComplete"}, names)
}

func TestIndustryContextSchema_ListsIndustries(t *testing.T) {
	out := IndustryContextSchema([]string{"finance", "general"}).Instruction()
	assert.Contains(t, out, `"finance" | "general"`)
	assert.Contains(t, out, "jobFunction")
}

func TestBuildSystemPrompt(t *testing.T) {
	out := BuildSystemPrompt("  你是规划器。 ", StagePlanSchema())
	assert.True(t, strings.HasPrefix(out, "你是规划器。\n\n仅返回"))
}
