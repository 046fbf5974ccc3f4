// Package llm - extractor.go provides JSON response-schema instructions for
// structured LLM replies.
package llm

import (
	"fmt"
	"strings"
)

// ResponseSchema describes the JSON object a prompt asks the model to return.
type ResponseSchema struct {
	Name   string        // Schema name (e.g., "StagePlan")
	Fields []SchemaField // Expected output fields
}

// SchemaField defines a single field in the structured reply.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[\"string\"]", "boolean"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// Instruction renders the output contract appended to a system prompt.
func (s ResponseSchema) Instruction() string {
	var sb strings.Builder

	sb.WriteString("仅返回符合以下结构的 JSON 对象：\n{\n")
	for i, field := range s.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (必填)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(s.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	sb.WriteString("不要输出 Markdown 代码块或任何解释。")

	return sb.String()
}

// BuildSystemPrompt joins a role description with the schema instruction.
func BuildSystemPrompt(description string, schema ResponseSchema) string {
	return strings.TrimSpace(description) + "\n\n" + schema.Instruction()
}

// --- Predefined Schemas ---

// StagePlanSchema is the reply contract of the stage planner.
func StagePlanSchema() ResponseSchema {
	return ResponseSchema{
		Name: "StagePlan",
		Fields: []SchemaField{
			{
				Name:        "stageList",
				Type:        "[\"extract_input\" | \"rewrite_content\" | \"generate_output\"]",
				Description: "需要执行的阶段，按执行顺序",
				Required:    true,
			},
			{
				Name:        "templateChoice",
				Type:        "\"classic\" | \"modern\" | \"left-right\" | \"timeline\"",
				Description: "推荐的简历模板",
				Required:    true,
			},
			{
				Name:        "templateReason",
				Type:        "\"string\"",
				Description: "选择该模板的简短理由",
			},
			{
				Name:        "isComplete",
				Type:        "boolean",
				Description: "是否已无需执行任何阶段",
			},
		},
	}
}

// IndustryContextSchema is the reply contract of the industry detector.
func IndustryContextSchema(industries []string) ResponseSchema {
	return ResponseSchema{
		Name: "IndustryContext",
		Fields: []SchemaField{
			{
				Name:        "industry",
				Type:        "\"" + strings.Join(industries, "\" | \"") + "\"",
				Description: "候选人最匹配的行业",
				Required:    true,
			},
			{
				Name:        "jobFunction",
				Type:        "\"string\"",
				Description: "岗位职能，例如 engineering、sales、operations",
			},
			{
				Name:        "seniority",
				Type:        "\"junior\" | \"mid\" | \"senior\" | \"executive\"",
				Description: "资历级别",
			},
		},
	}
}
