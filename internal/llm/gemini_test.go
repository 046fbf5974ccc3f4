package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiText(t *testing.T) {
	reply := func(finish genai.FinishReason, parts ...genai.Part) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			FinishReason: finish,
			Content:      &genai.Content{Role: "model", Parts: parts},
		}}}
	}

	text, err := geminiText(reply(genai.FinishReasonStop, genai.Text(`{"industry":`), genai.Text(`"finance"}`)))
	require.NoError(t, err)
	assert.Equal(t, `{"industry":"finance"}`, text)

	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, "no candidates"},
		{"no candidates", &genai.GenerateContentResponse{}, "no candidates"},
		{"blocked", reply(genai.FinishReasonSafety, genai.Text("x")), "safety filter"},
		{"no content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, "no content"},
		{"blank text", reply(genai.FinishReasonStop, genai.Text("  \n")), "empty reply"},
		{"non-text parts", reply(genai.FinishReasonStop, genai.Blob{MIMEType: "image/png"}), "empty reply"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geminiText(tt.resp)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
