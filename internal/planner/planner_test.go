package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	ChatFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Calls    int
}

func (m *MockLLMClient) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.Calls++
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, systemPrompt, userPrompt)
	}
	return "", nil
}

func (m *MockLLMClient) Model() string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func reply(s string) *MockLLMClient {
	return &MockLLMClient{ChatFunc: func(_ context.Context, _, _ string) (string, error) { return s, nil }}
}

func allFlags() []Flags {
	var out []Flags
	for i := 0; i < 8; i++ {
		out = append(out, Flags{HasMarkdown: i&1 != 0, HasPolishedMarkdown: i&2 != 0, HasOutput: i&4 != 0})
	}
	return out
}

func TestFallbackPlan_AllCombinations(t *testing.T) {
	for _, f := range allFlags() {
		var want []Stage
		if !f.HasMarkdown {
			want = append(want, StageExtractInput)
		}
		if !f.HasPolishedMarkdown {
			want = append(want, StageRewriteContent)
		}
		if !f.HasOutput {
			want = append(want, StageGenerateOutput)
		}
		assert.Equal(t, want, FallbackPlan(f), "%+v", f)
	}
}

func TestFallbackPlan_MarkdownPresent(t *testing.T) {
	got := FallbackPlan(Flags{HasMarkdown: true})
	assert.Equal(t, []Stage{StageRewriteContent, StageGenerateOutput}, got)
}

func TestDecide_NoClient(t *testing.T) {
	p := New(nil, nil)
	p.MarkComplete(StageExtractInput)

	got := p.Decide(context.Background(), "# Jane", "", "")
	assert.Equal(t, []Stage{StageRewriteContent, StageGenerateOutput}, got)
	assert.True(t, p.State().FromFallback)
	assert.Equal(t, types.TemplateClassic, p.State().TemplateID)
}

func TestDecide_MalformedRepliesStaySufficient(t *testing.T) {
	replies := []string{
		"not json at all",
		"{",
		`{"templateChoice": "modern"}`,
		`{"stageList": "rewrite_content"}`,
		`{"stageList": []}`,
		`{"stageList": ["generate_output"]}`,
		`{"stageList": ["bogus", 42]}`,
		`{"stageList": ["extract_input", "extract_input"], "isComplete": true}`,
	}

	for _, r := range replies {
		for _, f := range allFlags() {
			p := New(reply(r), nil)
			p.state.Flags = f

			got := p.Decide(context.Background(), "text", "", "")
			if !f.HasPolishedMarkdown {
				assert.Contains(t, got, StageRewriteContent, "reply %q flags %+v", r, f)
			}
			if !f.HasOutput {
				assert.Contains(t, got, StageGenerateOutput, "reply %q flags %+v", r, f)
			}
			if f.HasMarkdown {
				assert.NotContains(t, got, StageExtractInput, "reply %q flags %+v", r, f)
			}
		}
	}
}

func TestDecide_CallError(t *testing.T) {
	client := &MockLLMClient{ChatFunc: func(_ context.Context, _, _ string) (string, error) {
		return "", errors.New("connection refused")
	}}
	p := New(client, nil)

	got := p.Decide(context.Background(), "text", "", "")
	assert.Equal(t, AllStages(), got)
	assert.Equal(t, 1, client.Calls)
}

func TestDecide_RepairsAndOrders(t *testing.T) {
	p := New(reply(`{"stageList": ["generate_output", "extract_input"], "templateChoice": "timeline", "templateReason": "经历丰富", "isComplete": false}`), nil)
	p.MarkComplete(StageExtractInput)

	got := p.Decide(context.Background(), "text", "后端工程师", "")
	assert.Equal(t, []Stage{StageRewriteContent, StageGenerateOutput}, got)

	state := p.State()
	assert.False(t, state.FromFallback)
	assert.Equal(t, types.TemplateTimeline, state.TemplateID)
	assert.Equal(t, "经历丰富", state.TemplateReason)
}

func TestDecide_InvalidTemplateCoerced(t *testing.T) {
	p := New(reply(`{"stageList": ["rewrite_content", "generate_output"], "templateChoice": "fancy"}`), nil)

	p.Decide(context.Background(), "text", "", "")
	assert.Equal(t, types.TemplateClassic, p.State().TemplateID)
}

func TestDecide_PromptCarriesFlagsAndPreview(t *testing.T) {
	var system, user string
	client := &MockLLMClient{ChatFunc: func(_ context.Context, s, u string) (string, error) {
		system, user = s, u
		return `{"stageList": []}`, nil
	}}
	p := New(client, nil)
	p.MarkComplete(StageExtractInput)

	text := strings.Repeat("a", 2500) + "TAIL"
	p.Decide(context.Background(), text, "", "")

	assert.Contains(t, system, "stageList")
	assert.Contains(t, user, "hasMarkdown: true")
	assert.Contains(t, user, "hasOutput: false")
	assert.Contains(t, user, strings.Repeat("a", 2000))
	assert.NotContains(t, user, strings.Repeat("a", 2001))
	assert.NotContains(t, user, "TAIL")
}

func TestMarkComplete_MonotonicAndStatus(t *testing.T) {
	p := New(nil, nil)
	assert.Equal(t, StatusInProgress, p.Status())

	p.MarkComplete(StageGenerateOutput)
	assert.Equal(t, StatusComplete, p.Status())

	p.MarkComplete(StageExtractInput)
	p.MarkComplete(StageGenerateOutput)
	require.Equal(t, StatusComplete, p.Status())
	assert.Equal(t, Flags{HasMarkdown: true, HasOutput: true}, p.State().Flags)
}

func TestState_ReturnsCopy(t *testing.T) {
	p := New(nil, nil)
	p.Decide(context.Background(), "", "", "")

	s := p.State()
	s.Stages[0] = "mutated"
	assert.Equal(t, StageExtractInput, p.State().Stages[0])
}
