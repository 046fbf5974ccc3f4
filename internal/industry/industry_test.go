package industry

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	ChatFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (m *MockLLMClient) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, systemPrompt, userPrompt)
	}
	return "", nil
}

func (m *MockLLMClient) Model() string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func TestDefaultTable_CoversEveryIndustry(t *testing.T) {
	table := DefaultTable()
	for _, ind := range types.AllIndustries() {
		t.Run(string(ind), func(t *testing.T) {
			require.True(t, table.Has(ind))
			p := table.Lookup(ind)
			assert.NotEmpty(t, p.Persona)
			assert.NotEmpty(t, p.Metrics)
			assert.NotEmpty(t, p.Verbs)
			assert.NotEmpty(t, p.Examples)
		})
	}
	assert.Len(t, table.Industries(), 11)
}

func TestLookup_UnknownCoercedToGeneral(t *testing.T) {
	table := DefaultTable()
	general := table.Lookup(types.IndustryGeneral)

	for _, raw := range []string{"aerospace", "", "Technology", "通用"} {
		assert.Equal(t, general, table.Lookup(types.Industry(raw)), raw)
	}
}

func TestLookup_ReturnsCopies(t *testing.T) {
	table := DefaultTable()
	p := table.Lookup(types.IndustryFinance)
	p.Verbs[0] = "mutated"

	assert.NotEqual(t, "mutated", table.Lookup(types.IndustryFinance).Verbs[0])
}

func TestDetect_NilClient(t *testing.T) {
	got := Detect(context.Background(), nil, "text", "", "")
	assert.Equal(t, types.DefaultIndustryContext(), got)
}

func TestDetect_ValidReply(t *testing.T) {
	client := &MockLLMClient{
		ChatFunc: func(_ context.Context, _, _ string) (string, error) {
			return "```json\n{\"industry\": \"Finance\", \"jobFunction\": \"investment\", \"seniority\": \"senior\"}\n```", nil
		},
	}

	got := Detect(context.Background(), client, "投行分析师", "VP", "")
	assert.Equal(t, types.IndustryFinance, got.Industry)
	assert.Equal(t, "investment", got.JobFunction)
	assert.Equal(t, types.SenioritySenior, got.Seniority)
}

func TestDetect_Fallbacks(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  types.IndustryContext
	}{
		{
			name: "call failure",
			err:  errors.New("timeout"),
			want: types.DefaultIndustryContext(),
		},
		{
			name:  "not json",
			reply: "I think this is finance.",
			want:  types.DefaultIndustryContext(),
		},
		{
			name:  "missing industry",
			reply: `{"jobFunction": "sales"}`,
			want:  types.DefaultIndustryContext(),
		},
		{
			name:  "unknown industry keeps other fields",
			reply: `{"industry": "aerospace", "jobFunction": "design", "seniority": "junior"}`,
			want:  types.IndustryContext{Industry: types.IndustryGeneral, JobFunction: "design", Seniority: types.SeniorityJunior},
		},
		{
			name:  "invalid seniority",
			reply: `{"industry": "retail", "jobFunction": "", "seniority": "guru"}`,
			want:  types.IndustryContext{Industry: types.IndustryRetail, JobFunction: "engineering", Seniority: types.SeniorityMid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockLLMClient{
				ChatFunc: func(_ context.Context, _, _ string) (string, error) {
					return tt.reply, tt.err
				},
			}
			assert.Equal(t, tt.want, Detect(context.Background(), client, "text", "", ""))
		})
	}
}

func TestDetect_PromptTruncation(t *testing.T) {
	var system, user string
	client := &MockLLMClient{
		ChatFunc: func(_ context.Context, s, u string) (string, error) {
			system, user = s, u
			return `{"industry": "technology"}`, nil
		},
	}

	long := make([]rune, 4000)
	for i := range long {
		long[i] = '字'
	}
	Detect(context.Background(), client, string(long), string(long), string(long))

	assert.Contains(t, system, "technology")
	assert.Contains(t, system, "jobFunction")
	// 1500 chars of content plus two 500-char targets, each well below the raw 4000
	assert.Less(t, utf8.RuneCountInString(user), 1500+500+500+200)
	assert.Greater(t, utf8.RuneCountInString(user), 2500)
}
