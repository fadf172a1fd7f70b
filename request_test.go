package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel is a simple Model implementation for testing.
type testModel struct {
	id       string
	provider Provider
}

func (m testModel) String() string     { return m.id }
func (m testModel) Provider() Provider { return m.provider }

var gpt4o = testModel{id: "gpt-4o", provider: ProviderOpenAI}

func TestRequestValidate(t *testing.T) {
	valid := Request{Prompt: "Say hi", Model: gpt4o, APIKey: "sk-test", MaxTokens: 16}

	t.Run("accepts a complete request", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("zero max tokens selects the default", func(t *testing.T) {
		r := valid
		r.MaxTokens = 0
		require.NoError(t, r.Validate())
		assert.Equal(t, DefaultMaxTokens, r.OutputCap())
	})

	tests := []struct {
		name          string
		mutate        func(*Request)
		configuration bool
	}{
		{"empty API key", func(r *Request) { r.APIKey = "" }, true},
		{"whitespace API key", func(r *Request) { r.APIKey = "  \n" }, true},
		{"nil model", func(r *Request) { r.Model = nil }, true},
		{"unsupported provider", func(r *Request) { r.Model = testModel{id: "x", provider: "mistral"} }, true},
		{"empty model id", func(r *Request) { r.Model = testModel{provider: ProviderAnthropic} }, true},
		{"negative max tokens", func(r *Request) { r.MaxTokens = -1 }, true},
		{"empty prompt", func(r *Request) { r.Prompt = "" }, false},
		{"whitespace prompt", func(r *Request) { r.Prompt = "\n\n  " }, false},
		{"vertical tab prompt", func(r *Request) { r.Prompt = "\v" }, false},
		{"no-break space prompt", func(r *Request) { r.Prompt = "\u00a0\u2003\n" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			if tt.configuration {
				assert.True(t, IsConfiguration(err), "expected configuration error, got %v", err)
			} else {
				assert.True(t, IsMalformedRequest(err), "expected malformed request error, got %v", err)
			}
		})
	}
}

func TestRequestMessages(t *testing.T) {
	t.Run("system entry precedes the prompt", func(t *testing.T) {
		r := Request{Prompt: "hello", SystemPrompt: "be brief"}
		msgs, err := r.Messages()
		require.NoError(t, err)
		assert.Equal(t, []Message{
			{Role: RoleSystem, Content: "be brief"},
			{Role: RoleUser, Content: "hello"},
		}, msgs)
	})

	t.Run("empty system prompt is omitted", func(t *testing.T) {
		msgs, err := Request{Prompt: "hello"}.Messages()
		require.NoError(t, err)
		assert.Equal(t, []Message{{Role: RoleUser, Content: "hello"}}, msgs)
	})

	t.Run("invalid UTF-8 is malformed", func(t *testing.T) {
		_, err := Request{Prompt: "bad \xff byte"}.Messages()
		assert.True(t, IsMalformedRequest(err))

		_, err = Request{Prompt: "ok", SystemPrompt: "\xc3\x28"}.Messages()
		assert.True(t, IsMalformedRequest(err))
	})
}

func TestRequestString(t *testing.T) {
	r := Request{Prompt: "hello", Model: gpt4o, APIKey: "sk-secret-value", MaxTokens: 16}
	s := r.String()

	assert.NotContains(t, s, "sk-secret-value")
	assert.Contains(t, s, "[redacted]")
	assert.Contains(t, s, "openai:gpt-4o")
}
