package deepseek

import (
	"errors"
	"io"
	"testing"

	"github.com/cohesion-org/deepseek-go"
	ai "github.com/spetersoncode/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModel string

func (m testModel) String() string        { return string(m) }
func (m testModel) Provider() ai.Provider { return ai.ProviderDeepSeek }

type fakeStream struct {
	chunks []*deepseek.StreamChatCompletionResponse
	end    error
	closed bool
}

func (s *fakeStream) Recv() (*deepseek.StreamChatCompletionResponse, error) {
	if len(s.chunks) == 0 {
		return nil, s.end
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	return c, nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

func content(text string) *deepseek.StreamChatCompletionResponse {
	return &deepseek.StreamChatCompletionResponse{
		Choices: []deepseek.StreamChoices{{Delta: deepseek.StreamDelta{Content: text}}},
	}
}

func reasoning(text string) *deepseek.StreamChatCompletionResponse {
	return &deepseek.StreamChatCompletionResponse{
		Choices: []deepseek.StreamChoices{{Delta: deepseek.StreamDelta{ReasoningContent: text}}},
	}
}

func TestDecoder(t *testing.T) {
	t.Run("yields content in order and ends at EOF", func(t *testing.T) {
		s := &fakeStream{
			chunks: []*deepseek.StreamChatCompletionResponse{
				reasoning("thinking..."),
				content("Hel"),
				{},
				content("lo"),
			},
			end: io.EOF,
		}
		d := &decoder{stream: s}

		var got []string
		for d.Next() {
			got = append(got, d.Fragment())
		}
		assert.Equal(t, []string{"Hel", "lo"}, got)
		assert.NoError(t, d.Err())
		assert.False(t, d.Next())

		require.NoError(t, d.Close())
		assert.True(t, s.closed)
	})

	t.Run("transport error ends the sequence", func(t *testing.T) {
		s := &fakeStream{
			chunks: []*deepseek.StreamChatCompletionResponse{content("partial")},
			end:    errors.New("unexpected EOF while reading"),
		}
		d := &decoder{stream: s}

		require.True(t, d.Next())
		assert.Equal(t, "partial", d.Fragment())
		assert.False(t, d.Next())
		require.Error(t, d.Err())
		assert.True(t, ai.IsConnection(d.Err()))
	})
}

func TestBuildRequest(t *testing.T) {
	req, err := buildRequest(ai.Request{
		Prompt:       "hello",
		SystemPrompt: "only code",
		Model:        testModel("deepseek-chat"),
	})
	require.NoError(t, err)
	assert.Equal(t, "deepseek-chat", req.Model)
	assert.True(t, req.Stream)
	assert.Equal(t, ai.DefaultMaxTokens, req.MaxTokens)
	assert.Equal(t, []deepseek.ChatCompletionMessage{
		{Role: "system", Content: "only code"},
		{Role: "user", Content: "hello"},
	}, req.Messages)

	_, err = buildRequest(ai.Request{Prompt: "\xff", Model: testModel("deepseek-chat")})
	assert.True(t, ai.IsMalformedRequest(err))
}
