package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	ai "github.com/spetersoncode/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoServer streams the last message of each request back word by word.
type echoServer struct {
	*httptest.Server
	hits    atomic.Int32
	systems chan string
}

func newEchoServer(t *testing.T) *echoServer {
	t.Helper()
	s := &echoServer{systems: make(chan string, 8)}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		raw, _ := io.ReadAll(r.Body)
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.Unmarshal(raw, &body))
		system := ""
		for _, m := range body.Messages {
			if m.Role == "system" {
				system = m.Content
			}
		}
		s.systems <- system
		prompt := body.Messages[len(body.Messages)-1].Content

		w.Header().Set("Content-Type", "text/event-stream")
		for _, word := range strings.SplitAfter(prompt, " ") {
			b, _ := json.Marshal(word)
			fmt.Fprintf(w, `data: {"id":"c1","object":"chat.completion.chunk","created":1,"model":"gpt-4o","choices":[{"index":0,"delta":{"content":%s},"finish_reason":null}]}`+"\n\n", b)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(s.Close)
	return s
}

// isolate runs the command against an empty config dir and no vendor keys.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, env := range []string{"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GOOGLE_API_KEY", "DEEPSEEK_API_KEY", "OPENROUTER_API_KEY", "CHAT_API_KEY", "CHAT_MODEL", "CHAT_KEYS_OPENAI", "CHAT_BASE_URLS_OPENAI"} {
		t.Setenv(env, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestChatStreamsToStdout(t *testing.T) {
	isolate(t)
	srv := newEchoServer(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CHAT_BASE_URLS_OPENAI", srv.URL+"/v1/")

	t.Run("prompt only", func(t *testing.T) {
		out, err := execute(t, "", "--max-tokens", "16", "Say", "hi")
		require.NoError(t, err)
		assert.Equal(t, "Say hi\n", out)
		assert.Empty(t, <-srv.systems)
	})

	t.Run("stdin is appended", func(t *testing.T) {
		out, err := execute(t, "func main() {}\n\n", "-m", "gpt-4o", "explain")
		require.NoError(t, err)
		assert.Equal(t, "explain\n\nfunc main() {}\n", out)
		<-srv.systems
	})

	t.Run("code flag sets the system prompt", func(t *testing.T) {
		_, err := execute(t, "", "--code", "hello world in Go")
		require.NoError(t, err)
		assert.Equal(t, codeSystemPrompt, <-srv.systems)
	})

	t.Run("system flag wins over code", func(t *testing.T) {
		_, err := execute(t, "", "--code", "--system", "answer in French", "hello")
		require.NoError(t, err)
		assert.Equal(t, "answer in French", <-srv.systems)
	})
}

func TestChatFailsWithoutKey(t *testing.T) {
	isolate(t)
	srv := newEchoServer(t)
	t.Setenv("CHAT_BASE_URLS_OPENAI", srv.URL+"/v1/")

	out, err := execute(t, "", "Say hi")
	require.Error(t, err)
	assert.True(t, ai.IsConfiguration(err))
	assert.Contains(t, err.Error(), "CHAT_KEYS_OPENAI")
	assert.Empty(t, out)
	assert.Zero(t, srv.hits.Load())
}

func TestChatRejectsBadInput(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	tests := []struct {
		name string
		args []string
	}{
		{"missing prompt", []string{}},
		{"unknown model", []string{"-m", "llama", "hi"}},
		{"negative max tokens", []string{"--max-tokens", "-1", "hi"}},
		{"bad log level", []string{"--log-level", "loud", "hi"}},
		{"missing config file", []string{"--config", "/nonexistent/chat.toml", "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestListModels(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "--list-models")
	require.NoError(t, err)
	assert.Contains(t, out, "gpt-4o")
	assert.Contains(t, out, "claude-3-7-sonnet-latest")
	assert.Contains(t, out, "openrouter/auto")
	assert.Contains(t, out, "PROVIDER")

	var defaults int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), "*") {
			defaults++
		}
	}
	assert.Equal(t, 5, defaults, "one default per provider")
}

func TestVersionFlag(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "chat version")
}
