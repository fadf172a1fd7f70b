package deepseek

import (
	"context"
	"net/http"
	"time"

	"github.com/cohesion-org/deepseek-go"
	ai "github.com/spetersoncode/chat"
)

// DefaultTimeout bounds a whole DeepSeek exchange. The SDK always applies a
// deadline to the stream context and falls back to five minutes (or
// $DEEPSEEK_TIMEOUT) when none is configured, so the client sets one
// explicitly.
const DefaultTimeout = time.Hour

// Client wraps the DeepSeek SDK to open streaming chat completions.
type Client struct {
	client *deepseek.Client
}

// New creates a new DeepSeek client with the given API key.
func New(apiKey string, opts ...ClientOption) (*Client, error) {
	cfg := clientConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	dsOpts := []deepseek.Option{deepseek.WithTimeout(cfg.timeout)}
	if cfg.baseURL != "" {
		dsOpts = append(dsOpts, deepseek.WithBaseURL(cfg.baseURL))
	}
	if cfg.httpClient != nil {
		dsOpts = append(dsOpts, deepseek.WithHTTPClient(cfg.httpClient))
	}

	client, err := deepseek.NewClientWithOptions(apiKey, dsOpts...)
	if err != nil {
		return nil, ai.NewConfigurationError("deepseek: create client", err)
	}
	return &Client{client: client}, nil
}

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// ClientOption configures the DeepSeek client.
type ClientOption func(*clientConfig)

// WithBaseURL overrides the DeepSeek API endpoint. The SDK appends request
// paths directly, so the URL should end with a slash.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithTimeout replaces DefaultTimeout as the deadline for one exchange,
// from the request until the last chunk. It must be positive.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// Open starts a streaming chat completion.
func (c *Client) Open(ctx context.Context, req ai.Request) (ai.Decoder, error) {
	streamReq, err := buildRequest(req)
	if err != nil {
		return nil, err
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, streamReq)
	if err != nil {
		return nil, wrapError(err)
	}
	return &decoder{stream: stream}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
