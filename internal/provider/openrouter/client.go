package openrouter

import (
	"context"
	"net/http"

	"github.com/revrost/go-openrouter"
	ai "github.com/spetersoncode/chat"
)

// Client wraps the OpenRouter SDK to open streaming chat completions.
type Client struct {
	client *openrouter.Client
}

// New creates a new OpenRouter client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	cfg := openrouter.DefaultConfig(apiKey)
	for _, opt := range opts {
		opt(cfg)
	}
	return &Client{client: openrouter.NewClientWithConfig(*cfg)}
}

// ClientOption configures the OpenRouter client.
type ClientOption func(*openrouter.ClientConfig)

// WithBaseURL overrides the OpenRouter API endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *openrouter.ClientConfig) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *openrouter.ClientConfig) {
		c.HTTPClient = hc
	}
}

// WithAppInfo sets the attribution headers OpenRouter shows on its rankings.
func WithAppInfo(siteURL, title string) ClientOption {
	return func(c *openrouter.ClientConfig) {
		c.HttpReferer = siteURL
		c.XTitle = title
	}
}

// Open starts a streaming chat completion.
func (c *Client) Open(ctx context.Context, req ai.Request) (ai.Decoder, error) {
	chatReq, err := buildRequest(req)
	if err != nil {
		return nil, err
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, chatReq)
	if err != nil {
		return nil, wrapError(err)
	}
	return &decoder{stream: stream}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
