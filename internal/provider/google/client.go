package google

import (
	"context"
	"iter"
	"net/http"

	ai "github.com/spetersoncode/chat"
	"google.golang.org/genai"
)

// Client wraps the Google GenAI SDK to open streaming generateContent calls.
type Client struct {
	client *genai.Client
}

// New creates a new Google GenAI client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	var cfg clientConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.baseURL},
	})
	if err != nil {
		return nil, ai.NewConfigurationError("google: create client", err)
	}
	return &Client{client: client}, nil
}

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures the Google client.
type ClientOption func(*clientConfig)

// WithBaseURL overrides the Gemini API endpoint.
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

// Open starts a streaming generateContent call. The SDK exposes the stream as
// an iterator that only connects when pulled, so Open pulls the first
// response itself to report a rejected request synchronously.
func (c *Client) Open(ctx context.Context, req ai.Request) (ai.Decoder, error) {
	contents, config, err := buildContents(req)
	if err != nil {
		return nil, err
	}

	seq := c.client.Models.GenerateContentStream(ctx, req.Model.String(), contents, config)
	next, stop := iter.Pull2(seq)

	first, err, ok := next()
	if !ok {
		stop()
		return &decoder{done: true}, nil
	}
	if err != nil {
		stop()
		return nil, wrapError(err)
	}
	return &decoder{next: next, stop: stop, pending: first}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
