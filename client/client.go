package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	ai "github.com/spetersoncode/chat"
	"github.com/spetersoncode/chat/internal/provider/anthropic"
	"github.com/spetersoncode/chat/internal/provider/deepseek"
	"github.com/spetersoncode/chat/internal/provider/google"
	"github.com/spetersoncode/chat/internal/provider/openai"
	"github.com/spetersoncode/chat/internal/provider/openrouter"
)

// APIKeys holds fallback API keys for different providers. A key set on the
// request always wins.
type APIKeys struct {
	OpenAI     string
	Anthropic  string
	Google     string
	DeepSeek   string
	OpenRouter string
}

// For returns the key configured for provider, or "".
func (k APIKeys) For(provider ai.Provider) string {
	switch provider {
	case ai.ProviderOpenAI:
		return k.OpenAI
	case ai.ProviderAnthropic:
		return k.Anthropic
	case ai.ProviderGoogle:
		return k.Google
	case ai.ProviderDeepSeek:
		return k.DeepSeek
	case ai.ProviderOpenRouter:
		return k.OpenRouter
	default:
		return ""
	}
}

// BaseURLs overrides the API endpoint per provider. Empty fields use the
// vendor's public endpoint.
type BaseURLs struct {
	OpenAI     string
	Anthropic  string
	Google     string
	DeepSeek   string
	OpenRouter string
}

// For returns the endpoint override for provider, or "".
func (u BaseURLs) For(provider ai.Provider) string {
	return APIKeys(u).For(provider)
}

// AppInfo identifies the calling application to OpenRouter through its
// attribution headers.
type AppInfo struct {
	SiteURL string
	Title   string
}

// Config holds configuration for creating a client.
type Config struct {
	// APIKeys supplies a key when the request carries none.
	APIKeys APIKeys

	// BaseURLs points providers at gateways or test servers.
	BaseURLs BaseURLs

	// DefaultModel is used when the request names no model.
	DefaultModel ai.Model

	// HTTPClient is passed to the vendor SDKs that accept one.
	HTTPClient *http.Client

	// OpenRouterApp is sent with every OpenRouter request when set.
	OpenRouterApp AppInfo

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned when no API key is available for the
// provider of the requested model.
type ErrMissingAPIKey struct {
	Provider string
	Model    string
}

func (e *ErrMissingAPIKey) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("no API key configured for %s (required by model %q)", e.Provider, e.Model)
	}
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrNoModel is returned when the request names no model and no default is
// configured.
type ErrNoModel struct{}

func (e *ErrNoModel) Error() string {
	return "no model specified: set Request.Model or client.Config DefaultModel"
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for submit and stream diagnostics.
func WithLogger(log logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// WithDefaultMaxTokens sets the output cap for requests that leave
// MaxTokens at zero.
func WithDefaultMaxTokens(n int) ClientOption {
	return func(c *Client) {
		c.defaultMaxTokens = n
	}
}

// Client dispatches chat requests to the provider of the requested model and
// relays the response as a stream of text fragments.
// A Client holds no per-request state and is safe for concurrent use.
type Client struct {
	apiKeys          APIKeys
	baseURLs         BaseURLs
	defaultModel     ai.Model
	httpClient       *http.Client
	openRouterApp    AppInfo
	events           chan<- Event
	log              logrus.FieldLogger
	defaultMaxTokens int
}

// New creates a client with the given configuration.
func New(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		apiKeys:       cfg.APIKeys,
		baseURLs:      cfg.BaseURLs,
		defaultModel:  cfg.DefaultModel,
		httpClient:    cfg.HTTPClient,
		openRouterApp: cfg.OpenRouterApp,
		events:        cfg.Events,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	return c
}

// Submit validates req, opens the provider's streaming endpoint and returns a
// stream of the response text.
//
// Configuration problems (missing key, no or unsupported model) fail with a
// configuration error before any network call; an empty or invalid prompt
// fails with a malformed request error. If the provider cannot be reached or
// rejects the request, Submit returns a connection error. Once a stream is
// returned, failures only end the stream early; see [chat.Stream.Err].
//
// Cancelling ctx or closing the stream aborts the exchange.
func (c *Client) Submit(ctx context.Context, req ai.Request) (*ai.Stream, error) {
	req = c.applyDefaults(req)

	requestID := uuid.NewString()
	log := c.log.WithField("request_id", requestID)
	ev := Event{RequestID: requestID}
	if req.Model != nil {
		log = log.WithFields(logrus.Fields{
			"provider": req.Model.Provider().String(),
			"model":    req.Model.String(),
		})
		ev.Provider = req.Model.Provider()
		ev.Model = req.Model.String()
	}

	start := time.Now()
	emit(c.events, ev.with(EventSubmitStart))

	fail := func(err error, msg string) (*ai.Stream, error) {
		failed := ev.with(EventSubmitError)
		failed.Duration = time.Since(start)
		failed.Error = err
		emit(c.events, failed)
		log.WithError(err).Warn(msg)
		return nil, err
	}

	if err := c.checkCredentials(req); err != nil {
		return fail(err, "request rejected")
	}
	if err := req.Validate(); err != nil {
		return fail(err, "request rejected")
	}

	log.WithField("max_tokens", req.OutputCap()).Debug("opening stream")

	ctx, cancel := context.WithCancel(ctx)
	dec, err := c.open(ctx, req)
	if err != nil {
		cancel()
		return fail(err, "could not open stream")
	}

	opened := ev.with(EventStreamOpen)
	opened.Duration = time.Since(start)
	emit(c.events, opened)
	log.WithField("latency", opened.Duration).Debug("stream open")

	stream := ai.Relay(dec, cancel, log)
	if c.events != nil {
		go func() {
			<-stream.Done()
			ended := ev.with(EventStreamEnd)
			ended.Duration = time.Since(start)
			ended.Error = stream.Err()
			emit(c.events, ended)
		}()
	}
	return stream, nil
}

func (c *Client) applyDefaults(req ai.Request) ai.Request {
	if req.Model == nil {
		req.Model = c.defaultModel
	}
	if strings.TrimSpace(req.APIKey) == "" && req.Model != nil {
		req.APIKey = c.apiKeys.For(req.Model.Provider())
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = c.defaultMaxTokens
	}
	return req
}

// checkCredentials reports the missing-model and missing-key cases with the
// provider named, ahead of the generic request validation.
func (c *Client) checkCredentials(req ai.Request) error {
	if req.Model == nil {
		return ai.NewConfigurationError("no model", &ErrNoModel{})
	}
	if strings.TrimSpace(req.APIKey) == "" {
		missing := &ErrMissingAPIKey{Provider: req.Model.Provider().String(), Model: req.Model.String()}
		return ai.NewConfigurationError("missing API key", missing)
	}
	return nil
}

// open dispatches to the vendor of req.Model and opens its stream.
func (c *Client) open(ctx context.Context, req ai.Request) (ai.Decoder, error) {
	p, err := c.provider(ctx, req)
	if err != nil {
		return nil, err
	}
	return p.Open(ctx, req)
}

// provider builds the vendor client for req. Vendor clients are built per
// request because the key travels with the request.
func (c *Client) provider(ctx context.Context, req ai.Request) (ai.ChatProvider, error) {
	provider := req.Model.Provider()
	baseURL := c.baseURLs.For(provider)

	switch provider {
	case ai.ProviderOpenAI:
		var opts []openai.ClientOption
		if baseURL != "" {
			opts = append(opts, openai.WithBaseURL(baseURL))
		}
		if c.httpClient != nil {
			opts = append(opts, openai.WithHTTPClient(c.httpClient))
		}
		return openai.New(req.APIKey, opts...), nil

	case ai.ProviderAnthropic:
		var opts []anthropic.ClientOption
		if baseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(baseURL))
		}
		if c.httpClient != nil {
			opts = append(opts, anthropic.WithHTTPClient(c.httpClient))
		}
		return anthropic.New(req.APIKey, opts...), nil

	case ai.ProviderGoogle:
		var opts []google.ClientOption
		if baseURL != "" {
			opts = append(opts, google.WithBaseURL(baseURL))
		}
		if c.httpClient != nil {
			opts = append(opts, google.WithHTTPClient(c.httpClient))
		}
		return google.New(ctx, req.APIKey, opts...)

	case ai.ProviderDeepSeek:
		var opts []deepseek.ClientOption
		if baseURL != "" {
			opts = append(opts, deepseek.WithBaseURL(baseURL))
		}
		if c.httpClient != nil {
			opts = append(opts, deepseek.WithHTTPClient(c.httpClient))
		}
		return deepseek.New(req.APIKey, opts...)

	case ai.ProviderOpenRouter:
		var opts []openrouter.ClientOption
		if baseURL != "" {
			opts = append(opts, openrouter.WithBaseURL(baseURL))
		}
		if c.httpClient != nil {
			opts = append(opts, openrouter.WithHTTPClient(c.httpClient))
		}
		if app := c.openRouterApp; app != (AppInfo{}) {
			opts = append(opts, openrouter.WithAppInfo(app.SiteURL, app.Title))
		}
		return openrouter.New(req.APIKey, opts...), nil

	default:
		return nil, ai.NewConfigurationError(fmt.Sprintf("unsupported provider %q", provider), nil)
	}
}
