package chat

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxTokens is the output cap used when a request leaves MaxTokens at zero.
const DefaultMaxTokens = 4096

// Request is a vendor-neutral description of a single streamed completion.
type Request struct {
	// Prompt is the user text. It must be non-empty after trimming trailing whitespace.
	Prompt string
	// SystemPrompt is an optional instruction sent ahead of the prompt.
	SystemPrompt string
	// Model selects the vendor and the model it runs.
	Model Model
	// APIKey authenticates against the vendor. It is never logged.
	APIKey string
	// MaxTokens caps generated output. Zero selects DefaultMaxTokens.
	MaxTokens int
}

// String renders the request for diagnostics with the credential redacted.
func (r Request) String() string {
	model := "<nil>"
	if r.Model != nil {
		model = r.Model.Provider().String() + ":" + r.Model.String()
	}
	key := ""
	if r.APIKey != "" {
		key = "[redacted]"
	}
	return fmt.Sprintf("Request{Model: %s, MaxTokens: %d, Prompt: %d bytes, SystemPrompt: %d bytes, APIKey: %q}",
		model, r.MaxTokens, len(r.Prompt), len(r.SystemPrompt), key)
}

// OutputCap returns the effective output token cap.
func (r Request) OutputCap() int {
	if r.MaxTokens == 0 {
		return DefaultMaxTokens
	}
	return r.MaxTokens
}

// Validate checks the preconditions that must hold before any network call.
func (r Request) Validate() error {
	if strings.TrimSpace(r.APIKey) == "" {
		return NewConfigurationError("missing API key", nil)
	}
	if r.Model == nil {
		return NewConfigurationError("no model selected", nil)
	}
	if p := r.Model.Provider(); !p.Supported() {
		return NewConfigurationError(fmt.Sprintf("unsupported provider %q", p), nil)
	}
	if r.Model.String() == "" {
		return NewConfigurationError(fmt.Sprintf("empty model identifier for %s", r.Model.Provider()), nil)
	}
	if r.MaxTokens < 0 {
		return NewConfigurationError(fmt.Sprintf("max tokens must be positive, got %d", r.MaxTokens), nil)
	}
	if strings.TrimRightFunc(r.Prompt, unicode.IsSpace) == "" {
		return NewMalformedRequestError("empty prompt", nil)
	}
	return nil
}

// Messages returns the payload entries shared by every vendor: an optional
// system entry followed by the user prompt.
func (r Request) Messages() ([]Message, error) {
	if !utf8.ValidString(r.SystemPrompt) {
		return nil, NewMalformedRequestError("system prompt is not valid UTF-8", nil)
	}
	if !utf8.ValidString(r.Prompt) {
		return nil, NewMalformedRequestError("prompt is not valid UTF-8", nil)
	}

	messages := make([]Message, 0, 2)
	if r.SystemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: r.SystemPrompt})
	}
	messages = append(messages, Message{Role: RoleUser, Content: r.Prompt})
	return messages, nil
}
