package openai

import (
	"errors"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/chat"
)

// wrapError converts an OpenAI SDK error into a connection error, carrying the
// HTTP status code when the API answered.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return ai.NewConnectionError("openai: API error", apiErr.StatusCode, err)
	}
	return ai.NewConnectionError("openai: transport error", 0, err)
}
