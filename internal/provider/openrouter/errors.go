package openrouter

import (
	"errors"

	"github.com/revrost/go-openrouter"
	ai "github.com/spetersoncode/chat"
)

// wrapError converts an OpenRouter SDK error into a connection error,
// keeping the HTTP status code of API and request errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openrouter.APIError
	if errors.As(err, &apiErr) {
		return ai.NewConnectionError("openrouter: API error", apiErr.HTTPStatusCode, err)
	}
	var reqErr *openrouter.RequestError
	if errors.As(err, &reqErr) {
		return ai.NewConnectionError("openrouter: request error", reqErr.HTTPStatusCode, err)
	}
	return ai.NewConnectionError("openrouter: transport error", 0, err)
}
