package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/chat"
)

// wrapError converts an Anthropic SDK error into a connection error.
// Overloaded (529) and other API failures keep their status code.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return ai.NewConnectionError("anthropic: API error", apiErr.StatusCode, err)
	}
	return ai.NewConnectionError("anthropic: transport error", 0, err)
}
