package deepseek

import (
	"errors"

	"github.com/cohesion-org/deepseek-go"
	ai "github.com/spetersoncode/chat"
)

// wrapError converts a DeepSeek SDK error into a connection error, keeping
// the HTTP status code when the API answered.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *deepseek.APIError
	if errors.As(err, &apiErr) {
		return ai.NewConnectionError("deepseek: API error", apiErr.StatusCode, err)
	}
	return ai.NewConnectionError("deepseek: transport error", 0, err)
}
