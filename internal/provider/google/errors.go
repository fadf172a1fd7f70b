package google

import (
	"errors"

	ai "github.com/spetersoncode/chat"
	"google.golang.org/genai"
)

// wrapError converts a Google GenAI error into a connection error.
// Note: genai.APIError doesn't expose headers, only the status code.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return ai.NewConnectionError("google: API error", apiErr.Code, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return ai.NewConnectionError("google: API error", apiErrPtr.Code, err)
	}
	return ai.NewConnectionError("google: transport error", 0, err)
}
