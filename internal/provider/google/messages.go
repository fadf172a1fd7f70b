package google

import (
	"fmt"

	ai "github.com/spetersoncode/chat"
	"google.golang.org/genai"
)

// buildContents converts the request into Gemini contents. The system prompt
// travels in the config's SystemInstruction rather than as a turn.
func buildContents(req ai.Request) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	messages, err := req.Messages()
	if err != nil {
		return nil, nil, err
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.OutputCap()),
	}
	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			config.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: msg.Content}},
			}
		case ai.RoleUser:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		default:
			return nil, nil, ai.NewMalformedRequestError(fmt.Sprintf("unsupported role %q", msg.Role), nil)
		}
	}
	return contents, config, nil
}

// BlockedError indicates the request was blocked by content filtering.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("request blocked: %s", e.Reason)
}
