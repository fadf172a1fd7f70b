package anthropic

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	ai "github.com/spetersoncode/chat"
)

func buildParams(req ai.Request) (anthropic.MessageNewParams, error) {
	msgs, system, err := convertMessages(req)
	if err != nil {
		return anthropic.MessageNewParams{}, err
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model.String()),
		MaxTokens: int64(req.OutputCap()),
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	return params, nil
}

// convertMessages splits the conversation into user turns and the dedicated
// system field.
func convertMessages(req ai.Request) ([]anthropic.MessageParam, []anthropic.TextBlockParam, error) {
	messages, err := req.Messages()
	if err != nil {
		return nil, nil, err
	}

	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam
	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			// Anthropic rejects empty text blocks
			if msg.Content != "" {
				system = append(system, anthropic.TextBlockParam{Text: msg.Content})
			}
		case ai.RoleUser:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			return nil, nil, ai.NewMalformedRequestError(fmt.Sprintf("unsupported role %q", msg.Role), nil)
		}
	}
	return result, system, nil
}
