package openrouter

import (
	"fmt"

	"github.com/revrost/go-openrouter"
	ai "github.com/spetersoncode/chat"
)

func buildRequest(req ai.Request) (openrouter.ChatCompletionRequest, error) {
	messages, err := convertMessages(req)
	if err != nil {
		return openrouter.ChatCompletionRequest{}, err
	}
	return openrouter.ChatCompletionRequest{
		Model:     req.Model.String(),
		Messages:  messages,
		MaxTokens: req.OutputCap(),
		Stream:    true,
	}, nil
}

func convertMessages(req ai.Request) ([]openrouter.ChatCompletionMessage, error) {
	msgs, err := req.Messages()
	if err != nil {
		return nil, err
	}

	result := make([]openrouter.ChatCompletionMessage, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case ai.RoleSystem, ai.RoleUser:
			result = append(result, openrouter.ChatCompletionMessage{
				Role:    string(msg.Role),
				Content: openrouter.Content{Text: msg.Content},
			})
		default:
			return nil, ai.NewMalformedRequestError(fmt.Sprintf("unsupported role %q", msg.Role), nil)
		}
	}
	return result, nil
}
