package deepseek

import (
	"fmt"

	"github.com/cohesion-org/deepseek-go"
	ai "github.com/spetersoncode/chat"
)

func buildRequest(req ai.Request) (*deepseek.StreamChatCompletionRequest, error) {
	messages, err := convertMessages(req)
	if err != nil {
		return nil, err
	}
	return &deepseek.StreamChatCompletionRequest{
		Model:     req.Model.String(),
		Messages:  messages,
		MaxTokens: req.OutputCap(),
		Stream:    true,
	}, nil
}

func convertMessages(req ai.Request) ([]deepseek.ChatCompletionMessage, error) {
	msgs, err := req.Messages()
	if err != nil {
		return nil, err
	}

	result := make([]deepseek.ChatCompletionMessage, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case ai.RoleSystem, ai.RoleUser:
			result = append(result, deepseek.ChatCompletionMessage{Role: string(msg.Role), Content: msg.Content})
		default:
			return nil, ai.NewMalformedRequestError(fmt.Sprintf("unsupported role %q", msg.Role), nil)
		}
	}
	return result, nil
}
