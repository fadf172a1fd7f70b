package openai

import (
	"fmt"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/chat"
)

func buildParams(req ai.Request) (openai.ChatCompletionNewParams, error) {
	messages, err := convertMessages(req)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}
	return openai.ChatCompletionNewParams{
		Model:               req.Model.String(),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(req.OutputCap())),
	}, nil
}

func convertMessages(req ai.Request) ([]openai.ChatCompletionMessageParamUnion, error) {
	msgs, err := req.Messages()
	if err != nil {
		return nil, err
	}

	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case ai.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case ai.RoleUser:
			result = append(result, openai.UserMessage(msg.Content))
		default:
			return nil, ai.NewMalformedRequestError(fmt.Sprintf("unsupported role %q", msg.Role), nil)
		}
	}
	return result, nil
}
