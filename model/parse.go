package model

import (
	"fmt"
	"strings"

	ai "github.com/spetersoncode/chat"
)

// Parse resolves a model name as typed on the command line.
//
// A catalog identifier such as "gpt-4o" selects that model. "provider:id"
// selects a custom model for the provider ("openai:gpt-4.1-nano"), and a bare
// provider name ("anthropic") selects its default model.
func Parse(name string) (ChatModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ChatModel{}, fmt.Errorf("empty model name")
	}

	for _, m := range catalog {
		if m.id == name {
			return m, nil
		}
	}

	if provider, id, ok := strings.Cut(name, ":"); ok {
		p := ai.Provider(strings.ToLower(strings.TrimSpace(provider)))
		if !p.Supported() {
			return ChatModel{}, fmt.Errorf("unknown provider %q in model %q", provider, name)
		}
		id = strings.TrimSpace(id)
		if id == "" {
			return ChatModel{}, fmt.Errorf("empty model identifier in %q", name)
		}
		for _, m := range catalog {
			if m.provider == p && m.id == id {
				return m, nil
			}
		}
		return Custom(p, id), nil
	}

	if m, ok := Default(ai.Provider(strings.ToLower(name))); ok {
		return m, nil
	}

	return ChatModel{}, fmt.Errorf("unknown model %q (use provider:model for models outside the catalog)", name)
}
