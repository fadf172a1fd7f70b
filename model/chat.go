package model

import ai "github.com/spetersoncode/chat"

// ChatModel represents a chat/completion model from any provider.
type ChatModel struct {
	id       string
	provider ai.Provider
	custom   bool
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ChatModel) Provider() ai.Provider { return m.provider }

// IsCustom reports whether the model was built with Custom rather than taken
// from the catalog.
func (m ChatModel) IsCustom() bool { return m.custom }

// Custom selects a model that is not in the catalog. The identifier is sent
// to the provider unchanged.
func Custom(provider ai.Provider, id string) ChatModel {
	return ChatModel{id: id, provider: provider, custom: true}
}

// OpenAI GPT and O-Series Models
var (
	GPT35     = ChatModel{id: "gpt-3.5-turbo", provider: ai.ProviderOpenAI}
	GPT4o     = ChatModel{id: "gpt-4o", provider: ai.ProviderOpenAI}
	GPT4oMini = ChatModel{id: "gpt-4o-mini", provider: ai.ProviderOpenAI}
	GPT41     = ChatModel{id: "gpt-4.1", provider: ai.ProviderOpenAI}
	GPT5      = ChatModel{id: "gpt-5", provider: ai.ProviderOpenAI}
	GPT5Mini  = ChatModel{id: "gpt-5-mini", provider: ai.ProviderOpenAI}
	O4Mini    = ChatModel{id: "o4-mini", provider: ai.ProviderOpenAI}

	// DefaultGPTModel is the default OpenAI model.
	DefaultGPTModel = GPT4o
)

// Anthropic Claude Models
var (
	// Claude 3.x aliases
	Claude35 = ChatModel{id: "claude-3-5-sonnet-latest", provider: ai.ProviderAnthropic}
	Claude37 = ChatModel{id: "claude-3-7-sonnet-latest", provider: ai.ProviderAnthropic}

	// Claude 4.5 Family - auto-updating aliases
	ClaudeOpus45   = ChatModel{id: "claude-opus-4-5", provider: ai.ProviderAnthropic}
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: ai.ProviderAnthropic}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: ai.ProviderAnthropic}

	// DefaultClaudeModel is the default Anthropic model.
	DefaultClaudeModel = Claude37
)

// Google Gemini Models
var (
	Gemini25Pro       = ChatModel{id: "gemini-2.5-pro", provider: ai.ProviderGoogle}
	Gemini25Flash     = ChatModel{id: "gemini-2.5-flash", provider: ai.ProviderGoogle}
	Gemini25FlashLite = ChatModel{id: "gemini-2.5-flash-lite", provider: ai.ProviderGoogle}

	// DefaultGeminiModel is the default Google model.
	DefaultGeminiModel = Gemini25Flash
)

// DeepSeek Models
var (
	DeepSeekChat     = ChatModel{id: "deepseek-chat", provider: ai.ProviderDeepSeek}
	DeepSeekReasoner = ChatModel{id: "deepseek-reasoner", provider: ai.ProviderDeepSeek}

	// DefaultDeepSeekModel is the default DeepSeek model.
	DefaultDeepSeekModel = DeepSeekChat
)

// OpenRouter Models
var (
	// OpenRouterAuto lets OpenRouter pick the upstream model.
	OpenRouterAuto = ChatModel{id: "openrouter/auto", provider: ai.ProviderOpenRouter}

	// DefaultOpenRouterModel is the default OpenRouter model.
	DefaultOpenRouterModel = OpenRouterAuto
)

// catalog lists the named models in display order.
var catalog = []ChatModel{
	GPT35, GPT4o, GPT4oMini, GPT41, GPT5, GPT5Mini, O4Mini,
	Claude35, Claude37, ClaudeOpus45, ClaudeSonnet45, ClaudeHaiku45,
	Gemini25Pro, Gemini25Flash, Gemini25FlashLite,
	DeepSeekChat, DeepSeekReasoner,
	OpenRouterAuto,
}

// All returns every named model in the catalog.
func All() []ChatModel {
	out := make([]ChatModel, len(catalog))
	copy(out, catalog)
	return out
}

// Default returns the default model for a provider.
func Default(provider ai.Provider) (ChatModel, bool) {
	switch provider {
	case ai.ProviderOpenAI:
		return DefaultGPTModel, true
	case ai.ProviderAnthropic:
		return DefaultClaudeModel, true
	case ai.ProviderGoogle:
		return DefaultGeminiModel, true
	case ai.ProviderDeepSeek:
		return DefaultDeepSeekModel, true
	case ai.ProviderOpenRouter:
		return DefaultOpenRouterModel, true
	default:
		return ChatModel{}, false
	}
}

var _ ai.Model = ChatModel{}
