package chat

// Provider identifies an AI provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGoogle     Provider = "google"
	ProviderDeepSeek   Provider = "deepseek"
	ProviderOpenRouter Provider = "openrouter"
)

// Providers lists every supported provider in a stable order.
func Providers() []Provider {
	return []Provider{
		ProviderOpenAI,
		ProviderAnthropic,
		ProviderGoogle,
		ProviderDeepSeek,
		ProviderOpenRouter,
	}
}

// Supported reports whether p is one of the known providers.
func (p Provider) Supported() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderDeepSeek, ProviderOpenRouter:
		return true
	default:
		return false
	}
}

// Model selects a vendor and the model the vendor should run.
// String returns the wire-level identifier the vendor API expects.
type Model interface {
	String() string
	Provider() Provider
}
