package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	ai "github.com/spetersoncode/chat"
)

// FileName is the config file looked up in the user config directory.
const FileName = "chat.toml"

// EnvPrefix prefixes the environment variables bound to config keys, as in
// CHAT_MODEL or CHAT_KEYS_ANTHROPIC.
const EnvPrefix = "CHAT"

// vendorEnv lists the conventional key variables of each vendor SDK.
var vendorEnv = map[ai.Provider]string{
	ai.ProviderOpenAI:     "OPENAI_API_KEY",
	ai.ProviderAnthropic:  "ANTHROPIC_API_KEY",
	ai.ProviderGoogle:     "GOOGLE_API_KEY",
	ai.ProviderDeepSeek:   "DEEPSEEK_API_KEY",
	ai.ProviderOpenRouter: "OPENROUTER_API_KEY",
}

// Config is the decoded content of chat.toml, the environment and the bound
// flags.
type Config struct {
	// APIKey is used for any provider without its own key.
	APIKey     string     `mapstructure:"api_key"`
	Keys       Vendors    `mapstructure:"keys"`
	BaseURLs   Vendors    `mapstructure:"base_urls"`
	Model      string     `mapstructure:"model"`
	MaxTokens  int        `mapstructure:"max_tokens"`
	LogLevel   string     `mapstructure:"log_level"`
	OpenRouter OpenRouter `mapstructure:"openrouter"`
}

// OpenRouter holds the attribution sent as HTTP-Referer and X-Title.
type OpenRouter struct {
	SiteURL string `mapstructure:"site_url"`
	Title   string `mapstructure:"title"`
}

// Vendors holds one string per provider.
type Vendors struct {
	OpenAI     string `mapstructure:"openai"`
	Anthropic  string `mapstructure:"anthropic"`
	Google     string `mapstructure:"google"`
	DeepSeek   string `mapstructure:"deepseek"`
	OpenRouter string `mapstructure:"openrouter"`
}

// For returns the value configured for provider.
func (v Vendors) For(provider ai.Provider) string {
	switch provider {
	case ai.ProviderOpenAI:
		return v.OpenAI
	case ai.ProviderAnthropic:
		return v.Anthropic
	case ai.ProviderGoogle:
		return v.Google
	case ai.ProviderDeepSeek:
		return v.DeepSeek
	case ai.ProviderOpenRouter:
		return v.OpenRouter
	default:
		return ""
	}
}

// KeyFor returns the API key for provider, falling back to APIKey.
func (c Config) KeyFor(provider ai.Provider) string {
	if key := strings.TrimSpace(c.Keys.For(provider)); key != "" {
		return key
	}
	return strings.TrimSpace(c.APIKey)
}

// Init prepares v: defaults, environment bindings and the config file.
// An empty configFile selects <user config dir>/chat.toml, which may be
// absent; an explicit file must exist.
func Init(v *viper.Viper, configFile string) error {
	v.SetDefault("api_key", "")
	v.SetDefault("model", "gpt-4o")
	v.SetDefault("max_tokens", ai.DefaultMaxTokens)
	v.SetDefault("log_level", "warn")
	v.SetDefault("openrouter.site_url", "")
	v.SetDefault("openrouter.title", "")
	for _, p := range ai.Providers() {
		v.SetDefault("keys."+p.String(), "")
		v.SetDefault("base_urls."+p.String(), "")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for p, env := range vendorEnv {
		key := "keys." + p.String()
		if err := v.BindEnv(key, EnvPrefix+"_KEYS_"+strings.ToUpper(p.String()), env); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}

	explicit := configFile != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil
		}
		configFile = filepath.Join(dir, FileName)
	}
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects an empty model, a negative max_tokens and an unknown
// log_level.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("invalid max_tokens: %d", c.MaxTokens)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	return nil
}
