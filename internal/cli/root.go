package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	ai "github.com/spetersoncode/chat"
	"github.com/spetersoncode/chat/client"
	"github.com/spetersoncode/chat/internal/config"
	"github.com/spetersoncode/chat/internal/version"
	"github.com/spetersoncode/chat/model"
)

// codeSystemPrompt asks for bare code, selected by --code.
const codeSystemPrompt = "Provide only code as output without any description.\n" +
	"Provide only code in plain text format without Markdown formatting.\n" +
	"Do not include symbols such as ``` or ```language.\n" +
	"If there is a lack of details, provide most logical solution.\n" +
	"You are not allowed to ask for more details.\n" +
	"For example if the prompt is \"Hello world Rust\", you should return \"fn main() {\\n    println!(\"Hello, world!\");\\n}\"."

// Options holds the flags that are not bound to config keys.
type Options struct {
	Config     string
	Code       bool
	System     string
	ListModels bool
}

// NewRootCmd builds the chat command. Each call uses its own viper instance.
func NewRootCmd() *cobra.Command {
	opts := &Options{}
	v := viper.New()

	root := &cobra.Command{
		Use:   "chat [flags] <prompt>",
		Short: "Stream a chat completion to stdout",
		Long: `chat sends one prompt to a hosted language model and prints the answer as it
is generated. Text piped on stdin is appended to the prompt.`,
		Example: `  chat "explain goroutines in one paragraph"
  git diff | chat -m claude-3-7-sonnet-latest "write a commit message for this diff"
  chat --code "reverse a linked list in Go" > reverse.go`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, opts.Config)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, opts, args)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.Config, "config", "", "config file (default: <user config dir>/"+config.FileName+")")
	flags.StringP("model", "m", "gpt-4o", "model name, or provider:model for models outside the catalog")
	flags.BoolVar(&opts.Code, "code", false, "answer with code only")
	flags.StringVar(&opts.System, "system", "", "system prompt (overrides --code)")
	flags.Int("max-tokens", ai.DefaultMaxTokens, "maximum number of tokens to generate")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&opts.ListModels, "list-models", false, "list the model catalog and exit")

	_ = v.BindPFlag("model", flags.Lookup("model"))
	_ = v.BindPFlag("max_tokens", flags.Lookup("max-tokens"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	return root
}

func initConfig(v *viper.Viper, configFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return config.Init(v, configFile)
}

func run(cmd *cobra.Command, v *viper.Viper, opts *Options, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	out := cmd.OutOrStdout()
	if opts.ListModels {
		return listModels(out)
	}

	if len(args) == 0 {
		return errors.New("missing prompt")
	}
	stdin, err := readStdin(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	prompt := composePrompt(strings.Join(args, " "), stdin)

	m, err := model.Parse(cfg.Model)
	if err != nil {
		return err
	}

	c := client.New(client.Config{
		BaseURLs:      client.BaseURLs(cfg.BaseURLs),
		OpenRouterApp: client.AppInfo(cfg.OpenRouter),
	}, client.WithLogger(log))

	stream, err := c.Submit(cmd.Context(), ai.Request{
		Prompt:       prompt,
		SystemPrompt: systemPrompt(opts),
		Model:        m,
		APIKey:       cfg.KeyFor(m.Provider()),
		MaxTokens:    cfg.MaxTokens,
	})
	if err != nil {
		return describe(err, m)
	}
	defer stream.Close()

	if err := writeStream(out, stream); err != nil {
		return err
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("response ended early: %w", err)
	}
	return nil
}

func systemPrompt(opts *Options) string {
	switch {
	case opts.System != "":
		return opts.System
	case opts.Code:
		return codeSystemPrompt
	default:
		return ""
	}
}

// writeStream copies fragments to w as they arrive and ends the output with
// a newline. A failed write closes the stream.
func writeStream(w io.Writer, stream *ai.Stream) error {
	for fragment := range stream.All() {
		if _, err := io.WriteString(w, fragment); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func listModels(w io.Writer) error {
	table := uitable.New()
	table.MaxColWidth = 60
	table.Separator = "  "
	table.AddRow("PROVIDER", "MODEL", "DEFAULT")
	for _, m := range model.All() {
		mark := ""
		if def, ok := model.Default(m.Provider()); ok && def == m {
			mark = "*"
		}
		table.AddRow(m.Provider(), m, mark)
	}
	_, err := fmt.Fprintln(w, table)
	return err
}

// describe adds a hint for the configuration errors a user can fix.
func describe(err error, m model.ChatModel) error {
	var missing *client.ErrMissingAPIKey
	if errors.As(err, &missing) {
		return fmt.Errorf("%w: set keys.%s or api_key in %s, or export %s_KEYS_%s",
			err, m.Provider(), config.FileName, config.EnvPrefix, strings.ToUpper(m.Provider().String()))
	}
	return err
}

func newLogger(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)
	return log
}
