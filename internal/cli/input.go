package cli

import (
	"io"
	"os"
	"strings"
	"unicode"
)

// readStdin returns piped input, or "" when r is an interactive terminal.
func readStdin(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok {
		fi, err := f.Stat()
		if err != nil || fi.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// composePrompt appends piped input to the prompt after a blank line and
// trims trailing whitespace from the result.
func composePrompt(prompt, stdin string) string {
	if stdin == "" {
		return prompt
	}
	return strings.TrimRightFunc(prompt+"\n\n"+stdin, unicode.IsSpace)
}
