package cli

import (
	"context"
	"fmt"
	"os"
)

// Execute runs the root command and reports errors on stderr.
func Execute(ctx context.Context) error {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "chat:", err)
		return err
	}
	return nil
}
