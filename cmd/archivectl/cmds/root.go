package cmds

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "archivectl",
	Short: "Operator utilities for the archive API",
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
