package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/termkit/shell"
)

func newShellCmd() *cobra.Command {
	cfg := shell.DefaultIntegrationConfig()
	var noStartup bool
	cmd := &cobra.Command{
		Use:       "shell bash|zsh|fish|nushell",
		Short:     "Print shell integration to source in your shell rc file",
		Example:   `  eval "$(termkit shell bash)"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "nushell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := shell.ParseShellType(args[0])
			if err != nil {
				return err
			}
			cfg.RenderOnStartup = !noStartup
			_, err = fmt.Fprint(cmd.OutOrStdout(), shell.GenerateIntegration(st, cfg))
			return err
		},
	}
	cmd.Flags().StringVar(&cfg.BinaryPath, "binary", cfg.BinaryPath, "termkit binary the script calls")
	cmd.Flags().StringVar(&cfg.DocumentPath, "document", cfg.DocumentPath, "document rendered at start-up")
	cmd.Flags().StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "render cache directory")
	cmd.Flags().StringVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "how long a cached render stays fresh")
	cmd.Flags().BoolVar(&noStartup, "no-startup", false, "do not render the document when the shell starts")
	return cmd
}
