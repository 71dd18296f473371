// termkit renders ANSI-aware tables, panels and rules described in a YAML
// document, and exposes the wrapping and truncation primitives on the
// command line.
//
// Usage:
//
//	termkit render [FILE|-] [--width N] [--color auto|always|never]
//	termkit preview [FILE]
//	termkit wrap --width N < input
//	termkit truncate --width N [--mode end|start|middle] < input
//	termkit keys [--format table|json]
//	termkit cache stats|prune|clear
//	termkit shell bash|zsh|fish|nushell
//	termkit man
//	termkit version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/termkit/display/color"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	color   string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command tree and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "termkit: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "termkit",
		Short:         "ANSI-aware terminal tables, panels and rules",
		Long:          "termkit lays out tables, panels and rules for the terminal. Widths are measured in visible characters, so colored and hyperlinked text never breaks alignment.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	root.PersistentFlags().StringVar(&opts.color, "color", "", "color mode: auto, always or never (default: document setting, then auto)")

	root.AddCommand(
		newRenderCmd(opts),
		newPreviewCmd(opts),
		newWrapCmd(),
		newTruncateCmd(),
		newKeysCmd(opts),
		newCacheCmd(opts),
		newShellCmd(),
		newManCmd(),
		newVersionCmd(),
	)
	return root
}

// newLogger returns a text logger on w. Only warnings are shown unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// applyColor resolves the effective color mode. The --color flag wins over
// the document setting, which wins over auto detection.
func applyColor(flag, document string) (bool, error) {
	name := flag
	if name == "" {
		name = document
	}
	mode, err := color.ParseMode(name)
	if err != nil {
		return false, err
	}
	return color.Apply(mode), nil
}
