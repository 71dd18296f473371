package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/termkit/cache"
	"gitlab.com/tinyland/lab/termkit/config"
	"gitlab.com/tinyland/lab/termkit/display/layout"
)

const defaultCacheTTL = 15 * time.Minute

type renderOptions struct {
	*globalOptions
	width    int
	cacheDir string
	cacheTTL time.Duration
}

func newRenderCmd(g *globalOptions) *cobra.Command {
	opts := &renderOptions{globalOptions: g}
	cmd := &cobra.Command{
		Use:   "render [FILE|-]",
		Short: "Render a YAML document to stdout",
		Long:  "Render lays out every block of the document at the given width and writes the lines to stdout. With no FILE, or when FILE is -, the document is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "render width (default: document width, then terminal width)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "cache rendered output in this directory")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", defaultCacheTTL, "how long a cached render stays fresh")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	data, err := readDocument(cmd, args)
	if err != nil {
		return err
	}
	doc, err := config.ParseDocument(data)
	if err != nil {
		return err
	}
	enabled, err := applyColor(opts.color, doc.Color)
	if err != nil {
		return err
	}
	width := resolveWidth(opts.width, doc.Width)
	logger.Debug("render: start", slog.Int("width", width), slog.Bool("color", enabled), slog.Int("blocks", len(doc.Blocks)))

	var (
		store *cache.Store
		key   string
	)
	if opts.cacheDir != "" {
		store, err = cache.NewStore(opts.cacheDir, logger)
		if err != nil {
			return err
		}
		key = cache.Key(data, width, colorLabel(enabled))
		entry, fresh, err := store.Get(key, opts.cacheTTL)
		if err != nil {
			logger.Warn("render: cache lookup failed", slog.String("error", err.Error()))
		} else if entry != nil && fresh {
			return writeLines(cmd.OutOrStdout(), entry.Lines)
		}
	}

	lines, err := renderDocument(doc, width)
	if err != nil {
		return err
	}
	if store != nil {
		e := &cache.Entry{Width: width, Color: colorLabel(enabled), Lines: lines}
		if err := store.Put(key, e); err != nil {
			logger.Warn("render: cache store failed", slog.String("error", err.Error()))
		}
	}
	return writeLines(cmd.OutOrStdout(), lines)
}

// renderDocument renders every block of doc at width, top to bottom.
func renderDocument(doc *config.Document, width int) ([]string, error) {
	ws, err := doc.Build()
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, w := range ws {
		lines = append(lines, w.Render(width)...)
	}
	return lines, nil
}

// readDocument reads the file named by args, or stdin when there is none
// or it is "-".
func readDocument(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}

// resolveWidth prefers the flag, then the document, then the terminal.
func resolveWidth(flag, document int) int {
	switch {
	case flag > 0:
		return flag
	case document > 0:
		return document
	default:
		return layout.DetectTerminalWidth()
	}
}

func colorLabel(enabled bool) string {
	if enabled {
		return "color"
	}
	return "plain"
}

func writeLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
