package main

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/termkit/display/text"
)

func newWrapCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "wrap",
		Short: "Wrap stdin to a width, keeping colors intact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width < 1 {
				return errors.New("wrap: --width must be at least 1")
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			input := strings.TrimSuffix(string(data), "\n")
			return writeLines(cmd.OutOrStdout(), text.Wrap(input, width))
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "maximum visible width of a line")
	return cmd
}

func newTruncateCmd() *cobra.Command {
	var (
		width int
		mode  string
	)
	cmd := &cobra.Command{
		Use:   "truncate",
		Short: "Truncate every line of stdin to a width",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width < 0 {
				return errors.New("truncate: --width must not be negative")
			}
			m, err := text.ParseEllipsisMode(mode)
			if err != nil {
				return err
			}
			var lines []string
			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for sc.Scan() {
				lines = append(lines, text.Truncate(sc.Text(), width, m))
			}
			if err := sc.Err(); err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), lines)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "maximum visible width of a line")
	cmd.Flags().StringVarP(&mode, "mode", "m", "end", "where to cut: end, start or middle")
	return cmd
}
