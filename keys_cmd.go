package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/termkit/display/layout"
	"gitlab.com/tinyland/lab/termkit/display/tui"
	"gitlab.com/tinyland/lab/termkit/display/widgets"
)

func newKeysCmd(g *globalOptions) *cobra.Command {
	var (
		format   string
		category string
	)
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the preview keybindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := applyColor(g.color, ""); err != nil {
				return err
			}
			return runKeysCommand(cmd, format, category)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "table", "output format: table or json")
	cmd.Flags().StringVar(&category, "category", "", "only list bindings of this category")
	return cmd
}

// runKeysCommand prints the keybindings of the preview.
func runKeysCommand(cmd *cobra.Command, format, category string) error {
	reg := tui.DefaultRegistry()
	if category != "" {
		filtered := reg.ByCategory(tui.KeyCategory(category))
		if len(filtered) == 0 {
			return fmt.Errorf("keys: no bindings found for category %q", category)
		}
		reg = &tui.KeyRegistry{Entries: filtered}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(reg.FormatJSON(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	case "table":
		_, err := fmt.Fprintln(cmd.OutOrStdout(), widgets.RenderString(reg.Table(), layout.DetectTerminalWidth()))
		return err
	default:
		return fmt.Errorf("keys: unknown format %q (want table or json)", format)
	}
}
