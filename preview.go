package main

import (
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/termkit/config"
	"gitlab.com/tinyland/lab/termkit/display/tui"
)

func newPreviewCmd(g *globalOptions) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "preview [FILE]",
		Short: "Browse a document interactively",
		Long:  "Preview shows the document in a full-screen viewer. Use - and + to narrow and widen the render width, tab to move between blocks and q to quit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			doc, err := config.ParseDocument(data)
			if err != nil {
				return err
			}
			if _, err := applyColor(g.color, doc.Color); err != nil {
				return err
			}
			blocks, err := previewBlocks(doc)
			if err != nil {
				return err
			}
			if width == 0 {
				width = doc.Width
			}
			return tui.Run(blocks, width)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "initial render width (default: follow the window)")
	return cmd
}

// previewBlocks pairs each built widget with the kind of block it came from.
func previewBlocks(doc *config.Document) ([]tui.Block, error) {
	ws, err := doc.Build()
	if err != nil {
		return nil, err
	}
	blocks := make([]tui.Block, len(ws))
	for i, w := range ws {
		blocks[i] = tui.Block{Name: doc.Blocks[i].Kind(), Widget: w}
	}
	return blocks, nil
}
