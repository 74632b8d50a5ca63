package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wgomg/sumario/internal/mailbody"
	"github.com/wgomg/sumario/internal/processor"
)

func newHighlightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "highlight [file]",
		Short: "Highlight the action items of an HTML email body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			container, err := mailbody.NewHTMLContainer(raw)
			if err != nil {
				return err
			}

			items := processor.NewEngine(nil).ActionItems(container.Text())
			container.Highlight(items)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), container.Content())
			return err
		},
	}
}
