package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperb1iss/signalrgb-go/internal/cli/ui"
	"github.com/hyperb1iss/signalrgb-go/signalrgb"
)

func (a *app) layoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "List and select device layouts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all available layouts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					layouts, err := client.GetLayouts()
					if err != nil {
						return err
					}
					table := ui.NewTable(a.out, "Available Layouts", []string{"LAYOUT ID", "TYPE"}, a.noColor)
					for _, layout := range layouts {
						table.AddRow(layout.ID, layout.Type)
					}
					table.Render()
					fmt.Fprintf(a.out, "Total layouts: %d\n", len(layouts))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "current",
			Short: "Show the active layout",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					layout, err := client.GetCurrentLayout()
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "Current layout: %s\n", layout.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "set <layout-id>",
			Short: "Activate a layout",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					layout, err := client.SetCurrentLayout(args[0])
					if err != nil {
						return err
					}
					a.successf("Current layout set to: %s", layout.ID)
					return nil
				})
			},
		},
	)

	return cmd
}
