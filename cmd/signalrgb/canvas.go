package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hyperb1iss/signalrgb-go/signalrgb"
)

func (a *app) canvasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Control canvas power and brightness",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the canvas state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					state, err := client.GetCurrentState()
					if err != nil {
						return err
					}
					power := "disabled"
					if state.Attributes.Enabled {
						power = "enabled"
					}
					fmt.Fprintf(a.out, "Canvas: %s\n", power)
					fmt.Fprintf(a.out, "Brightness: %d\n", state.Attributes.GlobalBrightness)
					fmt.Fprintf(a.out, "Effect: %s\n", orNA(state.Attributes.Name))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "brightness [value]",
			Short: "Get or set the global brightness (0-100)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					if len(args) == 0 {
						value, err := client.GetBrightness()
						if err != nil {
							return err
						}
						fmt.Fprintf(a.out, "Current brightness: %d\n", value)
						return nil
					}

					value, err := strconv.Atoi(args[0])
					if err != nil {
						return fmt.Errorf("invalid brightness %q: expected an integer", args[0])
					}
					if err := client.SetBrightness(value); err != nil {
						return err
					}
					a.successf("Brightness set to: %d", value)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "enable",
			Short: "Enable the canvas",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.setEnabled(true)
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Disable the canvas",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.setEnabled(false)
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Toggle the canvas enabled state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					enabled, err := client.GetEnabled()
					if err != nil {
						return err
					}
					if err := client.SetEnabled(!enabled); err != nil {
						return err
					}
					if enabled {
						a.successf("Canvas disabled")
					} else {
						a.successf("Canvas enabled")
					}
					return nil
				})
			},
		},
	)

	return cmd
}

func (a *app) setEnabled(value bool) error {
	return a.withClient(func(client *signalrgb.SyncClient) error {
		if err := client.SetEnabled(value); err != nil {
			return err
		}
		if value {
			a.successf("Canvas enabled")
		} else {
			a.successf("Canvas disabled")
		}
		return nil
	})
}
