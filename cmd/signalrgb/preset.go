package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperb1iss/signalrgb-go/internal/cli/ui"
	"github.com/hyperb1iss/signalrgb-go/signalrgb"
)

func (a *app) presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "List and apply per-effect presets",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <effect-name>",
			Short: "List the presets of an effect",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					effect, err := client.GetEffectByName(args[0])
					if err != nil {
						return err
					}
					presets, err := client.GetEffectPresets(effect.ID)
					if err != nil {
						return err
					}

					title := fmt.Sprintf("Presets for %q", effect.Name())
					table := ui.NewTable(a.out, title, []string{"PRESET ID", "TYPE"}, a.noColor)
					for _, preset := range presets {
						table.AddRow(preset.ID, preset.Type)
					}
					table.Render()
					fmt.Fprintf(a.out, "Total presets: %d\n", len(presets))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "apply <effect-name> <preset-id>",
			Short: "Apply a preset to an effect",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					effect, err := client.GetEffectByName(args[0])
					if err != nil {
						return err
					}
					if err := client.ApplyEffectPreset(effect.ID, args[1]); err != nil {
						return err
					}
					a.successf("Applied preset %q to effect %q", args[1], effect.Name())
					return nil
				})
			},
		},
	)

	return cmd
}
