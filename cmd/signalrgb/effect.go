package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyperb1iss/signalrgb-go/internal/cli/ui"
	"github.com/hyperb1iss/signalrgb-go/signalrgb"
)

func (a *app) effectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "effect [name]",
		Short: "List, inspect, and apply lighting effects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.showEffect(args[0])
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all available effects",
		Args:  cobra.NoArgs,
	}
	sortBy := list.Flags().String("sort", "name", "sort effects by 'name' or 'id'")
	reverse := list.Flags().Bool("reverse", false, "reverse the sort order")
	filter := list.Flags().String("filter", "", "only show effects whose name or description matches")
	list.RunE = func(cmd *cobra.Command, args []string) error {
		return a.listEffects(*sortBy, *reverse, *filter)
	}

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "current",
			Short: "Show the currently active effect",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					effect, err := client.GetCurrentEffect()
					if err != nil {
						return err
					}
					a.printEffect(effect, "Current Effect")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "apply <name>",
			Short: "Apply an effect by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					effect, err := client.ApplyEffectByName(args[0])
					if err != nil {
						return err
					}
					a.successf("Applied effect: %s", effect.Name())
					return nil
				})
			},
		},
		a.applyCmd("next", "Apply the next effect in list order",
			func(client *signalrgb.SyncClient) (signalrgb.Effect, error) {
				return client.ApplyNextEffect()
			}),
		a.applyCmd("previous", "Apply the previous effect in list order",
			func(client *signalrgb.SyncClient) (signalrgb.Effect, error) {
				return client.ApplyPreviousEffect()
			}),
		a.applyCmd("random", "Apply a random effect",
			func(client *signalrgb.SyncClient) (signalrgb.Effect, error) {
				return client.ApplyRandomEffect()
			}),
		&cobra.Command{
			Use:   "refresh",
			Short: "Reload the cached effect list",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withClient(func(client *signalrgb.SyncClient) error {
					effects, err := client.RefreshEffects()
					if err != nil {
						return err
					}
					a.successf("Effect list refreshed (%d effects)", len(effects))
					return nil
				})
			},
		},
	)

	return cmd
}

func (a *app) applyCmd(use, short string, apply func(*signalrgb.SyncClient) (signalrgb.Effect, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withClient(func(client *signalrgb.SyncClient) error {
				effect, err := apply(client)
				if err != nil {
					return err
				}
				a.successf("Applied effect: %s", effect.Name())
				return nil
			})
		},
	}
}

func (a *app) listEffects(sortBy string, reverse bool, filter string) error {
	return a.withClient(func(client *signalrgb.SyncClient) error {
		effects, err := client.ListEffects()
		if err != nil {
			return err
		}

		if filter != "" {
			query := strings.ToLower(filter)
			matched := effects[:0:0]
			for _, e := range effects {
				if strings.Contains(strings.ToLower(e.Name()), query) ||
					strings.Contains(strings.ToLower(e.Attributes.Description), query) {
					matched = append(matched, e)
				}
			}
			effects = matched
		}

		sorted := make([]signalrgb.Effect, len(effects))
		copy(sorted, effects)
		sort.SliceStable(sorted, func(i, j int) bool {
			var less bool
			if sortBy == "id" {
				less = strings.ToLower(sorted[i].ID) < strings.ToLower(sorted[j].ID)
			} else {
				less = strings.ToLower(sorted[i].Name()) < strings.ToLower(sorted[j].Name())
			}
			if reverse {
				return !less
			}
			return less
		})

		table := ui.NewTable(a.out, "Available Effects", []string{"ID", "NAME"}, a.noColor)
		for _, effect := range sorted {
			table.AddRow(effect.ID, effect.Name())
		}
		table.Render()
		fmt.Fprintf(a.out, "Total effects: %d\n", len(sorted))
		return nil
	})
}

func (a *app) showEffect(name string) error {
	return a.withClient(func(client *signalrgb.SyncClient) error {
		effect, err := client.GetEffectByName(name)
		if err != nil {
			return err
		}
		a.printEffect(effect, "Effect Details")
		return nil
	})
}

func (a *app) printEffect(effect signalrgb.Effect, title string) {
	attrs := effect.Attributes
	fields := [][2]string{
		{"ID", effect.ID},
		{"Name", attrs.Name},
		{"Publisher", orNA(attrs.Publisher)},
		{"Description", orNA(attrs.Description)},
		{"Uses Audio", fmt.Sprintf("%t", attrs.UsesAudio)},
		{"Uses Video", fmt.Sprintf("%t", attrs.UsesVideo)},
		{"Uses Input", fmt.Sprintf("%t", attrs.UsesInput)},
		{"Uses Meters", fmt.Sprintf("%t", attrs.UsesMeters)},
	}
	fmt.Fprintln(a.out, ui.Panel(title, fields, a.noColor))

	if len(attrs.Parameters) > 0 {
		keys := make([]string, 0, len(attrs.Parameters))
		for key := range attrs.Parameters {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		table := ui.NewTable(a.out, "Parameters", []string{"PARAMETER", "VALUE"}, a.noColor)
		for _, key := range keys {
			table.AddRow(key, string(attrs.Parameters[key]))
		}
		table.Render()
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
