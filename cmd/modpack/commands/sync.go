package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/modpack/internal/app"
	"go.trai.ch/modpack/internal/ui/output"
	"go.trai.ch/modpack/internal/ui/style"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download pinned mods and delete files the manifest no longer references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noDelete, _ := cmd.Flags().GetBool("no-delete")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Sync(cmd.Context(), app.SyncOptions{
				NoDelete: noDelete,
				Jobs:     jobs,
			})
		},
	}
	cmd.Flags().Bool("no-delete", false, "Keep files of mods no longer in the manifest")
	cmd.Flags().IntP("jobs", "j", 0, "Number of mods to download concurrently (0 uses the configured value)")
	return cmd
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [mods...]",
		Short: "Move pins to the newest compatible versions (all mods when none are named)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gameVersion, _ := cmd.Flags().GetString("game-version")

			results, err := c.app.Update(cmd.Context(), args, app.UpdateOptions{PlatformVersion: gameVersion})

			r := output.NewRenderer(cmd.OutOrStdout())
			arrow := r.NewStyle().Foreground(style.Iris).Render(style.Arrow)
			for _, res := range results {
				if !res.Changed() {
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", res.Slug, res.From, arrow, res.To)
			}
			return err
		},
	}
	cmd.Flags().StringP("game-version", "g", "", "Resolve against this game version instead of the manifest's")
	return cmd
}
