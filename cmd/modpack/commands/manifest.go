package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modpack/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty manifest in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, _ := cmd.Flags().GetString("loader")
			gameVersion, _ := cmd.Flags().GetString("game-version")

			return c.app.Init(app.InitOptions{
				PlatformVersion: gameVersion,
				Loader:          loader,
			})
		},
	}
	cmd.Flags().StringP("loader", "l", "fabric", "Mod loader new mods must support")
	cmd.Flags().StringP("game-version", "g", "", "Game version new mods are resolved against")
	_ = cmd.MarkFlagRequired("game-version")
	return cmd
}

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <mods...>",
		Short: "Pin mods in the manifest (slug or slug:version)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			gameVersion, _ := cmd.Flags().GetString("game-version")
			sync, _ := cmd.Flags().GetBool("sync")

			return c.app.Add(cmd.Context(), args, app.AddOptions{
				PlatformVersion: gameVersion,
				Sync:            sync,
			})
		},
	}
	cmd.Flags().StringP("game-version", "g", "", "Resolve against this game version instead of the manifest's")
	cmd.Flags().Bool("sync", false, "Sync the mods directory afterwards")
	return cmd
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <mods...>",
		Aliases: []string{"rm"},
		Short:   "Drop mods from the manifest",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sync, _ := cmd.Flags().GetBool("sync")
			noDelete, _ := cmd.Flags().GetBool("no-delete")

			return c.app.Remove(cmd.Context(), args, app.RemoveOptions{
				Sync:     sync,
				NoDelete: noDelete,
			})
		},
	}
	cmd.Flags().Bool("sync", false, "Sync the mods directory afterwards")
	cmd.Flags().Bool("no-delete", false, "Keep files of removed mods when syncing")
	return cmd
}
