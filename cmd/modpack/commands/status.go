package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/modpack/internal/ui/output"
	"go.trai.ch/modpack/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show how the mods directory differs from the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.Consistent() {
				_, _ = fmt.Fprintln(out, "mods directory matches the manifest")
				if len(report.Entries) == 0 {
					return nil
				}
			}

			r := output.NewRenderer(out)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range report.Entries {
				icon, color := style.Mark(e.State)
				name := e.Slug
				if name == "" {
					name = "-"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					r.NewStyle().Foreground(color).Render(icon), e.State, name, e.VersionID, e.Filename)
			}
			return tw.Flush()
		},
	}
}
