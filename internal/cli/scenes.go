package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewScenesCommand creates the scenes command
func NewScenesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List installed scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := rootOpts.Provider.Scenes.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no scenes installed")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TEMPLATE\tID\tTITLE")
			for _, scene := range all {
				fmt.Fprintf(w, "%s\t%s\t%s\n", scene.Template, scene.ID, scene.Title)
			}
			return w.Flush()
		},
	}
}
