package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewInstallCommand creates the install command
func NewInstallCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the bundled modules and their scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rootOpts.Provider.Install(cmd.Context()); err != nil {
				return err
			}

			for _, module := range rootOpts.Provider.Modules() {
				fmt.Fprintf(cmd.OutOrStdout(), "installed %s\n", module.Library())
			}
			return nil
		},
	}
}

// NewUninstallCommand creates the uninstall command
func NewUninstallCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the bundled modules and their scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rootOpts.Provider.Uninstall(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "uninstalled all modules")
			return nil
		},
	}
}

// NewModulesCommand creates the modules command
func NewModulesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List installed modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := rootOpts.Provider.Lifecycle.Installed(cmd.Context())
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no modules installed")
				return nil
			}

			for _, record := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tinstalled %s\n", record.Library, record.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
