package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/export"
)

// NewExportCommand creates the export command group.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export garage data",
	}

	var out string
	yamlCmd := &cobra.Command{
		Use:   "yaml",
		Short: "Dump the whole garage as a YAML snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			data, err := export.GarageYAML(g)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	yamlCmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	cmd.AddCommand(yamlCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "fuel",
		Short: "Print the fuel log as shareable text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), export.FuelLogText(g.Fuel.Entries()))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "maintenance <id>",
		Short: "Print a maintenance record as shareable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			entry, ok := g.Maintenance.Get(args[0])
			if !ok {
				return fmt.Errorf("no maintenance entry with id %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), export.MaintenanceText(entry))
			return nil
		},
	})

	return cmd
}
