package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/analysis"
)

// NewMileageCommand creates the mileage command group.
func NewMileageCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mileage",
		Short: "Show or update the odometer reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			p := g.Car.Profile()
			if rootOpts.Format == "json" {
				return printJSON(cmd, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cluster: %d mi\nActual:  %d mi (offset %d)\n",
				p.ClusterMileage, p.ActualMileage, p.MileageOffset)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <cluster-miles>",
		Short: "Record a new cluster reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cluster, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid mileage %q", args[0])
			}
			if !analysis.ValidMileage(cluster) {
				return fmt.Errorf("mileage %d out of range 0-999999", cluster)
			}
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			// Odometers only count up; a lower reading is an input error.
			if current := g.Car.Profile().ClusterMileage; cluster < current {
				return fmt.Errorf("mileage %d is below the current cluster reading %d", cluster, current)
			}
			if err := g.Car.UpdateMileage(cmd.Context(), cluster); err != nil {
				return err
			}
			p := g.Car.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Updated: cluster %d mi, actual %d mi\n", p.ClusterMileage, p.ActualMileage)
			return nil
		},
	})

	return cmd
}
