package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty garage with the project car's history",
		Long: `Populate an empty garage with the project car's history.

The seed pass is gated: if any seedable collection already holds
records, nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			if g.HasExistingData() {
				fmt.Fprintln(cmd.OutOrStdout(), "Garage already holds data, nothing seeded.")
				return nil
			}
			if err := g.InitializeSeedData(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seeded garage with fixture history.")
			return nil
		},
	}
}
