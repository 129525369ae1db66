package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/analysis"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the at-a-glance build summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			profile := g.Car.Profile()
			summary := analysis.BuildSummary(
				profile,
				g.Diagnostics.Codes(),
				g.Reminders.Due(profile.ActualMileage),
				g.Fuel.Entries(),
				g.Maintenance.Entries(),
				g.Modifications.Modifications(),
			)

			if rootOpts.Format == "json" {
				return printJSON(cmd, summary)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %d %s %s (%s)\n", profile.Nickname, profile.Year, profile.Make, profile.Model, profile.Trim)
			fmt.Fprintf(w, "Mileage: %d actual (%d on cluster)\n", summary.ActualMileage, summary.ClusterMileage)
			fmt.Fprintf(w, "Active codes: %d\n", summary.ActiveCodes)
			fmt.Fprintf(w, "Due reminders: %d\n", summary.DueReminders)
			fmt.Fprintf(w, "Average MPG: %.2f\n", summary.AverageMPG)
			fmt.Fprintf(w, "Mods: %d completed, %d planned\n", summary.ModsCompleted, summary.ModsPlanned)
			fmt.Fprintf(w, "Total invested: $%.2f\n", summary.TotalInvested)
			for category, spend := range summary.SpendByCategory {
				fmt.Fprintf(w, "  %s: $%.2f\n", category, spend)
			}

			stats := analysis.AnalyzeOctanePerformance(g.Fuel.Entries())
			fmt.Fprintln(w)
			fmt.Fprintln(w, analysis.FuelRecommendation(stats))
			return nil
		},
	}
}
