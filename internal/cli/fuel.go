package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/models"
)

// FuelAddOptions holds flags for the fuel add command.
type FuelAddOptions struct {
	Date     string
	Mileage  int
	Gallons  float64
	Octane   int
	Cost     float64
	FullTank bool
	Notes    string
}

// NewFuelCommand creates the fuel command group.
func NewFuelCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Log and review fill-ups",
	}

	opts := &FuelAddOptions{}
	add := &cobra.Command{
		Use:   "add",
		Short: "Log a fill-up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !models.IsValidOctane(models.Octane(opts.Octane)) {
				return fmt.Errorf("octane must be one of 87, 89, 91, 93, got %d", opts.Octane)
			}
			if opts.Gallons <= 0 {
				return fmt.Errorf("--gallons must be positive, got %.2f", opts.Gallons)
			}
			if opts.Cost < 0 {
				return fmt.Errorf("--cost must be non-negative, got %.2f", opts.Cost)
			}
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			if opts.Date == "" {
				opts.Date = time.Now().Format("2006-01-02")
			}
			if opts.Mileage == 0 {
				opts.Mileage = g.Car.Profile().ActualMileage
			}
			entry, err := g.Fuel.Add(cmd.Context(), models.FuelEntry{
				Date:     opts.Date,
				Mileage:  opts.Mileage,
				Gallons:  opts.Gallons,
				Octane:   models.Octane(opts.Octane),
				Cost:     opts.Cost,
				FullTank: opts.FullTank,
				Notes:    opts.Notes,
			})
			if err != nil {
				return err
			}
			if err := g.LogEvent(cmd.Context(), models.EventFuel,
				fmt.Sprintf("Fill-up: %.2f gal %d octane", entry.Gallons, entry.Octane),
				entry.ID, entry.Tags); err != nil {
				return err
			}
			if entry.MPG != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.2f MPG\n", entry.ID, *entry.MPG)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (no MPG: needs a prior full tank)\n", entry.ID)
			}
			return nil
		},
	}
	add.Flags().StringVar(&opts.Date, "date", "", "fill-up date (YYYY-MM-DD, default today)")
	add.Flags().IntVar(&opts.Mileage, "mileage", 0, "actual mileage at fill-up (default current odometer)")
	add.Flags().Float64Var(&opts.Gallons, "gallons", 0, "gallons pumped")
	add.Flags().IntVar(&opts.Octane, "octane", 91, "pump octane rating (87|89|91|93)")
	add.Flags().Float64Var(&opts.Cost, "cost", 0, "price per gallon")
	add.Flags().BoolVar(&opts.FullTank, "full", false, "tank filled to the top")
	add.Flags().StringVar(&opts.Notes, "notes", "", "free-form notes")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List fill-ups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd, struct {
					Entries    []models.FuelEntry `json:"entries"`
					AverageMPG float64            `json:"average_mpg"`
				}{g.Fuel.Entries(), g.Fuel.AverageMPG()})
			}
			for _, e := range g.Fuel.Entries() {
				mpg := "N/A"
				if e.MPG != nil {
					mpg = fmt.Sprintf("%.2f", *e.MPG)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %7d mi  %5.2f gal  %d oct  $%.2f/gal  %s MPG\n",
					e.ID, e.Date, e.Mileage, e.Gallons, e.Octane, e.Cost, mpg)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average MPG: %.2f\n", g.Fuel.AverageMPG())
			return nil
		},
	})

	return cmd
}
