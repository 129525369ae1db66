package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/models"
)

// MaintenanceAddOptions holds flags for the maintenance add command.
type MaintenanceAddOptions struct {
	Date        string
	Mileage     int
	Category    string
	Title       string
	Description string
	Cost        float64
	Priority    string
	Completed   bool
}

// NewMaintenanceCommand creates the maintenance command group.
func NewMaintenanceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "maintenance",
		Aliases: []string{"maint"},
		Short:   "Log and review maintenance work",
	}

	opts := &MaintenanceAddOptions{}
	add := &cobra.Command{
		Use:   "add",
		Short: "Log a maintenance entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category := models.Category(opts.Category)
			if !models.IsValidCategory(category) {
				return fmt.Errorf("invalid category %q", opts.Category)
			}
			if opts.Title == "" {
				return fmt.Errorf("--title is required")
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
			entry, err := g.Maintenance.Add(cmd.Context(), models.MaintenanceEntry{
				Date:        opts.Date,
				Mileage:     opts.Mileage,
				Category:    category,
				Title:       opts.Title,
				Description: opts.Description,
				Cost:        opts.Cost,
				Priority:    models.Priority(opts.Priority),
				Completed:   opts.Completed,
			})
			if err != nil {
				return err
			}
			if err := g.LogEvent(cmd.Context(), models.EventMaintenance, entry.Title, entry.ID, entry.Tags); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s\n", entry.ID)
			return nil
		},
	}
	add.Flags().StringVar(&opts.Date, "date", "", "service date (YYYY-MM-DD, default today)")
	add.Flags().IntVar(&opts.Mileage, "mileage", 0, "actual mileage (default current odometer)")
	add.Flags().StringVar(&opts.Category, "category", "other", "vehicle system (engine|suspension|electrical|exterior|interior|lighting|performance|other)")
	add.Flags().StringVar(&opts.Title, "title", "", "short title")
	add.Flags().StringVar(&opts.Description, "desc", "", "what was done")
	add.Flags().Float64Var(&opts.Cost, "cost", 0, "total cost")
	add.Flags().StringVar(&opts.Priority, "priority", "routine", "priority (critical|routine|planned)")
	add.Flags().BoolVar(&opts.Completed, "done", true, "work already completed")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List maintenance entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd, g.Maintenance.Entries())
			}
			for _, e := range g.Maintenance.Entries() {
				mark := " "
				if e.Completed {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s  %7d mi  %-12s $%8.2f  %s\n",
					mark, e.ID, e.Date, e.Mileage, e.Category, e.Cost, e.Title)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Toggle an entry's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			return g.Maintenance.ToggleCompleted(cmd.Context(), args[0])
		},
	})

	return cmd
}
