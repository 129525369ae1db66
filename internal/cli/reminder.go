package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/models"
)

// ReminderAddOptions holds flags for the reminder add command.
type ReminderAddOptions struct {
	Title       string
	Description string
	Mileage     int
	Date        string
	Category    string
	Priority    string
}

// NewReminderCommand creates the reminder command group.
func NewReminderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage service reminders",
	}

	opts := &ReminderAddOptions{}
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a reminder triggered by mileage or date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Title == "" {
				return fmt.Errorf("--title is required")
			}
			if (opts.Mileage == 0) == (opts.Date == "") {
				return fmt.Errorf("set exactly one of --mileage or --date")
			}
			category := models.Category(opts.Category)
			if !models.IsValidCategory(category) {
				return fmt.Errorf("invalid category %q", opts.Category)
			}
			r := models.Reminder{
				Title:       opts.Title,
				Description: opts.Description,
				Category:    category,
				Priority:    models.Priority(opts.Priority),
			}
			if opts.Mileage > 0 {
				r.TriggerType = models.TriggerMileage
				r.TriggerMileage = opts.Mileage
			} else {
				r.TriggerType = models.TriggerDate
				r.TriggerDate = opts.Date
			}
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			added, err := g.Reminders.Add(cmd.Context(), r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", added.ID)
			return nil
		},
	}
	add.Flags().StringVar(&opts.Title, "title", "", "short title")
	add.Flags().StringVar(&opts.Description, "desc", "", "what needs doing")
	add.Flags().IntVar(&opts.Mileage, "mileage", 0, "fire at this actual mileage")
	add.Flags().StringVar(&opts.Date, "date", "", "fire on this date (YYYY-MM-DD)")
	add.Flags().StringVar(&opts.Category, "category", "other", "vehicle system")
	add.Flags().StringVar(&opts.Priority, "priority", "routine", "priority (critical|routine|planned)")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List active reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd, g.Reminders.Active())
			}
			for _, r := range g.Reminders.Active() {
				trigger := fmt.Sprintf("at %d mi", r.TriggerMileage)
				if r.TriggerType == models.TriggerDate {
					trigger = fmt.Sprintf("on %s", r.TriggerDate)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %s (%s)\n", r.ID, trigger, r.Title, r.Priority)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "due",
		Short: "List reminders whose trigger has fired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			due := g.Reminders.Due(g.Car.Profile().ActualMileage)
			if rootOpts.Format == "json" {
				return printJSON(cmd, due)
			}
			if len(due) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing due.")
				return nil
			}
			for _, r := range due {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s)\n", r.ID, r.Title, r.Priority)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a reminder done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			return g.Reminders.Complete(cmd.Context(), args[0])
		},
	})

	return cmd
}
