package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/models"
)

// NewEventsCommand creates the events command.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		limit     int
		eventType string
		tag       string
	)
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the recent activity feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			var events []models.Event
			switch {
			case eventType != "":
				events = g.Events.ByType(models.EventType(eventType))
			case tag != "":
				events = g.Events.ByTag(tag)
			default:
				events = g.Events.Recent(limit)
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd, events)
			}
			for _, e := range events {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-13s %7d mi  %s\n", e.Date, e.Type, e.Mileage, e.Title)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of recent events to show")
	cmd.Flags().StringVar(&eventType, "type", "", "only show events of this type")
	cmd.Flags().StringVar(&tag, "tag", "", "only show events carrying this tag")
	return cmd
}
