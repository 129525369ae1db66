package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/export"
	"github.com/vwcs/build-tracker/internal/models"
)

// DTCAddOptions holds flags for the dtc add command.
type DTCAddOptions struct {
	Code        string
	Description string
	Severity    string
	System      string
	Mileage     int
	FreezeFrame string
	Notes       string
}

// NewDTCCommand creates the dtc command group.
func NewDTCCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dtc",
		Short: "Track diagnostic trouble codes",
	}

	opts := &DTCAddOptions{}
	add := &cobra.Command{
		Use:   "add",
		Short: "Log a trouble code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Code == "" {
				return fmt.Errorf("--code is required")
			}
			system := models.Category(opts.System)
			if !models.IsValidCategory(system) {
				return fmt.Errorf("invalid system %q", opts.System)
			}
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			if opts.Mileage == 0 {
				opts.Mileage = g.Car.Profile().ActualMileage
			}
			code, err := g.Diagnostics.Add(cmd.Context(), models.DiagnosticCode{
				Code:            opts.Code,
				Description:     opts.Description,
				Date:            time.Now().Format("2006-01-02"),
				Mileage:         opts.Mileage,
				Active:          true,
				FreezeFrameData: opts.FreezeFrame,
				Notes:           opts.Notes,
				Severity:        models.Severity(opts.Severity),
				System:          system,
			})
			if err != nil {
				return err
			}
			if err := g.LogEvent(cmd.Context(), models.EventDiagnostic, code.Code, code.ID, code.Tags); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s)\n", code.Code, code.ID)
			return nil
		},
	}
	add.Flags().StringVar(&opts.Code, "code", "", "DTC, e.g. P0341")
	add.Flags().StringVar(&opts.Description, "desc", "", "what the code means")
	add.Flags().StringVar(&opts.Severity, "severity", "medium", "severity (low|medium|high|critical)")
	add.Flags().StringVar(&opts.System, "system", "engine", "vehicle system")
	add.Flags().IntVar(&opts.Mileage, "mileage", 0, "actual mileage when read (default current odometer)")
	add.Flags().StringVar(&opts.FreezeFrame, "freeze-frame", "", "freeze frame data")
	add.Flags().StringVar(&opts.Notes, "notes", "", "free-form notes")
	cmd.AddCommand(add)

	var activeOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List trouble codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			codes := g.Diagnostics.Codes()
			if activeOnly {
				filtered := make([]models.DiagnosticCode, 0, len(codes))
				for _, c := range codes {
					if c.Active {
						filtered = append(filtered, c)
					}
				}
				codes = filtered
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd, codes)
			}
			for _, c := range codes {
				state := "inactive"
				if c.Active {
					state = "ACTIVE"
				}
				resolved := ""
				if c.Resolved {
					resolved = fmt.Sprintf("  resolved %s", c.ResolvedDate)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-8s %-8s  %s%s\n",
					c.ID, c.Code, state, c.Severity, c.Description, resolved)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&activeOnly, "active", false, "only show active codes")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve <id>",
		Short: "Toggle a code's resolved flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			return g.Diagnostics.ToggleResolved(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "share <id>",
		Short: "Print a code as shareable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			code, ok := g.Diagnostics.Get(args[0])
			if !ok {
				return fmt.Errorf("no code with id %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), export.DiagnosticText(code))
			return nil
		},
	})

	return cmd
}
