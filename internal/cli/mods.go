package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/models"
)

// ModAddOptions holds flags for the mods add command.
type ModAddOptions struct {
	Title       string
	Description string
	Stage       int
	System      string
	Cost        float64
	Priority    int
}

// NewModsCommand creates the mods command group.
func NewModsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mods",
		Short: "Track the modification roadmap",
	}

	opts := &ModAddOptions{}
	add := &cobra.Command{
		Use:   "add",
		Short: "Plan a modification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			system := models.Category(opts.System)
			if !models.IsValidCategory(system) {
				return fmt.Errorf("invalid system %q", opts.System)
			}
			if opts.Title == "" {
				return fmt.Errorf("--title is required")
			}
			if opts.Stage < 0 || opts.Stage > 3 {
				return fmt.Errorf("stage must be 0-3, got %d", opts.Stage)
			}
			if opts.Cost < 0 {
				return fmt.Errorf("--cost must be non-negative, got %.2f", opts.Cost)
			}
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			mod, err := g.Modifications.Add(cmd.Context(), models.Modification{
				Title:       opts.Title,
				Description: opts.Description,
				Stage:       models.ModificationStage(opts.Stage),
				System:      system,
				Status:      models.StatusPlanned,
				Cost:        opts.Cost,
				Priority:    opts.Priority,
			})
			if err != nil {
				return err
			}
			if err := g.LogEvent(cmd.Context(), models.EventModification, mod.Title, mod.ID, mod.Tags); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planned %s\n", mod.ID)
			return nil
		},
	}
	add.Flags().StringVar(&opts.Title, "title", "", "short title")
	add.Flags().StringVar(&opts.Description, "desc", "", "what the mod does")
	add.Flags().IntVar(&opts.Stage, "stage", 0, "build stage (0-3)")
	add.Flags().StringVar(&opts.System, "system", "engine", "vehicle system")
	add.Flags().Float64Var(&opts.Cost, "cost", 0, "estimated cost")
	add.Flags().IntVar(&opts.Priority, "priority", 2, "priority rank (1 highest)")
	cmd.AddCommand(add)

	var stage int
	list := &cobra.Command{
		Use:   "list",
		Short: "List modifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			mods := g.Modifications.Modifications()
			if cmd.Flags().Changed("stage") {
				mods = g.Modifications.ByStage(models.ModificationStage(stage))
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd, mods)
			}
			for _, m := range mods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  stage %d  %-11s  %-12s $%8.2f  %s\n",
					m.ID, m.Stage, m.Status, m.System, m.Cost, m.Title)
			}
			return nil
		},
	}
	list.Flags().IntVar(&stage, "stage", 0, "only show this build stage")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "status <id> <planned|ordered|in-progress|completed>",
		Short: "Move a modification through its lifecycle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := models.ModificationStatus(args[1])
			if !models.IsValidModificationStatus(status) {
				return fmt.Errorf("invalid status %q", args[1])
			}
			g, err := openGarage(cmd.Context())
			if err != nil {
				return err
			}
			return g.Modifications.SetStatus(cmd.Context(), args[0], status)
		},
	})

	return cmd
}
