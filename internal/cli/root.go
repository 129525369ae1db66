// Package cli wires the garage stores into the command-line surface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/storage"
	"github.com/vwcs/build-tracker/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the garage CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "garage",
		Short: "CS Build Tracker - personal vehicle build and maintenance log",
		Long:  "Track maintenance, modifications, fuel, diagnostics, and the rest of a project car's history from the command line.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose {
				log.SetLevel(log.DebugLevel)
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewDashboardCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewMileageCommand(opts))
	cmd.AddCommand(NewVINCommand(opts))
	cmd.AddCommand(NewFuelCommand(opts))
	cmd.AddCommand(NewMaintenanceCommand(opts))
	cmd.AddCommand(NewModsCommand(opts))
	cmd.AddCommand(NewDTCCommand(opts))
	cmd.AddCommand(NewReminderCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// printJSON renders v as indented JSON on the command's stdout. List
// commands call it when --format json is set.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openGarage opens the configured storage backend and hydrates every
// store. Commands call this once at the top of their RunE.
func openGarage(ctx context.Context) (*store.Garage, error) {
	adapter, err := storage.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	g := store.NewGarage(adapter)
	if err := g.Load(ctx); err != nil {
		return nil, err
	}
	return g, nil
}
