package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vwcs/build-tracker/internal/vin"
)

// NewVINCommand creates the vin command.
func NewVINCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vin <vin>",
		Short: "Validate and decode a vehicle identification number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := vin.Format(args[0])
			if !vin.Validate(v) {
				return fmt.Errorf("invalid VIN %q", v)
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd, struct {
					VIN  string   `json:"vin"`
					Info vin.Info `json:"info"`
				}{v, vin.Decode(v)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", v)
			if info := vin.Decode(v); info.Make != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s %s\n", info.Year, info.Make, info.Model)
			}
			return nil
		},
	}
}
