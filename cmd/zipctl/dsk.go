package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keskad/zipgw/pkgs/dsk"
)

// NewDSKCommand answers a pending S2 bootstrap's DSK confirmation, taking
// the dash-grouped decimal form printed on the device and converting it via
// pkgs/dsk.Parse before handing it to the coordinator.
func NewDSKCommand(app *App) *cobra.Command {
	type dskArgs struct {
		Reject bool
	}
	cmdArgs := dskArgs{}

	cmd := &cobra.Command{
		Use:   "dsk <dsk-string>",
		Short: "Confirm or reject a device's DSK during Security-2 bootstrap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := dsk.Parse(args[0])
			if err != nil {
				return err
			}
			if err := app.Initialize(); err != nil {
				return err
			}
			result := app.coord.ConfirmDSK(context.Background(), !cmdArgs.Reject, raw)
			if !result.OK {
				return fmt.Errorf("dsk confirmation failed: %s", result.Err)
			}
			_, _ = app.P.Printf("%+v\n", result.Value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&cmdArgs.Reject, "reject", "", false, "Reject the DSK instead of confirming it")
	return cmd
}
