package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keskad/zipgw/pkgs/dsk"
)

// NewProvisionCommand adds or removes a Smart Start provisioning-list entry
// by DSK, so a node self-includes the next time it's powered on near the
// gateway without a separate include_node handshake.
func NewProvisionCommand(app *App) *cobra.Command {
	type provisionArgs struct {
		Remove bool
	}
	cmdArgs := provisionArgs{}

	cmd := &cobra.Command{
		Use:   "provision <dsk-string>",
		Short: "Add or remove a Smart Start provisioning-list entry by DSK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := dsk.Parse(args[0])
			if err != nil {
				return err
			}
			if err := app.Initialize(); err != nil {
				return err
			}

			if cmdArgs.Remove {
				res := app.coord.Unprovision(context.Background(), raw)
				if !res.OK {
					return fmt.Errorf("unprovision failed: %s", res.Err)
				}
				_, _ = app.P.Printf("%+v\n", res.Value)
				return nil
			}
			res := app.coord.Provision(context.Background(), raw)
			if !res.OK {
				return fmt.Errorf("provision failed: %s", res.Err)
			}
			_, _ = app.P.Printf("%+v\n", res.Value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&cmdArgs.Remove, "remove", "", false, "Remove the provisioning-list entry instead of adding it")
	return cmd
}
