package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keskad/zipgw/pkgs/command"
)

// NewExcludeCommand drives coordinator.ExcludeNode (spec §6: exclude_node).
func NewExcludeCommand(app *App) *cobra.Command {
	type excludeArgs struct {
		Timeout uint16
		Retries uint8
	}
	cmdArgs := excludeArgs{}

	cmd := &cobra.Command{
		Use:   "exclude",
		Short: "Put the gateway into exclusion mode and remove one node",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			result := app.coord.ExcludeNode(context.Background(),
				command.Timeout(time.Second*time.Duration(cmdArgs.Timeout)),
				command.Retries(cmdArgs.Retries))
			if !result.OK {
				return fmt.Errorf("exclude failed: %s", result.Err)
			}
			_, _ = app.P.Printf("%+v\n", result.Value)
			return nil
		},
	}

	cmd.Flags().Uint16VarP(&cmdArgs.Timeout, "timeout", "", 10, "Per-send timeout in seconds (not applied: the configured send_timeout_ms is used)")
	cmd.Flags().Uint8VarP(&cmdArgs.Retries, "retries", "", 2, "Retry budget")
	return cmd
}
