package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keskad/zipgw/pkgs/command"
)

// NewIncludeCommand drives coordinator.IncludeNode (spec §6: include_node).
func NewIncludeCommand(app *App) *cobra.Command {
	type includeArgs struct {
		Timeout uint16
		Retries uint8
	}
	cmdArgs := includeArgs{}

	cmd := &cobra.Command{
		Use:   "include",
		Short: "Put the gateway into inclusion mode and admit one new node",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			result := app.coord.IncludeNode(context.Background(),
				command.Timeout(time.Second*time.Duration(cmdArgs.Timeout)),
				command.Retries(cmdArgs.Retries))
			if !result.OK {
				return fmt.Errorf("include failed: %s", result.Err)
			}
			_, _ = app.P.Printf("%+v\n", result.Value)
			return nil
		},
	}

	cmd.Flags().Uint16VarP(&cmdArgs.Timeout, "timeout", "", 10, "Per-send timeout in seconds (not applied: the configured send_timeout_ms is used)")
	cmd.Flags().Uint8VarP(&cmdArgs.Retries, "retries", "", 2, "Retry budget")
	return cmd
}
