package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewNodeInfoCommand drives coordinator.GetNodeInfo (spec §6: get_node_info).
func NewNodeInfoCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodeinfo <node_id>",
		Short: "Fetch the cached node-info for one node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil {
				return fmt.Errorf("invalid node_id %q: %w", args[0], err)
			}
			if err := app.Initialize(); err != nil {
				return err
			}
			result := app.coord.GetNodeInfo(context.Background(), uint8(nodeID))
			if !result.OK {
				return fmt.Errorf("get_node_info failed: %s", result.Err)
			}
			_, _ = app.P.Printf("%+v\n", result.Value)
			return nil
		},
	}
	return cmd
}
