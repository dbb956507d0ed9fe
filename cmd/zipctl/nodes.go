package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewNodesCommand drives coordinator.GetNodeList (spec §6: get_node_list).
func NewNodesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List the node ids known to the gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			result := app.coord.GetNodeList(context.Background())
			if !result.OK {
				return fmt.Errorf("get_node_list failed: %s", result.Err)
			}
			_, _ = app.P.Printf("%+v\n", result.Value)
			return nil
		},
	}
	return cmd
}
