package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/syntax"
)

// NewSendCommand drives coordinator.SendCommand (spec §6: send_command(
// node_id, command_class, command, params)), with --param taking the
// free-form "key=value, key2=value2" parameter string.
func NewSendCommand(app *App) *cobra.Command {
	type sendArgs struct {
		Params string
	}
	cmdArgs := sendArgs{}

	cmd := &cobra.Command{
		Use:   "send <node_id> <command_class> <command>",
		Short: "Send a single command-class command to a node",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil {
				return fmt.Errorf("invalid node_id %q: %w", args[0], err)
			}
			class, ok := mappings.ClassByName(args[1])
			if !ok {
				return fmt.Errorf("unknown command class %q", args[1])
			}
			cmdByte, ok := mappings.CommandByName(class, args[2])
			if !ok {
				return fmt.Errorf("unknown command %q for class %q", args[2], args[1])
			}
			params, err := syntax.ParseParamString(cmdArgs.Params, ",")
			if err != nil {
				return err
			}

			if err := app.Initialize(); err != nil {
				return err
			}
			result := app.coord.SendCommand(context.Background(), uint8(nodeID), class, cmdByte, params)
			if !result.OK {
				return fmt.Errorf("send_command failed: %s", result.Err)
			}
			_, _ = app.P.Printf("%+v\n", result.Value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cmdArgs.Params, "param", "p", "", "Command parameters, e.g. \"value=99\"")
	return cmd
}
