package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the zipctl command tree, following the teacher's
// one-struct-per-verb cobra layout (pkgs/cli/root.go).
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "zipctl",
		Short: "Exercise a Z/IP gateway network coordinator from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("please select a command")
		},
	}
	root.PersistentFlags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")

	root.AddCommand(NewIncludeCommand(app))
	root.AddCommand(NewExcludeCommand(app))
	root.AddCommand(NewNodesCommand(app))
	root.AddCommand(NewNodeInfoCommand(app))
	root.AddCommand(NewSendCommand(app))
	root.AddCommand(NewDSKCommand(app))
	root.AddCommand(NewProvisionCommand(app))

	return root
}
