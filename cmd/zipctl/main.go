// Command zipctl is a thin cobra exerciser over pkgs/coordinator — the
// library itself is the deliverable (spec.md §1); this binary exists so the
// coordinator's public operations can be driven from a terminal the same
// way the teacher's loco CLI drove pkgs/commandstation.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/keskad/zipgw/pkgs/config"
	"github.com/keskad/zipgw/pkgs/coordinator"
	"github.com/keskad/zipgw/pkgs/output"
)

func main() {
	app := &App{P: output.ConsolePrinter{}}
	cmd := NewRootCommand(app)
	args := os.Args[1:]
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
	if app.coord != nil {
		if err := app.coord.Stop(); err != nil {
			logrus.Debugf("zipctl: error closing coordinator: %s", err)
		}
	}
}

// App is the controller-level struct every command operates against,
// mirroring the teacher's LocoApp: configuration and the live connection are
// lazily initialized once cobra has parsed flags, printing only ever goes
// through P.
type App struct {
	Config *config.CoordinatorConfig
	coord  *coordinator.Coordinator

	Debug bool
	P     output.Printer
}

// Initialize reads configuration and opens the coordinator. Called once per
// invocation, after flag parsing, by every leaf command.
func (a *App) Initialize() error {
	if a.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.Debug("zipctl: reading configuration")
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	a.Config = cfg

	logrus.Debug("zipctl: opening coordinator")
	c, err := coordinator.Open(cfg)
	if err != nil {
		return err
	}
	a.coord = c
	return nil
}
