package coordinator

import "github.com/keskad/zipgw/pkgs/command"

// modeTransitions enumerates every legal (from, to) mode edge (spec §4.6).
// idle <-> including_node/excluding_node/learn_mode/default_setting are
// entered via admission's exec_state and left via completion; the
// including_node -> configuring_new_node -> idle edges are explicit
// because they don't follow the uniform "exec_state then back to idle"
// shape.
var modeTransitions = map[command.Mode]map[command.Mode]bool{
	command.ModeNotReady: {command.ModeIdle: true},
	command.ModeIdle: {
		command.ModeIncludingNode:  true,
		command.ModeExcludingNode:  true,
		command.ModeLearnMode:      true,
		command.ModeDefaultSetting: true,
	},
	command.ModeIncludingNode: {
		command.ModeIdle:               true,
		command.ModeConfiguringNewNode: true,
	},
	command.ModeExcludingNode:      {command.ModeIdle: true},
	command.ModeLearnMode:          {command.ModeIdle: true},
	command.ModeDefaultSetting:     {command.ModeIdle: true},
	command.ModeConfiguringNewNode: {command.ModeIdle: true},
}

func transitionAllowed(from, to command.Mode) bool {
	if from == to {
		return true
	}
	edges, ok := modeTransitions[from]
	return ok && edges[to]
}

// modeChanging reports whether m is anything other than idle, not_ready or
// configuring_new_node — used to decide whether a second mode-changing command must be rejected
// with network_busy.
func modeChanging(m command.Mode) bool {
	return m != command.ModeIdle && m != command.ModeNotReady && m != command.ModeConfiguringNewNode
}
