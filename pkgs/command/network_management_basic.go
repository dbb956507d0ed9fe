package command

import (
	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/zipframe"
	"github.com/keskad/zipgw/pkgs/zipframe/cc"
)

const learnModeStart = 0x01

// LearnMode puts the controller itself into learn mode, from idle,
// completing on learn_mode_set_status.
type LearnMode struct {
	base
}

func NewLearnMode(opts ...Option) (*LearnMode, error) {
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	c := &LearnMode{base: newBase(mappings.CCNetworkManagementBasic, o.Retries, []Mode{ModeIdle})}
	c.withExecState(ModeLearnMode)
	return c, nil
}

func (c *LearnMode) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementBasic, 0x04, map[string]any{
		"seq_no": c.seqNumber,
		"mode":   byte(learnModeStart),
	})
}

func (c *LearnMode) HandleResponse(pkt zipframe.Packet, currentMode Mode) Transition {
	if pkt.Command != nil && pkt.Command.CommandClass == mappings.CCNetworkManagementBasic && pkt.Command.CommandByte == 0x05 {
		return transitionDoneOK(pkt.Command.Fields)
	}
	return c.base.HandleResponse(pkt, currentMode)
}

// DefaultSet factory-resets the controller, from idle, completing on
// default_set_complete.
type DefaultSet struct {
	base
}

func NewDefaultSet(opts ...Option) (*DefaultSet, error) {
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	c := &DefaultSet{base: newBase(mappings.CCNetworkManagementBasic, o.Retries, []Mode{ModeIdle})}
	c.withExecState(ModeDefaultSetting)
	return c, nil
}

func (c *DefaultSet) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementBasic, 0x02, map[string]any{"seq_no": c.seqNumber})
}

func (c *DefaultSet) HandleResponse(pkt zipframe.Packet, currentMode Mode) Transition {
	if pkt.Command != nil && pkt.Command.CommandClass == mappings.CCNetworkManagementBasic && pkt.Command.CommandByte == 0x03 {
		return transitionDoneOK(pkt.Command.Fields)
	}
	return c.base.HandleResponse(pkt, currentMode)
}
