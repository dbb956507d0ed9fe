package command

import (
	"fmt"

	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/zipframe"
	"github.com/keskad/zipgw/pkgs/zipframe/cc"
)

// nodeAddModeAny requests inclusion of any node type.
const nodeAddModeAny = 0x01

// NodeAdd drives NetworkManagementInclusion NodeAdd: from idle to
// including_node, completing on node_add_status. S2 keys/DSK exchange
// reports do not complete it; they are answered through NodeAddKeysSet and
// NodeAddDSKSet.
type NodeAdd struct {
	base
}

// NewNodeAdd inits a NodeAdd command. Per spec §4.6, pre_states = {idle},
// exec_state = including_node.
func NewNodeAdd(opts ...Option) (*NodeAdd, error) {
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	c := &NodeAdd{base: newBase(mappings.CCNetworkManagementInclusion, o.Retries, []Mode{ModeIdle})}
	c.withExecState(ModeIncludingNode)
	return c, nil
}

func (c *NodeAdd) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementInclusion, 0x01, map[string]any{
		"seq_no": c.seqNumber,
		"mode":   byte(nodeAddModeAny),
	})
}

// HandleResponse recognizes node_add_status as the terminal report before
// falling back to the uniform ack/nack dispatch.
func (c *NodeAdd) HandleResponse(pkt zipframe.Packet, currentMode Mode) Transition {
	if pkt.Command != nil && pkt.Command.CommandClass == mappings.CCNetworkManagementInclusion && pkt.Command.CommandByte == 0x02 {
		status, _ := pkt.Command.Fields["status"].(string)
		if status == "done" {
			return transitionDoneOK(pkt.Command.Fields)
		}
		return transitionDoneError(ErrNackResponse)
	}
	return c.base.HandleResponse(pkt, currentMode)
}

// NodeRemove drives NetworkManagementInclusion NodeRemove: from idle to
// excluding_node, completing on node_remove_status.
type NodeRemove struct {
	base
}

func NewNodeRemove(opts ...Option) (*NodeRemove, error) {
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	c := &NodeRemove{base: newBase(mappings.CCNetworkManagementInclusion, o.Retries, []Mode{ModeIdle})}
	c.withExecState(ModeExcludingNode)
	return c, nil
}

func (c *NodeRemove) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementInclusion, 0x03, map[string]any{
		"seq_no": c.seqNumber,
		"mode":   byte(nodeAddModeAny),
	})
}

func (c *NodeRemove) HandleResponse(pkt zipframe.Packet, currentMode Mode) Transition {
	if pkt.Command != nil && pkt.Command.CommandClass == mappings.CCNetworkManagementInclusion && pkt.Command.CommandByte == 0x04 {
		status, _ := pkt.Command.Fields["status"].(string)
		if status == "done" {
			return transitionDoneOK(pkt.Command.Fields)
		}
		return transitionDoneError(ErrNackResponse)
	}
	return c.base.HandleResponse(pkt, currentMode)
}

// NodeAddKeysSet answers an S2 node_add_keys_report with the keys the
// controller grants (or rejects the bootstrap entirely).
type NodeAddKeysSet struct {
	base
	accept      bool
	grantedKeys []mappings.SecurityKey
}

func NewNodeAddKeysSet(accept bool, granted []mappings.SecurityKey, opts ...Option) (*NodeAddKeysSet, error) {
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	return &NodeAddKeysSet{
		base:        newBase(mappings.CCNetworkManagementInclusion, o.Retries, []Mode{ModeIncludingNode}),
		accept:      accept,
		grantedKeys: granted,
	}, nil
}

func (c *NodeAddKeysSet) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementInclusion, 0x10, map[string]any{
		"seq_no":       c.seqNumber,
		"accept":       c.accept,
		"granted_keys": c.grantedKeys,
	})
}

// NodeAddDSKSet answers an S2 node_add_dsk_report, confirming (or
// rejecting) the device's DSK during bootstrap.
type NodeAddDSKSet struct {
	base
	accept bool
	dsk    []byte
}

func NewNodeAddDSKSet(accept bool, dsk []byte, opts ...Option) (*NodeAddDSKSet, error) {
	if len(dsk) != 0 && len(dsk) != 16 {
		return nil, fmt.Errorf("command: dsk must be 0 or 16 bytes, got %d", len(dsk))
	}
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	return &NodeAddDSKSet{
		base:   newBase(mappings.CCNetworkManagementInclusion, o.Retries, []Mode{ModeIncludingNode}),
		accept: accept,
		dsk:    dsk,
	}, nil
}

func (c *NodeAddDSKSet) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementInclusion, 0x12, map[string]any{
		"seq_no": c.seqNumber,
		"accept": c.accept,
		"dsk":    c.dsk,
	})
}
