package command

import (
	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/zipframe"
	"github.com/keskad/zipgw/pkgs/zipframe/cc"
)

// GetNodeList requests the full node list from NetworkManagementProxy.
// Admitted from idle or configuring_new_node; does not change the mode.
type GetNodeList struct {
	base
}

func NewGetNodeList(opts ...Option) (*GetNodeList, error) {
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	return &GetNodeList{
		base: newBase(mappings.CCNetworkManagementProxy, o.Retries, []Mode{ModeIdle, ModeConfiguringNewNode}),
	}, nil
}

func (c *GetNodeList) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementProxy, 0x01, map[string]any{"seq_no": c.seqNumber})
}

func (c *GetNodeList) HandleResponse(pkt zipframe.Packet, currentMode Mode) Transition {
	if pkt.Command != nil && pkt.Command.CommandClass == mappings.CCNetworkManagementProxy && pkt.Command.CommandByte == 0x02 {
		return transitionDoneOK(pkt.Command.Fields)
	}
	return c.base.HandleResponse(pkt, currentMode)
}

// GetNodeInfo requests the cached node-info for a single node id.
type GetNodeInfo struct {
	base
	nodeID mappings.NodeID
}

func NewGetNodeInfo(nodeID uint8, opts ...Option) (*GetNodeInfo, error) {
	id, err := mappings.NewNodeID(nodeID)
	if err != nil {
		return nil, err
	}
	o := Options{Retries: 2}
	if err := applyOptions(&o, opts); err != nil {
		return nil, err
	}
	return &GetNodeInfo{
		base:   newBase(mappings.CCNetworkManagementProxy, o.Retries, []Mode{ModeIdle, ModeConfiguringNewNode}),
		nodeID: id,
	}, nil
}

func (c *GetNodeInfo) Encode() ([]byte, error) {
	return cc.Encode(mappings.CCNetworkManagementProxy, 0x03, map[string]any{
		"seq_no":  c.seqNumber,
		"node_id": byte(c.nodeID),
	})
}

func (c *GetNodeInfo) HandleResponse(pkt zipframe.Packet, currentMode Mode) Transition {
	if pkt.Command != nil && pkt.Command.CommandClass == mappings.CCNetworkManagementProxy && pkt.Command.CommandByte == 0x04 {
		return transitionDoneOK(pkt.Command.Fields)
	}
	return c.base.HandleResponse(pkt, currentMode)
}
