// Package mappings holds the byte<->symbol lookup tables shared by the
// frame codec and the command layer: command classes, commands, device
// classes, Security-2 keys and notification types.
package mappings

import "fmt"

// NodeID is a Z-Wave node identifier. Valid range is 1..232.
type NodeID uint8

const (
	// MinNodeID is the lowest assignable node id.
	MinNodeID NodeID = 1
	// MaxNodeID is the highest assignable node id.
	MaxNodeID NodeID = 232
)

// NewNodeID validates n and returns it as a NodeID.
func NewNodeID(n uint8) (NodeID, error) {
	if n < uint8(MinNodeID) || n > uint8(MaxNodeID) {
		return 0, fmt.Errorf("mappings: node id %d out of range [%d, %d]", n, MinNodeID, MaxNodeID)
	}
	return NodeID(n), nil
}
