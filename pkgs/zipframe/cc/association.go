package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCAssociation, 0x03, decodeAssociationReport)

	registerEncoder(mappings.CCAssociation, 0x01, encodeAssociationSet)
	registerEncoder(mappings.CCAssociation, 0x02, encodeAssociationGet)
	registerEncoder(mappings.CCAssociation, 0x04, encodeAssociationRemove)
}

// decodeAssociationReport decodes association_report (0x85 0x03) only, per
// the mapping-table decision in mappings.CommandSymbol: command byte 0x06
// is exposed as an alias symbol for callers depending on a historic mapping
// bug, but this decoder never receives it since nothing registers it.
func decodeAssociationReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 3 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"grouping_identifier": body[0],
		"max_nodes_supported": body[1],
		"reports_to_follow":   body[2],
		"node_ids":            body[3:],
	}
	return cmd
}

func encodeAssociationSet(params map[string]any) ([]byte, error) {
	grouping, _ := params["grouping_identifier"].(byte)
	nodeIDs, _ := params["node_ids"].([]byte)
	return append([]byte{grouping}, nodeIDs...), nil
}

func encodeAssociationGet(params map[string]any) ([]byte, error) {
	grouping, _ := params["grouping_identifier"].(byte)
	return []byte{grouping}, nil
}

func encodeAssociationRemove(params map[string]any) ([]byte, error) {
	grouping, _ := params["grouping_identifier"].(byte)
	nodeIDs, _ := params["node_ids"].([]byte)
	return append([]byte{grouping}, nodeIDs...), nil
}
