package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCNetworkManagementProxy, 0x02, decodeNodeListReport)
	register(mappings.CCNetworkManagementProxy, 0x04, decodeNodeInfoCacheReport)

	registerEncoder(mappings.CCNetworkManagementProxy, 0x01, encodeNodeListGet)
	registerEncoder(mappings.CCNetworkManagementProxy, 0x03, encodeNodeInfoCacheGet)
}

// decodeNodeListReport parses: seq_no(1), status(1), reserved(1),
// node-list bitmask (remaining bytes, conceptually 29 bytes for the full
// 1..232 node range). See DecodeNodeListBitmask for the bit-numbering rule.
func decodeNodeListReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 3 {
		cmd.Value = body
		return cmd
	}
	mask := body[3:]
	cmd.Fields = Fields{
		"seq_no":    body[0],
		"status":    body[1],
		"node_list": DecodeNodeListBitmask(mask),
	}
	return cmd
}

func decodeNodeInfoCacheReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 5 {
		cmd.Value = body
		return cmd
	}
	flagByte := body[1]
	listening := flagByte&0x80 != 0
	s2Level := flagByte & 0x07
	basic := mappings.BasicClass(body[2])
	generic := mappings.GenericClass(body[3])
	specific := mappings.SpecificClass(body[4])

	cmd.Fields = Fields{
		"seq_no":               body[0],
		"listening?":           listening,
		"s2_highest_key_level": s2Level,
		"basic":                symbolOrUnknown(basic.Symbol, byte(basic)),
		"generic":              symbolOrUnknown(generic.Symbol, byte(generic)),
		"specific":             symbolOrUnknownSpecific(generic, specific),
		"command_classes":      DecodeCommandClassList(body[5:]),
	}
	return cmd
}

func encodeNodeListGet(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	return []byte{seqNo}, nil
}

func encodeNodeInfoCacheGet(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	nodeID, _ := params["node_id"].(byte)
	return []byte{seqNo, 0x00, 0x00, 0x00, nodeID}, nil
}
