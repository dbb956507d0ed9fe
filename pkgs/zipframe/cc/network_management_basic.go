package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCNetworkManagementBasic, 0x03, decodeDefaultSetComplete)
	register(mappings.CCNetworkManagementBasic, 0x05, decodeLearnModeSetStatus)

	registerEncoder(mappings.CCNetworkManagementBasic, 0x02, encodeDefaultSet)
	registerEncoder(mappings.CCNetworkManagementBasic, 0x04, encodeLearnModeSet)
}

func decodeDefaultSetComplete(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"seq_no": body[0],
		"status": body[1],
	}
	return cmd
}

func decodeLearnModeSetStatus(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	fields := Fields{
		"seq_no": body[0],
		"status": body[1],
	}
	if len(body) >= 3 {
		fields["new_node_id"] = body[2]
	}
	cmd.Fields = fields
	return cmd
}

func encodeDefaultSet(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	return []byte{seqNo}, nil
}

func encodeLearnModeSet(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	mode, _ := params["mode"].(byte)
	return []byte{seqNo, mode}, nil
}
