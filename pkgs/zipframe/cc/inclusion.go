package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCNetworkManagementInclusion, 0x02, decodeNodeAddStatus)
	register(mappings.CCNetworkManagementInclusion, 0x04, decodeNodeRemoveStatus)
	register(mappings.CCNetworkManagementInclusion, 0x0C, decodeNodeNeighborUpdateStatus)
	register(mappings.CCNetworkManagementInclusion, 0x11, decodeNodeAddKeysReport)
	register(mappings.CCNetworkManagementInclusion, 0x13, decodeNodeAddDSKReport)

	registerEncoder(mappings.CCNetworkManagementInclusion, 0x01, encodeNodeAdd)
	registerEncoder(mappings.CCNetworkManagementInclusion, 0x03, encodeNodeRemove)
	registerEncoder(mappings.CCNetworkManagementInclusion, 0x10, encodeNodeAddKeysSet)
	registerEncoder(mappings.CCNetworkManagementInclusion, 0x12, encodeNodeAddDSKSet)
}

var nodeAddStatusNames = map[byte]string{
	0x06: "done",
	0x07: "failed",
	0x09: "security_failed",
}

// decodeNodeAddStatus decodes NetworkManagementInclusion 0x02, including the
// S2 tail (keys_granted, kex_fail_type, dsk) present when status is done or
// security_failed.
func decodeNodeAddStatus(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 5 {
		cmd.Value = body
		return cmd
	}

	seqNo := body[0]
	statusByte := body[1]
	status, known := nodeAddStatusNames[statusByte]
	if !known {
		status = "unknown"
	}
	flagByte := body[2]
	listening := flagByte&0x80 != 0
	nodeID := body[3]
	basic := mappings.BasicClass(body[4])

	fields := Fields{
		"seq_no":     seqNo,
		"status":     status,
		"listening?": listening,
		"node_id":    nodeID,
		"basic":      symbolOrUnknown(basic.Symbol, byte(basic)),
	}

	rest := body[5:]
	if len(rest) >= 2 {
		generic := mappings.GenericClass(rest[0])
		specific := mappings.SpecificClass(rest[1])
		fields["generic"] = symbolOrUnknown(generic.Symbol, byte(generic))
		fields["specific"] = symbolOrUnknownSpecific(generic, specific)
		rest = rest[2:]
	}

	// trailing variable-length command-class list, then (on done/security
	// failure) the S2 tail.
	ccList := rest
	if statusByte == 0x06 || statusByte == 0x09 {
		// The command-class list and S2 tail share the remaining bytes; the
		// S2 tail is fixed-length from the back: keys_granted(1) +
		// kex_fail_type(1) + dsk_length(1) + dsk(dsk_length).
		if len(rest) >= 3 {
			dskLen := int(rest[len(rest)-1])
			tailStart := len(rest) - 3 - dskLen
			if tailStart >= 0 && tailStart <= len(rest) {
				ccList = rest[:tailStart]
				keysGranted := rest[tailStart]
				kexFail := rest[tailStart+1]
				dskLenByte := rest[tailStart+2]
				dskBytes := rest[tailStart+3:]

				fields["keys_granted"] = mappings.KeysFromBitmask(keysGranted)
				fields["kex_fail_type"] = symbolOrUnknown(mappings.KexFailType(kexFail).Symbol, kexFail)
				fields["dsk_length"] = dskLenByte
				fields["dsk"] = dskBytes
			}
		}
	}
	fields["command_classes"] = DecodeCommandClassList(ccList)

	cmd.Fields = fields
	return cmd
}

func decodeNodeRemoveStatus(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	seqNo := body[0]
	statusByte := body[1]
	status := "failed"
	if statusByte == 0x06 {
		status = "done"
	}

	fields := Fields{"seq_no": seqNo, "status": status}
	if status == "done" && len(body) >= 3 {
		fields["node_id"] = body[2]
	} else {
		fields["node_id"] = nil
	}
	cmd.Fields = fields
	return cmd
}

func decodeNodeNeighborUpdateStatus(class mappings.CommandClass, cmdByte byte, body []byte) Command {
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

func decodeNodeAddKeysReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 3 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"seq_no":          body[0],
		"csa?":            body[1]&0x01 != 0,
		"requested_keys":  mappings.KeysFromBitmask(body[2]),
	}
	return cmd
}

func decodeNodeAddDSKReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	inputLength := body[1] & 0x0F
	dsk := body[2:]
	if len(dsk) > 16 {
		dsk = dsk[:16]
	}
	cmd.Fields = Fields{
		"seq_no":       body[0],
		"input_length": inputLength,
		"dsk":          dsk,
	}
	return cmd
}

// --- encoders ---

func encodeNodeAdd(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	mode, _ := params["mode"].(byte) // e.g. 0x01 = add any node
	return []byte{seqNo, mode, 0x00}, nil
}

func encodeNodeRemove(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	mode, _ := params["mode"].(byte)
	return []byte{seqNo, mode}, nil
}

func encodeNodeAddKeysSet(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	accept, _ := params["accept"].(bool)
	var grantedKeys []mappings.SecurityKey
	if keys, ok := params["granted_keys"].([]mappings.SecurityKey); ok {
		grantedKeys = keys
	}
	acceptByte := byte(0)
	if accept {
		acceptByte = 0x01
	}
	return []byte{seqNo, acceptByte, mappings.BitmaskFromKeys(grantedKeys)}, nil
}

func encodeNodeAddDSKSet(params map[string]any) ([]byte, error) {
	seqNo, _ := params["seq_no"].(byte)
	accept, _ := params["accept"].(bool)
	dsk, _ := params["dsk"].([]byte)
	acceptByte := byte(0)
	if accept {
		acceptByte = 0x01
	}
	out := []byte{seqNo, acceptByte, byte(len(dsk))}
	return append(out, dsk...), nil
}
