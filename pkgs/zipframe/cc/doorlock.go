package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCDoorLock, 0x03, decodeDoorLockOperationReport)

	registerEncoder(mappings.CCDoorLock, 0x01, encodeDoorLockOperationSet)
	registerEncoder(mappings.CCDoorLock, 0x02, encodeDoorLockOperationGet)
}

var doorLockModeNames = map[byte]string{
	0x00: "unsecured",
	0x01: "unsecured_with_timeout",
	0x10: "unsecured_inside",
	0x11: "unsecured_inside_with_timeout",
	0x20: "unsecured_outside",
	0x21: "unsecured_outside_with_timeout",
	0xFE: "unknown",
	0xFF: "secured",
}

func decodeDoorLockOperationReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	mode, known := doorLockModeNames[body[0]]
	if !known {
		mode = unknownSymbol(body[0])
	}
	fields := Fields{"mode": mode}
	if len(body) >= 5 {
		fields["handles_mode"] = body[1]
		fields["condition"] = body[2]
		fields["lock_timeout_minutes"] = body[3]
		fields["lock_timeout_seconds"] = body[4]
	}
	cmd.Fields = fields
	return cmd
}

func encodeDoorLockOperationSet(params map[string]any) ([]byte, error) {
	mode, _ := params["mode"].(byte)
	return []byte{mode}, nil
}

func encodeDoorLockOperationGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}
