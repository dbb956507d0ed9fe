package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCWakeUp, 0x06, decodeWakeUpIntervalReport)
	register(mappings.CCWakeUp, 0x0A, decodeWakeUpIntervalCapabilitiesReport)
	register(mappings.CCWakeUp, 0x07, decodeWakeUpNotification)

	registerEncoder(mappings.CCWakeUp, 0x04, encodeWakeUpIntervalSet)
	registerEncoder(mappings.CCWakeUp, 0x05, encodeWakeUpIntervalGet)
	registerEncoder(mappings.CCWakeUp, 0x08, encodeWakeUpNoMoreInformation)
}

func decode24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func encode24(v uint32) []byte {
	return []byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

func decodeWakeUpIntervalReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 4 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"seconds": decode24(body[0:3]),
		"node_id": body[3],
	}
	return cmd
}

func decodeWakeUpIntervalCapabilitiesReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 12 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"minimum_seconds": decode24(body[0:3]),
		"maximum_seconds": decode24(body[3:6]),
		"default_seconds": decode24(body[6:9]),
		"step_seconds":    decode24(body[9:12]),
	}
	return cmd
}

func decodeWakeUpNotification(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	return baseCommand(class, cmdByte)
}

func encodeWakeUpIntervalSet(params map[string]any) ([]byte, error) {
	seconds, _ := params["seconds"].(uint32)
	nodeID, _ := params["node_id"].(byte)
	return append(encode24(seconds), nodeID), nil
}

func encodeWakeUpIntervalGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}

func encodeWakeUpNoMoreInformation(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}
