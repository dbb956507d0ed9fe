package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCBattery, 0x03, decodeBatteryReport)

	registerEncoder(mappings.CCBattery, 0x02, encodeBatteryGet)
}

func decodeBatteryReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	if body[0] == 0xFF {
		cmd.Fields = Fields{"level": "low"}
		return cmd
	}
	cmd.Fields = Fields{"level": body[0]}
	return cmd
}

func encodeBatteryGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}
