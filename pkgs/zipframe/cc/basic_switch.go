package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCBasic, 0x03, decodeBasicReport)
	register(mappings.CCSwitchBinary, 0x03, decodeSwitchBinaryReport)
	register(mappings.CCSwitchMultilevel, 0x03, decodeSwitchMultilevelReport)

	registerEncoder(mappings.CCBasic, 0x01, encodeBasicSet)
	registerEncoder(mappings.CCBasic, 0x02, encodeBasicGet)
	registerEncoder(mappings.CCSwitchBinary, 0x01, encodeSwitchBinarySet)
	registerEncoder(mappings.CCSwitchBinary, 0x02, encodeSwitchBinaryGet)
	registerEncoder(mappings.CCSwitchMultilevel, 0x01, encodeSwitchMultilevelSet)
	registerEncoder(mappings.CCSwitchMultilevel, 0x02, encodeSwitchMultilevelGet)
}

// decodeLevelValue renders a Basic/SwitchBinary/SwitchMultilevel value byte
// as off/on/unknown or a dimmer percentage, per the shared report encoding
// these three command classes use.
func decodeLevelValue(v byte) any {
	switch {
	case v == 0x00:
		return "off"
	case v == 0xFF:
		return "on"
	case v == 0xFE:
		return "unknown"
	case v <= 0x63:
		return v
	default:
		return "unknown"
	}
}

func decodeBasicReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	fields := Fields{"value": decodeLevelValue(body[0])}
	if len(body) >= 3 {
		fields["target_value"] = decodeLevelValue(body[1])
		fields["duration"] = body[2]
	}
	cmd.Fields = fields
	return cmd
}

func decodeSwitchBinaryReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	fields := Fields{"value": decodeLevelValue(body[0])}
	if len(body) >= 3 {
		fields["target_value"] = decodeLevelValue(body[1])
		fields["duration"] = body[2]
	}
	cmd.Fields = fields
	return cmd
}

func decodeSwitchMultilevelReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	fields := Fields{"value": decodeLevelValue(body[0])}
	if len(body) >= 3 {
		fields["target_value"] = decodeLevelValue(body[1])
		fields["duration"] = body[2]
	}
	cmd.Fields = fields
	return cmd
}

func encodeLevelParam(params map[string]any) byte {
	switch v := params["value"].(type) {
	case bool:
		if v {
			return 0xFF
		}
		return 0x00
	case string:
		if v == "on" {
			return 0xFF
		}
		return 0x00
	case byte:
		return v
	case int:
		return byte(v)
	default:
		return 0x00
	}
}

func encodeBasicSet(params map[string]any) ([]byte, error) {
	return []byte{encodeLevelParam(params)}, nil
}

func encodeBasicGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}

func encodeSwitchBinarySet(params map[string]any) ([]byte, error) {
	return []byte{encodeLevelParam(params)}, nil
}

func encodeSwitchBinaryGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}

func encodeSwitchMultilevelSet(params map[string]any) ([]byte, error) {
	duration, _ := params["duration"].(byte)
	return []byte{encodeLevelParam(params), duration}, nil
}

func encodeSwitchMultilevelGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}
