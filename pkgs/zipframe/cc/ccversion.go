package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCCommandClassVersion, 0x12, decodeVersionReport)
	register(mappings.CCCommandClassVersion, 0x14, decodeVersionCommandClassReport)

	registerEncoder(mappings.CCCommandClassVersion, 0x11, encodeVersionGet)
	registerEncoder(mappings.CCCommandClassVersion, 0x13, encodeVersionCommandClassGet)
}

func decodeVersionReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 3 {
		cmd.Value = body
		return cmd
	}
	fields := Fields{
		"library_type":     body[0],
		"protocol_version": body[1],
		"firmware_version": body[2],
	}
	if len(body) >= 4 {
		fields["hardware_version"] = body[3]
	}
	cmd.Fields = fields
	return cmd
}

func decodeVersionCommandClassReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	requested := mappings.CommandClass(body[0])
	symbol, known := requested.Symbol()
	cmd.Fields = Fields{
		"requested_command_class":        requested,
		"requested_command_class_symbol": symbolOrUnknown(func() (string, bool) { return symbol, known }, byte(requested)),
		"version":                         body[1],
	}
	return cmd
}

func encodeVersionGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}

func encodeVersionCommandClassGet(params map[string]any) ([]byte, error) {
	requested, _ := params["requested_command_class"].(byte)
	return []byte{requested}, nil
}
