package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCFirmwareUpdateMD, 0x02, decodeFirmwareMDReport)

	registerEncoder(mappings.CCFirmwareUpdateMD, 0x01, encodeFirmwareMDGet)
}

func decodeFirmwareMDReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	manufacturerID := int(body[0])<<8 | int(body[1])
	fields := Fields{"manufacturer_id": manufacturerID}
	if len(body) >= 4 {
		fields["firmware_id"] = int(body[2])<<8 | int(body[3])
	}
	if len(body) >= 6 {
		fields["checksum"] = int(body[4])<<8 | int(body[5])
	}
	cmd.Fields = fields
	return cmd
}

func encodeFirmwareMDGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}
