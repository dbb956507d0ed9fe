package cc

import (
	"encoding/hex"

	"github.com/keskad/zipgw/pkgs/mappings"
)

func init() {
	register(mappings.CCManufacturerSpecific, 0x05, decodeManufacturerSpecificReport)
	register(mappings.CCManufacturerSpecific, 0x07, decodeDeviceSpecificReport)

	registerEncoder(mappings.CCManufacturerSpecific, 0x04, encodeManufacturerSpecificGet)
	registerEncoder(mappings.CCManufacturerSpecific, 0x06, encodeDeviceSpecificGet)
}

func decodeManufacturerSpecificReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 6 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"manufacturer_id":  int(body[0])<<8 | int(body[1]),
		"product_type_id":  int(body[2])<<8 | int(body[3]),
		"product_id":       int(body[4])<<8 | int(body[5]),
	}
	return cmd
}

// decodeDeviceSpecificReport decodes device_specific_report (0x72 0x07): a
// device-id type byte (low 3 bits), a format/length byte (data format in the
// high 3 bits, length in the low 5 bits), then the device-id bytes
// themselves, rendered as UTF-8 text when the data format is 0 and as a hex
// string otherwise.
func decodeDeviceSpecificReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	deviceIDType := body[0] & 0x07
	dataFormat := (body[1] >> 5) & 0x07
	length := int(body[1] & 0x1F)
	data := body[2:]
	if length > 0 && len(data) > length {
		data = data[:length]
	}

	fields := Fields{
		"device_id_type": deviceIDType,
	}
	if dataFormat == 0 {
		fields["device_id"] = string(data)
	} else {
		fields["device_id"] = hex.EncodeToString(data)
	}
	cmd.Fields = fields
	return cmd
}

func encodeManufacturerSpecificGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}

func encodeDeviceSpecificGet(params map[string]any) ([]byte, error) {
	deviceIDType, _ := params["device_id_type"].(byte)
	return []byte{deviceIDType & 0x07}, nil
}
