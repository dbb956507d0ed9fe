package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCConfiguration, 0x06, decodeConfigurationReport)
	register(mappings.CCConfiguration, 0x09, decodeConfigurationBulkReport)

	registerEncoder(mappings.CCConfiguration, 0x04, encodeConfigurationSet)
	registerEncoder(mappings.CCConfiguration, 0x05, encodeConfigurationGet)
	registerEncoder(mappings.CCConfiguration, 0x08, encodeConfigurationBulkGet)
}

// decodeConfigurationReport decodes a single-parameter report: parameter
// number(1), size(1, low 3 bits, high bit = 0x80 "default" flag), then a
// size-byte signed big-endian value.
func decodeConfigurationReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 3 {
		cmd.Value = body
		return cmd
	}
	sizeByte := body[1]
	size := int(sizeByte & 0x07)
	value := body[2:]
	if size > 0 && len(value) > size {
		value = value[:size]
	}
	cmd.Fields = Fields{
		"parameter_number": body[0],
		"size":             size,
		"is_default":       sizeByte&0x80 != 0,
		"value":            signedFromBytes(value),
	}
	return cmd
}

// decodeConfigurationBulkReport decodes the bulk variant: parameter_offset
// (2 bytes), number_of_parameters(1), report_to_follow(1), default_flag(1),
// then number_of_parameters consecutive size-byte values (size shared
// across the whole report, per the last byte's low 3 bits).
func decodeConfigurationBulkReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 5 {
		cmd.Value = body
		return cmd
	}
	offset := int(body[0])<<8 | int(body[1])
	count := int(body[2])
	toFollow := body[3]
	sizeByte := body[4]
	size := int(sizeByte & 0x07)

	var values []int64
	rest := body[5:]
	for i := 0; i < count && size > 0 && len(rest) >= size; i++ {
		values = append(values, signedFromBytes(rest[:size]))
		rest = rest[size:]
	}

	cmd.Fields = Fields{
		"parameter_offset":    offset,
		"number_of_params":    count,
		"report_to_follow":    toFollow,
		"is_default":          sizeByte&0x80 != 0,
		"size":                size,
		"values":              values,
	}
	return cmd
}

// signedFromBytes reads a 1/2/4-byte big-endian signed integer; any other
// length is treated as 0 (configuration parameters never use size 3).
func signedFromBytes(b []byte) int64 {
	switch len(b) {
	case 1:
		return int64(int8(b[0]))
	case 2:
		return int64(int16(uint16(b[0])<<8 | uint16(b[1])))
	case 4:
		return int64(int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])))
	default:
		return 0
	}
}

func encodeConfigurationSet(params map[string]any) ([]byte, error) {
	paramNumber, _ := params["parameter_number"].(byte)
	size, _ := params["size"].(byte)
	value, _ := params["value"].([]byte)
	return append([]byte{paramNumber, size & 0x07}, value...), nil
}

func encodeConfigurationGet(params map[string]any) ([]byte, error) {
	paramNumber, _ := params["parameter_number"].(byte)
	return []byte{paramNumber}, nil
}

func encodeConfigurationBulkGet(params map[string]any) ([]byte, error) {
	offset, _ := params["parameter_offset"].(uint16)
	count, _ := params["number_of_params"].(byte)
	return []byte{byte(offset >> 8), byte(offset), 0x00, count}, nil
}
