package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCMeter, 0x02, decodeMeterReport)

	registerEncoder(mappings.CCMeter, 0x01, encodeMeterGet)
}

// decodeMeterReport decodes Meter 0x02. The meter type occupies the low 5
// bits of byte 0; the scale is split across two fields: two bits in the
// precision/scale/size byte (byte 1, bits 3-4) and, when a byte follows the
// value, bit 2 of that byte as the third bit — reassembled here into one
// 0..7 scale value.
func decodeMeterReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	meterType := body[0] & 0x1F
	descriptor := body[1]
	scaleLow := (descriptor >> 3) & 0x03
	precision := (descriptor >> 5) & 0x07
	size := descriptor & 0x07

	pss, _, err := DecodePrecisionScaleSize(descriptor, body[2:])
	if err != nil {
		cmd.Value = body
		return cmd
	}

	scale := scaleLow
	rest := body[2+int(size):]
	if len(rest) >= 1 {
		scale = scaleLow | (rest[0] & 0x04)
	}

	cmd.Fields = Fields{
		"meter_type": meterType,
		"precision":  precision,
		"scale":      scale,
		"size":       size,
		"level":      pss.Level,
	}
	return cmd
}

func encodeMeterGet(params map[string]any) ([]byte, error) {
	scale, _ := params["scale"].(byte)
	return []byte{(scale & 0x03) << 3}, nil
}
