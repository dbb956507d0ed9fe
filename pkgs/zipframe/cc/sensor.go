package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCMultilevelSensor, 0x05, decodeSensorReport)

	registerEncoder(mappings.CCMultilevelSensor, 0x04, encodeSensorGet)
}

// decodeSensorReport decodes MultilevelSensor 0x05: a 1-byte sensor type,
// then a packed precision(3)/scale(2)/size(3) descriptor byte and the
// size-byte signed value it describes.
func decodeSensorReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	pss, _, err := DecodePrecisionScaleSize(body[1], body[2:])
	if err != nil {
		cmd.Value = body
		return cmd
	}
	sensorType := mappings.SensorType(body[0])
	cmd.Fields = Fields{
		"type":      symbolOrUnknown(sensorType.Symbol, byte(sensorType)),
		"precision": pss.Precision,
		"scale":     pss.Scale,
		"size":      pss.Size,
		"level":     pss.Level,
	}
	return cmd
}

func encodeSensorGet(params map[string]any) ([]byte, error) {
	sensorType, _ := params["type"].(byte)
	scale, _ := params["scale"].(byte)
	if sensorType == 0 {
		return []byte{}, nil
	}
	return []byte{sensorType, scale << 3}, nil
}
