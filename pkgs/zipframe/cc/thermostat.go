package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCThermostatMode, 0x03, decodeThermostatModeReport)
	register(mappings.CCThermostatSetpoint, 0x03, decodeThermostatSetpointReport)
	register(mappings.CCThermostatFanMode, 0x03, decodeThermostatFanModeReport)
	register(mappings.CCThermostatFanState, 0x03, decodeThermostatFanStateReport)
	register(mappings.CCThermostatSetback, 0x03, decodeThermostatSetbackReport)

	registerEncoder(mappings.CCThermostatMode, 0x01, encodeThermostatModeSet)
	registerEncoder(mappings.CCThermostatMode, 0x02, encodeThermostatModeGet)
	registerEncoder(mappings.CCThermostatSetpoint, 0x01, encodeThermostatSetpointSet)
	registerEncoder(mappings.CCThermostatSetpoint, 0x02, encodeThermostatSetpointGet)
}

// decodeThermostatModeBase is the one-byte clause of 0x40 0x03: just the
// mode byte (low 5 bits; the high 3 bits carry a manufacturer-specific
// flag on some devices, masked off here since the report doesn't use it).
func decodeThermostatModeBase(body []byte) Fields {
	return Fields{"mode": body[0] & 0x1F}
}

// decodeThermostatModeReport resolves the 0x40 0x03 dual arity: some
// thermostats reply with a single mode byte, others append a trailing
// manufacturer-data byte. The multi-byte clause decodes via the one-byte
// base parser and explicitly discards the extra byte rather than letting a
// slice bound silently swallow it.
func decodeThermostatModeReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = decodeThermostatModeBase(body)
	if len(body) > 1 {
		_ = body[1:] // manufacturer-specific trailing byte(s), not decoded
	}
	return cmd
}

func decodeThermostatSetpointReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 3 {
		cmd.Value = body
		return cmd
	}
	pss, _, err := DecodePrecisionScaleSize(body[1], body[2:])
	if err != nil {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"setpoint_type": body[0] & 0x0F,
		"precision":     pss.Precision,
		"scale":         pss.Scale,
		"size":          pss.Size,
		"level":         pss.Level,
	}
	return cmd
}

func decodeThermostatFanModeReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"off?": body[0]&0x80 != 0,
		"mode": body[0] & 0x0F,
	}
	return cmd
}

func decodeThermostatFanStateReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{"state": body[0] & 0x0F}
	return cmd
}

func decodeThermostatSetbackReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 3 {
		cmd.Value = body
		return cmd
	}
	pss, _, err := DecodePrecisionScaleSize(body[1], body[2:])
	if err != nil {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{
		"setback_type": body[0] & 0x03,
		"level":        pss.Level,
	}
	return cmd
}

func encodeThermostatModeSet(params map[string]any) ([]byte, error) {
	mode, _ := params["mode"].(byte)
	return []byte{mode & 0x1F}, nil
}

func encodeThermostatModeGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}

func encodeThermostatSetpointSet(params map[string]any) ([]byte, error) {
	setpointType, _ := params["setpoint_type"].(byte)
	precision, _ := params["precision"].(uint8)
	scale, _ := params["scale"].(uint8)
	raw, _ := params["raw"].(int32)
	encoded, err := EncodePrecisionScaleSize(precision, scale, raw)
	if err != nil {
		return nil, err
	}
	return append([]byte{setpointType & 0x0F}, encoded...), nil
}

func encodeThermostatSetpointGet(params map[string]any) ([]byte, error) {
	setpointType, _ := params["setpoint_type"].(byte)
	return []byte{setpointType & 0x0F}, nil
}
