package mappings

// BasicClass is the coarse device role reported in a NIF (controller,
// routing slave, end node, ...).
type BasicClass byte

var basicClassNames = map[BasicClass]string{
	0x01: "controller",
	0x02: "static_controller",
	0x03: "slave",
	0x04: "routing_slave",
}

// Symbol returns the basic-class symbol, or ok=false for an unregistered byte.
func (b BasicClass) Symbol() (string, bool) {
	s, ok := basicClassNames[b]
	return s, ok
}

// GenericClass is the device's generic role (e.g. binary switch, thermostat).
type GenericClass byte

var genericClassNames = map[GenericClass]string{
	0x08: "generic_switch_binary",
	0x09: "generic_switch_multilevel",
	0x10: "generic_sensor_binary",
	0x11: "generic_sensor_multilevel",
	0x20: "generic_thermostat",
	0x40: "generic_entry_control",
	0x31: "generic_meter",
}

// Symbol returns the generic-class symbol, or ok=false for an unregistered byte.
func (g GenericClass) Symbol() (string, bool) {
	s, ok := genericClassNames[g]
	return s, ok
}

// SpecificClass refines a GenericClass.
type SpecificClass byte

// specificClassNames is keyed by (generic, specific) since specific-class
// byte values are only meaningful within their owning generic class.
var specificClassNames = map[GenericClass]map[SpecificClass]string{
	0x08: {
		0x01: "specific_switch_binary_power",
	},
	0x20: {
		0x01: "specific_thermostat_heating",
		0x02: "specific_thermostat_general_v2",
		0x03: "specific_thermostat_setback",
	},
	0x40: {
		0x01: "specific_entry_control_door_lock",
		0x02: "specific_entry_control_secure_keypad_door_lock",
	},
}

// SpecificSymbol returns the specific-class symbol for (generic, specific).
func SpecificSymbol(generic GenericClass, specific SpecificClass) (string, bool) {
	table, ok := specificClassNames[generic]
	if !ok {
		return "", false
	}
	s, ok := table[specific]
	return s, ok
}

// SensorType is the MultilevelSensor command class's sensor-type byte.
type SensorType byte

var sensorTypeNames = map[SensorType]string{
	0x01: "temperature",
	0x02: "general_purpose",
	0x03: "luminance",
	0x04: "power",
	0x05: "relative_humidity",
	0x06: "velocity",
	0x07: "direction",
	0x08: "atmospheric_pressure",
	0x0F: "dew_point",
	0x10: "water_flow",
	0x11: "water_pressure",
	0x12: "rain_rate",
	0x15: "weight",
	0x17: "current",
	0x18: "co2_level",
	0x1A: "air_flow",
	0x1B: "tank_capacity",
	0x20: "voltage",
	0x21: "current",
	0x22: "electrical_resistivity",
	0x23: "electrical_conductivity",
	0x28: "ultraviolet",
}

// Symbol returns the sensor-type symbol, or ok=false for an unregistered byte.
func (s SensorType) Symbol() (string, bool) {
	name, ok := sensorTypeNames[s]
	return name, ok
}
