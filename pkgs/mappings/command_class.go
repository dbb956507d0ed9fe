package mappings

// CommandClass identifies a Z-Wave functional namespace, e.g. 0x25 switch-binary.
type CommandClass byte

// Unknown marks a CommandClass/Command byte with no registered symbol.
const Unknown = "unknown"

// The command classes decoded or encoded by this library. Extending the
// catalog means adding an entry to commandClassNames (and, for classes whose
// bodies this library parses, a decoder/encoder in pkgs/zipframe/cc) — no
// change to any dispatch code elsewhere.
const (
	CCZIP                                CommandClass = 0x23
	CCSwitchBinary                       CommandClass = 0x25
	CCSwitchMultilevel                   CommandClass = 0x26
	CCMeter                              CommandClass = 0x32
	CCMultilevelSensor                   CommandClass = 0x31
	CCNetworkManagementInclusion         CommandClass = 0x34
	CCThermostatMode                     CommandClass = 0x40
	CCThermostatSetpoint                 CommandClass = 0x43
	CCThermostatFanMode                  CommandClass = 0x44
	CCThermostatFanState                 CommandClass = 0x45
	CCThermostatSetback                  CommandClass = 0x47
	CCNetworkManagementBasic             CommandClass = 0x4D
	CCNetworkManagementProxy             CommandClass = 0x52
	CCDoorLock                           CommandClass = 0x62
	CCUserCode                           CommandClass = 0x63
	CCMailbox                            CommandClass = 0x69
	CCConfiguration                      CommandClass = 0x70
	CCManufacturerSpecific               CommandClass = 0x72
	CCFirmwareUpdateMD                   CommandClass = 0x7A
	CCNotification                       CommandClass = 0x71
	CCBattery                            CommandClass = 0x80
	CCAssociation                        CommandClass = 0x85
	CCWakeUp                             CommandClass = 0x84
	CCCommandClassVersion                CommandClass = 0x86
	CCBasic                              CommandClass = 0x20
	CCNetworkManagementInstallationMaint CommandClass = 0x67
)

var commandClassNames = map[CommandClass]string{
	CCZIP:                                "zip",
	CCBasic:                              "basic",
	CCSwitchBinary:                       "switch_binary",
	CCSwitchMultilevel:                   "switch_multilevel",
	CCMeter:                              "meter",
	CCMultilevelSensor:                   "multilevel_sensor",
	CCNetworkManagementInclusion:         "network_management_inclusion",
	CCThermostatMode:                     "thermostat_mode",
	CCThermostatSetpoint:                 "thermostat_setpoint",
	CCThermostatFanMode:                  "thermostat_fan_mode",
	CCThermostatFanState:                 "thermostat_fan_state",
	CCThermostatSetback:                  "thermostat_setback",
	CCNetworkManagementBasic:             "network_management_basic",
	CCNetworkManagementProxy:             "network_management_proxy",
	CCDoorLock:                           "door_lock",
	CCUserCode:                           "user_code",
	CCMailbox:                            "mailbox",
	CCConfiguration:                      "configuration",
	CCManufacturerSpecific:               "manufacturer_specific",
	CCFirmwareUpdateMD:                   "firmware_update_md",
	CCNotification:                       "notification",
	CCBattery:                            "battery",
	CCAssociation:                        "association",
	CCWakeUp:                             "wake_up",
	CCCommandClassVersion:                "command_class_version",
	CCNetworkManagementInstallationMaint: "network_management_installation_maintenance",
}

// Symbol looks up the human-readable name for cc. ok is false for an
// unregistered class; callers decoding frames should fall back to a
// {unknown, byte} tag rather than treat this as fatal.
func (cc CommandClass) Symbol() (string, bool) {
	s, ok := commandClassNames[cc]
	return s, ok
}

// commandNames maps (command class, command byte) -> symbol. Extending the
// catalog is purely additive: insert a new key here.
var commandNames = map[CommandClass]map[byte]string{
	CCNetworkManagementInclusion: {
		0x01: "node_add",
		0x02: "node_add_status",
		0x03: "node_remove",
		0x04: "node_remove_status",
		0x0B: "node_neighbor_update_request",
		0x0C: "node_neighbor_update_status",
		0x10: "node_add_keys_set",
		0x11: "node_add_keys_report",
		0x12: "node_add_dsk_set",
		0x13: "node_add_dsk_report",
	},
	CCNetworkManagementBasic: {
		0x02: "default_set",
		0x03: "default_set_complete",
		0x04: "learn_mode_set",
		0x05: "learn_mode_set_status",
	},
	CCNetworkManagementProxy: {
		0x01: "node_list_get",
		0x02: "node_list_report",
		0x03: "node_info_cache_get",
		0x04: "node_info_cache_report",
	},
	CCNetworkManagementInstallationMaint: {
		0x0A: "provisioning_list_set",
		0x0B: "provisioning_list_get",
		0x0C: "provisioning_list_report",
	},
	CCNotification: {
		0x04: "notification_get",
		0x05: "notification_report",
		0x08: "notification_supported_get",
	},
	CCBasic: {
		0x01: "basic_set",
		0x02: "basic_get",
		0x03: "basic_report",
	},
	CCSwitchBinary: {
		0x01: "switch_binary_set",
		0x02: "switch_binary_get",
		0x03: "switch_binary_report",
	},
	CCSwitchMultilevel: {
		0x01: "switch_multilevel_set",
		0x02: "switch_multilevel_get",
		0x03: "switch_multilevel_report",
	},
	CCMultilevelSensor: {
		0x04: "sensor_multilevel_get",
		0x05: "sensor_multilevel_report",
	},
	CCThermostatMode: {
		0x01: "thermostat_mode_set",
		0x02: "thermostat_mode_get",
		0x03: "thermostat_mode_report",
	},
	CCThermostatSetpoint: {
		0x01: "thermostat_setpoint_set",
		0x02: "thermostat_setpoint_get",
		0x03: "thermostat_setpoint_report",
	},
	CCThermostatFanMode: {
		0x01: "thermostat_fan_mode_set",
		0x02: "thermostat_fan_mode_get",
		0x03: "thermostat_fan_mode_report",
	},
	CCThermostatFanState: {
		0x02: "thermostat_fan_state_get",
		0x03: "thermostat_fan_state_report",
	},
	CCThermostatSetback: {
		0x01: "thermostat_setback_set",
		0x02: "thermostat_setback_get",
		0x03: "thermostat_setback_report",
	},
	CCDoorLock: {
		0x01: "door_lock_operation_set",
		0x02: "door_lock_operation_get",
		0x03: "door_lock_operation_report",
		0x04: "door_lock_configuration_set",
		0x05: "door_lock_configuration_get",
		0x06: "door_lock_configuration_report",
	},
	CCUserCode: {
		0x01: "user_code_set",
		0x02: "user_code_get",
		0x03: "user_code_report",
		0x04: "usersnumber_get",
		0x05: "usersnumber_report",
	},
	CCConfiguration: {
		0x04: "configuration_set",
		0x05: "configuration_get",
		0x06: "configuration_report",
		0x09: "configuration_bulk_report",
		0x07: "configuration_bulk_set",
		0x08: "configuration_bulk_get",
	},
	CCMeter: {
		0x01: "meter_get",
		0x02: "meter_report",
	},
	CCBattery: {
		0x02: "battery_get",
		0x03: "battery_report",
	},
	CCCommandClassVersion: {
		0x11: "version_get",
		0x12: "version_report",
		0x13: "version_command_class_get",
		0x14: "version_command_class_report",
	},
	CCFirmwareUpdateMD: {
		0x01: "firmware_md_get",
		0x02: "firmware_md_report",
	},
	CCManufacturerSpecific: {
		0x04: "manufacturer_specific_get",
		0x05: "manufacturer_specific_report",
		0x06: "device_specific_get",
		0x07: "device_specific_report",
	},
	CCMailbox: {
		0x01: "mailbox_configuration_get",
		0x02: "mailbox_configuration_set",
		0x03: "mailbox_configuration_report",
		0x04: "mailbox_queue",
	},
	CCWakeUp: {
		0x04: "wake_up_interval_set",
		0x05: "wake_up_interval_get",
		0x06: "wake_up_interval_report",
		0x07: "wake_up_notification",
		0x08: "wake_up_no_more_information",
		0x0A: "wake_up_interval_capabilities_report",
	},
	CCAssociation: {
		0x01: "association_set",
		0x02: "association_get",
		0x03: "association_report",
		0x04: "association_remove",
		// 0x06 is reachable here for callers depending on the mapping-table
		// bug described in spec.md §9's Open Questions; the codec itself
		// only decodes 0x03.
		0x06: "association_report_aliased",
	},
}

// CommandSymbol looks up the human-readable name for (cc, cmd).
func CommandSymbol(cc CommandClass, cmd byte) (string, bool) {
	table, ok := commandNames[cc]
	if !ok {
		return "", false
	}
	s, ok := table[cmd]
	return s, ok
}

// ClassByName is the reverse of Symbol, for CLI/config input that names a
// command class by its symbol rather than its numeric byte.
func ClassByName(name string) (CommandClass, bool) {
	for cc, s := range commandClassNames {
		if s == name {
			return cc, true
		}
	}
	return 0, false
}

// CommandByName is the reverse of CommandSymbol, for CLI/config input that
// names a command by its symbol rather than its numeric byte.
func CommandByName(cc CommandClass, name string) (byte, bool) {
	table, ok := commandNames[cc]
	if !ok {
		return 0, false
	}
	for cmd, s := range table {
		if s == name {
			return cmd, true
		}
	}
	return 0, false
}
