package mappings

// NotificationType is the top-level category of a Notification CC report
// (smoke alarm, access control, water, ...).
type NotificationType byte

var notificationTypeNames = map[NotificationType]string{
	0x06: "access_control",
	0x07: "home_security",
	0x08: "power_management",
	0x05: "water_alarm",
	0x01: "smoke_alarm",
}

// Symbol returns the notification-type symbol, or ok=false when unregistered.
func (n NotificationType) Symbol() (string, bool) {
	s, ok := notificationTypeNames[n]
	return s, ok
}

// NotificationState is the event/state byte within a notification type.
type NotificationState byte

// notificationStateNames is keyed per type since state bytes are only
// meaningful within their owning notification type.
var notificationStateNames = map[NotificationType]map[NotificationState]string{
	0x06: {
		0x01: "manual_lock_operation",
		0x02: "manual_unlock_operation",
		0x03: "rf_lock_operation",
		0x04: "rf_unlock_operation",
	},
	0x07: {
		0x01: "intrusion",
		0x02: "intrusion_unknown_location",
		0x03: "tampering",
	},
	0x08: {
		0x01: "power_applied",
		0x02: "ac_mains_disconnected",
		0x03: "ac_mains_reconnected",
	},
}

// StateSymbol returns the state symbol for (type, state).
func StateSymbol(t NotificationType, s NotificationState) (string, bool) {
	table, ok := notificationStateNames[t]
	if !ok {
		return "", false
	}
	sym, ok := table[s]
	return sym, ok
}
