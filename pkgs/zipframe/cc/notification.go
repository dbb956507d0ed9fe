package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCNotification, 0x05, decodeNotificationReport)

	registerEncoder(mappings.CCNotification, 0x04, encodeNotificationGet)
}

// decodeNotificationReport decodes Notification 0x05 in its two forms: the
// typed v8 form (the first three bytes are zero, followed by
// notification_type/notification_state) and the legacy v1 alarm_type/
// alarm_level form.
func decodeNotificationReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 5 {
		cmd.Value = body
		return cmd
	}

	if body[0] == 0x00 && body[1] == 0x00 && body[2] == 0x00 {
		notifType := mappings.NotificationType(body[3])
		notifState := mappings.NotificationState(body[4])
		cmd.Fields = Fields{
			"notification_type":  symbolOrUnknown(notifType.Symbol, byte(notifType)),
			"notification_state": symbolOrUnknown(func() (string, bool) { return mappings.StateSymbol(notifType, notifState) }, byte(notifState)),
		}
		return cmd
	}

	cmd.Fields = Fields{
		"alarm_type":  body[0],
		"alarm_level": body[1],
	}
	return cmd
}

func encodeNotificationGet(params map[string]any) ([]byte, error) {
	notifType, _ := params["notification_type"].(byte)
	event, _ := params["event"].(byte)
	return []byte{0x00, notifType, event}, nil
}
