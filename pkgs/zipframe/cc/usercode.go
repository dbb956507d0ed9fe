package cc

import "github.com/keskad/zipgw/pkgs/mappings"

func init() {
	register(mappings.CCUserCode, 0x03, decodeUserCodeReport)
	register(mappings.CCUserCode, 0x05, decodeUsersNumberReport)

	registerEncoder(mappings.CCUserCode, 0x01, encodeUserCodeSet)
	registerEncoder(mappings.CCUserCode, 0x02, encodeUserCodeGet)
	registerEncoder(mappings.CCUserCode, 0x04, encodeUsersNumberGet)
}

var userIDStatusNames = map[byte]string{
	0x00: "available",
	0x01: "occupied",
	0x02: "reserved_by_administrator",
	0xFE: "status_not_available",
}

func decodeUserCodeReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 2 {
		cmd.Value = body
		return cmd
	}
	status, known := userIDStatusNames[body[1]]
	if !known {
		status = unknownSymbol(body[1])
	}
	cmd.Fields = Fields{
		"user_identifier": body[0],
		"user_id_status":  status,
		"user_code":       body[2:],
	}
	return cmd
}

func decodeUsersNumberReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 1 {
		cmd.Value = body
		return cmd
	}
	cmd.Fields = Fields{"supported_users": body[0]}
	return cmd
}

func encodeUserCodeSet(params map[string]any) ([]byte, error) {
	userID, _ := params["user_identifier"].(byte)
	status, _ := params["user_id_status"].(byte)
	code, _ := params["user_code"].([]byte)
	return append([]byte{userID, status}, code...), nil
}

func encodeUserCodeGet(params map[string]any) ([]byte, error) {
	userID, _ := params["user_identifier"].(byte)
	return []byte{userID}, nil
}

func encodeUsersNumberGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}
