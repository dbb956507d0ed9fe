package cc

import (
	"net"

	"github.com/keskad/zipgw/pkgs/mappings"
)

func init() {
	register(mappings.CCMailbox, 0x03, decodeMailboxConfigurationReport)

	registerEncoder(mappings.CCMailbox, 0x01, encodeMailboxConfigurationGet)
	registerEncoder(mappings.CCMailbox, 0x02, encodeMailboxConfigurationSet)
}

// decodeMailboxConfigurationReport decodes Mailbox 0x03: a support-bitmask
// byte, a 16-byte IPv6 address and a 2-byte UDP port the mailbox service
// listens on for queued-message delivery.
func decodeMailboxConfigurationReport(class mappings.CommandClass, cmdByte byte, body []byte) Command {
	cmd := baseCommand(class, cmdByte)
	if len(body) < 19 {
		cmd.Value = body
		return cmd
	}
	ip := net.IP(append([]byte(nil), body[1:17]...))
	port := int(body[17])<<8 | int(body[18])
	cmd.Fields = Fields{
		"mode":       body[0],
		"ip_address": ip.String(),
		"udp_port":   port,
	}
	return cmd
}

func encodeMailboxConfigurationGet(params map[string]any) ([]byte, error) {
	return []byte{}, nil
}

func encodeMailboxConfigurationSet(params map[string]any) ([]byte, error) {
	mode, _ := params["mode"].(byte)
	return []byte{mode}, nil
}
