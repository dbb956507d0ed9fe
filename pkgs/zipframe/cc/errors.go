package cc

import (
	"fmt"

	"github.com/keskad/zipgw/pkgs/mappings"
)

func errUnsupported(class mappings.CommandClass, cmd byte) error {
	return fmt.Errorf("cc: no encoder registered for command class 0x%02X command 0x%02X", byte(class), cmd)
}

func errShortBody(who string, need, have int) error {
	return fmt.Errorf("cc: %s: need at least %d bytes, have %d", who, need, have)
}
