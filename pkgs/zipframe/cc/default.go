package cc

import "github.com/keskad/zipgw/pkgs/mappings"

// decodeDefault resolves (class, cmdByte) through the mappings registry
// (C1) and returns a Command carrying the raw payload verbatim in Value.
// Per spec.md §4.2's "Default fallback": an unrecognized command pair
// yields command = {unknown, command_byte} and carries the raw body
// verbatim; this function is also reused directly when the trailing
// dispatch table has no decoder registered for a recognized class/command
// pair (e.g. a command this library only encodes, never decodes).
func decodeDefault(class mappings.CommandClass, cmdByte byte, payload []byte) Command {
	classSymbol, classKnown := class.Symbol()
	cmdSymbol, cmdKnown := mappings.CommandSymbol(class, cmdByte)

	return Command{
		CommandClass:        class,
		CommandClassSymbol:  classSymbol,
		CommandClassUnknown: !classKnown,
		CommandByte:         cmdByte,
		CommandSymbol:       cmdSymbol,
		CommandUnknown:      !cmdKnown,
		Value:               payload,
	}
}
