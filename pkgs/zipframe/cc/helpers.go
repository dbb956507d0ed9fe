package cc

import "github.com/keskad/zipgw/pkgs/mappings"

// baseCommand builds a Command with class/command symbols resolved via the
// mappings registry, ready for a decoder to attach Fields.
func baseCommand(class mappings.CommandClass, cmdByte byte) Command {
	classSymbol, classKnown := class.Symbol()
	cmdSymbol, cmdKnown := mappings.CommandSymbol(class, cmdByte)
	return Command{
		CommandClass:        class,
		CommandClassSymbol:  classSymbol,
		CommandClassUnknown: !classKnown,
		CommandByte:         cmdByte,
		CommandSymbol:       cmdSymbol,
		CommandUnknown:      !cmdKnown,
	}
}

// symbolOrUnknown renders a lookup's result as either its symbol or an
// "unknown(0xNN)" placeholder, for embedding in Fields without a nested tag.
func symbolOrUnknown(lookup func() (string, bool), raw byte) string {
	s, ok := lookup()
	if ok {
		return s
	}
	return unknownSymbol(raw)
}

func symbolOrUnknownSpecific(generic mappings.GenericClass, specific mappings.SpecificClass) string {
	s, ok := mappings.SpecificSymbol(generic, specific)
	if ok {
		return s
	}
	return unknownSymbol(byte(specific))
}

func unknownSymbol(raw byte) string {
	const hexDigits = "0123456789ABCDEF"
	return "unknown(0x" + string([]byte{hexDigits[raw>>4], hexDigits[raw&0x0F]}) + ")"
}
