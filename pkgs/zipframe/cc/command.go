// Package cc implements the Z/IP command-class body parser/encoder
// dispatch table: decode(cc, cmd, body) -> Command, and the symmetric
// encoders used by pkgs/command. The dispatch table is open for extension —
// adding a class means registering a decoder/encoder pair here, never
// touching pkgs/zipframe or pkgs/runner.
package cc

import "github.com/keskad/zipgw/pkgs/mappings"

// Fields holds command-specific decoded values, keyed by field name. A map
// rather than one struct per command mirrors the open, ever-growing set of
// command classes the codec must tolerate (spec: "open for extension").
type Fields map[string]any

// Unknown tags an unrecognized command-class or command byte, per spec:
// "An unknown pair decodes to a {unknown, raw_byte} tag — decoding must
// never fail fatally on an unknown class/command."
type Unknown struct {
	Byte byte
}

// Command is the decoded output of a command-class body: the command-class
// and command identity (resolved to a symbol where known, tagged Unknown
// otherwise) plus command-specific Fields. Value carries the raw body for
// the default fallback and for any decoder that wants the caller to see the
// untouched bytes alongside parsed fields.
type Command struct {
	CommandClass       mappings.CommandClass
	CommandClassSymbol string // "" when CommandClassUnknown is true
	CommandClassUnknown bool

	CommandByte   byte
	CommandSymbol string // "" when CommandUnknown is true
	CommandUnknown bool

	Fields Fields
	Value  []byte
}

type decoderFunc func(ccByte mappings.CommandClass, cmdByte byte, body []byte) Command

// dispatch is keyed by (command class, command byte). Registered from each
// decoder file's init().
var dispatch = map[mappings.CommandClass]map[byte]decoderFunc{}

func register(class mappings.CommandClass, cmd byte, fn decoderFunc) {
	table, ok := dispatch[class]
	if !ok {
		table = map[byte]decoderFunc{}
		dispatch[class] = table
	}
	table[cmd] = fn
}

// Parse decodes a command-class body: (command class byte, command byte,
// payload...). It never fails fatally: an unrecognized (class, command)
// pair falls back to the default decoder (decodeDefault in default.go),
// which tags the unresolved half(s) as Unknown and carries the raw payload
// in Value.
func Parse(body []byte) Command {
	if len(body) < 2 {
		return decodeDefault(mappings.CommandClass(0), 0, body)
	}
	class := mappings.CommandClass(body[0])
	cmdByte := body[1]
	payload := body[2:]

	if table, ok := dispatch[class]; ok {
		if fn, ok := table[cmdByte]; ok {
			return fn(class, cmdByte, payload)
		}
	}
	return decodeDefault(class, cmdByte, payload)
}

// encoderFunc encodes command-specific parameters (already validated by the
// caller) into the trailing bytes following {commandClass, command}.
type encoderFunc func(params map[string]any) ([]byte, error)

var encoders = map[mappings.CommandClass]map[byte]encoderFunc{}

func registerEncoder(class mappings.CommandClass, cmd byte, fn encoderFunc) {
	table, ok := encoders[class]
	if !ok {
		table = map[byte]encoderFunc{}
		encoders[class] = table
	}
	table[cmd] = fn
}

// Encode serializes (class, cmd, params) into {class, cmd, payload...}. It
// returns an error for a (class, cmd) pair with no registered encoder —
// unlike decoding, encoding an unrecognized command is a caller bug, not an
// expected wire condition.
func Encode(class mappings.CommandClass, cmd byte, params map[string]any) ([]byte, error) {
	table, ok := encoders[class]
	if !ok {
		return nil, errUnsupported(class, cmd)
	}
	fn, ok := table[cmd]
	if !ok {
		return nil, errUnsupported(class, cmd)
	}
	payload, err := fn(params)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(class), cmd}, payload...), nil
}
