// Package zipframe implements the bit-exact Z/IP packet envelope codec:
// encode/decode of the 7-byte header (command class 0x23) carrying the
// sequence number and ack/nack type flags, with the remaining bytes handed
// to the command-class body parser in the cc subpackage.
package zipframe

import "fmt"

// headerLen is the fixed Z/IP envelope prefix: command class, command,
// sequence number, flags byte, and reserved bytes.
//
//	byte 0: command class (0x23)
//	byte 1: command (0x02 data / 0x03 data ack/nack)
//	byte 2: sequence number
//	byte 3: reserved
//	byte 4: flags (ack_request/ack_response/nack_response/nack_waiting/...)
//	byte 5-6: reserved
const headerLen = 7

const (
	zipCommandClass byte = 0x23
	zipCmdData      byte = 0x02
)

// flag bits within byte 4 of the header.
const (
	flagAckRequest    byte = 0x80
	flagAckResponse   byte = 0x40
	flagNackResponse  byte = 0x20
	flagNackWaiting   byte = 0x10
	flagNackQueueFull byte = 0x08
	flagNackOptErr    byte = 0x04
)

// PacketType is one flag bit of the Z/IP header's ack/nack byte.
type PacketType string

const (
	TypeAckRequest    PacketType = "ack_request"
	TypeAckResponse   PacketType = "ack_response"
	TypeNackResponse  PacketType = "nack_response"
	TypeNackWaiting   PacketType = "nack_waiting"
	TypeNackQueueFull PacketType = "nack_queue_full"
	TypeOptionError   PacketType = "nack_option_error"
)

var flagBits = []struct {
	bit byte
	typ PacketType
}{
	{flagAckRequest, TypeAckRequest},
	{flagAckResponse, TypeAckResponse},
	{flagNackResponse, TypeNackResponse},
	{flagNackWaiting, TypeNackWaiting},
	{flagNackQueueFull, TypeNackQueueFull},
	{flagNackOptErr, TypeOptionError},
}

// EncodeHeader produces the fixed 7-byte Z/IP prefix for seqNumber carrying
// the given type flags.
func EncodeHeader(seqNumber byte, types []PacketType) []byte {
	var flags byte
	want := make(map[PacketType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	for _, fb := range flagBits {
		if want[fb.typ] {
			flags |= fb.bit
		}
	}
	return []byte{zipCommandClass, zipCmdData, seqNumber, 0x00, flags, 0x00, 0x00}
}

// DecodeHeader extracts the sequence number and type flags from the start of
// apdu, returning the remaining body bytes.
func DecodeHeader(apdu []byte) (seqNumber byte, types []PacketType, body []byte, err error) {
	if len(apdu) < headerLen {
		return 0, nil, nil, fmt.Errorf("zipframe: header too short: %d bytes", len(apdu))
	}
	if apdu[0] != zipCommandClass {
		return 0, nil, nil, fmt.Errorf("zipframe: not a Z/IP packet (command class 0x%02X)", apdu[0])
	}

	seqNumber = apdu[2]
	flags := apdu[4]
	for _, fb := range flagBits {
		if flags&fb.bit != 0 {
			types = append(types, fb.typ)
		}
	}
	return seqNumber, types, apdu[headerLen:], nil
}

// HasType reports whether types contains t.
func HasType(types []PacketType, t PacketType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
