package zipframe

import "github.com/keskad/zipgw/pkgs/zipframe/cc"

// Packet is a parsed Z/IP envelope: sequence number, type flags, the raw
// body (if any) and the decoded command (if the body parser recognized it).
type Packet struct {
	SeqNumber byte
	Types     []PacketType
	Body      []byte
	Command   *cc.Command // nil when there was no body
}

// SleepingDelay reports whether this packet signals that the peer queued the
// command for delivery to a sleeping node (types = [nack_response,
// nack_waiting]).
func (p Packet) SleepingDelay() bool {
	return HasType(p.Types, TypeNackResponse) && HasType(p.Types, TypeNackWaiting)
}

// Decode parses a full inbound Z/IP datagram into a Packet. The body parser
// never fails fatally: an unrecognized command decodes to a {unknown, ...}
// Command rather than propagating a decode error for the whole packet.
func Decode(datagram []byte) (Packet, error) {
	seqNumber, types, body, err := DecodeHeader(datagram)
	if err != nil {
		return Packet{}, err
	}

	pkt := Packet{SeqNumber: seqNumber, Types: types}
	if len(body) == 0 {
		return pkt, nil
	}

	pkt.Body = body
	command := cc.Parse(body)
	pkt.Command = &command
	return pkt, nil
}

// Encode serializes seqNumber/types plus a pre-encoded command-class payload
// (command class byte, command byte, parameters...) into a full datagram.
func Encode(seqNumber byte, types []PacketType, payload []byte) []byte {
	return append(EncodeHeader(seqNumber, types), payload...)
}
