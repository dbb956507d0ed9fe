package zipframe

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		seqNumber byte
		types     []PacketType
	}{
		{"no flags", 0x01, nil},
		{"ack request", 0x2A, []PacketType{TypeAckRequest}},
		{"ack response", 0x2A, []PacketType{TypeAckResponse}},
		{"nack + waiting", 0xFF, []PacketType{TypeNackResponse, TypeNackWaiting}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := EncodeHeader(tt.seqNumber, tt.types)
			seqNumber, types, body, err := DecodeHeader(header)
			if err != nil {
				t.Fatalf("DecodeHeader() error = %v", err)
			}
			if seqNumber != tt.seqNumber {
				t.Errorf("seqNumber = %d, want %d", seqNumber, tt.seqNumber)
			}
			if len(body) != 0 {
				t.Errorf("body = % X, want empty", body)
			}
			for _, want := range tt.types {
				if !HasType(types, want) {
					t.Errorf("types = %v missing %v", types, want)
				}
			}
		})
	}
}

func TestDecodeHeaderTooShort(t *testing.T) {
	if _, _, _, err := DecodeHeader([]byte{0x23, 0x02}); err == nil {
		t.Error("expected error for short datagram")
	}
}

func TestDecodeHeaderWrongCommandClass(t *testing.T) {
	datagram := append([]byte{0x99, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00}, 0xAA)
	if _, _, _, err := DecodeHeader(datagram); err == nil {
		t.Error("expected error for non-Z/IP command class")
	}
}

func TestEncodeAppendsPayload(t *testing.T) {
	payload := []byte{0x25, 0x02}
	datagram := Encode(0x07, []PacketType{TypeAckRequest}, payload)
	if !bytes.HasSuffix(datagram, payload) {
		t.Errorf("Encode() = % X, want suffix % X", datagram, payload)
	}
	seqNumber, types, body, err := DecodeHeader(datagram)
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v", err)
	}
	if seqNumber != 0x07 || !HasType(types, TypeAckRequest) || !bytes.Equal(body, payload) {
		t.Errorf("round trip mismatch: seq=%d types=%v body=% X", seqNumber, types, body)
	}
}

func TestPacketSleepingDelay(t *testing.T) {
	p := Packet{Types: []PacketType{TypeNackResponse, TypeNackWaiting}}
	if !p.SleepingDelay() {
		t.Error("expected SleepingDelay() true for nack_response+nack_waiting")
	}
	p2 := Packet{Types: []PacketType{TypeNackResponse}}
	if p2.SleepingDelay() {
		t.Error("expected SleepingDelay() false for nack_response alone")
	}
}
