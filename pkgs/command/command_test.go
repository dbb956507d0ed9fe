package command

import (
	"testing"

	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/zipframe"
)

func ackPacket() zipframe.Packet {
	return zipframe.Packet{Types: []zipframe.PacketType{zipframe.TypeAckResponse}}
}

func nackPacket() zipframe.Packet {
	return zipframe.Packet{Types: []zipframe.PacketType{zipframe.TypeNackResponse}}
}

func nackWaitingPacket() zipframe.Packet {
	return zipframe.Packet{Types: []zipframe.PacketType{zipframe.TypeNackResponse, zipframe.TypeNackWaiting}}
}

func TestBaseHandleResponseAck(t *testing.T) {
	b := newBase(mappings.CCBasic, 2, []Mode{ModeIdle})
	got := b.HandleResponse(ackPacket(), ModeIdle)
	if got.Kind != Done || got.Err != "" {
		t.Errorf("got %+v, want Done/ok", got)
	}
}

// TestBaseHandleResponseRetrySequence is spec scenario S4: retries=2, three
// nack_response packets -> retry(1), retry(0), done(error nack_response).
func TestBaseHandleResponseRetrySequence(t *testing.T) {
	b := newBase(mappings.CCBasic, 2, []Mode{ModeIdle})

	t1 := b.HandleResponse(nackPacket(), ModeIdle)
	if t1.Kind != Retry {
		t.Fatalf("transition 1 = %+v, want Retry", t1)
	}
	b.DecrementRetries()
	if b.Retries() != 1 {
		t.Fatalf("retries after 1st decrement = %d, want 1", b.Retries())
	}

	t2 := b.HandleResponse(nackPacket(), ModeIdle)
	if t2.Kind != Retry {
		t.Fatalf("transition 2 = %+v, want Retry", t2)
	}
	b.DecrementRetries()
	if b.Retries() != 0 {
		t.Fatalf("retries after 2nd decrement = %d, want 0", b.Retries())
	}

	t3 := b.HandleResponse(nackPacket(), ModeIdle)
	if t3.Kind != Done || t3.Err != ErrNackResponse {
		t.Fatalf("transition 3 = %+v, want Done/nack_response", t3)
	}
}

// TestBaseHandleResponseSleepingQueue is spec scenario S5.
func TestBaseHandleResponseSleepingQueue(t *testing.T) {
	b := newBase(mappings.CCBasic, 2, []Mode{ModeIdle})

	idle := b.HandleResponse(nackWaitingPacket(), ModeIdle)
	if idle.Kind != Queued {
		t.Errorf("mode=idle got %+v, want Queued", idle)
	}

	configuring := b.HandleResponse(nackWaitingPacket(), ModeConfiguringNewNode)
	if configuring.Kind != Continue {
		t.Errorf("mode=configuring_new_node got %+v, want Continue", configuring)
	}
}

func TestOptionsApply(t *testing.T) {
	cmd, err := NewGetNodeList(Retries(5))
	if err != nil {
		t.Fatalf("NewGetNodeList() error = %v", err)
	}
	if cmd.Retries() != 5 {
		t.Errorf("Retries() = %d, want 5", cmd.Retries())
	}
}

func TestSendCommandWantsReport(t *testing.T) {
	cmd, err := NewSendCommand(5, mappings.CCBasic, 0x02, nil)
	if err != nil {
		t.Fatalf("NewSendCommand() error = %v", err)
	}
	payload, err := cmd.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if payload[0] != byte(mappings.CCBasic) || payload[1] != 0x02 {
		t.Errorf("Encode() = % X, want prefix [0x20 0x02]", payload)
	}

	datagram := zipframe.Encode(cmd.SeqNumber(), nil, []byte{byte(mappings.CCBasic), 0x03, 0xFF})
	report, err := zipframe.Decode(datagram)
	if err != nil {
		t.Fatalf("zipframe.Decode() error = %v", err)
	}
	got := cmd.HandleResponse(report, ModeIdle)
	if got.Kind != Done || got.Err != "" {
		t.Errorf("got %+v, want Done/ok on basic_report", got)
	}
}
