package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/keskad/zipgw/pkgs/command"
	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/transport"
	"github.com/keskad/zipgw/pkgs/zipframe"
)

// TestAdmitRejectsOutOfModeCommand is invariant 5: a command only admits
// when current_mode is among its pre_states.
func TestAdmitRejectsOutOfModeCommand(t *testing.T) {
	c := New(transport.NewScripted(), 2, time.Second)
	// c.mode is not_ready until Start(); GetNodeList requires idle or
	// configuring_new_node.
	cmd, err := command.NewGetNodeList()
	if err != nil {
		t.Fatalf("NewGetNodeList() error = %v", err)
	}
	_, admitErr := c.admit(cmd)
	if admitErr != command.ErrNetworkBusy {
		t.Errorf("admit() = %q, want network_busy", admitErr)
	}
}

// TestAdmitAllocatesDistinctSeqNumbers is invariant 4: concurrently admitted
// commands never share a sequence number.
func TestAdmitAllocatesDistinctSeqNumbers(t *testing.T) {
	c := New(transport.NewScripted(), 2, time.Second)
	c.mode = command.ModeIdle

	seen := map[byte]bool{}
	for i := 0; i < 10; i++ {
		cmd, err := command.NewGetNodeList()
		if err != nil {
			t.Fatalf("NewGetNodeList() error = %v", err)
		}
		r, admitErr := c.admit(cmd)
		if admitErr != "" {
			t.Fatalf("admit() error = %v", admitErr)
		}
		if seen[cmd.SeqNumber()] {
			t.Fatalf("sequence number %d reused while still in flight", cmd.SeqNumber())
		}
		seen[cmd.SeqNumber()] = true
		_ = r
	}
}

// TestAdmitRejectsSecondModeChangingCommand covers the network_busy case of
// invariant 5: a mode-changing command cannot be admitted while another
// mode-changing command is already in flight.
func TestAdmitRejectsSecondModeChangingCommand(t *testing.T) {
	c := New(transport.NewScripted(), 2, time.Second)
	c.mode = command.ModeIdle

	first, err := command.NewNodeAdd()
	if err != nil {
		t.Fatalf("NewNodeAdd() error = %v", err)
	}
	if _, admitErr := c.admit(first); admitErr != "" {
		t.Fatalf("first admit() error = %v", admitErr)
	}
	if c.mode != command.ModeIncludingNode {
		t.Fatalf("mode = %q, want including_node", c.mode)
	}

	second, err := command.NewNodeRemove()
	if err != nil {
		t.Fatalf("NewNodeRemove() error = %v", err)
	}
	if _, admitErr := c.admit(second); admitErr != command.ErrNetworkBusy {
		t.Errorf("second admit() = %q, want network_busy", admitErr)
	}
}

// TestIncludeNodeReachesConfiguringNewNode drives IncludeNode through the
// full dispatch loop: a node_add_status(done) report moves the coordinator
// from including_node to configuring_new_node, and ConfigurationDone()
// returns it to idle.
func TestIncludeNodeReachesConfiguringNewNode(t *testing.T) {
	tr := transport.NewScripted()
	c := New(tr, 2, 2*time.Second)
	c.Start()
	defer c.Stop()
	c.mu.Lock()
	c.mode = command.ModeIdle
	c.mu.Unlock()

	done := make(chan struct{})
	var result struct {
		ok  bool
		err command.ErrorKind
	}
	go func() {
		res := c.IncludeNode(context.Background())
		result.ok = res.OK
		result.err = res.Err
		close(done)
	}()

	var seqNo byte
	for i := 0; i < 100; i++ {
		sent := tr.Sent()
		if len(sent) > 0 {
			seqNo = sent[0][2]
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	payload := []byte{byte(mappings.CCNetworkManagementInclusion), 0x02, seqNo, 0x06, 0x00, 0x0A, 0x00}
	datagram := zipframe.Encode(seqNo, nil, payload)
	tr.Push(datagram)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("IncludeNode() did not complete")
	}

	if !result.ok || result.err != "" {
		t.Fatalf("IncludeNode() = ok=%v err=%q, want success", result.ok, result.err)
	}
	if c.Mode() != command.ModeConfiguringNewNode {
		t.Fatalf("Mode() = %q, want configuring_new_node", c.Mode())
	}

	c.ConfigurationDone()
	if c.Mode() != command.ModeIdle {
		t.Errorf("Mode() after ConfigurationDone() = %q, want idle", c.Mode())
	}
}

// TestStopFailsInFlightCommands exercises shutdown: Stop() cancels every
// runner still waiting on a response, which then ends with cancelled.
func TestStopFailsInFlightCommands(t *testing.T) {
	tr := transport.NewScripted()
	c := New(tr, 2, 2*time.Second)
	c.Start()
	c.mu.Lock()
	c.mode = command.ModeIdle
	c.mu.Unlock()

	done := make(chan runnerOutcome, 1)
	go func() {
		res := c.SendCommand(context.Background(), 5, mappings.CCBasic, 0x02, nil)
		done <- runnerOutcome{res.OK, res.Err}
	}()

	time.Sleep(20 * time.Millisecond)
	if err := c.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	select {
	case out := <-done:
		if out.ok || out.err != command.ErrCancelled {
			t.Errorf("SendCommand() = ok=%v err=%q, want cancelled", out.ok, out.err)
		}
	case <-time.After(time.Second):
		t.Fatal("SendCommand() did not return after Stop()")
	}
}

type runnerOutcome struct {
	ok  bool
	err command.ErrorKind
}

// TestProvisionAddsDSK exercises the dedicated Provision operation end to
// end: it encodes the Smart Start provisioning_list_set with the DSK and
// the coordinator-assigned seq_no, and completes on a plain ack_response.
func TestProvisionAddsDSK(t *testing.T) {
	tr := transport.NewScripted()
	c := New(tr, 2, 2*time.Second)
	c.Start()
	defer c.Stop()
	c.mu.Lock()
	c.mode = command.ModeIdle
	c.mu.Unlock()

	dsk := make([]byte, 16)
	for i := range dsk {
		dsk[i] = byte(i)
	}

	done := make(chan runnerOutcome, 1)
	go func() {
		res := c.Provision(context.Background(), dsk)
		done <- runnerOutcome{res.OK, res.Err}
	}()

	var sent []byte
	for i := 0; i < 100; i++ {
		if s := tr.Sent(); len(s) > 0 {
			sent = s[0]
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if sent == nil {
		t.Fatal("Provision() never sent a datagram")
	}

	wantPayload := append([]byte{byte(mappings.CCNetworkManagementInstallationMaint), 0x0A, sent[2], byte(len(dsk))}, dsk...)
	gotPayload := sent[7:]
	if string(gotPayload) != string(wantPayload) {
		t.Errorf("sent payload = % X, want % X", gotPayload, wantPayload)
	}

	tr.Push(zipframe.Encode(sent[2], []zipframe.PacketType{zipframe.TypeAckResponse}, nil))

	select {
	case out := <-done:
		if !out.ok || out.err != "" {
			t.Errorf("Provision() = ok=%v err=%q, want success", out.ok, out.err)
		}
	case <-time.After(time.Second):
		t.Fatal("Provision() did not complete")
	}
}
