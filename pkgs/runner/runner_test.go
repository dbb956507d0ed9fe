package runner

import (
	"context"
	"testing"
	"time"

	"github.com/keskad/zipgw/pkgs/command"
	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/transport"
	"github.com/keskad/zipgw/pkgs/zipframe"
)

func idleMode() command.Mode { return command.ModeIdle }

// TestRunnerRetriesThenFails is spec scenario S4 driven through the full
// event loop: retries=2, every response is nack_response, so the runner
// sends three times (initial + 2 retries) and finishes with nack_response.
func TestRunnerRetriesThenFails(t *testing.T) {
	tr := transport.NewScripted()
	cmd, err := command.NewSendCommand(5, mappings.CCBasic, 0x02, nil, command.Retries(2))
	if err != nil {
		t.Fatalf("NewSendCommand() error = %v", err)
	}

	r := New(cmd, tr, 200*time.Millisecond)

	nack := zipframe.Packet{Types: []zipframe.PacketType{zipframe.TypeNackResponse}}
	go func() {
		for i := 0; i < 3; i++ {
			time.Sleep(10 * time.Millisecond)
			r.Deliver(nack)
		}
	}()

	got := r.Run(context.Background(), idleMode, nil)
	if got.OK || got.Err != command.ErrNackResponse {
		t.Fatalf("Run() = %+v, want nack_response failure", got)
	}
	if len(tr.Sent()) != 3 {
		t.Errorf("sent %d datagrams, want 3 (initial + 2 retries)", len(tr.Sent()))
	}
}

// TestRunnerSleepingQueueResume is spec scenario S5: a nack_response +
// nack_waiting queues the command, and after Resume() it completes on the
// basic_report delivered next.
func TestRunnerSleepingQueueResume(t *testing.T) {
	tr := transport.NewScripted()
	cmd, err := command.NewSendCommand(5, mappings.CCBasic, 0x02, nil, command.Retries(2))
	if err != nil {
		t.Fatalf("NewSendCommand() error = %v", err)
	}

	r := New(cmd, tr, 500*time.Millisecond)

	queuedSeen := make(chan struct{}, 1)
	onQueued := func(rr *Runner) {
		queuedSeen <- struct{}{}
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		r.Deliver(zipframe.Packet{Types: []zipframe.PacketType{zipframe.TypeNackResponse, zipframe.TypeNackWaiting}})

		<-queuedSeen
		r.Resume()

		time.Sleep(10 * time.Millisecond)
		datagram := zipframe.Encode(cmd.SeqNumber(), nil, []byte{byte(mappings.CCBasic), 0x03, 0xFF})
		report, derr := zipframe.Decode(datagram)
		if derr != nil {
			t.Errorf("zipframe.Decode() error = %v", derr)
			return
		}
		r.Deliver(report)
	}()

	got := r.Run(context.Background(), idleMode, onQueued)
	if !got.OK || got.Err != "" {
		t.Fatalf("Run() = %+v, want OK after resume", got)
	}
}

// TestRunnerAbandonedQueueCancels exercises Abandon() waking a suspended
// runner with a cancelled result, since the coordinator gave up waiting on
// the sleeping node.
func TestRunnerAbandonedQueueCancels(t *testing.T) {
	tr := transport.NewScripted()
	cmd, err := command.NewSendCommand(5, mappings.CCBasic, 0x02, nil, command.Retries(2))
	if err != nil {
		t.Fatalf("NewSendCommand() error = %v", err)
	}

	r := New(cmd, tr, 500*time.Millisecond)

	go func() {
		time.Sleep(10 * time.Millisecond)
		r.Deliver(zipframe.Packet{Types: []zipframe.PacketType{zipframe.TypeNackResponse, zipframe.TypeNackWaiting}})
		time.Sleep(10 * time.Millisecond)
		r.Abandon()
	}()

	got := r.Run(context.Background(), idleMode, nil)
	if got.OK || got.Err != command.ErrCancelled {
		t.Fatalf("Run() = %+v, want cancelled after abandon", got)
	}
}

// TestRunnerCancelStopsPromptly exercises cooperative cancellation via
// Cancel() while the runner is waiting on its mailbox.
func TestRunnerCancelStopsPromptly(t *testing.T) {
	tr := transport.NewScripted()
	cmd, err := command.NewSendCommand(5, mappings.CCBasic, 0x02, nil, command.Retries(2))
	if err != nil {
		t.Fatalf("NewSendCommand() error = %v", err)
	}

	r := New(cmd, tr, 2*time.Second)

	go func() {
		time.Sleep(10 * time.Millisecond)
		r.Cancel()
	}()

	start := time.Now()
	got := r.Run(context.Background(), idleMode, nil)
	if got.OK || got.Err != command.ErrCancelled {
		t.Fatalf("Run() = %+v, want cancelled", got)
	}
	if time.Since(start) > time.Second {
		t.Errorf("Run() took %v, want prompt cancellation well under the 2s timeout", time.Since(start))
	}
}

// TestRunnerContextCancelStopsPromptly is the ctx.Done() analogue of
// TestRunnerCancelStopsPromptly.
func TestRunnerContextCancelStopsPromptly(t *testing.T) {
	tr := transport.NewScripted()
	cmd, err := command.NewSendCommand(5, mappings.CCBasic, 0x02, nil, command.Retries(2))
	if err != nil {
		t.Fatalf("NewSendCommand() error = %v", err)
	}

	r := New(cmd, tr, 2*time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	got := r.Run(ctx, idleMode, nil)
	if got.OK || got.Err != command.ErrCancelled {
		t.Fatalf("Run() = %+v, want cancelled", got)
	}
}

// TestRunnerRawTimeoutActsAsNack is spec §4.5: a plain send timeout with no
// inbound packet at all counts as a nack_response for retry purposes.
func TestRunnerRawTimeoutActsAsNack(t *testing.T) {
	tr := transport.NewScripted()
	cmd, err := command.NewSendCommand(5, mappings.CCBasic, 0x02, nil, command.Retries(1))
	if err != nil {
		t.Fatalf("NewSendCommand() error = %v", err)
	}

	r := New(cmd, tr, 30*time.Millisecond)
	got := r.Run(context.Background(), idleMode, nil)
	if got.OK || got.Err != command.ErrTimeout {
		t.Fatalf("Run() = %+v, want timeout failure", got)
	}
	if len(tr.Sent()) != 2 {
		t.Errorf("sent %d datagrams, want 2 (initial + 1 retry)", len(tr.Sent()))
	}
}
