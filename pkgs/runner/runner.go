// Package runner implements the per-command state machine (spec C5): it
// owns one in-flight command instance, drives send/ack/retry/queue against
// inbound packets handed to it by the coordinator, and terminates with a
// typed result. Grounded on the teacher's readCVValue retry loop
// (pkgs/commandstation/z21.go), generalized from a blocking
// write-then-read-with-deadline call into a select-based event loop so it
// can also react to coordinator-issued cancellation and queued-delivery
// wake-ups.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/keskad/zipgw/pkgs/command"
	"github.com/keskad/zipgw/pkgs/transport"
	"github.com/keskad/zipgw/pkgs/zipframe"
)

// Result is the terminal outcome Run returns: exactly one of Value (on
// success) or Err (on failure) is meaningful, mirroring command.Transition.
type Result struct {
	OK    bool
	Value any
	Err   command.ErrorKind
}

// Runner drives one command.Command to completion. It is not safe for
// concurrent use by more than one goroutine calling Run; the coordinator
// owns exactly one Runner per in-flight command.
type Runner struct {
	cmd       command.Command
	transport transport.Transport
	timeout   time.Duration

	inbox   chan zipframe.Packet
	cancel  chan struct{}
	resume  chan struct{}
	abandon chan struct{}
}

// New constructs a Runner for cmd, to be driven over tr with the given
// per-send timeout.
func New(cmd command.Command, tr transport.Transport, timeout time.Duration) *Runner {
	return &Runner{
		cmd:       cmd,
		transport: tr,
		timeout:   timeout,
		inbox:     make(chan zipframe.Packet, 8),
		cancel:    make(chan struct{}),
		resume:    make(chan struct{}, 1),
		abandon:   make(chan struct{}, 1),
	}
}

// Deliver hands an inbound packet already matched to this runner's
// sequence number to its mailbox, per spec §5's per-runner mailbox model.
// It never blocks indefinitely: a full mailbox indicates the runner is
// stuck, which Run's timeout will eventually resolve.
func (r *Runner) Deliver(pkt zipframe.Packet) {
	select {
	case r.inbox <- pkt:
	default:
	}
}

// Resume wakes a runner suspended in the queued state, signalling that the
// gateway delivered the command to the sleeping node.
func (r *Runner) Resume() {
	select {
	case r.resume <- struct{}{}:
	default:
	}
}

// Abandon wakes a queued runner to report it was given up on (the
// coordinator decided the sleeping-node delivery will never complete).
func (r *Runner) Abandon() {
	select {
	case r.abandon <- struct{}{}:
	default:
	}
}

// Cancel requests cooperative cancellation: Run returns {error, cancelled}
// promptly without further sends.
func (r *Runner) Cancel() {
	select {
	case <-r.cancel:
	default:
		close(r.cancel)
	}
}

// currentModeFn lets the coordinator supply its current mode without the
// runner importing the coordinator package back.
type currentModeFn func() command.Mode

// onQueued is invoked when the command transitions to queued, so the
// coordinator can record the runner as awaiting sleeping-node delivery.
type onQueuedFn func(*Runner)

// Run drives the command to completion: encode, send, wait for packets on
// the mailbox, retry on timeout/nack, suspend on queued, and return the
// terminal result. ctx cancellation is equivalent to calling Cancel.
func (r *Runner) Run(ctx context.Context, currentMode currentModeFn, onQueued onQueuedFn) Result {
	if err := r.send(ctx); err != nil {
		return Result{Err: command.ErrTransportClosed}
	}

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return Result{Err: command.ErrCancelled}
		case <-r.cancel:
			return Result{Err: command.ErrCancelled}

		case pkt := <-r.inbox:
			t := r.cmd.HandleResponse(pkt, currentMode())
			switch t.Kind {
			case command.Continue:
				// keep waiting; the send-timeout window is not reset.
			case command.Retry:
				r.cmd.DecrementRetries()
				if err := r.send(ctx); err != nil {
					return Result{Err: command.ErrTransportClosed}
				}
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(r.timeout)
			case command.Queued:
				if onQueued != nil {
					onQueued(r)
				}
				if !r.waitQueued(ctx) {
					return Result{Err: command.ErrCancelled}
				}
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(r.timeout)
			case command.Done:
				if t.Err != "" {
					return Result{Err: t.Err}
				}
				return Result{OK: true, Value: t.Value}
			}

		case <-timer.C:
			// spec §4.5: "Timeout policy: a timeout counts as a
			// nack_response for retry purposes."
			if r.cmd.Retries() == 0 {
				return Result{Err: command.ErrTimeout}
			}
			r.cmd.DecrementRetries()
			if err := r.send(ctx); err != nil {
				return Result{Err: command.ErrTransportClosed}
			}
			timer.Reset(r.timeout)
		}
	}
}

// waitQueued suspends until the coordinator signals delivery completion or
// abandonment, or the runner is cancelled. It returns false on
// cancellation.
func (r *Runner) waitQueued(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-r.cancel:
		return false
	case <-r.abandon:
		return false
	case <-r.resume:
		return true
	}
}

func (r *Runner) send(ctx context.Context) error {
	payload, err := r.cmd.Encode()
	if err != nil {
		return fmt.Errorf("runner: encode error: %w", err)
	}
	datagram := zipframe.Encode(r.cmd.SeqNumber(), []zipframe.PacketType{zipframe.TypeAckRequest}, payload)
	return r.transport.Send(ctx, datagram)
}
