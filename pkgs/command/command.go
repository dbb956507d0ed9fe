// Package command implements the Command trait (spec C3): for each
// outbound Z/IP command, init from functional options, encode to wire
// bytes, and handle_response against inbound packets to decide the next
// state. Grounded on the teacher's ctxOptions/RequestContext pattern
// (pkgs/commandstation/interface.go), generalized from a fixed
// timeout/retries/verify trio to the open-ended per-command parameter set
// this protocol needs.
package command

import (
	"time"

	"github.com/keskad/zipgw/pkgs/mappings"
	"github.com/keskad/zipgw/pkgs/zipframe"
)

// Mode mirrors the network coordinator's current mode (spec §3), passed
// into handle_response so a command can consult it without importing the
// coordinator package back (coordinator imports command, not vice versa).
type Mode string

const (
	ModeNotReady            Mode = "not_ready"
	ModeIdle                Mode = "idle"
	ModeIncludingNode       Mode = "including_node"
	ModeExcludingNode       Mode = "excluding_node"
	ModeConfiguringNewNode  Mode = "configuring_new_node"
	ModeLearnMode           Mode = "learn_mode"
	ModeDefaultSetting      Mode = "default_setting"
)

// TransitionKind is the tagged outcome of handle_response.
type TransitionKind string

const (
	Continue TransitionKind = "continue"
	Retry    TransitionKind = "retry"
	Queued   TransitionKind = "queued"
	Done     TransitionKind = "done"
)

// ErrorKind enumerates the taxonomy from spec §7.
type ErrorKind string

const (
	ErrNackResponse    ErrorKind = "nack_response"
	ErrTimeout         ErrorKind = "timeout"
	ErrNetworkBusy     ErrorKind = "network_busy"
	ErrDecodeError     ErrorKind = "decode_error"
	ErrTransportClosed ErrorKind = "transport_closed"
	ErrCancelled       ErrorKind = "cancelled"
	ErrUnknownCommand  ErrorKind = "unknown_command"
)

// Transition is the result of handle_response: Kind tags which case
// applies; Value carries the report for a successful GET-style command;
// Err carries the failure kind for a terminal error.
type Transition struct {
	Kind  TransitionKind
	Value any
	Err   ErrorKind
}

func transitionContinue() Transition { return Transition{Kind: Continue} }
func transitionRetry() Transition    { return Transition{Kind: Retry} }
func transitionQueued() Transition   { return Transition{Kind: Queued} }
func transitionDoneOK(value any) Transition {
	return Transition{Kind: Done, Value: value}
}
func transitionDoneError(kind ErrorKind) Transition {
	return Transition{Kind: Done, Err: kind}
}

// Options bundles the per-send knobs a command init accepts, following the
// teacher's RequestContext/ctxOptions shape.
type Options struct {
	Timeout time.Duration
	Retries uint8
}

type Option func(*Options) error

// Timeout sets Options.Timeout. The command constructors in this package do
// not keep it: the runner's per-send timeout is always the coordinator's
// configured send_timeout_ms.
func Timeout(d time.Duration) Option {
	return func(o *Options) error {
		o.Timeout = d
		return nil
	}
}

// Retries overrides the retry budget. Without it every constructor in this
// package uses 2; the coordinator's configured default_retries is not
// applied.
func Retries(n uint8) Option {
	return func(o *Options) error {
		o.Retries = n
		return nil
	}
}

func applyOptions(o *Options, opts []Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// Command is the uniform trait every outbound command instance satisfies.
type Command interface {
	// Encode serializes the command's wire payload (command class, command
	// byte, parameters) for framing by the runner.
	Encode() ([]byte, error)
	// SeqNumber returns the sequence number assigned by the coordinator at
	// admission. SetSeqNumber is called exactly once, before the first send.
	SeqNumber() byte
	SetSeqNumber(byte)
	// Retries reports the remaining retry budget; Decrement consumes one.
	Retries() uint8
	DecrementRetries()
	// PreStates/ExecState drive coordinator admission and mode transition
	// (spec §4.6). ExecState's second return is false for commands that
	// don't change the network mode.
	PreStates() []Mode
	ExecState() (Mode, bool)
	// HandleResponse applies the uniform acknowledgement dispatch (spec
	// §4.3) augmented by command-specific report recognition; currentMode
	// is consulted only for the nack_waiting/sleeping-delay case.
	HandleResponse(pkt zipframe.Packet, currentMode Mode) Transition
}

// base is embedded by every concrete command; it implements the uniform
// parts of the Command trait (sequence-number bookkeeping, retry
// decrementing, the shared ack/nack dispatch) so each command family file
// only supplies Encode and, when it expects a report, a HandleResponse
// override that falls back to base.HandleResponse for the ack/nack cases.
type base struct {
	class      mappings.CommandClass
	seqNumber  byte
	retries    uint8
	preStates  []Mode
	execState  Mode
	hasExec    bool
}

func newBase(class mappings.CommandClass, retries uint8, preStates []Mode) base {
	return base{class: class, retries: retries, preStates: preStates}
}

func (b *base) withExecState(m Mode) {
	b.execState = m
	b.hasExec = true
}

func (b *base) SeqNumber() byte        { return b.seqNumber }
func (b *base) SetSeqNumber(n byte)    { b.seqNumber = n }
func (b *base) Retries() uint8         { return b.retries }
func (b *base) DecrementRetries()      { b.retries-- }
func (b *base) PreStates() []Mode      { return b.preStates }
func (b *base) ExecState() (Mode, bool) {
	return b.execState, b.hasExec
}

// HandleResponse implements the uniform ack/nack dispatch from spec §4.3:
// matched by seq_number when the coordinator routes the packet, so here we only look at
// types. Concrete commands that expect a report should check for their
// report packet first and fall back to this for everything else.
func (b *base) HandleResponse(pkt zipframe.Packet, currentMode Mode) Transition {
	switch {
	case zipframe.HasType(pkt.Types, zipframe.TypeAckResponse):
		return transitionDoneOK(nil)
	case zipframe.HasType(pkt.Types, zipframe.TypeNackResponse) && !zipframe.HasType(pkt.Types, zipframe.TypeNackWaiting):
		if b.retries == 0 {
			return transitionDoneError(ErrNackResponse)
		}
		return transitionRetry()
	case zipframe.HasType(pkt.Types, zipframe.TypeNackResponse) && zipframe.HasType(pkt.Types, zipframe.TypeNackWaiting):
		if pkt.SleepingDelay() && currentMode != ModeConfiguringNewNode {
			return transitionQueued()
		}
		return transitionContinue()
	default:
		return transitionContinue()
	}
}
