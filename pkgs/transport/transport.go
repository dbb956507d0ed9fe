// Package transport implements the Transport boundary (spec C4): an
// opaque bidirectional datagram channel the coordinator treats as a
// sans-I/O collaborator. The default implementation binds a UDP socket;
// tests substitute the scripted double in scripted.go.
package transport

import "context"

// Transport is the opaque handle the coordinator/runner send bytes through
// and receive inbound datagrams from. Open/Close bracket its lifetime;
// Send is synchronous, Inbound delivers raw datagrams as they arrive.
type Transport interface {
	// Send writes one outbound datagram. Implementations must serialize
	// concurrent sends (spec §5: "only the coordinator sends on it").
	Send(ctx context.Context, b []byte) error
	// Inbound returns a channel of raw inbound datagrams. The channel is
	// closed when the transport is closed or the underlying connection
	// fails; a close with a non-nil error is surfaced via Err.
	Inbound() <-chan []byte
	// Err returns the reason Inbound's channel closed, if it closed due to
	// a transport failure rather than an explicit Close.
	Err() error
	Close() error
}
