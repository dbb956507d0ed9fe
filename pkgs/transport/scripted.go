package transport

import (
	"context"
	"sync"
)

// Scripted is a sans-I/O test double: Send records what would have gone on
// the wire, and tests push fabricated inbound datagrams via Push. Grounded
// on spec §4.4's "tests substitute a scripted transport" and the teacher's
// test_pkg/main.go scripted-exerciser idiom, generalized from a one-shot
// harness into a reusable channel-backed double.
type Scripted struct {
	mu      sync.Mutex
	sent    [][]byte
	inbound chan []byte
	closed  bool
	err     error
}

// NewScripted constructs an empty scripted transport.
func NewScripted() *Scripted {
	return &Scripted{inbound: make(chan []byte, 64)}
}

func (s *Scripted) Send(ctx context.Context, b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(b))
	copy(cp, b)
	s.sent = append(s.sent, cp)
	return nil
}

// Sent returns every datagram passed to Send so far, in order.
func (s *Scripted) Sent() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.sent))
	copy(out, s.sent)
	return out
}

// Push delivers a fabricated inbound datagram to whatever is reading
// Inbound().
func (s *Scripted) Push(datagram []byte) {
	s.inbound <- datagram
}

func (s *Scripted) Inbound() <-chan []byte { return s.inbound }

func (s *Scripted) Err() error { return s.err }

// FailWith closes the transport as if the underlying connection died with
// err, for exercising transport_closed handling.
func (s *Scripted) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.inbound)
}

func (s *Scripted) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.inbound)
	return nil
}
