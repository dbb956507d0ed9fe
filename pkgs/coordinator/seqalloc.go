package coordinator

import (
	"fmt"
	"sync"
)

// seqAllocator is a monotonically incrementing byte, wrapping at 256,
// skipping values currently in use (spec §4.6). Owned exclusively by the
// coordinator's serial discipline; its own mutex exists only to let
// read-only inspection (tests, metrics) be safe to call concurrently with
// allocation.
type seqAllocator struct {
	mu     sync.Mutex
	next   byte
	inUse  map[byte]bool
}

func newSeqAllocator() *seqAllocator {
	return &seqAllocator{inUse: make(map[byte]bool)}
}

// Allocate returns the next free sequence number, marking it in use. It
// fails only if all 256 values are currently in-flight.
func (s *seqAllocator) Allocate() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.next
	for {
		candidate := s.next
		s.next++
		if !s.inUse[candidate] {
			s.inUse[candidate] = true
			return candidate, nil
		}
		if s.next == start {
			return 0, fmt.Errorf("coordinator: sequence-number space exhausted")
		}
	}
}

// Release frees seqNo for reuse once its owning runner completes.
func (s *seqAllocator) Release(seqNo byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inUse, seqNo)
}
