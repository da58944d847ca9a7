package yelphelp

import (
	"sync"
)

// ConnectionState tells if the chat platform has confirmed the session.
// The state starts as "connecting" and becomes "ready" exactly once; it never goes back.
// Calls to its methods are thread-safe.
type ConnectionState struct {
	ready chan struct{}
	once  sync.Once
}

// NewConnectionState creates and returns a new ConnectionState in "connecting" state.
func NewConnectionState() *ConnectionState {
	return &ConnectionState{
		ready: make(chan struct{}),
	}
}

// Ready returns true once the session has started.
func (s *ConnectionState) Ready() bool {
	select {
	case <-s.ready:
		return true

	default:
		return false

	}
}

// markReady transitions the state to "ready" and returns true on the first call.
// Successive calls are no-ops and return false.
func (s *ConnectionState) markReady() bool {
	transitioned := false
	s.once.Do(func() {
		close(s.ready)
		transitioned = true
	})
	return transitioned
}
