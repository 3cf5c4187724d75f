// Package session tracks a shown notification from submission until its
// outcome is known.
package session

import (
	"context"
	"sync"

	"github.com/lennarthald/toastkit/internal/types"
)

// Session is the pending outcome of a single shown notification. A session
// settles exactly once: the first reported event wins and every later
// report is ignored.
type Session struct {
	mu      sync.Mutex
	settled bool
	result  types.Result
	cause   error
	done    chan struct{}

	closeOnce sync.Once
	closer    func()
}

// New creates a pending session. The closer releases whatever feeds the
// session (event subscriptions, a helper process) and runs exactly once,
// on the first Close.
func New(closer func()) *Session {
	return &Session{
		done:   make(chan struct{}),
		closer: closer,
	}
}

func (s *Session) settle(r types.Result, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settled {
		return
	}
	s.settled = true
	s.result = r
	s.cause = cause
	close(s.done)
}

// Activated settles the session as activated.
func (s *Session) Activated() {
	s.settle(types.ResultActivated, nil)
}

// Dismissed settles the session with the result matching the dismissal
// reason. An unrecognized reason does not settle the session: staying
// pending is safer than guessing an outcome.
func (s *Session) Dismissed(reason types.DismissReason) {
	if r, ok := reason.Result(); ok {
		s.settle(r, nil)
	}
}

// Failed settles the session as failed. The cause is kept for diagnostics
// and never changes the result.
func (s *Session) Failed(cause error) {
	s.settle(types.ResultFailed, cause)
}

// Settled reports whether an outcome has been recorded.
func (s *Session) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled
}

// Cause returns the failure cause recorded by Failed, if any.
func (s *Session) Cause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cause
}

// Done returns a channel that is closed once the session settles.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close releases the resources feeding the session. It is safe to call
// any number of times; the closer runs exactly once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		if s.closer != nil {
			s.closer()
		}
	})
}

// Await blocks until the session settles or the context ends. Resources
// are released on every exit path. A context error is returned as-is and
// never folded into a result.
func (s *Session) Await(ctx context.Context) (types.Result, error) {
	defer s.Close()

	select {
	case <-s.done:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.result, nil
	case <-ctx.Done():
		return types.ResultInvalid, ctx.Err()
	}
}
