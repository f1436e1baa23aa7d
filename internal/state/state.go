// Package state encapsulates the single process-wide split communicator
// value: install exactly once during init, read by every shadowed call
// thereafter, torn down exactly once during finalize. Because the
// interposition API is positional there
// is no per-call handle to attach this to, so it lives in one
// container with a narrow, enforced lifecycle instead of a package
// global mutated from anywhere.
package state

import (
	"sync"

	"github.com/joeycumines/commsplit/mpi"
)

// SplitComm holds the process's split communicator across its
// install-once/read-many/teardown-once lifecycle.
type SplitComm struct {
	mu        sync.RWMutex
	comm      mpi.Comm
	installed bool
	torndown  bool
}

// New returns a SplitComm in its initial, null-sentinel state.
func New() *SplitComm {
	return &SplitComm{comm: mpi.Null}
}

// Install records comm as the split communicator. Must be called
// exactly once, from the init shadow only. Calling it twice indicates
// a caller bug and panics, since the install-once lifecycle invariant
// is violated.
func (s *SplitComm) Install(comm mpi.Comm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.installed {
		panic("state: SPLIT_COMM installed twice")
	}
	s.comm = comm
	s.installed = true
}

// Get returns the current split communicator. Before Install or after
// Teardown it returns mpi.Null.
func (s *SplitComm) Get() mpi.Comm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.comm
}

// Translate applies the substitution rule shared by every shadowed
// entry point: the world communicator becomes the split communicator,
// every other handle is forwarded untouched.
func (s *SplitComm) Translate(comm mpi.Comm) mpi.Comm {
	if comm != mpi.World {
		return comm
	}
	return s.Get()
}

// Teardown frees the split communicator, if one was installed and not
// already torn down, and resets state to the null sentinel. Must be
// called from the finalize shadow only, and is idempotent: a second
// call is a no-op, matching the finalize orchestrator's own
// already-finalized guard.
func (s *SplitComm) Teardown(free func(*mpi.Comm) mpi.Status) mpi.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.torndown || !s.installed || s.comm == mpi.Null {
		return 0
	}
	st := free(&s.comm)
	s.comm = mpi.Null
	s.torndown = true
	return st
}

// Finalized reports whether Teardown has already run, so the exit hook
// (internal/sigpolicy.Policy.ExitHook) can avoid a double finalize.
func (s *SplitComm) Finalized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.torndown
}
