package lock

import "github.com/tlancaster/winguard/handle"

// MutexGuard holds ownership of a named, cross-process mutex until
// Release is called.
type MutexGuard struct {
	m    handle.Mutex
	done bool
}

// Acquire blocks indefinitely until the calling thread owns the named
// mutex behind m, then returns the guard that releases it. The wait has
// no timeout and ignores failure, matching the section guard's
// unconditional contract.
func Acquire(m handle.Mutex) *MutexGuard {
	waitMutex(m.Raw())
	return &MutexGuard{m: m}
}

// Release gives up ownership of the mutex. Calling it more than once is
// a no-op; a failed release is silently absorbed.
func (g *MutexGuard) Release() {
	if g == nil || g.done {
		return
	}
	g.done = true
	releaseMutex(g.m.Raw())
}
