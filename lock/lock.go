package lock

import "sync"

// Section is an in-process critical section. The zero value is ready to
// use; there is nothing to tear down. Acquisition is unconditional and
// indefinite: no timeout, no cancellation, no reentrancy.
type Section struct {
	mu sync.Mutex
}

// Guard holds an entered Section until Leave is called. Callers are
// expected to pair Enter with a deferred Leave so the section is left
// on every exit path.
type Guard struct {
	s    *Section
	done bool
}

// Enter blocks until the section is held and returns the guard that
// releases it.
func (s *Section) Enter() *Guard {
	s.mu.Lock()
	return &Guard{s: s}
}

// Leave releases the section. Calling it more than once is a no-op.
func (g *Guard) Leave() {
	if g == nil || g.done {
		return
	}
	g.done = true
	g.s.mu.Unlock()
}
