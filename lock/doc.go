// Package lock provides scoped acquisition guards for mutual-exclusion
// primitives: an in-process critical section (Section/Guard) and a
// cross-process named mutex held through a handle.Mutex
// (Acquire/MutexGuard).
//
// Both guards follow the same contract: acquisition blocks indefinitely,
// release happens exactly once, and callers pair the acquire with a
// deferred release so the lock is dropped on every exit path.
package lock
