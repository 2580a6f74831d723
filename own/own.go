package own

import "sync/atomic"

// state is the single shared record behind every copy of a Resource.
// The refcount and the release decision are atomic so that ownership
// may be shared across goroutines; the value itself is not otherwise
// synchronized.
type state[T comparable] struct {
	value       T
	sentinel    T
	hasSentinel bool
	release     func(T)
	refs        atomic.Int32
	detached    atomic.Bool
}

// Resource is a reference-counted owner of a single resource value.
//
// Each Resource is one owning reference to a shared acquisition. Retain
// produces another owning reference; Close drops one. When the last
// reference is closed the release action runs exactly once, unless the
// held value is the zero value, equals the configured sentinel, or
// ownership was detached with Release.
type Resource[T comparable] struct {
	s      *state[T]
	closed atomic.Bool
}

// New wraps value with a release action that runs when the last owning
// reference is closed. A nil release action makes Close a pure refcount
// drop.
func New[T comparable](value T, release func(T)) *Resource[T] {
	r := &Resource[T]{s: &state[T]{value: value, release: release}}
	r.s.refs.Store(1)
	return r
}

// WithSentinel is New with an explicit "no resource" value. A held value
// equal to sentinel is never passed to the release action.
func WithSentinel[T comparable](value, sentinel T, release func(T)) *Resource[T] {
	r := &Resource[T]{s: &state[T]{value: value, sentinel: sentinel, hasSentinel: true, release: release}}
	r.s.refs.Store(1)
	return r
}

// Get returns the held value. After Release it returns the sentinel
// (or the zero value when no sentinel was configured).
func (r *Resource[T]) Get() T {
	if r == nil || r.s == nil {
		var zero T
		return zero
	}
	return r.s.value
}

// Addr returns the address of the internally held copy, for APIs that
// fill a resource value through an out parameter. Writing through it
// changes what the release action will eventually receive.
func (r *Resource[T]) Addr() *T {
	if r == nil || r.s == nil {
		return nil
	}
	return &r.s.value
}

// Valid reports whether the held value denotes a live resource: not the
// zero value, not the sentinel, and not detached.
func (r *Resource[T]) Valid() bool {
	if r == nil || r.s == nil || r.s.detached.Load() {
		return false
	}
	var zero T
	if r.s.value == zero {
		return false
	}
	return !r.s.hasSentinel || r.s.value != r.s.sentinel
}

// Equal reports whether the held value equals v.
func (r *Resource[T]) Equal(v T) bool {
	return r.Get() == v
}

// Retain returns a new owning reference to the same acquisition.
func (r *Resource[T]) Retain() *Resource[T] {
	if r == nil || r.s == nil {
		return nil
	}
	r.s.refs.Add(1)
	return &Resource[T]{s: r.s}
}

// Release detaches ownership: the raw value is handed back to the
// caller, the held value becomes the sentinel, and no reference will
// run the release action. The caller is then responsible for cleanup.
func (r *Resource[T]) Release() T {
	if r == nil || r.s == nil {
		var zero T
		return zero
	}
	v := r.s.value
	r.s.detached.Store(true)
	r.s.value = r.s.sentinel
	return v
}

// Close drops this owning reference. Closing the same Resource twice is
// a no-op. When the last reference across all copies is closed, the
// release action runs unless the value is zero, the sentinel, or
// detached. Failures inside the release action are not surfaced.
func (r *Resource[T]) Close() {
	if r == nil || r.s == nil || !r.closed.CompareAndSwap(false, true) {
		return
	}
	if r.s.refs.Add(-1) != 0 {
		return
	}
	if r.s.detached.Load() {
		return
	}
	v := r.s.value
	var zero T
	if v == zero {
		return
	}
	if r.s.hasSentinel && v == r.s.sentinel {
		return
	}
	if r.s.release != nil {
		r.s.release(v)
	}
}
