// Package own provides reference-counted ownership of raw OS resources.
//
// The core type is Resource, a generic wrapper around a single resource
// value (a handle, a pointer, an allocation base) paired with the action
// that releases it. Copies made with Retain share one acquisition; the
// release action runs exactly once, when the last copy is closed, and is
// skipped entirely for zero or sentinel values and for acquisitions that
// were detached with Release.
//
// Cleanup is deliberately fire-and-forget: a close or free that fails
// during teardown has no caller left to act on it, so release actions
// return nothing.
package own
