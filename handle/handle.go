package handle

import (
	"errors"

	"github.com/tlancaster/winguard/own"
)

// Raw is an opaque OS handle value.
type Raw uintptr

// Invalid is the reserved "no handle" value (INVALID_HANDLE_VALUE).
const Invalid Raw = ^Raw(0)

// Handle owns one OS handle. The zero value holds nothing; construct
// with Wrap or WrapFind. Copies share ownership through the embedded
// Resource: the close runs once, when the last copy is closed.
type Handle struct {
	*own.Resource[Raw]
}

// Mutex is a Handle used as a named, waitable mutual-exclusion object.
type Mutex = Handle

// Wrap takes ownership of a generic OS handle. On close, the handle is
// first probed with a cheap metadata query; when the probe fails with
// ERROR_INVALID_HANDLE the close is skipped, so a value the OS already
// reclaimed and reissued is not closed out from under its new owner.
func Wrap(r Raw) Handle {
	return Handle{own.WithSentinel(r, Invalid, safeClose)}
}

// WrapFind takes ownership of a search handle from the FindFirst*
// family, closed with FindClose. No liveness probe exists for these.
func WrapFind(r Raw) Handle {
	return Handle{own.WithSentinel(r, Invalid, func(r Raw) { _ = findCloseRaw(r) })}
}

// Raw returns the held handle value without transferring ownership.
func (h Handle) Raw() Raw {
	return h.Get()
}

func safeClose(r Raw) {
	if shouldClose(probeRaw(r)) {
		_ = closeRaw(r)
	}
}

// shouldClose decides whether a probed handle is still ours to close.
// Only a probe failing specifically with "invalid handle" suppresses the
// close; success or any other failure means the handle is live.
func shouldClose(probeErr error) bool {
	return probeErr == nil || !errors.Is(probeErr, errInvalidHandle)
}
