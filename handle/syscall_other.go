//go:build !windows

package handle

import "errors"

// Non-Windows builds compile against no-op close primitives so the
// ownership semantics stay testable anywhere.
var (
	errInvalidHandle = errors.New("handle: invalid handle")

	closeRaw     = func(Raw) error { return nil }
	findCloseRaw = func(Raw) error { return nil }
	probeRaw     = func(Raw) error { return nil }
)
