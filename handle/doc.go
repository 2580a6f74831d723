// Package handle wraps raw OS handle values in shared ownership.
//
// Two specializations exist: Wrap for generic kernel handles, which
// probe-before-close to avoid closing a reused handle value, and
// WrapFind for FindFirst*-family search handles, which close with
// FindClose and have no probe. Both treat INVALID_HANDLE_VALUE as the
// sentinel exempt from closing.
package handle
