//go:build !windows

package lock

import "github.com/tlancaster/winguard/handle"

var (
	waitMutex    = func(handle.Raw) {}
	releaseMutex = func(handle.Raw) {}
)
