//go:build windows

package lock

import (
	"github.com/tlancaster/winguard/handle"
	"golang.org/x/sys/windows"
)

var (
	waitMutex = func(r handle.Raw) {
		_, _ = windows.WaitForSingleObject(windows.Handle(r), windows.INFINITE)
	}

	releaseMutex = func(r handle.Raw) {
		_ = windows.ReleaseMutex(windows.Handle(r))
	}
)
