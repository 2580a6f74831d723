//go:build windows

package handle

import "golang.org/x/sys/windows"

// These live in package variables so tests can intercept the syscall
// boundary without touching kernel handles.
var (
	errInvalidHandle error = windows.ERROR_INVALID_HANDLE

	closeRaw = func(r Raw) error {
		return windows.CloseHandle(windows.Handle(r))
	}

	findCloseRaw = func(r Raw) error {
		return windows.FindClose(windows.Handle(r))
	}

	// probeRaw is a side-effect-free liveness query. GetFileInformationByHandle
	// fails with ERROR_INVALID_HANDLE when the value no longer names an object.
	probeRaw = func(r Raw) error {
		var info windows.ByHandleFileInformation
		return windows.GetFileInformationByHandle(windows.Handle(r), &info)
	}
)
