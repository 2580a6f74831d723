//go:build windows

package main

import (
	"github.com/tlancaster/winguard/handle"
	"github.com/tlancaster/winguard/mem"
	"golang.org/x/sys/windows"
)

// openProcess opens pid for memory inspection and returns the remote
// accessor plus the func that drops the process handle.
func openProcess(pid uint32) (mem.Process, func(), error) {
	const access = windows.PROCESS_QUERY_INFORMATION |
		windows.PROCESS_VM_READ |
		windows.PROCESS_VM_OPERATION
	h, err := windows.OpenProcess(access, false, pid)
	if err != nil {
		return nil, nil, err
	}
	owned := handle.Wrap(handle.Raw(h))
	return mem.Remote(owned), owned.Close, nil
}
