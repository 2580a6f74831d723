//go:build windows

package mem

import (
	"github.com/tlancaster/winguard/handle"
	"golang.org/x/sys/windows"
)

// remote adapts an open process handle to the Process interface. The
// handle must carry PROCESS_VM_READ, plus PROCESS_VM_OPERATION for
// Protect; obtaining it is the caller's business.
type remote struct {
	h handle.Handle
}

// Remote returns a Process reading through h. The returned value does
// not retain h; the caller keeps it alive for as long as the Process is
// in use.
func Remote(h handle.Handle) Process {
	return remote{h: h}
}

func (r remote) ReadMemory(addr uintptr, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	var n uintptr
	err := windows.ReadProcessMemory(windows.Handle(r.h.Raw()), addr, &p[0], uintptr(len(p)), &n)
	return int(n), err
}

func (r remote) Protect(addr, n uintptr, prot uint32) error {
	var old uint32
	return windows.VirtualProtectEx(windows.Handle(r.h.Raw()), addr, n, prot, &old)
}
