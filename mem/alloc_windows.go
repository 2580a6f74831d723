//go:build windows

package mem

import "golang.org/x/sys/windows"

// HeapAlloc, HeapFree and GlobalFree have no wrappers in x/sys/windows,
// so they are reached through lazy procs.
var (
	kernel32       = windows.NewLazySystemDLL("kernel32.dll")
	ucrtbase       = windows.NewLazySystemDLL("ucrtbase.dll")
	procHeapAlloc  = kernel32.NewProc("HeapAlloc")
	procHeapFree   = kernel32.NewProc("HeapFree")
	procGlobalFree = kernel32.NewProc("GlobalFree")
	procCRTFree    = ucrtbase.NewProc("free")
)

const heapZeroMemory = 0x00000008

func init() {
	freeFuncs[OriginHeap] = func(p uintptr) {
		if h, err := windows.GetProcessHeap(); err == nil {
			_, _, _ = procHeapFree.Call(uintptr(h), 0, p)
		}
	}
	freeFuncs[OriginCRT] = func(p uintptr) {
		_, _, _ = procCRTFree.Call(p)
	}
	freeFuncs[OriginVirtual] = func(p uintptr) {
		_ = windows.VirtualFree(p, 0, windows.MEM_RELEASE)
	}
	freeFuncs[OriginLocal] = func(p uintptr) {
		_, _ = windows.LocalFree(windows.Handle(p))
	}
	freeFuncs[OriginGlobal] = func(p uintptr) {
		_, _, _ = procGlobalFree.Call(p)
	}
}

// allocSnapshot obtains n zeroed bytes for View.Snapshot. Large copies
// come from the page allocator, small ones from the process heap.
func allocSnapshot(n uintptr) (uintptr, []byte, Origin) {
	if n > pageCopyThreshold {
		p, err := windows.VirtualAlloc(0, n, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
		if err != nil {
			return 0, nil, OriginExternal
		}
		return p, nil, OriginVirtual
	}
	h, err := windows.GetProcessHeap()
	if err != nil {
		return 0, nil, OriginExternal
	}
	p, _, _ := procHeapAlloc.Call(uintptr(h), heapZeroMemory, n)
	return p, nil, OriginHeap
}

// localProtect changes page protection in our own address space.
func localProtect(addr, n uintptr, prot uint32) error {
	var old uint32
	return windows.VirtualProtect(addr, n, prot, &old)
}
