//go:build !windows

package mem

import (
	"errors"
	"unsafe"
)

// Non-Windows builds have no native allocators to dispatch to; the free
// table stays empty and snapshots land in Go-managed memory.

// allocSnapshot obtains n zeroed bytes for View.Snapshot, backed by a
// Go slice kept alive by the returned reference.
func allocSnapshot(n uintptr) (uintptr, []byte, Origin) {
	if n == 0 {
		return 0, nil, OriginGo
	}
	b := make([]byte, n)
	return uintptr(unsafe.Pointer(&b[0])), b, OriginGo
}

func localProtect(addr, n uintptr, prot uint32) error {
	return errors.New("mem: page protection requires windows")
}
