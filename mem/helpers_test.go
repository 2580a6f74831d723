package mem

import (
	"errors"
	"unsafe"
)

// bufAddr returns the address of the first byte of b for building views
// and allocations over test buffers.
func bufAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

var errUnmapped = errors.New("fake: address range not mapped")

// fakeProcess simulates a foreign address space with a single mapped
// region at base. Reads outside it fail like an unmapped page; reads
// straddling the end are short. protErr, when set, fails Protect.
type fakeProcess struct {
	base    uintptr
	data    []byte
	reads   int
	protErr error

	// lastProt records the most recent Protect call.
	lastProt struct {
		addr, n uintptr
		prot    uint32
	}
}

func (f *fakeProcess) ReadMemory(addr uintptr, p []byte) (int, error) {
	f.reads++
	if addr < f.base || addr >= f.base+uintptr(len(f.data)) {
		return 0, errUnmapped
	}
	off := addr - f.base
	n := copy(p, f.data[off:])
	if n < len(p) {
		return n, errUnmapped
	}
	return n, nil
}

func (f *fakeProcess) Protect(addr, n uintptr, prot uint32) error {
	if f.protErr != nil {
		return f.protErr
	}
	f.lastProt.addr, f.lastProt.n, f.lastProt.prot = addr, n, prot
	return nil
}

// deadProcess fails every operation, like a process that has exited.
type deadProcess struct{}

func (deadProcess) ReadMemory(uintptr, []byte) (int, error) { return 0, errUnmapped }
func (deadProcess) Protect(uintptr, uintptr, uint32) error  { return errUnmapped }
