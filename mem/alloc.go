package mem

import (
	"bytes"
	"unsafe"

	"github.com/tlancaster/winguard/internal/bounds"
	"github.com/tlancaster/winguard/internal/wstr"
	"github.com/tlancaster/winguard/own"
)

// Allocation is an owned, bounds-known byte buffer tagged with the
// allocator it came from. Copies made with Retain share ownership; the
// origin-specific free runs once, when the last copy is closed.
//
// A nil base or zero size produces a valid "no memory" allocation: every
// read fails closed (zero bytes, empty strings, false) instead of
// touching memory.
type Allocation struct {
	res     *own.Resource[uintptr]
	backing []byte // keeps OriginGo memory reachable
	size    uintptr
	origin  Origin
}

// NewAllocation takes ownership of size bytes at base, to be freed with
// the deallocator matching origin. A zero base or size yields an empty
// allocation.
func NewAllocation(base uintptr, size uintptr, origin Origin) *Allocation {
	if base == 0 || size == 0 {
		return &Allocation{}
	}
	return &Allocation{
		res:    own.New(base, freeFunc(origin)),
		size:   size,
		origin: origin,
	}
}

// FromBytes wraps a Go-managed slice as an OriginGo allocation. The
// allocation aliases b rather than copying it.
func FromBytes(b []byte) *Allocation {
	if len(b) == 0 {
		return &Allocation{}
	}
	return &Allocation{
		res:     own.New(uintptr(unsafe.Pointer(&b[0])), nil),
		backing: b,
		size:    uintptr(len(b)),
		origin:  OriginGo,
	}
}

// newSnapshot wires up a buffer produced by allocSnapshot.
func newSnapshot(base uintptr, backing []byte, size uintptr, origin Origin) *Allocation {
	a := NewAllocation(base, size, origin)
	a.backing = backing
	return a
}

// Valid reports whether the allocation has backing memory.
func (a *Allocation) Valid() bool {
	return a != nil && a.res.Valid() && a.size > 0
}

// Size returns the byte size, or 0 without backing memory.
func (a *Allocation) Size() uintptr {
	if !a.Valid() {
		return 0
	}
	return a.size
}

// Origin returns the allocator tag.
func (a *Allocation) Origin() Origin {
	if a == nil {
		return OriginExternal
	}
	return a.origin
}

// Retain returns a new owning reference to the same buffer.
func (a *Allocation) Retain() *Allocation {
	if !a.Valid() {
		return &Allocation{}
	}
	return &Allocation{res: a.res.Retain(), backing: a.backing, size: a.size, origin: a.origin}
}

// Close drops this reference. The last close across all copies frees the
// buffer through its origin's deallocator, exactly once.
func (a *Allocation) Close() {
	if a != nil && a.res != nil {
		a.res.Close()
	}
}

// bytes exposes the backing memory as a slice. Nil without backing.
func (a *Allocation) bytes() []byte {
	if !a.Valid() {
		return nil
	}
	if a.backing != nil {
		return a.backing[:a.size]
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(a.res.Get())), a.size)
}

// Byte returns the byte at offset i, or 0 when i is out of range or the
// allocation is empty. Out-of-range access never reads past the buffer.
func (a *Allocation) Byte(i uintptr) byte {
	b := a.bytes()
	if !bounds.Fits(i, 1, uintptr(len(b))) {
		return 0
	}
	return b[i]
}

// SetByte writes one byte at a bounds-checked offset and reports whether
// the write happened.
func (a *Allocation) SetByte(off uintptr, v byte) bool {
	b := a.bytes()
	if !bounds.Fits(off, 1, uintptr(len(b))) {
		return false
	}
	b[off] = v
	return true
}

// Equal compares byte-for-byte. Two empty allocations are equal; an
// empty and a non-empty one are not; otherwise sizes and contents must
// both match.
func (a *Allocation) Equal(o *Allocation) bool {
	av, ov := a.Valid(), o.Valid()
	switch {
	case !av && !ov:
		return true
	case !av || !ov:
		return false
	case a.size != o.size:
		return false
	}
	return bytes.Equal(a.bytes(), o.bytes())
}

// ReadString extracts a NUL-terminated narrow string, scanning at most
// Size bytes. Without a terminator the whole buffer is taken. The
// returned string is an owned copy; ok is false without backing memory.
func (a *Allocation) ReadString() (string, bool) {
	b := a.bytes()
	if b == nil {
		return "", false
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), true
}

// ReadWideString is ReadString for UTF-16LE data, scanning at most
// Size/2 code units for a terminator.
func (a *Allocation) ReadWideString() (string, bool) {
	b := a.bytes()
	if b == nil {
		return "", false
	}
	if i := wstr.Terminator(b); i >= 0 {
		b = b[:i]
	}
	return wstr.Decode(b), true
}

// Pointer is the unchecked escape hatch into the backing memory. The
// caller takes over bounds responsibility. Nil without backing memory.
func (a *Allocation) Pointer() unsafe.Pointer {
	if !a.Valid() {
		return nil
	}
	return unsafe.Pointer(a.res.Get())
}

// Read reinterprets the front of the allocation as a T. It fails when T
// does not fit in Size or there is no backing memory.
func Read[T any](a *Allocation) (T, bool) {
	var out T
	b := a.bytes()
	if b == nil || uintptr(len(b)) < unsafe.Sizeof(out) {
		return out, false
	}
	out = *(*T)(unsafe.Pointer(&b[0]))
	return out, true
}
