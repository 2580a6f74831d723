package mem

import (
	"bytes"
	"unsafe"

	"github.com/tlancaster/winguard/internal/bounds"
	"github.com/tlancaster/winguard/internal/wstr"
)

// stringProbeSize is the first remote read made while hunting for a
// string terminator; each retry doubles it until the declared size.
const stringProbeSize = 32

// View is a non-owning, size-bounded window over memory in the local
// address space or in a foreign process. It never frees what it points
// at, and every access is clipped to the declared size. Fallible reads
// degrade to zero values and empty strings rather than failing loudly,
// because the memory under a view is routinely only partially valid.
type View struct {
	addr uintptr
	size uintptr
	proc Process // nil means local
}

// NewView returns a local view of size bytes at addr.
func NewView(addr, size uintptr) View {
	return View{addr: addr, size: size}
}

// NewRemoteView returns a view of size bytes at addr inside the foreign
// process behind p. A nil p is the local address space.
func NewRemoteView(addr, size uintptr, p Process) View {
	return View{addr: addr, size: size, proc: p}
}

// ViewOf returns a local view sized for one value of type T.
func ViewOf[T any](addr uintptr) View {
	var t T
	return View{addr: addr, size: unsafe.Sizeof(t)}
}

// Valid reports whether the view points anywhere.
func (v View) Valid() bool { return v.addr != 0 }

// Local reports whether the view reads the caller's own address space.
func (v View) Local() bool { return v.proc == nil }

// Addr returns the viewed address.
func (v View) Addr() uintptr { return v.addr }

// Size returns the declared size in bytes.
func (v View) Size() uintptr { return v.size }

// Offset returns a view shifted n bytes forward within the same process
// context. Shifting past the declared size yields an empty view rather
// than one that reaches out of range.
func (v View) Offset(n uintptr) View {
	rest, ok := bounds.Clip(n, v.size)
	if !ok || !v.Valid() {
		return View{proc: v.proc}
	}
	return View{addr: v.addr + n, size: rest, proc: v.proc}
}

// read copies the first n bytes under the view. For local views the
// returned slice aliases the viewed memory; for foreign views it is a
// private copy. ok is false when the full n bytes could not be read.
func (v View) read(n uintptr) ([]byte, bool) {
	if n == 0 {
		return nil, true
	}
	if !v.Valid() || n > v.size {
		return nil, false
	}
	if v.proc == nil {
		return unsafe.Slice((*byte)(unsafe.Pointer(v.addr)), n), true
	}
	buf := make([]byte, n)
	got, err := v.proc.ReadMemory(v.addr, buf)
	if err != nil || uintptr(got) < n {
		return nil, false
	}
	return buf, true
}

// Equal compares the first min(v.Size, o.Size) bytes of both views.
// A failed read on either side compares unequal.
func (v View) Equal(o View) bool {
	n := min(v.size, o.size)
	a, ok := v.read(n)
	if !ok {
		return false
	}
	b, ok := o.read(n)
	return ok && bytes.Equal(a, b)
}

// Protect changes page protection for the whole view.
func (v View) Protect(prot uint32) bool {
	return v.ProtectRange(prot, v.size)
}

// ProtectRange changes page protection for the first n bytes, capped at
// the declared size.
func (v View) ProtectRange(prot uint32, n uintptr) bool {
	n = min(n, v.size)
	if !v.Valid() || n == 0 {
		return false
	}
	if v.proc == nil {
		return localProtect(v.addr, n, prot) == nil
	}
	return v.proc.Protect(v.addr, n, prot) == nil
}

// ReadString extracts a NUL-terminated narrow string.
//
// Local views scan directly, never past the declared size; without a
// terminator the whole declared range is returned. Foreign views read
// remotely into a buffer that doubles from a small probe up to the
// declared size, stopping at the first terminator found among the bytes
// actually read; when the cap is reached without one, the result is
// empty. This bounds total work by the declared size without one huge
// speculative read.
func (v View) ReadString() string {
	if !v.Valid() || v.size == 0 {
		return ""
	}
	if v.proc == nil {
		b := unsafe.Slice((*byte)(unsafe.Pointer(v.addr)), v.size)
		if i := bytes.IndexByte(b, 0); i >= 0 {
			b = b[:i]
		}
		return string(b)
	}
	for n := min(stringProbeSize, v.size); ; n = min(n*2, v.size) {
		buf := make([]byte, n)
		got, _ := v.proc.ReadMemory(v.addr, buf)
		if i := bytes.IndexByte(buf[:got], 0); i >= 0 {
			return string(buf[:i])
		}
		if n == v.size {
			return ""
		}
	}
}

// ReadWideString is ReadString for UTF-16LE memory. Sizes are still in
// bytes; a lone trailing byte is ignored.
func (v View) ReadWideString() string {
	limit := v.size &^ 1
	if !v.Valid() || limit == 0 {
		return ""
	}
	if v.proc == nil {
		b := unsafe.Slice((*byte)(unsafe.Pointer(v.addr)), limit)
		if i := wstr.Terminator(b); i >= 0 {
			b = b[:i]
		}
		return wstr.Decode(b)
	}
	for n := min(stringProbeSize, limit); ; n = min(n*2, limit) {
		buf := make([]byte, n)
		got, _ := v.proc.ReadMemory(v.addr, buf)
		if i := wstr.Terminator(buf[:got&^1]); i >= 0 {
			return wstr.Decode(buf[:i])
		}
		if n == limit {
			return ""
		}
	}
}

// Snapshot materializes the whole view into an owned Allocation.
func (v View) Snapshot() *Allocation {
	return v.SnapshotN(v.size)
}

// SnapshotN materializes the first n bytes, capped at the declared
// size, into an owned Allocation. Copies above 32 KiB land in
// page-allocator memory, smaller ones in heap memory. A failed remote
// read yields an empty Allocation.
func (v View) SnapshotN(n uintptr) *Allocation {
	n = min(n, v.size)
	if !v.Valid() || n == 0 {
		return &Allocation{}
	}
	base, backing, origin := allocSnapshot(n)
	if base == 0 {
		return &Allocation{}
	}
	a := newSnapshot(base, backing, n, origin)
	dst := a.bytes()
	if v.proc == nil {
		copy(dst, unsafe.Slice((*byte)(unsafe.Pointer(v.addr)), n))
		return a
	}
	got, err := v.proc.ReadMemory(v.addr, dst)
	if err != nil || uintptr(got) < n {
		a.Close()
		return &Allocation{}
	}
	return a
}

// Deref reads one T from the front of the view. Foreign reads land in a
// private zero-initialized scratch value; any failure, including a T
// larger than the view, returns the zero value.
func Deref[T any](v View) T {
	var out T
	n := unsafe.Sizeof(out)
	if !v.Valid() || n > v.size || n == 0 {
		return out
	}
	if v.proc == nil {
		return *(*T)(unsafe.Pointer(v.addr))
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&out)), n)
	if got, err := v.proc.ReadMemory(v.addr, b); err != nil || uintptr(got) < n {
		var zero T
		return zero
	}
	return out
}

// Ref gives member-style access to the viewed value. Local views return
// the true address; foreign views return a freshly populated snapshot
// copy, so mutations through it do not propagate back. Nil on any
// failure.
func Ref[T any](v View) *T {
	var t T
	n := unsafe.Sizeof(t)
	if !v.Valid() || n > v.size || n == 0 {
		return nil
	}
	if v.proc == nil {
		return (*T)(unsafe.Pointer(v.addr))
	}
	out := new(T)
	b := unsafe.Slice((*byte)(unsafe.Pointer(out)), n)
	if got, err := v.proc.ReadMemory(v.addr, b); err != nil || uintptr(got) < n {
		return nil
	}
	return out
}
