package mem

// Origin identifies the allocator a buffer came from, and therefore the
// primitive that must free it. Freeing through the wrong primitive
// corrupts the owning allocator, so the tag travels with the buffer.
type Origin uint8

const (
	// OriginExternal marks caller-owned memory; the Allocation never
	// frees it.
	OriginExternal Origin = iota

	// OriginGo marks Go-managed memory, reclaimed by the garbage
	// collector once unreferenced.
	OriginGo

	// OriginHeap marks process-heap memory (HeapAlloc / HeapFree).
	OriginHeap

	// OriginCRT marks C-runtime memory (malloc / free).
	OriginCRT

	// OriginVirtual marks page-granular memory (VirtualAlloc /
	// VirtualFree).
	OriginVirtual

	// OriginLocal marks legacy LocalAlloc memory.
	OriginLocal

	// OriginGlobal marks legacy GlobalAlloc memory.
	OriginGlobal

	originCount
)

var originNames = [originCount]string{
	"external", "go", "heap", "crt", "virtual", "local", "global",
}

func (o Origin) String() string {
	if o < originCount {
		return originNames[o]
	}
	return "unknown"
}

// pageCopyThreshold splits Snapshot between the heap and the page
// allocator: copies above 32 KiB go straight to pages.
const pageCopyThreshold = 0x8000

// freeFuncs dispatches a base address to the deallocator matching its
// origin. Platform init fills the entries; a nil entry means no-op
// (external and Go-managed memory).
var freeFuncs [originCount]func(uintptr)

func freeFunc(o Origin) func(uintptr) {
	if o < originCount {
		return freeFuncs[o]
	}
	return nil
}
