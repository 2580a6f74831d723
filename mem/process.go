package mem

// Process is the boundary to a foreign address space. Implementations
// wrap whatever remote-access primitives the platform offers; views use
// one to read and protect memory they cannot touch directly.
//
// A nil Process on a View means the local address space.
type Process interface {
	// ReadMemory copies up to len(p) bytes from addr in the target
	// process into p and returns how many bytes arrived. Partially
	// mapped ranges may yield a short read alongside an error.
	ReadMemory(addr uintptr, p []byte) (int, error)

	// Protect changes page protection for [addr, addr+n) in the target
	// process.
	Protect(addr, n uintptr, prot uint32) error
}
