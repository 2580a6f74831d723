// Package bounds provides overflow-safe arithmetic for address and size
// calculations. Every offset computed against untrusted sizes goes
// through these helpers instead of raw uintptr math.
package bounds

// Add returns a+b, with ok = false when the sum wraps around.
func Add(a, b uintptr) (uintptr, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}

// Clip returns the number of bytes remaining in a window of the given
// size after skipping off bytes. ok = false when off lies past the end.
func Clip(off, size uintptr) (uintptr, bool) {
	if off > size {
		return 0, false
	}
	return size - off, true
}

// Fits reports whether the range [off, off+n) lies within size bytes.
func Fits(off, n, size uintptr) bool {
	end, ok := Add(off, n)
	return ok && end <= size
}
