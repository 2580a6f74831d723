// Package mem provides bounds-checked access to arbitrary memory and
// owned, origin-tagged allocations.
//
// # Allocation
//
// Allocation owns a byte buffer together with the tag of the allocator
// it came from (Origin), so the matching deallocator runs when the last
// shared reference is closed. An Allocation constructed from a nil base
// or zero size is the valid "no memory" state: reads return zero bytes
// and empty strings, writes report failure, and nothing ever crashes.
//
// # View
//
// View is a non-owning window of a declared size over memory that may
// live in the local address space or in a foreign process reached
// through a Process. Views clip every access to their size, turn read
// failures into zero values, and can materialize their contents into an
// Allocation with Snapshot.
//
// The tolerance is deliberate: the primary consumer inspects memory of
// other processes whose validity cannot be established up front, where
// a crash on a partially unmapped page is unacceptable. Every fallible
// operation here returns a sentinel result instead of an error.
package mem
