package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocation_EmptyFailsClosed(t *testing.T) {
	cases := map[string]*Allocation{
		"nil base":   NewAllocation(0, 16, OriginExternal),
		"zero size":  func() *Allocation { b := []byte{1}; return NewAllocation(bufAddr(b), 0, OriginExternal) }(),
		"zero value": {},
		"from empty": FromBytes(nil),
	}
	for name, a := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, a.Valid())
			assert.Zero(t, a.Size())
			assert.Zero(t, a.Byte(0))
			assert.False(t, a.SetByte(0, 1))
			assert.Nil(t, a.Pointer())

			s, ok := a.ReadString()
			assert.False(t, ok)
			assert.Empty(t, s)

			w, ok := a.ReadWideString()
			assert.False(t, ok)
			assert.Empty(t, w)

			_, ok = Read[uint32](a)
			assert.False(t, ok)

			a.Close()
		})
	}
}

func TestAllocation_ByteBounds(t *testing.T) {
	a := FromBytes([]byte{10, 20, 30})
	defer a.Close()

	assert.Equal(t, byte(10), a.Byte(0))
	assert.Equal(t, byte(30), a.Byte(2))
	assert.Zero(t, a.Byte(3), "out-of-range reads return zero")
	assert.Zero(t, a.Byte(^uintptr(0)), "huge offsets must not wrap")
}

func TestAllocation_SetByte(t *testing.T) {
	b := []byte{0, 0, 0, 0}
	a := FromBytes(b)
	defer a.Close()

	assert.True(t, a.SetByte(2, 0xAB))
	assert.Equal(t, byte(0xAB), b[2], "writes land in the backing memory")
	assert.False(t, a.SetByte(4, 1))
	assert.Equal(t, []byte{0, 0, 0xAB, 0}, b)
}

func TestAllocation_Equal(t *testing.T) {
	empty1 := &Allocation{}
	empty2 := NewAllocation(0, 0, OriginExternal)
	abc1 := FromBytes([]byte("abc"))
	abc2 := FromBytes([]byte("abc"))
	abd := FromBytes([]byte("abd"))
	ab := FromBytes([]byte("ab"))
	defer abc1.Close()
	defer abc2.Close()
	defer abd.Close()
	defer ab.Close()

	assert.True(t, abc1.Equal(abc1), "reflexive")
	assert.True(t, empty1.Equal(empty2), "empty == empty")
	assert.False(t, empty1.Equal(abc1))
	assert.False(t, abc1.Equal(empty1))
	assert.True(t, abc1.Equal(abc2))
	assert.False(t, abc1.Equal(abd))
	assert.False(t, abc1.Equal(ab), "prefix with differing sizes is unequal")
}

func TestAllocation_ReadString(t *testing.T) {
	a := FromBytes([]byte("abc\x00garbage"))
	defer a.Close()

	s, ok := a.ReadString()
	require.True(t, ok)
	assert.Equal(t, "abc", s)

	noTerm := FromBytes([]byte("abcd"))
	defer noTerm.Close()
	s, ok = noTerm.ReadString()
	require.True(t, ok)
	assert.Equal(t, "abcd", s, "without a terminator the whole buffer is taken")
}

func TestAllocation_ReadWideString(t *testing.T) {
	raw := []byte{'h', 0, 'i', 0, 0, 0, 'x', 0, 'y', 0}
	a := FromBytes(raw)
	defer a.Close()

	s, ok := a.ReadWideString()
	require.True(t, ok)
	assert.Equal(t, "hi", s)
}

func TestAllocation_TypedRead(t *testing.T) {
	a := FromBytes([]byte{0x78, 0x56, 0x34, 0x12})
	defer a.Close()

	v, ok := Read[uint32](a)
	require.True(t, ok)
	assert.Equal(t, uint32(0x12345678), v)

	_, ok = Read[uint64](a)
	assert.False(t, ok, "type larger than the allocation must fail")

	b, ok := Read[byte](a)
	require.True(t, ok)
	assert.Equal(t, byte(0x78), b)
}

// TestAllocation_FreeOnce verifies the origin deallocator runs exactly
// once across shared copies, and never for detachable empties.
func TestAllocation_FreeOnce(t *testing.T) {
	frees := 0
	old := freeFuncs[OriginLocal]
	freeFuncs[OriginLocal] = func(uintptr) { frees++ }
	t.Cleanup(func() { freeFuncs[OriginLocal] = old })

	b := []byte{1, 2, 3}
	a := NewAllocation(bufAddr(b), uintptr(len(b)), OriginLocal)
	c := a.Retain()

	a.Close()
	a.Close()
	assert.Zero(t, frees)
	c.Close()
	assert.Equal(t, 1, frees)
}

func TestAllocation_ExternalNeverFreed(t *testing.T) {
	b := []byte{1}
	a := NewAllocation(bufAddr(b), 1, OriginExternal)
	a.Close()
	// Nothing to observe beyond not crashing; external memory has no
	// deallocator wired.
	assert.Equal(t, "external", OriginExternal.String())
}

func TestOrigin_String(t *testing.T) {
	assert.Equal(t, "heap", OriginHeap.String())
	assert.Equal(t, "virtual", OriginVirtual.String())
	assert.Equal(t, "unknown", Origin(200).String())
}
