package wstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// enc builds little-endian UTF-16 bytes from ASCII.
func enc(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), 0)
	}
	return out
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "abc", Decode(enc("abc")))
	assert.Equal(t, "", Decode(nil))
	assert.Equal(t, "", Decode([]byte{0x61}), "lone trailing byte is dropped")
	assert.Equal(t, "a", Decode([]byte{0x61, 0x00, 0x62}))
}

func TestTerminator(t *testing.T) {
	b := append(enc("hi"), 0, 0)
	b = append(b, enc("junk")...)
	assert.Equal(t, 4, Terminator(b))

	assert.Equal(t, -1, Terminator(enc("abc")))
	assert.Equal(t, -1, Terminator(nil))

	// A NUL split across code units is not a terminator: "ā" (0x0101)
	// followed by "Ā" (0x0100) contains 0x01,0x01,0x00,0x01.
	assert.Equal(t, -1, Terminator([]byte{0x01, 0x01, 0x00, 0x01}))
}
