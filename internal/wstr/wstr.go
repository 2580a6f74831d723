// Package wstr decodes UTF-16LE byte sequences, the wide-string
// encoding used throughout the Win32 API surface.
package wstr

import "golang.org/x/text/encoding/unicode"

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Decode converts UTF-16LE bytes to a Go string. A trailing odd byte is
// dropped; undecodable input yields the empty string.
func Decode(b []byte) string {
	b = b[:len(b)&^1]
	if len(b) == 0 {
		return ""
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

// Terminator returns the byte offset of the first NUL code unit on an
// even boundary, or -1 when none exists within b.
func Terminator(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}
