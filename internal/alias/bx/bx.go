// stand for bytes helper
package bx

import "encoding/binary"

var LE = binary.LittleEndian

// --- LE: read ---
func U32(b []byte) uint32 { return LE.Uint32(b) }

// --- LE: write ---
func PutU32(b []byte, v uint32) { LE.PutUint32(b, v) }

// --- LE: At (offset) ---
func U32At(b []byte, off int) uint32       { return U32(b[off:]) }
func PutU32At(b []byte, off int, v uint32) { PutU32(b[off:], v) }

// PutFixedString copies s into dst, which must be pre-sized to the field's
// reserved width, null-terminating and zero-padding the remainder. It does
// not validate len(s); callers enforce field-length bounds beforehand.
func PutFixedString(dst []byte, s string) {
	clear(dst)
	copy(dst, s)
}

// FixedString reads a null-terminated (or fully-occupied) string out of a
// fixed-width field, stopping at the first NUL byte.
func FixedString(src []byte) string {
	if i := indexByte(src, 0); i >= 0 {
		return string(src[:i])
	}
	return string(src)
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
