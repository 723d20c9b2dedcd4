package bx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLittleEndianReadWrite(t *testing.T) {
	b := make([]byte, 4)
	var v uint32 = 0x01020304

	PutU32(b, v)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
	assert.Equal(t, v, U32(b))
}

func TestLittleEndianAt(t *testing.T) {
	buf := make([]byte, 16)

	PutU32At(buf, 2, 0x01020304)

	assert.Equal(t, uint32(0x01020304), U32At(buf, 2))
}

func TestFixedStringRoundTrip(t *testing.T) {
	dst := make([]byte, 33)
	PutFixedString(dst, "alice")
	assert.Equal(t, "alice", FixedString(dst))

	for _, b := range dst[len("alice"):] {
		assert.Equal(t, byte(0), b)
	}
}

func TestFixedStringFillsWholeField(t *testing.T) {
	dst := make([]byte, 4)
	PutFixedString(dst, "abcd")
	assert.Equal(t, "abcd", FixedString(dst))
}
