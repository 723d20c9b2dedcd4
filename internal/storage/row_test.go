package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowRoundTrip(t *testing.T) {
	cases := []Row{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 0, Username: "", Email: ""},
		{ID: 4294967295, Username: repeatByte('u', UsernameSize), Email: repeatByte('e', EmailSize)},
	}

	for _, r := range cases {
		buf := make([]byte, RowSize)
		Serialize(r, buf)
		got := Deserialize(buf)
		assert.Equal(t, r, got)
	}
}

func TestRowSize(t *testing.T) {
	require.Equal(t, 293, RowSize)
}

func repeatByte(b byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return string(out)
}
