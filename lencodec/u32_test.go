package lencodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU32_WriteParse_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 65536, 0xfffffffe, 0xffffffff}

	for _, v := range values {
		var buf []byte
		pos, err := U32{}.Write(&buf, v, 0)
		require.NoError(t, err)
		require.Equal(t, 0, pos)
		require.Len(t, buf, 4)

		got, next, err := U32{}.Parse(buf, 0)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, 4, next)
	}
}

func TestU32_Write_OutOfRange(t *testing.T) {
	var buf []byte
	_, err := U32{}.Write(&buf, 0x100000000, 0)
	require.Error(t, err)
}

func TestU32_Write_Alignment(t *testing.T) {
	buf := []byte{1, 2}
	pos, err := U32{}.Write(&buf, 9, 8)
	require.NoError(t, err)
	require.Equal(t, 8, pos)
	require.Len(t, buf, 12)
}

func TestU32_Parse_EOF(t *testing.T) {
	_, _, err := U32{}.Parse([]byte{1, 2, 3}, 0)
	require.Error(t, err)
}

func TestU32_MaxValue(t *testing.T) {
	require.Equal(t, uint64(0xffffffff), U32{}.MaxValue())
}
