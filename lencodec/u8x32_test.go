package lencodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU8X32_ShortForm(t *testing.T) {
	values := []uint64{0, 1, 127, 253, 254}

	for _, v := range values {
		var buf []byte
		pos, err := U8X32{}.Write(&buf, v, 0)
		require.NoError(t, err)
		require.Equal(t, 0, pos)
		require.Len(t, buf, 1, "value %d should use the 1-byte short form", v)

		got, next, err := U8X32{}.Parse(buf, 0)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, 1, next)
	}
}

func TestU8X32_LongForm(t *testing.T) {
	values := []uint64{255, 256, 65536, 0xfffffffe, 0xffffffff}

	for _, v := range values {
		var buf []byte
		pos, err := U8X32{}.Write(&buf, v, 0)
		require.NoError(t, err)
		require.Equal(t, 0, pos)
		require.Len(t, buf, 5, "value %d should use the 5-byte long form", v)
		require.Equal(t, byte(longFormMarker), buf[0])

		got, next, err := U8X32{}.Parse(buf, 0)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, 5, next)
	}
}

func TestU8X32_Write_OutOfRange(t *testing.T) {
	var buf []byte
	_, err := U8X32{}.Write(&buf, 0x100000000, 0)
	require.Error(t, err)
}

func TestU8X32_Write_Alignment_ShortForm(t *testing.T) {
	buf := []byte{1, 2, 3}
	pos, err := U8X32{}.Write(&buf, 10, 4)
	require.NoError(t, err)
	require.Equal(t, 3, pos)
	require.Len(t, buf, 4)
}

func TestU8X32_Write_Alignment_LongForm(t *testing.T) {
	buf := []byte{1}
	pos, err := U8X32{}.Write(&buf, 300, 4)
	require.NoError(t, err)
	require.Equal(t, 3, pos)
	require.Len(t, buf, 8)
}

func TestU8X32_Parse_EOF(t *testing.T) {
	_, _, err := U8X32{}.Parse(nil, 0)
	require.Error(t, err)

	_, _, err = U8X32{}.Parse([]byte{longFormMarker, 1, 2}, 0)
	require.Error(t, err)
}

func TestU8X32_MaxValue(t *testing.T) {
	require.Equal(t, uint64(0xffffffff), U8X32{}.MaxValue())
}
