package lencodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU8_WriteParse_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 254, 255}

	for _, v := range values {
		var buf []byte
		pos, err := U8{}.Write(&buf, v, 0)
		require.NoError(t, err)
		require.Equal(t, 0, pos)
		require.Len(t, buf, 1)

		got, next, err := U8{}.Parse(buf, 0)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, 1, next)
	}
}

func TestU8_Write_OutOfRange(t *testing.T) {
	var buf []byte
	_, err := U8{}.Write(&buf, 256, 0)
	require.Error(t, err)
}

func TestU8_Write_Alignment(t *testing.T) {
	buf := []byte{1, 2, 3}
	pos, err := U8{}.Write(&buf, 42, 4)
	require.NoError(t, err)
	require.Equal(t, 3, pos)
	require.Len(t, buf, 4)
	require.Equal(t, byte(42), buf[3])
}

func TestU8_Parse_EOF(t *testing.T) {
	_, _, err := U8{}.Parse(nil, 0)
	require.Error(t, err)
}

func TestU8_MaxValue(t *testing.T) {
	require.Equal(t, uint64(255), U8{}.MaxValue())
}
