package lencodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU16_WriteParse_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 65534, 65535}

	for _, v := range values {
		var buf []byte
		pos, err := U16{}.Write(&buf, v, 0)
		require.NoError(t, err)
		require.Equal(t, 0, pos)
		require.Len(t, buf, 2)

		got, next, err := U16{}.Parse(buf, 0)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, 2, next)
	}
}

func TestU16_Write_OutOfRange(t *testing.T) {
	var buf []byte
	_, err := U16{}.Write(&buf, 65536, 0)
	require.Error(t, err)
}

func TestU16_Write_Alignment(t *testing.T) {
	buf := []byte{1}
	pos, err := U16{}.Write(&buf, 7, 4)
	require.NoError(t, err)
	require.Equal(t, 4, pos)
	require.Len(t, buf, 6)
}

func TestU16_Parse_EOF(t *testing.T) {
	_, _, err := U16{}.Parse([]byte{1}, 0)
	require.Error(t, err)
}

func TestU16_MaxValue(t *testing.T) {
	require.Equal(t, uint64(65535), U16{}.MaxValue())
}
