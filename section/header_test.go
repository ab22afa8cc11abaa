package section

import (
	"errors"
	"testing"

	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/format"
	"github.com/stretchr/testify/require"
)

func TestWriteParse_RoundTrip_Aligned(t *testing.T) {
	var buf []byte
	rootSlot, err := Write(&buf, DefaultPrefix, 0, format.Aligned)
	require.NoError(t, err)
	require.Equal(t, 8, rootSlot)
	require.Len(t, buf, 12)

	PatchRootOffset(buf, rootSlot, 12)

	h, next, err := Parse(buf, DefaultPrefix, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(12), h.RootOffset)
	require.Equal(t, uint8(0), h.ConfigID)
	require.True(t, h.Flags.Aligned())
	require.Equal(t, 12, next)
}

func TestWrite_EmptyObjectScenario(t *testing.T) {
	var buf []byte
	rootSlot, err := Write(&buf, DefaultPrefix, 0, format.Aligned)
	require.NoError(t, err)

	want := []byte("DATO")
	want = append(want, 0x00, 0x01, 0x00, 0x00, 0, 0, 0, 0)
	require.Equal(t, want, buf)
	require.Equal(t, 8, rootSlot)
}

func TestWriteParse_RoundTrip_Unaligned(t *testing.T) {
	var buf []byte
	rootSlot, err := Write(&buf, DefaultPrefix, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 6, rootSlot)
	require.Len(t, buf, 10)

	PatchRootOffset(buf, rootSlot, 6)

	h, _, err := Parse(buf, DefaultPrefix, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(6), h.RootOffset)
	require.False(t, h.Flags.Aligned())
}

func TestWrite_ReservedConfig(t *testing.T) {
	var buf []byte
	_, err := Write(&buf, DefaultPrefix, 5, 0)
	require.True(t, errors.Is(err, errs.ErrReservedConfig))
}

func TestParse_MissingPrefix(t *testing.T) {
	buf := []byte("NOPE\x00\x01\x00\x00\x00\x00\x00\x00")
	_, _, err := Parse(buf, DefaultPrefix, 0)
	require.True(t, errors.Is(err, errs.ErrMissingPrefix))
}

func TestParse_WrongConfig(t *testing.T) {
	var buf []byte
	_, err := Write(&buf, DefaultPrefix, 1, format.Aligned)
	require.NoError(t, err)

	_, _, err = Parse(buf, DefaultPrefix, 0)
	require.True(t, errors.Is(err, errs.ErrWrongConfig))
}

func TestParse_EOF(t *testing.T) {
	buf := []byte("DA")
	_, _, err := Parse(buf, DefaultPrefix, 0)
	require.True(t, errors.Is(err, errs.ErrEOF))
}

func TestParse_TruncatedRootSlot(t *testing.T) {
	buf := append([]byte("DATO"), 0x00, 0x01, 0x00, 0x00, 0, 0)
	_, _, err := Parse(buf, DefaultPrefix, 0)
	require.True(t, errors.Is(err, errs.ErrEOF))
}
