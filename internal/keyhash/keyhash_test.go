package keyhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterner_RecordAndLookup(t *testing.T) {
	in := New()

	_, ok := in.Lookup([]byte("a"))
	require.False(t, ok)

	in.Record([]byte("a"), 12)

	offset, ok := in.Lookup([]byte("a"))
	require.True(t, ok)
	require.Equal(t, 12, offset)
}

func TestInterner_DistinctKeys(t *testing.T) {
	in := New()
	in.Record([]byte("a"), 1)
	in.Record([]byte("b"), 2)

	offset, ok := in.Lookup([]byte("b"))
	require.True(t, ok)
	require.Equal(t, 2, offset)

	_, ok = in.Lookup([]byte("c"))
	require.False(t, ok)
}

func TestInterner_Count(t *testing.T) {
	in := New()
	require.Equal(t, 0, in.Count())

	in.Record([]byte("a"), 1)
	in.Record([]byte("b"), 2)
	require.Equal(t, 2, in.Count())
}

func TestInterner_Reset(t *testing.T) {
	in := New()
	in.Record([]byte("a"), 1)
	in.Reset()

	require.Equal(t, 0, in.Count())
	_, ok := in.Lookup([]byte("a"))
	require.False(t, ok)
}

func TestInterner_RecordedKeyCopiedNotAliased(t *testing.T) {
	in := New()
	key := []byte("mutable")
	in.Record(key, 5)

	key[0] = 'M'

	offset, ok := in.Lookup([]byte("mutable"))
	require.True(t, ok)
	require.Equal(t, 5, offset)
}
