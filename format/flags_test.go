package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlags_Accessors(t *testing.T) {
	var f Flags

	require.False(t, f.Aligned())
	require.False(t, f.SortedKeys())

	f = f.With(Aligned).With(SortedKeys)

	require.True(t, f.Aligned())
	require.True(t, f.SortedKeys())
	require.False(t, f.IntegerKeys())
	require.False(t, f.BigEndian())
	require.False(t, f.RelativeObjectRefs())
}

func TestFlags_Without(t *testing.T) {
	f := Aligned.With(SortedKeys).With(RelativeObjectRefs)
	f = f.Without(SortedKeys)

	require.True(t, f.Aligned())
	require.False(t, f.SortedKeys())
	require.True(t, f.RelativeObjectRefs())
}

func TestFlags_Has_RequiresAllBits(t *testing.T) {
	f := Aligned.With(SortedKeys)

	require.True(t, f.Has(Aligned))
	require.True(t, f.Has(Aligned|SortedKeys))
	require.False(t, f.Has(Aligned|IntegerKeys))
}
