package writer

import (
	"testing"

	"github.com/archo5/dato/format"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()

	require.Equal(t, []byte("DATO"), s.prefix)
	require.Equal(t, format.Config0.ID, s.cfg.ID)
	require.True(t, s.aligned)
	require.True(t, s.skipDuplicateKeys)
	require.False(t, s.integerKeys)
	require.False(t, s.sortKeys)
	require.False(t, s.relativeObjectRefs)
}

func TestApplyOptions(t *testing.T) {
	s := defaultSettings()
	err := applyOptions(s,
		WithPrefix([]byte("XYZQ")),
		WithConfig(format.Config2),
		WithAligned(false),
		WithSkipDuplicateKeys(false),
		WithIntegerKeys(true),
		WithSortedKeys(true),
		WithRelativeObjectRefs(true),
	)
	require.NoError(t, err)

	require.Equal(t, []byte("XYZQ"), s.prefix)
	require.Equal(t, format.Config2.ID, s.cfg.ID)
	require.False(t, s.aligned)
	require.False(t, s.skipDuplicateKeys)
	require.True(t, s.integerKeys)
	require.True(t, s.sortKeys)
	require.True(t, s.relativeObjectRefs)
}

func TestWithPrefix_CopiesInput(t *testing.T) {
	s := defaultSettings()
	prefix := []byte("ABCD")
	require.NoError(t, applyOptions(s, WithPrefix(prefix)))

	prefix[0] = 'Z'
	require.Equal(t, []byte("ABCD"), s.prefix)
}
