package reader_test

import (
	"testing"

	"github.com/archo5/dato/reader"
	"github.com/archo5/dato/writer"
	"github.com/stretchr/testify/require"
)

func buildStringObject(t *testing.T, write func(b *writer.Builder) (writer.Handle, error)) []byte {
	t.Helper()

	b, err := writer.NewBuilder()
	require.NoError(t, err)

	h, err := write(b)
	require.NoError(t, err)

	k, err := b.AppendKey("s")
	require.NoError(t, err)
	root, err := b.AppendObject([]writer.ObjectEntry{{Key: k, Value: h}})
	require.NoError(t, err)

	out, err := b.Finish(root)
	require.NoError(t, err)

	return out
}

func TestString8_RoundTrip(t *testing.T) {
	buf := buildStringObject(t, func(b *writer.Builder) (writer.Handle, error) {
		return b.AppendStringUTF8("héllo")
	})

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.Get("s")
	require.NoError(t, err)
	require.True(t, ok)

	s, err := v.StringUTF8()
	require.NoError(t, err)
	require.Equal(t, "héllo", s.String())
	require.Equal(t, []byte("héllo"), s.Bytes())
	require.Equal(t, len("héllo"), s.Len())
}

func TestString16_RoundTrip(t *testing.T) {
	buf := buildStringObject(t, func(b *writer.Builder) (writer.Handle, error) {
		return b.AppendStringUTF16("smile \U0001F600")
	})

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.Get("s")
	require.NoError(t, err)
	require.True(t, ok)

	s, err := v.StringUTF16()
	require.NoError(t, err)
	require.Equal(t, "smile \U0001F600", s.String())
}

func TestString32_RoundTrip(t *testing.T) {
	buf := buildStringObject(t, func(b *writer.Builder) (writer.Handle, error) {
		return b.AppendStringUTF32("日本語")
	})

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.Get("s")
	require.NoError(t, err)
	require.True(t, ok)

	s, err := v.StringUTF32()
	require.NoError(t, err)
	require.Equal(t, "日本語", s.String())
	require.Equal(t, 3, s.Len())
}
