package reader_test

import (
	"testing"

	"github.com/archo5/dato/format"
	"github.com/archo5/dato/reader"
	"github.com/archo5/dato/writer"
	"github.com/stretchr/testify/require"
)

func TestTypedArray_U32_RoundTrip(t *testing.T) {
	b, err := writer.NewBuilder()
	require.NoError(t, err)

	h, err := b.AppendTypedArrayU32([]uint32{1, 2, 3, 4})
	require.NoError(t, err)

	k, err := b.AppendKey("xs")
	require.NoError(t, err)
	root, err := b.AppendObject([]writer.ObjectEntry{{Key: k, Value: h}})
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.Get("xs")
	require.NoError(t, err)
	require.True(t, ok)

	ta, err := v.TypedArray()
	require.NoError(t, err)
	require.Equal(t, format.TypedArrayU32, ta.Type())
	require.Equal(t, 4, ta.Len())

	el, err := ta.Uint32At(2)
	require.NoError(t, err)
	require.Equal(t, uint32(3), el)

	all, err := ta.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3, 4}, all)

	_, err = ta.Int32At(0)
	require.Error(t, err)
}

func TestTypedArray_F64_RoundTrip(t *testing.T) {
	b, err := writer.NewBuilder()
	require.NoError(t, err)

	h, err := b.AppendTypedArrayF64([]float64{1.5, -2.25})
	require.NoError(t, err)

	k, err := b.AppendKey("xs")
	require.NoError(t, err)
	root, err := b.AppendObject([]writer.ObjectEntry{{Key: k, Value: h}})
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.Get("xs")
	require.NoError(t, err)
	require.True(t, ok)

	ta, err := v.TypedArray()
	require.NoError(t, err)

	all, err := ta.ReadFloat64()
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -2.25}, all)
}

func TestTypedArray_S8_RoundTrip(t *testing.T) {
	b, err := writer.NewBuilder()
	require.NoError(t, err)

	h, err := b.AppendTypedArrayS8([]int8{-1, 0, 1, 127, -128})
	require.NoError(t, err)

	k, err := b.AppendKey("xs")
	require.NoError(t, err)
	root, err := b.AppendObject([]writer.ObjectEntry{{Key: k, Value: h}})
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.Get("xs")
	require.NoError(t, err)
	require.True(t, ok)

	ta, err := v.TypedArray()
	require.NoError(t, err)

	all, err := ta.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, []int8{-1, 0, 1, 127, -128}, all)
}
