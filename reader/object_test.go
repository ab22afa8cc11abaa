package reader_test

import (
	"testing"

	"github.com/archo5/dato/format"
	"github.com/archo5/dato/reader"
	"github.com/archo5/dato/writer"
	"github.com/stretchr/testify/require"
)

func TestObject_EmptyLen(t *testing.T) {
	b, err := writer.NewBuilder()
	require.NoError(t, err)

	root, err := b.AppendObject(nil)
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)
	require.Equal(t, 0, obj.Len())
}

func TestObject_MultipleEntries_GetAndAt(t *testing.T) {
	b, err := writer.NewBuilder()
	require.NoError(t, err)

	aKey, err := b.AppendKey("a")
	require.NoError(t, err)
	bKey, err := b.AppendKey("b")
	require.NoError(t, err)

	root, err := b.AppendObject([]writer.ObjectEntry{
		{Key: aKey, Value: b.AppendInt32(1)},
		{Key: bKey, Value: b.AppendInt32(2)},
	})
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)
	require.Equal(t, 2, obj.Len())

	v, ok, err := obj.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	n, err := v.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(2), n)

	_, ok, err = obj.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	v0, err := obj.At(0)
	require.NoError(t, err)
	n0, err := v0.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(1), n0)

	k0, err := obj.KeyBytes(0)
	require.NoError(t, err)
	require.Equal(t, []byte("a"), k0)
}

func TestObject_All_Iterates(t *testing.T) {
	b, err := writer.NewBuilder()
	require.NoError(t, err)

	xKey, err := b.AppendKey("x")
	require.NoError(t, err)
	yKey, err := b.AppendKey("y")
	require.NoError(t, err)

	root, err := b.AppendObject([]writer.ObjectEntry{
		{Key: xKey, Value: b.AppendBool(true)},
		{Key: yKey, Value: b.AppendBool(false)},
	})
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	var seen []bool
	for _, v := range obj.All() {
		bv, err := v.Bool()
		require.NoError(t, err)
		seen = append(seen, bv)
	}
	require.Equal(t, []bool{true, false}, seen)
}

func TestObject_SortedKeys_BinarySearch(t *testing.T) {
	b, err := writer.NewBuilder(writer.WithSortedKeys(true))
	require.NoError(t, err)

	aKey, err := b.AppendKey("a")
	require.NoError(t, err)
	mKey, err := b.AppendKey("m")
	require.NoError(t, err)
	zKey, err := b.AppendKey("z")
	require.NoError(t, err)

	root, err := b.AppendObject([]writer.ObjectEntry{
		{Key: aKey, Value: b.AppendInt32(1)},
		{Key: mKey, Value: b.AppendInt32(2)},
		{Key: zKey, Value: b.AppendInt32(3)},
	})
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.Get("m")
	require.NoError(t, err)
	require.True(t, ok)
	n, err := v.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(2), n)

	_, ok, err = obj.Get("aa")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestObject_IntegerKeys(t *testing.T) {
	b, err := writer.NewBuilder(writer.WithIntegerKeys(true))
	require.NoError(t, err)

	root, err := b.AppendObject([]writer.ObjectEntry{
		{Key: 7, Value: b.AppendInt32(42)},
	})
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf)
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.GetInt(7)
	require.NoError(t, err)
	require.True(t, ok)
	n, err := v.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(42), n)

	_, _, err = obj.Get("x")
	require.Error(t, err)
}

func TestObject_RelativeObjectRefs(t *testing.T) {
	b, err := writer.NewBuilder(writer.WithRelativeObjectRefs(true))
	require.NoError(t, err)

	k, err := b.AppendKey("big")
	require.NoError(t, err)
	root, err := b.AppendObject([]writer.ObjectEntry{
		{Key: k, Value: b.AppendInt64(123456789)},
	})
	require.NoError(t, err)
	buf, err := b.Finish(root)
	require.NoError(t, err)

	r, err := reader.New(buf, reader.WithConfig(format.Config0))
	require.NoError(t, err)
	obj, err := r.Root()
	require.NoError(t, err)

	v, ok, err := obj.Get("big")
	require.NoError(t, err)
	require.True(t, ok)

	n, err := v.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(123456789), n)
}
