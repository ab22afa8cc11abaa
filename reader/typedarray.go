package reader

import (
	"math"

	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/section"
)

// TypedArray is a thin accessor over any TypedArray{...} record. Bytes is a
// zero-copy borrow of the packed little-endian elements; the element-typed
// At/Read helpers decode (and, for Read, materialize) them.
type TypedArray struct {
	r        *Reader
	typ      format.TypeCode
	data     []byte
	count    int
	elemSize int
}

func newTypedArray(r *Reader, pos int, typ format.TypeCode, elemSize int) (TypedArray, error) {
	data, count, _, err := section.ParseTypedArray(r.buf, r.cfg.ValueLengthCodec, pos, elemSize)
	if err != nil {
		return TypedArray{}, err
	}

	return TypedArray{r: r, typ: typ, data: data, count: count, elemSize: elemSize}, nil
}

// Type returns the typed array's element type code.
func (t TypedArray) Type() format.TypeCode { return t.typ }

// Len returns the element count.
func (t TypedArray) Len() int { return t.count }

// Bytes returns the packed little-endian elements, a slice into the
// Reader's buffer rather than a copy.
func (t TypedArray) Bytes() []byte { return t.data }

func (t TypedArray) checkIndex(i int) error {
	if i < 0 || i >= t.count {
		return errs.ErrIndexOutOfRange
	}

	return nil
}

func (t TypedArray) checkType(want format.TypeCode) error {
	if t.typ != want {
		return errs.ErrWrongType
	}

	return nil
}

// Int8At returns the element at index i of a TypedArrayS8.
func (t TypedArray) Int8At(i int) (int8, error) {
	if err := t.checkType(format.TypedArrayS8); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return int8(t.data[i]), nil //nolint:gosec
}

// Uint8At returns the element at index i of a TypedArrayU8.
func (t TypedArray) Uint8At(i int) (uint8, error) {
	if err := t.checkType(format.TypedArrayU8); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return t.data[i], nil
}

// Int16At returns the element at index i of a TypedArrayS16.
func (t TypedArray) Int16At(i int) (int16, error) {
	if err := t.checkType(format.TypedArrayS16); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return int16(t.r.engine.Uint16(t.data[i*2:])), nil //nolint:gosec
}

// Uint16At returns the element at index i of a TypedArrayU16.
func (t TypedArray) Uint16At(i int) (uint16, error) {
	if err := t.checkType(format.TypedArrayU16); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return t.r.engine.Uint16(t.data[i*2:]), nil
}

// Int32At returns the element at index i of a TypedArrayS32.
func (t TypedArray) Int32At(i int) (int32, error) {
	if err := t.checkType(format.TypedArrayS32); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return int32(t.r.engine.Uint32(t.data[i*4:])), nil //nolint:gosec
}

// Uint32At returns the element at index i of a TypedArrayU32.
func (t TypedArray) Uint32At(i int) (uint32, error) {
	if err := t.checkType(format.TypedArrayU32); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return t.r.engine.Uint32(t.data[i*4:]), nil
}

// Int64At returns the element at index i of a TypedArrayS64.
func (t TypedArray) Int64At(i int) (int64, error) {
	if err := t.checkType(format.TypedArrayS64); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return int64(t.r.engine.Uint64(t.data[i*8:])), nil //nolint:gosec
}

// Uint64At returns the element at index i of a TypedArrayU64.
func (t TypedArray) Uint64At(i int) (uint64, error) {
	if err := t.checkType(format.TypedArrayU64); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return t.r.engine.Uint64(t.data[i*8:]), nil
}

// Float32At returns the element at index i of a TypedArrayF32.
func (t TypedArray) Float32At(i int) (float32, error) {
	if err := t.checkType(format.TypedArrayF32); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return math.Float32frombits(t.r.engine.Uint32(t.data[i*4:])), nil
}

// Float64At returns the element at index i of a TypedArrayF64.
func (t TypedArray) Float64At(i int) (float64, error) {
	if err := t.checkType(format.TypedArrayF64); err != nil {
		return 0, err
	}
	if err := t.checkIndex(i); err != nil {
		return 0, err
	}

	return math.Float64frombits(t.r.engine.Uint64(t.data[i*8:])), nil
}

// ReadInt8 materializes the full element slice of a TypedArrayS8.
func (t TypedArray) ReadInt8() ([]int8, error) {
	if err := t.checkType(format.TypedArrayS8); err != nil {
		return nil, err
	}

	out := make([]int8, t.count)
	for i := range out {
		out[i] = int8(t.data[i]) //nolint:gosec
	}

	return out, nil
}

// ReadUint8 materializes the full element slice of a TypedArrayU8.
func (t TypedArray) ReadUint8() ([]uint8, error) {
	if err := t.checkType(format.TypedArrayU8); err != nil {
		return nil, err
	}

	out := make([]uint8, t.count)
	copy(out, t.data)

	return out, nil
}

// ReadInt16 materializes the full element slice of a TypedArrayS16.
func (t TypedArray) ReadInt16() ([]int16, error) {
	if err := t.checkType(format.TypedArrayS16); err != nil {
		return nil, err
	}

	out := make([]int16, t.count)
	for i := range out {
		out[i] = int16(t.r.engine.Uint16(t.data[i*2:])) //nolint:gosec
	}

	return out, nil
}

// ReadUint16 materializes the full element slice of a TypedArrayU16.
func (t TypedArray) ReadUint16() ([]uint16, error) {
	if err := t.checkType(format.TypedArrayU16); err != nil {
		return nil, err
	}

	out := make([]uint16, t.count)
	for i := range out {
		out[i] = t.r.engine.Uint16(t.data[i*2:])
	}

	return out, nil
}

// ReadInt32 materializes the full element slice of a TypedArrayS32.
func (t TypedArray) ReadInt32() ([]int32, error) {
	if err := t.checkType(format.TypedArrayS32); err != nil {
		return nil, err
	}

	out := make([]int32, t.count)
	for i := range out {
		out[i] = int32(t.r.engine.Uint32(t.data[i*4:])) //nolint:gosec
	}

	return out, nil
}

// ReadUint32 materializes the full element slice of a TypedArrayU32.
func (t TypedArray) ReadUint32() ([]uint32, error) {
	if err := t.checkType(format.TypedArrayU32); err != nil {
		return nil, err
	}

	out := make([]uint32, t.count)
	for i := range out {
		out[i] = t.r.engine.Uint32(t.data[i*4:])
	}

	return out, nil
}

// ReadInt64 materializes the full element slice of a TypedArrayS64.
func (t TypedArray) ReadInt64() ([]int64, error) {
	if err := t.checkType(format.TypedArrayS64); err != nil {
		return nil, err
	}

	out := make([]int64, t.count)
	for i := range out {
		out[i] = int64(t.r.engine.Uint64(t.data[i*8:])) //nolint:gosec
	}

	return out, nil
}

// ReadUint64 materializes the full element slice of a TypedArrayU64.
func (t TypedArray) ReadUint64() ([]uint64, error) {
	if err := t.checkType(format.TypedArrayU64); err != nil {
		return nil, err
	}

	out := make([]uint64, t.count)
	for i := range out {
		out[i] = t.r.engine.Uint64(t.data[i*8:])
	}

	return out, nil
}

// ReadFloat32 materializes the full element slice of a TypedArrayF32.
func (t TypedArray) ReadFloat32() ([]float32, error) {
	if err := t.checkType(format.TypedArrayF32); err != nil {
		return nil, err
	}

	out := make([]float32, t.count)
	for i := range out {
		out[i] = math.Float32frombits(t.r.engine.Uint32(t.data[i*4:]))
	}

	return out, nil
}

// ReadFloat64 materializes the full element slice of a TypedArrayF64.
func (t TypedArray) ReadFloat64() ([]float64, error) {
	if err := t.checkType(format.TypedArrayF64); err != nil {
		return nil, err
	}

	out := make([]float64, t.count)
	for i := range out {
		out[i] = math.Float64frombits(t.r.engine.Uint64(t.data[i*8:]))
	}

	return out, nil
}
