package reader

import (
	"math"

	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/format"
)

// Value is a thin, non-copying handle to one value slot: a type tag plus
// its resolved payload (inline bits for inline types, an absolute byte
// offset for reference types). Relative-offset resolution (§3.2,
// RelativeObjectRefs) has already happened by the time a Value is produced
// by an Object or Array accessor.
type Value struct {
	r       *Reader
	typ     format.TypeCode
	payload uint32
}

// Type returns the value's type code.
func (v Value) Type() format.TypeCode { return v.typ }

// IsNull reports whether the value is Null.
func (v Value) IsNull() bool { return v.typ == format.Null }

// Bool decodes a Bool value.
func (v Value) Bool() (bool, error) {
	if v.typ != format.Bool {
		return false, errs.ErrWrongType
	}

	switch v.payload {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errs.ErrBadData
	}
}

// Int32 decodes an S32 value.
func (v Value) Int32() (int32, error) {
	if v.typ != format.S32 {
		return 0, errs.ErrWrongType
	}

	return int32(v.payload), nil //nolint:gosec // two's-complement reinterpretation is intentional
}

// Uint32 decodes a U32 value.
func (v Value) Uint32() (uint32, error) {
	if v.typ != format.U32 {
		return 0, errs.ErrWrongType
	}

	return v.payload, nil
}

// Float32 decodes an F32 value.
func (v Value) Float32() (float32, error) {
	if v.typ != format.F32 {
		return 0, errs.ErrWrongType
	}

	return math.Float32frombits(v.payload), nil
}

// scalar8 reads the 8-byte slot referenced by payload for a value whose
// type is want.
func (v Value) scalar8(want format.TypeCode) (uint64, error) {
	if v.typ != want {
		return 0, errs.ErrWrongType
	}

	off := int(v.payload)
	if off < 0 || off+8 > len(v.r.buf) {
		return 0, errs.ErrEOF
	}

	return v.r.engine.Uint64(v.r.buf[off : off+8]), nil
}

// Int64 decodes an S64 value.
func (v Value) Int64() (int64, error) {
	bits, err := v.scalar8(format.S64)
	if err != nil {
		return 0, err
	}

	return int64(bits), nil //nolint:gosec
}

// Uint64 decodes a U64 value.
func (v Value) Uint64() (uint64, error) {
	return v.scalar8(format.U64)
}

// Float64 decodes an F64 value.
func (v Value) Float64() (float64, error) {
	bits, err := v.scalar8(format.F64)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// Object returns an accessor for an Object value.
func (v Value) Object() (Object, error) {
	if v.typ != format.Object {
		return Object{}, errs.ErrWrongType
	}

	return newObject(v.r, int(v.payload))
}

// Array returns an accessor for an Array value.
func (v Value) Array() (Array, error) {
	if v.typ != format.Array {
		return Array{}, errs.ErrWrongType
	}

	return newArray(v.r, int(v.payload))
}

// StringUTF8 returns an accessor for a String8 value.
func (v Value) StringUTF8() (String8, error) {
	if v.typ != format.String8 {
		return String8{}, errs.ErrWrongType
	}

	return newString8(v.r, int(v.payload))
}

// StringUTF16 returns an accessor for a String16 value.
func (v Value) StringUTF16() (String16, error) {
	if v.typ != format.String16 {
		return String16{}, errs.ErrWrongType
	}

	return newString16(v.r, int(v.payload))
}

// StringUTF32 returns an accessor for a String32 value.
func (v Value) StringUTF32() (String32, error) {
	if v.typ != format.String32 {
		return String32{}, errs.ErrWrongType
	}

	return newString32(v.r, int(v.payload))
}

// Bytes returns an accessor for a ByteArray value.
func (v Value) Bytes() (BytesValue, error) {
	if v.typ != format.ByteArray {
		return BytesValue{}, errs.ErrWrongType
	}

	return newBytesValue(v.r, int(v.payload))
}

// TypedArray returns an accessor for any TypedArray{...} value. Callers
// that know the element type up front can use the element-typed
// convenience readers in typedarray.go instead.
func (v Value) TypedArray() (TypedArray, error) {
	elemSize := v.typ.ElementSize()
	if elemSize == 0 {
		return TypedArray{}, errs.ErrWrongType
	}

	return newTypedArray(v.r, int(v.payload), v.typ, elemSize)
}
