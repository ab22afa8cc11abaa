package writer

import (
	"github.com/archo5/dato/errs"
)

// frame is one level of LinearWriter's staging stack: either a key-collecting
// object frame or a plain array frame. parentKey is the key (already
// resolved against the parent frame's key scheme) under which this frame's
// flushed handle will be recorded once it is closed.
type frame struct {
	isObject  bool
	parentKey uint32
	entries   []ObjectEntry
}

// LinearWriter is a stack-based nested builder: the caller emits scalars and
// brackets objects/arrays with Begin/End calls, and GetEncoded flushes the
// whole stack into a finished buffer. It is built on top of a Builder, which
// supplies every leaf write and the final patch-and-copy step.
//
// A LinearWriter is not safe for concurrent use, and is not reusable after
// GetEncoded.
type LinearWriter struct {
	b      *Builder
	frames []*frame
}

// NewLinearWriter creates a LinearWriter with the given options applied over
// the package defaults. The root frame is always an object, matching the
// format's requirement that the root value be an Object.
func NewLinearWriter(opts ...Option) (*LinearWriter, error) {
	b, err := NewBuilder(opts...)
	if err != nil {
		return nil, err
	}

	return &LinearWriter{
		b:      b,
		frames: []*frame{{isObject: true}},
	}, nil
}

func (lw *LinearWriter) current() *frame {
	return lw.frames[len(lw.frames)-1]
}

func normalizeIntKey(key any) (uint32, bool) {
	switch k := key.(type) {
	case uint32:
		return k, true
	case int:
		return uint32(k), true //nolint:gosec // caller-supplied integer keys are expected to fit
	case int32:
		return uint32(k), true //nolint:gosec
	default:
		return 0, false
	}
}

// resolveKey normalizes key against the current frame's kind: ignored for
// arrays, a raw integer for IntegerKeys objects, or a string routed through
// AppendKey (with its usual dedup) otherwise.
func (lw *LinearWriter) resolveKey(key any) (uint32, error) {
	top := lw.current()
	if !top.isObject {
		return 0, nil
	}

	if lw.b.flags.IntegerKeys() {
		k, ok := normalizeIntKey(key)
		if !ok {
			return 0, errs.ErrWrongType
		}

		return k, nil
	}

	s, ok := key.(string)
	if !ok {
		return 0, errs.ErrWrongType
	}

	return lw.b.AppendKey(s)
}

func (lw *LinearWriter) appendEntry(key uint32, h Handle) {
	top := lw.current()
	top.entries = append(top.entries, ObjectEntry{Key: key, Value: h})
}

// WriteNull appends a null entry under key.
func (lw *LinearWriter) WriteNull(key any) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.appendEntry(k, lw.b.AppendNull())

	return nil
}

// WriteBool appends a bool entry under key.
func (lw *LinearWriter) WriteBool(key any, v bool) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.appendEntry(k, lw.b.AppendBool(v))

	return nil
}

// WriteInt32 appends an int32 entry under key.
func (lw *LinearWriter) WriteInt32(key any, v int32) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.appendEntry(k, lw.b.AppendInt32(v))

	return nil
}

// WriteUint32 appends a uint32 entry under key.
func (lw *LinearWriter) WriteUint32(key any, v uint32) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.appendEntry(k, lw.b.AppendUint32(v))

	return nil
}

// WriteFloat32 appends a float32 entry under key.
func (lw *LinearWriter) WriteFloat32(key any, v float32) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.appendEntry(k, lw.b.AppendFloat32(v))

	return nil
}

// WriteInt64 aligns, writes v's 8 bytes, and appends an entry under key.
func (lw *LinearWriter) WriteInt64(key any, v int64) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.appendEntry(k, lw.b.AppendInt64(v))

	return nil
}

// WriteUint64 aligns, writes v's 8 bytes, and appends an entry under key.
func (lw *LinearWriter) WriteUint64(key any, v uint64) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.appendEntry(k, lw.b.AppendUint64(v))

	return nil
}

// WriteFloat64 aligns, writes v's 8 bytes, and appends an entry under key.
func (lw *LinearWriter) WriteFloat64(key any, v float64) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.appendEntry(k, lw.b.AppendFloat64(v))

	return nil
}

// WriteStringUTF8 writes s as a String8 record and appends an entry under key.
func (lw *LinearWriter) WriteStringUTF8(key any, s string) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendStringUTF8(s)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteStringUTF16 writes s as a String16 record and appends an entry under key.
func (lw *LinearWriter) WriteStringUTF16(key any, s string) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendStringUTF16(s)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteStringUTF32 writes s as a String32 record and appends an entry under key.
func (lw *LinearWriter) WriteStringUTF32(key any, s string) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendStringUTF32(s)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteBytes writes data as a ByteArray record and appends an entry under key.
func (lw *LinearWriter) WriteBytes(key any, data []byte) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendBytes(data)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayS8 writes xs as a TypedArrayS8 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayS8(key any, xs []int8) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayS8(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayU8 writes xs as a TypedArrayU8 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayU8(key any, xs []uint8) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayU8(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayS16 writes xs as a TypedArrayS16 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayS16(key any, xs []int16) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayS16(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayU16 writes xs as a TypedArrayU16 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayU16(key any, xs []uint16) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayU16(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayS32 writes xs as a TypedArrayS32 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayS32(key any, xs []int32) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayS32(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayU32 writes xs as a TypedArrayU32 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayU32(key any, xs []uint32) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayU32(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayS64 writes xs as a TypedArrayS64 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayS64(key any, xs []int64) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayS64(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayU64 writes xs as a TypedArrayU64 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayU64(key any, xs []uint64) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayU64(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayF32 writes xs as a TypedArrayF32 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayF32(key any, xs []float32) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayF32(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// WriteTypedArrayF64 writes xs as a TypedArrayF64 record and appends an entry under key.
func (lw *LinearWriter) WriteTypedArrayF64(key any, xs []float64) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	h, err := lw.b.AppendTypedArrayF64(xs)
	if err != nil {
		return err
	}

	lw.appendEntry(k, h)

	return nil
}

// BeginObject pushes a new key-collecting frame under key. Entries written
// afterwards land in the new frame until a matching EndObject.
func (lw *LinearWriter) BeginObject(key any) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.frames = append(lw.frames, &frame{isObject: true, parentKey: k})

	return nil
}

// BeginArray pushes a new non-keyed frame under key. Entries written
// afterwards land in the new frame until a matching EndArray.
func (lw *LinearWriter) BeginArray(key any) error {
	k, err := lw.resolveKey(key)
	if err != nil {
		return err
	}

	lw.frames = append(lw.frames, &frame{isObject: false, parentKey: k})

	return nil
}

// flush writes f's staged entries as an object or array record and returns
// a handle referencing it.
func (lw *LinearWriter) flush(f *frame) (Handle, error) {
	if f.isObject {
		return lw.b.AppendObject(f.entries)
	}

	values := make([]Handle, len(f.entries))
	for i, e := range f.entries {
		values[i] = e.Value
	}

	return lw.b.AppendArray(values)
}

func (lw *LinearWriter) endFrame(wantObject bool) error {
	if len(lw.frames) < 2 {
		return errs.ErrNoOpenFrame
	}

	top := lw.current()
	if top.isObject != wantObject {
		return errs.ErrFrameKindMismatch
	}

	h, err := lw.flush(top)
	if err != nil {
		return err
	}

	lw.frames = lw.frames[:len(lw.frames)-1]
	lw.appendEntry(top.parentKey, h)

	return nil
}

// EndObject flushes the top frame, which must be an object, and records its
// handle as an entry in the now-current parent frame.
func (lw *LinearWriter) EndObject() error {
	return lw.endFrame(true)
}

// EndArray flushes the top frame, which must be an array, and records its
// handle as an entry in the now-current parent frame.
func (lw *LinearWriter) EndArray() error {
	return lw.endFrame(false)
}

// WriteValue dispatches on v's dynamic type and writes it under key,
// recursing into map[string]any and []any for nested objects and arrays.
// This is additive convenience over the typed Write* methods, not a
// replacement for them.
func (lw *LinearWriter) WriteValue(key any, v any) error {
	switch val := v.(type) {
	case nil:
		return lw.WriteNull(key)
	case bool:
		return lw.WriteBool(key, val)
	case int:
		return lw.WriteInt64(key, int64(val))
	case int32:
		return lw.WriteInt32(key, val)
	case int64:
		return lw.WriteInt64(key, val)
	case uint32:
		return lw.WriteUint32(key, val)
	case uint64:
		return lw.WriteUint64(key, val)
	case float32:
		return lw.WriteFloat32(key, val)
	case float64:
		return lw.WriteFloat64(key, val)
	case string:
		return lw.WriteStringUTF8(key, val)
	case []byte:
		return lw.WriteBytes(key, val)
	case map[string]any:
		if err := lw.BeginObject(key); err != nil {
			return err
		}

		for k, elem := range val {
			if err := lw.WriteValue(k, elem); err != nil {
				return err
			}
		}

		return lw.EndObject()
	case []any:
		if err := lw.BeginArray(key); err != nil {
			return err
		}

		for _, elem := range val {
			if err := lw.WriteValue(nil, elem); err != nil {
				return err
			}
		}

		return lw.EndArray()
	default:
		return errs.ErrWrongType
	}
}

// GetEncoded auto-ends every open frame until only the root remains, flushes
// it as the root object, and returns the finished buffer. The LinearWriter
// must not be used again afterwards.
func (lw *LinearWriter) GetEncoded() ([]byte, error) {
	if lw.b.finished {
		return nil, errs.ErrWriterFinished
	}

	for len(lw.frames) > 1 {
		top := lw.current()

		var err error
		if top.isObject {
			err = lw.EndObject()
		} else {
			err = lw.EndArray()
		}

		if err != nil {
			return nil, err
		}
	}

	root, err := lw.flush(lw.frames[0])
	if err != nil {
		return nil, err
	}

	return lw.b.Finish(root)
}
