// Package writer implements the two writer surfaces described by the
// format: Builder, a bottom-up assembler where the caller controls
// ordering directly, and LinearWriter, a stack-based nested builder.
package writer

import (
	"math"

	"github.com/archo5/dato/endian"
	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/internal/keyhash"
	"github.com/archo5/dato/internal/pool"
	"github.com/archo5/dato/section"
)

// Handle is an opaque reference to a value previously written by a
// Builder: a type tag plus its 4-byte payload (an inline bit pattern or a
// byte offset, depending on the type). Handles are only meaningful to the
// Builder instance that produced them.
type Handle struct {
	Type    format.TypeCode
	Payload uint32
}

// ObjectEntry pairs a key with the handle of its value for AppendObject.
// Key is either the absolute offset returned by AppendKey, or a raw
// 32-bit integer key when the builder was constructed with
// WithIntegerKeys.
type ObjectEntry struct {
	Key   uint32
	Value Handle
}

// Builder assembles a DATO buffer bottom-up: the caller writes leaf
// values first, collecting handles, then aggregates handles into objects
// and arrays, and finally calls Finish with the root object's handle.
//
// A Builder is not safe for concurrent use, and is not reusable after
// Finish.
type Builder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine

	prefix   []byte
	cfg      format.Config
	flags    format.Flags
	rootSlot int

	interner *keyhash.Interner

	finished bool
}

// NewBuilder creates a Builder with the given options applied over the
// package defaults (prefix "DATO", Config0, aligned, skip_duplicate_keys).
func NewBuilder(opts ...Option) (*Builder, error) {
	s := defaultSettings()
	if err := applyOptions(s, opts...); err != nil {
		return nil, err
	}

	flags := format.Flags(0)
	if s.aligned {
		flags = flags.With(format.Aligned)
	}
	if s.integerKeys {
		flags = flags.With(format.IntegerKeys)
	}
	if s.sortKeys {
		flags = flags.With(format.SortedKeys)
	}
	if s.relativeObjectRefs {
		flags = flags.With(format.RelativeObjectRefs)
	}

	buf := pool.GetBuffer()

	rootSlot, err := section.Write(&buf.B, s.prefix, s.cfg.ID, flags)
	if err != nil {
		pool.PutBuffer(buf)

		return nil, err
	}

	b := &Builder{
		buf:      buf,
		engine:   endian.GetLittleEndianEngine(),
		prefix:   s.prefix,
		cfg:      s.cfg,
		flags:    flags,
		rootSlot: rootSlot,
	}

	if s.skipDuplicateKeys {
		b.interner = keyhash.New()
	}

	return b, nil
}

// AppendKey writes a key record for s and returns its absolute offset. If
// skip_duplicate_keys is enabled (the default) and s has already been
// written, the earlier offset is returned and no bytes are appended.
func (b *Builder) AppendKey(s string) (uint32, error) {
	key := []byte(s)

	if b.interner != nil {
		if off, ok := b.interner.Lookup(key); ok {
			return uint32(off), nil
		}
	}

	pos, err := section.WriteKey(&b.buf.B, b.cfg.KeyLengthCodec, key)
	if err != nil {
		return 0, err
	}

	if b.interner != nil {
		b.interner.Record(key, pos)
	}

	return uint32(pos), nil
}

// AppendNull returns the handle for a null value. No bytes are written;
// null is carried entirely by its type tag.
func (b *Builder) AppendNull() Handle {
	return Handle{Type: format.Null}
}

// AppendBool returns the handle for v. No bytes are written.
func (b *Builder) AppendBool(v bool) Handle {
	var payload uint32
	if v {
		payload = 1
	}

	return Handle{Type: format.Bool, Payload: payload}
}

// AppendInt32 returns the handle for v. No bytes are written.
func (b *Builder) AppendInt32(v int32) Handle {
	return Handle{Type: format.S32, Payload: uint32(v)} //nolint:gosec // two's-complement reinterpretation is intentional
}

// AppendUint32 returns the handle for v. No bytes are written.
func (b *Builder) AppendUint32(v uint32) Handle {
	return Handle{Type: format.U32, Payload: v}
}

// AppendFloat32 returns the handle for v. No bytes are written.
func (b *Builder) AppendFloat32(v float32) Handle {
	return Handle{Type: format.F32, Payload: math.Float32bits(v)}
}

// align8 pads *buf with NUL bytes until its length is a multiple of 8,
// when aligned is true.
func (b *Builder) align8() {
	if !b.flags.Aligned() {
		return
	}

	for len(b.buf.B)%8 != 0 {
		b.buf.B = append(b.buf.B, 0)
	}
}

func (b *Builder) appendScalar8(bits uint64, typ format.TypeCode) Handle {
	b.align8()
	pos := uint32(len(b.buf.B)) //nolint:gosec // buffer sizes fit in uint32 by construction
	b.buf.B = b.engine.AppendUint64(b.buf.B, bits)

	return Handle{Type: typ, Payload: pos}
}

// AppendInt64 aligns to 8 bytes (when aligned), writes v, and returns a
// handle referencing it.
func (b *Builder) AppendInt64(v int64) Handle {
	return b.appendScalar8(uint64(v), format.S64) //nolint:gosec // two's-complement reinterpretation is intentional
}

// AppendUint64 aligns to 8 bytes (when aligned), writes v, and returns a
// handle referencing it.
func (b *Builder) AppendUint64(v uint64) Handle {
	return b.appendScalar8(v, format.U64)
}

// AppendFloat64 aligns to 8 bytes (when aligned), writes v, and returns a
// handle referencing it.
func (b *Builder) AppendFloat64(v float64) Handle {
	return b.appendScalar8(math.Float64bits(v), format.F64)
}

// AppendStringUTF8 writes a String8 record for s and returns a handle
// referencing it.
func (b *Builder) AppendStringUTF8(s string) (Handle, error) {
	pos, err := section.WriteString8(&b.buf.B, b.cfg.ValueLengthCodec, b.flags.Aligned(), s)
	if err != nil {
		return Handle{}, err
	}

	return Handle{Type: format.String8, Payload: uint32(pos)}, nil //nolint:gosec
}

// AppendStringUTF16 writes a String16 record for s and returns a handle
// referencing it.
func (b *Builder) AppendStringUTF16(s string) (Handle, error) {
	pos, err := section.WriteString16(&b.buf.B, b.cfg.ValueLengthCodec, b.flags.Aligned(), s)
	if err != nil {
		return Handle{}, err
	}

	return Handle{Type: format.String16, Payload: uint32(pos)}, nil //nolint:gosec
}

// AppendStringUTF32 writes a String32 record for s and returns a handle
// referencing it.
func (b *Builder) AppendStringUTF32(s string) (Handle, error) {
	pos, err := section.WriteString32(&b.buf.B, b.cfg.ValueLengthCodec, b.flags.Aligned(), s)
	if err != nil {
		return Handle{}, err
	}

	return Handle{Type: format.String32, Payload: uint32(pos)}, nil //nolint:gosec
}

// AppendBytes writes a ByteArray record for data and returns a handle
// referencing it.
func (b *Builder) AppendBytes(data []byte) (Handle, error) {
	pos, err := section.WriteBytes(&b.buf.B, b.cfg.ValueLengthCodec, b.flags.Aligned(), data)
	if err != nil {
		return Handle{}, err
	}

	return Handle{Type: format.ByteArray, Payload: uint32(pos)}, nil //nolint:gosec
}

func (b *Builder) appendTypedArray(typ format.TypeCode, elemSize, elemCount int, elemData []byte) (Handle, error) {
	pos, err := section.WriteTypedArray(&b.buf.B, b.cfg.ValueLengthCodec, b.flags.Aligned(), elemSize, elemCount, elemData)
	if err != nil {
		return Handle{}, err
	}

	return Handle{Type: typ, Payload: uint32(pos)}, nil //nolint:gosec
}

// AppendTypedArrayS8 writes a TypedArrayS8 record and returns its handle.
func (b *Builder) AppendTypedArrayS8(xs []int8) (Handle, error) {
	data := make([]byte, len(xs))
	for i, v := range xs {
		data[i] = byte(v)
	}

	return b.appendTypedArray(format.TypedArrayS8, 1, len(xs), data)
}

// AppendTypedArrayU8 writes a TypedArrayU8 record and returns its handle.
func (b *Builder) AppendTypedArrayU8(xs []uint8) (Handle, error) {
	return b.appendTypedArray(format.TypedArrayU8, 1, len(xs), xs)
}

// AppendTypedArrayS16 writes a TypedArrayS16 record and returns its handle.
func (b *Builder) AppendTypedArrayS16(xs []int16) (Handle, error) {
	data := make([]byte, 0, len(xs)*2)
	for _, v := range xs {
		data = b.engine.AppendUint16(data, uint16(v)) //nolint:gosec
	}

	return b.appendTypedArray(format.TypedArrayS16, 2, len(xs), data)
}

// AppendTypedArrayU16 writes a TypedArrayU16 record and returns its handle.
func (b *Builder) AppendTypedArrayU16(xs []uint16) (Handle, error) {
	data := make([]byte, 0, len(xs)*2)
	for _, v := range xs {
		data = b.engine.AppendUint16(data, v)
	}

	return b.appendTypedArray(format.TypedArrayU16, 2, len(xs), data)
}

// AppendTypedArrayS32 writes a TypedArrayS32 record and returns its handle.
func (b *Builder) AppendTypedArrayS32(xs []int32) (Handle, error) {
	data := make([]byte, 0, len(xs)*4)
	for _, v := range xs {
		data = b.engine.AppendUint32(data, uint32(v)) //nolint:gosec
	}

	return b.appendTypedArray(format.TypedArrayS32, 4, len(xs), data)
}

// AppendTypedArrayU32 writes a TypedArrayU32 record and returns its handle.
func (b *Builder) AppendTypedArrayU32(xs []uint32) (Handle, error) {
	data := make([]byte, 0, len(xs)*4)
	for _, v := range xs {
		data = b.engine.AppendUint32(data, v)
	}

	return b.appendTypedArray(format.TypedArrayU32, 4, len(xs), data)
}

// AppendTypedArrayS64 writes a TypedArrayS64 record and returns its handle.
func (b *Builder) AppendTypedArrayS64(xs []int64) (Handle, error) {
	data := make([]byte, 0, len(xs)*8)
	for _, v := range xs {
		data = b.engine.AppendUint64(data, uint64(v)) //nolint:gosec
	}

	return b.appendTypedArray(format.TypedArrayS64, 8, len(xs), data)
}

// AppendTypedArrayU64 writes a TypedArrayU64 record and returns its handle.
func (b *Builder) AppendTypedArrayU64(xs []uint64) (Handle, error) {
	data := make([]byte, 0, len(xs)*8)
	for _, v := range xs {
		data = b.engine.AppendUint64(data, v)
	}

	return b.appendTypedArray(format.TypedArrayU64, 8, len(xs), data)
}

// AppendTypedArrayF32 writes a TypedArrayF32 record and returns its handle.
func (b *Builder) AppendTypedArrayF32(xs []float32) (Handle, error) {
	data := make([]byte, 0, len(xs)*4)
	for _, v := range xs {
		data = b.engine.AppendUint32(data, math.Float32bits(v))
	}

	return b.appendTypedArray(format.TypedArrayF32, 4, len(xs), data)
}

// AppendTypedArrayF64 writes a TypedArrayF64 record and returns its handle.
func (b *Builder) AppendTypedArrayF64(xs []float64) (Handle, error) {
	data := make([]byte, 0, len(xs)*8)
	for _, v := range xs {
		data = b.engine.AppendUint64(data, math.Float64bits(v))
	}

	return b.appendTypedArray(format.TypedArrayF64, 8, len(xs), data)
}

// relativize converts payload to a container-relative offset when
// RelativeObjectRefs is set and typ is a reference type; otherwise it
// returns payload unchanged.
func relativize(flags format.Flags, containerOffset uint32, typ format.TypeCode, payload uint32) uint32 {
	if !flags.RelativeObjectRefs() || !typ.IsReference() {
		return payload
	}

	return containerOffset - payload
}

// AppendObject writes an object record — size, keys, values, types — from
// entries and returns a handle referencing it. Each entry's Key must
// already be a key-record offset (from AppendKey) or, when the builder
// was constructed with WithIntegerKeys, a raw integer key.
//
// Ordering is the caller's responsibility: when the builder was
// constructed with WithSortedKeys, entries must already be in strictly
// ascending key order.
func (b *Builder) AppendObject(entries []ObjectEntry) (Handle, error) {
	secEntries := make([]section.Entry, len(entries))
	for i, e := range entries {
		secEntries[i] = section.Entry{Key: e.Key, Value: e.Value.Payload, Type: e.Value.Type}
	}

	pos, err := section.WriteObject(&b.buf.B, b.cfg.ObjectSizeCodec, b.flags.Aligned(), secEntries)
	if err != nil {
		return Handle{}, err
	}

	if b.flags.RelativeObjectRefs() {
		containerOffset := uint32(pos) //nolint:gosec
		p, _, parseErr := section.ParseObject(b.buf.B, b.cfg.ObjectSizeCodec, b.flags.Aligned(), pos)
		if parseErr != nil {
			return Handle{}, parseErr
		}

		for i, e := range entries {
			if !e.Value.Type.IsReference() {
				continue
			}

			rel := relativize(b.flags, containerOffset, e.Value.Type, e.Value.Payload)
			// overwrite the absolute payload just written with its relative form
			vOff := p.ValuesOff + i*4
			b.buf.B[vOff] = byte(rel)
			b.buf.B[vOff+1] = byte(rel >> 8)
			b.buf.B[vOff+2] = byte(rel >> 16)
			b.buf.B[vOff+3] = byte(rel >> 24)
		}
	}

	return Handle{Type: format.Object, Payload: uint32(pos)}, nil //nolint:gosec
}

// AppendArray writes an array record — size, values, types — from values
// and returns a handle referencing it. RelativeObjectRefs never applies
// inside arrays (§4.4).
func (b *Builder) AppendArray(values []Handle) (Handle, error) {
	secEntries := make([]section.Entry, len(values))
	for i, v := range values {
		secEntries[i] = section.Entry{Value: v.Payload, Type: v.Type}
	}

	pos, err := section.WriteArray(&b.buf.B, b.cfg.ArrayLengthCodec, b.flags.Aligned(), secEntries)
	if err != nil {
		return Handle{}, err
	}

	return Handle{Type: format.Array, Payload: uint32(pos)}, nil //nolint:gosec
}

// Finish writes root's offset into the header's reserved root slot and
// returns the finished buffer. root must be an Object handle. The Builder
// must not be used again afterwards.
func (b *Builder) Finish(root Handle) ([]byte, error) {
	if b.finished {
		return nil, errs.ErrWriterFinished
	}

	if root.Type != format.Object {
		return nil, errs.ErrRootNotObject
	}

	section.PatchRootOffset(b.buf.B, b.rootSlot, root.Payload)

	out := make([]byte, len(b.buf.B))
	copy(out, b.buf.B)

	b.finished = true
	pool.PutBuffer(b.buf)

	return out, nil
}
