// Package validator performs an independent structural sweep of a buffer
// without trusting that it was produced by this module's own writer.
//
// It re-derives every bound and alignment check a zero-copy reader would
// otherwise take on faith, so that a reader can be pointed at untrusted
// input after a single successful Validate call without risking an
// out-of-bounds read or an infinite recursion.
package validator

import (
	"bytes"

	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/section"
)

// Validator walks the reachable tree of a buffer, checking every record
// against the layout rules of a single config.
type Validator struct {
	prefix   []byte
	cfg      format.Config
	maxDepth int
}

// New builds a Validator from the given options.
func New(opts ...Option) (*Validator, error) {
	s := defaultSettings()
	if err := applyOptions(s, opts...); err != nil {
		return nil, err
	}

	return &Validator{prefix: s.prefix, cfg: s.cfg, maxDepth: s.maxDepth}, nil
}

// Validate checks the header and then sweeps the entire tree reachable
// from the root object. It returns the first structural violation found;
// a nil error means the buffer is safe for a reader to traverse without
// further bound or alignment checks.
func (v *Validator) Validate(buf []byte) error {
	hdr, _, err := section.Parse(buf, v.prefix, v.cfg.ID)
	if err != nil {
		return err
	}

	return v.validateObject(buf, hdr.Flags, int(hdr.RootOffset), 0)
}

func (v *Validator) validateObject(buf []byte, flags format.Flags, pos int, depth int) error {
	if depth > v.maxDepth {
		return errs.ErrDepthExceeded
	}

	p, _, err := section.ParseObject(buf, v.cfg.ObjectSizeCodec, flags.Aligned(), pos)
	if err != nil {
		return err
	}

	if flags.Aligned() && p.KeysOff%4 != 0 {
		return errs.ErrUnaligned
	}

	var (
		prevKeyBytes []byte
		prevKeyInt   uint32
		hasPrev      bool
	)

	for i := 0; i < p.Count; i++ {
		if flags.IntegerKeys() {
			k := p.Key(buf, i)
			if flags.SortedKeys() && hasPrev && k <= prevKeyInt {
				return errs.ErrBadKeyOrder
			}
			prevKeyInt = k
			hasPrev = true
		} else {
			keyBytes, err := v.validateKeyRecord(buf, int(p.Key(buf, i)))
			if err != nil {
				return err
			}
			if flags.SortedKeys() && hasPrev && bytes.Compare(keyBytes, prevKeyBytes) <= 0 {
				return errs.ErrBadKeyOrder
			}
			prevKeyBytes = keyBytes
			hasPrev = true
		}

		typ := p.Type(buf, i)
		payload := p.Value(buf, i)

		if flags.RelativeObjectRefs() && typ.IsReference() {
			payload = uint32(pos) - payload
		}

		if err := v.validateValue(buf, flags, typ, payload, depth); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) validateArray(buf []byte, flags format.Flags, pos int, depth int) error {
	if depth > v.maxDepth {
		return errs.ErrDepthExceeded
	}

	p, _, err := section.ParseArray(buf, v.cfg.ArrayLengthCodec, flags.Aligned(), pos)
	if err != nil {
		return err
	}

	if flags.Aligned() && p.ValuesOff%4 != 0 {
		return errs.ErrUnaligned
	}

	for i := 0; i < p.Count; i++ {
		typ := p.Type(buf, i)
		payload := p.Value(buf, i) // arrays never carry relative refs

		if err := v.validateValue(buf, flags, typ, payload, depth); err != nil {
			return err
		}
	}

	return nil
}

// validateKeyRecord checks a key record's bounds and terminator and
// returns its bytes (without the terminator) for sort-order comparison.
func (v *Validator) validateKeyRecord(buf []byte, pos int) ([]byte, error) {
	key, next, err := section.ParseKey(buf, v.cfg.KeyLengthCodec, pos)
	if err != nil {
		return nil, err
	}

	if buf[next-1] != 0 {
		return nil, errs.ErrMissingNullTerminator
	}

	return key, nil
}

// validateValue dispatches on a type code, rejecting reserved codes,
// skipping user-extension codes (opaque to this module), and otherwise
// checking the payload against the bound/alignment rule for that type.
func (v *Validator) validateValue(buf []byte, flags format.Flags, typ format.TypeCode, payload uint32, depth int) error {
	if typ.IsUserExtension() {
		return nil
	}
	if typ.IsReserved() {
		return errs.ErrUnknownBuiltInType
	}

	switch typ {
	case format.Null:
		if payload != 0 {
			return errs.ErrBadData
		}
	case format.Bool:
		if payload != 0 && payload != 1 {
			return errs.ErrBadData
		}
	case format.S32, format.U32, format.F32:
		// every 32-bit pattern is a valid inline value
	case format.S64, format.U64, format.F64:
		return v.validateScalar8(buf, flags, payload)
	case format.Array:
		return v.validateArray(buf, flags, int(payload), depth+1)
	case format.Object:
		return v.validateObject(buf, flags, int(payload), depth+1)
	case format.String8:
		return v.validateString8(buf, payload)
	case format.String16:
		return v.validateString16(buf, flags, payload)
	case format.String32:
		return v.validateString32(buf, flags, payload)
	case format.ByteArray:
		return v.validateBytesOrTyped(buf, flags, payload, 1)
	case format.TypedArrayS8, format.TypedArrayU8:
		return v.validateBytesOrTyped(buf, flags, payload, 1)
	case format.TypedArrayS16, format.TypedArrayU16:
		return v.validateBytesOrTyped(buf, flags, payload, 2)
	case format.TypedArrayS32, format.TypedArrayU32, format.TypedArrayF32:
		return v.validateBytesOrTyped(buf, flags, payload, 4)
	case format.TypedArrayS64, format.TypedArrayU64, format.TypedArrayF64:
		return v.validateBytesOrTyped(buf, flags, payload, 8)
	}

	return nil
}

func (v *Validator) validateScalar8(buf []byte, flags format.Flags, payload uint32) error {
	off := int(payload)
	if off < 0 || off+8 > len(buf) {
		return errs.ErrEOF
	}
	if flags.Aligned() && off%8 != 0 {
		return errs.ErrUnaligned
	}

	return nil
}

func (v *Validator) validateString8(buf []byte, payload uint32) error {
	_, next, err := section.ParseString8(buf, v.cfg.ValueLengthCodec, int(payload))
	if err != nil {
		return err
	}
	if buf[next-1] != 0 {
		return errs.ErrMissingNullTerminator
	}

	return nil
}

func (v *Validator) validateString16(buf []byte, flags format.Flags, payload uint32) error {
	off := int(payload)
	if flags.Aligned() && off%2 != 0 {
		return errs.ErrUnaligned
	}

	_, _, next, err := section.ParseString16(buf, v.cfg.ValueLengthCodec, off)
	if err != nil {
		return err
	}
	if buf[next-2] != 0 || buf[next-1] != 0 {
		return errs.ErrMissingNullTerminator
	}

	return nil
}

func (v *Validator) validateString32(buf []byte, flags format.Flags, payload uint32) error {
	off := int(payload)
	if flags.Aligned() && off%4 != 0 {
		return errs.ErrUnaligned
	}

	_, _, next, err := section.ParseString32(buf, v.cfg.ValueLengthCodec, off)
	if err != nil {
		return err
	}
	for _, b := range buf[next-4 : next] {
		if b != 0 {
			return errs.ErrMissingNullTerminator
		}
	}

	return nil
}

func (v *Validator) validateBytesOrTyped(buf []byte, flags format.Flags, payload uint32, elemSize int) error {
	off := int(payload)
	if flags.Aligned() && elemSize > 1 && off%elemSize != 0 {
		return errs.ErrUnaligned
	}

	_, _, _, err := section.ParseTypedArray(buf, v.cfg.ValueLengthCodec, off, elemSize)
	return err
}
