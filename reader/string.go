package reader

import (
	"github.com/archo5/dato/section"
)

// String8 is a thin accessor over a UTF-8 string record. Go's native string
// encoding is UTF-8, so Bytes is a genuinely zero-copy borrow of the
// buffer; String still allocates, because Go strings are immutable and
// cannot alias a mutable byte slice.
type String8 struct {
	data []byte
}

func newString8(r *Reader, pos int) (String8, error) {
	data, _, err := section.ParseString8(r.buf, r.cfg.ValueLengthCodec, pos)
	if err != nil {
		return String8{}, err
	}

	return String8{data: data}, nil
}

// Len returns the length in bytes (code units).
func (s String8) Len() int { return len(s.data) }

// Bytes returns the UTF-8 bytes, a slice into the Reader's buffer.
func (s String8) Bytes() []byte { return s.data }

// String decodes the value as a Go string (allocates a copy).
func (s String8) String() string { return string(s.data) }

// String16 is a thin accessor over a UTF-16LE string record. Decoding to a
// Go string always allocates, since Go strings are UTF-8.
type String16 struct {
	raw   []byte
	count int
}

func newString16(r *Reader, pos int) (String16, error) {
	raw, count, _, err := section.ParseString16(r.buf, r.cfg.ValueLengthCodec, pos)
	if err != nil {
		return String16{}, err
	}

	return String16{raw: raw, count: count}, nil
}

// Len returns the length in UTF-16 code units.
func (s String16) Len() int { return s.count }

// RawUnits returns the packed little-endian UTF-16 code units, a slice
// into the Reader's buffer (2 bytes per unit).
func (s String16) RawUnits() []byte { return s.raw }

// String decodes the value as a Go string.
func (s String16) String() string { return section.DecodeString16(s.raw) }

// String32 is a thin accessor over a UTF-32LE string record.
type String32 struct {
	raw   []byte
	count int
}

func newString32(r *Reader, pos int) (String32, error) {
	raw, count, _, err := section.ParseString32(r.buf, r.cfg.ValueLengthCodec, pos)
	if err != nil {
		return String32{}, err
	}

	return String32{raw: raw, count: count}, nil
}

// Len returns the length in UTF-32 code points.
func (s String32) Len() int { return s.count }

// RawUnits returns the packed little-endian UTF-32 code points, a slice
// into the Reader's buffer (4 bytes per unit).
func (s String32) RawUnits() []byte { return s.raw }

// String decodes the value as a Go string.
func (s String32) String() string { return section.DecodeString32(s.raw) }
