package section

import (
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/lencodec"
)

// Entry is one (key, value, type) triple of an object record, or one
// (value, type) pair of an array record (Key is unused for arrays).
//
// Key is either a raw 32-bit integer (IntegerKeys) or the absolute offset
// of a key record; Value is either the inline bit pattern of the value or
// the absolute/relative offset of its record, per the type's payload
// semantics (§3.1).
type Entry struct {
	Key   uint32
	Value uint32
	Type  format.TypeCode
}

// objectAlignment returns the alignment object-size / array-length fields
// require: 4 bytes when aligned, 0 (no padding) otherwise.
func objectAlignment(aligned bool) int {
	if aligned {
		return 4
	}

	return 0
}

// WriteObject appends an object record — size, keys-slice, values-slice,
// types-slice — to *buf and returns the record's absolute offset.
func WriteObject(buf *[]byte, codec lencodec.Codec, aligned bool, entries []Entry) (int, error) {
	n := len(entries)

	pos, err := codec.Write(buf, uint64(n), objectAlignment(aligned))
	if err != nil {
		return 0, err
	}

	for _, e := range entries {
		putU32(buf, e.Key)
	}
	for _, e := range entries {
		putU32(buf, e.Value)
	}
	for _, e := range entries {
		*buf = append(*buf, byte(e.Type))
	}

	return pos, nil
}

// ParsedObject locates the three parallel slices of an object record
// without copying them out of buf.
type ParsedObject struct {
	Count     int
	KeysOff   int
	ValuesOff int
	TypesOff  int
}

// ParseObject decodes an object record's header at pos, returning the
// offsets of its keys/values/types slices and the position immediately
// following the record.
func ParseObject(buf []byte, codec lencodec.Codec, aligned bool, pos int) (ParsedObject, int, error) {
	n, keysOff, err := codec.Parse(buf, pos)
	if err != nil {
		return ParsedObject{}, 0, err
	}

	valuesOff := keysOff + int(n)*4
	typesOff := valuesOff + int(n)*4
	next := typesOff + int(n)

	if err := checkBounds(buf, keysOff, int(n)*SlotSize); err != nil {
		return ParsedObject{}, 0, err
	}

	p := ParsedObject{
		Count:     int(n),
		KeysOff:   keysOff,
		ValuesOff: valuesOff,
		TypesOff:  typesOff,
	}

	return p, next, nil
}

// Key returns the raw key slot at index i: either an integer key or a key
// record offset, depending on the IntegerKeys flag (the caller knows
// which). The caller must have validated i against Count.
func (p ParsedObject) Key(buf []byte, i int) uint32 {
	return u32At(buf, p.KeysOff+i*4)
}

// Value returns the value slot at index i. The caller must have validated
// i against Count.
func (p ParsedObject) Value(buf []byte, i int) uint32 {
	return u32At(buf, p.ValuesOff+i*4)
}

// Type returns the type byte at index i. The caller must have validated i
// against Count.
func (p ParsedObject) Type(buf []byte, i int) format.TypeCode {
	return format.TypeCode(buf[p.TypesOff+i])
}
