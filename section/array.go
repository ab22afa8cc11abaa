package section

import (
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/lencodec"
)

// WriteArray appends an array record — size, values-slice, types-slice —
// to *buf and returns the record's absolute offset. Entry.Key is ignored.
func WriteArray(buf *[]byte, codec lencodec.Codec, aligned bool, entries []Entry) (int, error) {
	n := len(entries)

	pos, err := codec.Write(buf, uint64(n), objectAlignment(aligned))
	if err != nil {
		return 0, err
	}

	for _, e := range entries {
		putU32(buf, e.Value)
	}
	for _, e := range entries {
		*buf = append(*buf, byte(e.Type))
	}

	return pos, nil
}

// ParsedArray locates the two parallel slices of an array record without
// copying them out of buf.
type ParsedArray struct {
	Count     int
	ValuesOff int
	TypesOff  int
}

// arraySlotSize is the per-entry width of an array record: a 4-byte value
// slot plus a 1-byte type tag.
const arraySlotSize = 5

// ParseArray decodes an array record's header at pos, returning the
// offsets of its values/types slices and the position immediately
// following the record.
func ParseArray(buf []byte, codec lencodec.Codec, aligned bool, pos int) (ParsedArray, int, error) {
	n, valuesOff, err := codec.Parse(buf, pos)
	if err != nil {
		return ParsedArray{}, 0, err
	}

	typesOff := valuesOff + int(n)*4
	next := typesOff + int(n)

	if err := checkBounds(buf, valuesOff, int(n)*arraySlotSize); err != nil {
		return ParsedArray{}, 0, err
	}

	p := ParsedArray{
		Count:     int(n),
		ValuesOff: valuesOff,
		TypesOff:  typesOff,
	}

	return p, next, nil
}

// Value returns the value slot at index i. The caller must have validated
// i against Count.
func (p ParsedArray) Value(buf []byte, i int) uint32 {
	return u32At(buf, p.ValuesOff+i*4)
}

// Type returns the type byte at index i. The caller must have validated i
// against Count.
func (p ParsedArray) Type(buf []byte, i int) format.TypeCode {
	return format.TypeCode(buf[p.TypesOff+i])
}
