package section

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/archo5/dato/lencodec"
)

// stringAlignment returns the alignment a string record's length field
// requires for the given code-unit size, or 0 (no padding) when unaligned.
func stringAlignment(aligned bool, unitSize int) int {
	if aligned {
		return unitSize
	}

	return 0
}

// WriteString8 appends a UTF-8 string record — length in bytes, the UTF-8
// bytes themselves, one NUL byte — and returns its absolute offset.
func WriteString8(buf *[]byte, codec lencodec.Codec, aligned bool, s string) (int, error) {
	data := []byte(s)

	pos, err := codec.Write(buf, uint64(len(data)), stringAlignment(aligned, 1))
	if err != nil {
		return 0, err
	}

	*buf = append(*buf, data...)
	*buf = append(*buf, 0)

	return pos, nil
}

// ParseString8 locates the UTF-8 payload of a String8 record at pos
// (a slice into buf, not a copy) and returns the position immediately
// following the terminator.
func ParseString8(buf []byte, codec lencodec.Codec, pos int) (data []byte, next int, err error) {
	n, off, err := codec.Parse(buf, pos)
	if err != nil {
		return nil, 0, err
	}

	if err := checkBounds(buf, off, int(n)+1); err != nil {
		return nil, 0, err
	}

	return buf[off : off+int(n)], off + int(n) + 1, nil
}

// WriteString16 appends a UTF-16LE string record — length in code units,
// the code units themselves, a 2-byte NUL terminator — and returns its
// absolute offset.
func WriteString16(buf *[]byte, codec lencodec.Codec, aligned bool, s string) (int, error) {
	units := utf16.Encode([]rune(s))

	pos, err := codec.Write(buf, uint64(len(units)), stringAlignment(aligned, 2))
	if err != nil {
		return 0, err
	}

	for _, u := range units {
		*buf = append(*buf, byte(u), byte(u>>8))
	}
	*buf = append(*buf, 0, 0)

	return pos, nil
}

// ParseString16 locates the packed UTF-16LE code units of a String16
// record at pos (a slice into buf, not a copy, 2 bytes per unit) and
// returns the unit count and the position immediately following the
// terminator.
func ParseString16(buf []byte, codec lencodec.Codec, pos int) (data []byte, count int, next int, err error) {
	n, off, err := codec.Parse(buf, pos)
	if err != nil {
		return nil, 0, 0, err
	}

	size := int(n)*2 + 2
	if err := checkBounds(buf, off, size); err != nil {
		return nil, 0, 0, err
	}

	return buf[off : off+int(n)*2], int(n), off + size, nil
}

// DecodeString16 decodes raw little-endian UTF-16 code units (as produced
// by ParseString16) into a Go string.
func DecodeString16(raw []byte) string {
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}

	return string(utf16.Decode(units))
}

// WriteString32 appends a UTF-32LE string record — length in code points,
// the code points themselves (4 bytes each), a 4-byte NUL terminator — and
// returns its absolute offset.
func WriteString32(buf *[]byte, codec lencodec.Codec, aligned bool, s string) (int, error) {
	runeCount := utf8.RuneCountInString(s)

	pos, err := codec.Write(buf, uint64(runeCount), stringAlignment(aligned, 4))
	if err != nil {
		return 0, err
	}

	for _, r := range s {
		putU32(buf, uint32(r)) //nolint:gosec // runes fit in uint32
	}
	*buf = append(*buf, 0, 0, 0, 0)

	return pos, nil
}

// ParseString32 locates the packed UTF-32LE code points of a String32
// record at pos (a slice into buf, not a copy, 4 bytes per unit) and
// returns the code-point count and the position immediately following the
// terminator.
func ParseString32(buf []byte, codec lencodec.Codec, pos int) (data []byte, count int, next int, err error) {
	n, off, err := codec.Parse(buf, pos)
	if err != nil {
		return nil, 0, 0, err
	}

	size := int(n)*4 + 4
	if err := checkBounds(buf, off, size); err != nil {
		return nil, 0, 0, err
	}

	return buf[off : off+int(n)*4], int(n), off + size, nil
}

// DecodeString32 decodes raw little-endian UTF-32 code points (as produced
// by ParseString32) into a Go string.
func DecodeString32(raw []byte) string {
	runes := make([]rune, len(raw)/4)
	for i := range runes {
		o := 4 * i
		runes[i] = rune(uint32(raw[o]) | uint32(raw[o+1])<<8 | uint32(raw[o+2])<<16 | uint32(raw[o+3])<<24)
	}

	return string(runes)
}
