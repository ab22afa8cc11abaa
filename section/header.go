// Package section implements the byte-layout of the header, object, array,
// key, string and byte/typed-array records shared by the writer, reader and
// validator packages (spec §3).
package section

import (
	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/format"
)

// DefaultPrefix is the prefix written when the caller does not choose one.
var DefaultPrefix = []byte("DATO")

// roundUp4 returns the smallest multiple of 4 that is >= x.
func roundUp4(x int) int {
	return (x + 3) &^ 3
}

// Header describes the fixed preamble of a DATO buffer: a caller-chosen
// prefix, the config identifier, the flags byte and (after optional
// alignment padding) the absolute offset of the root object.
type Header struct {
	Prefix     []byte
	ConfigID   uint8
	Flags      format.Flags
	RootOffset uint32
}

// RootSlotOffset returns the absolute byte position the root offset field
// occupies for a header with the given prefix length and flags.
func RootSlotOffset(prefixLen int, flags format.Flags) int {
	pos := prefixLen + 2
	if flags.Aligned() {
		pos = roundUp4(pos)
	}

	return pos
}

// Size returns the total header length (prefix through the root offset
// field, inclusive) for a header with the given prefix length and flags.
func Size(prefixLen int, flags format.Flags) int {
	return RootSlotOffset(prefixLen, flags) + 4
}

// Write appends prefix, configID and flags to *buf, pads to 4-byte alignment
// when flags.Aligned(), and appends a 4-byte placeholder for the root
// offset. It returns the absolute position of that placeholder so the
// caller can patch it in once the root object's offset is known.
func Write(buf *[]byte, prefix []byte, configID uint8, flags format.Flags) (rootSlot int, err error) {
	if format.IsReservedConfigID(configID) {
		return 0, errs.ErrReservedConfig
	}

	*buf = append(*buf, prefix...)
	*buf = append(*buf, configID, byte(flags))

	rootSlot = RootSlotOffset(len(prefix), flags)
	for len(*buf) < rootSlot {
		*buf = append(*buf, 0)
	}

	*buf = append(*buf, 0, 0, 0, 0)

	return rootSlot, nil
}

// PatchRootOffset writes offset into the 4-byte root slot reserved by
// Write, at position rootSlot.
func PatchRootOffset(buf []byte, rootSlot int, offset uint32) {
	buf[rootSlot] = byte(offset)
	buf[rootSlot+1] = byte(offset >> 8)
	buf[rootSlot+2] = byte(offset >> 16)
	buf[rootSlot+3] = byte(offset >> 24)
}

// Parse reads a header from buf, validating that it begins with prefix and
// that its config identifier equals expectedConfigID.
func Parse(buf []byte, prefix []byte, expectedConfigID uint8) (Header, int, error) {
	if len(buf) < len(prefix)+2 {
		return Header{}, 0, errs.ErrEOF
	}

	for i, b := range prefix {
		if buf[i] != b {
			return Header{}, 0, errs.ErrMissingPrefix
		}
	}

	configID := buf[len(prefix)]
	if configID != expectedConfigID {
		return Header{}, 0, errs.ErrWrongConfig
	}

	flags := format.Flags(buf[len(prefix)+1])

	rootSlot := RootSlotOffset(len(prefix), flags)
	if rootSlot+4 > len(buf) {
		return Header{}, 0, errs.ErrEOF
	}

	root := uint32(buf[rootSlot]) | uint32(buf[rootSlot+1])<<8 | uint32(buf[rootSlot+2])<<16 | uint32(buf[rootSlot+3])<<24

	h := Header{
		Prefix:     prefix,
		ConfigID:   configID,
		Flags:      flags,
		RootOffset: root,
	}

	return h, rootSlot + 4, nil
}
