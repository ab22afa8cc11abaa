package lencodec

import "github.com/archo5/dato/errs"

// U8X32 encodes a length as either a single byte (values 0-254) or a
// marker byte 255 followed by four little-endian bytes (values needing the
// full uint32 range). This is the variable-width codec used by the
// size-first configs.
type U8X32 struct{}

// longFormMarker is the byte value that signals the 4-byte long form
// follows.
const longFormMarker = 255

// Write implements Codec.
func (U8X32) Write(buf *[]byte, n uint64, alignment int) (int, error) {
	if n > 0xffffffff {
		return 0, errs.ErrOutOfRange
	}

	if n < longFormMarker {
		if alignment > 0 {
			pos := roundUp(len(*buf)+1, alignment) - 1
			pad(buf, pos)
		}

		pos := len(*buf)
		*buf = append(*buf, byte(n))

		return pos, nil
	}

	if alignment > 0 {
		if alignment < 4 {
			alignment = 4
		}
		pos := roundUp(len(*buf)+5, alignment) - 5
		pad(buf, pos)
	}

	pos := len(*buf)
	v := uint32(n) //nolint:gosec // range-checked above
	*buf = append(*buf, longFormMarker, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))

	return pos, nil
}

// Parse implements Codec.
func (U8X32) Parse(buf []byte, pos int) (uint64, int, error) {
	if err := checkEOF(buf, pos, 1); err != nil {
		return 0, 0, err
	}

	v := buf[pos]
	pos++

	if v != longFormMarker {
		return uint64(v), pos, nil
	}

	if err := checkEOF(buf, pos, 4); err != nil {
		return 0, 0, err
	}

	n := uint64(buf[pos]) | uint64(buf[pos+1])<<8 | uint64(buf[pos+2])<<16 | uint64(buf[pos+3])<<24

	return n, pos + 4, nil
}

// MaxValue implements Codec.
func (U8X32) MaxValue() uint64 { return 0xffffffff }
