package lencodec

import "github.com/archo5/dato/errs"

// U32 encodes a length as four little-endian bytes, 0 to 2^32-1.
type U32 struct{}

// Write implements Codec.
func (U32) Write(buf *[]byte, n uint64, alignment int) (int, error) {
	if n > 0xffffffff {
		return 0, errs.ErrOutOfRange
	}

	if alignment > 0 {
		if alignment < 4 {
			alignment = 4
		}
		pos := roundUp(len(*buf), alignment)
		pad(buf, pos)
	}

	pos := len(*buf)
	v := uint32(n) //nolint:gosec // range-checked above
	*buf = append(*buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))

	return pos, nil
}

// Parse implements Codec.
func (U32) Parse(buf []byte, pos int) (uint64, int, error) {
	if err := checkEOF(buf, pos, 4); err != nil {
		return 0, 0, err
	}

	n := uint64(buf[pos]) | uint64(buf[pos+1])<<8 | uint64(buf[pos+2])<<16 | uint64(buf[pos+3])<<24

	return n, pos + 4, nil
}

// MaxValue implements Codec.
func (U32) MaxValue() uint64 { return 0xffffffff }
