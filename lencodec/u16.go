package lencodec

import "github.com/archo5/dato/errs"

// U16 encodes a length as two little-endian bytes, 0-65535.
type U16 struct{}

// Write implements Codec.
func (U16) Write(buf *[]byte, n uint64, alignment int) (int, error) {
	if n > 65535 {
		return 0, errs.ErrOutOfRange
	}

	if alignment > 0 {
		if alignment < 2 {
			alignment = 2
		}
		pos := roundUp(len(*buf), alignment)
		pad(buf, pos)
	}

	pos := len(*buf)
	*buf = append(*buf, byte(n), byte(n>>8))

	return pos, nil
}

// Parse implements Codec.
func (U16) Parse(buf []byte, pos int) (uint64, int, error) {
	if err := checkEOF(buf, pos, 2); err != nil {
		return 0, 0, err
	}

	n := uint64(buf[pos]) | uint64(buf[pos+1])<<8

	return n, pos + 2, nil
}

// MaxValue implements Codec.
func (U16) MaxValue() uint64 { return 65535 }
