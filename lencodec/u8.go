package lencodec

import "github.com/archo5/dato/errs"

// U8 encodes a length as a single byte, 0-255.
type U8 struct{}

// Write implements Codec.
func (U8) Write(buf *[]byte, n uint64, alignment int) (int, error) {
	if n > 255 {
		return 0, errs.ErrOutOfRange
	}

	if alignment > 0 {
		pos := roundUp(len(*buf)+1, alignment) - 1
		pad(buf, pos)
	}

	pos := len(*buf)
	*buf = append(*buf, byte(n))

	return pos, nil
}

// Parse implements Codec.
func (U8) Parse(buf []byte, pos int) (uint64, int, error) {
	if err := checkEOF(buf, pos, 1); err != nil {
		return 0, 0, err
	}

	return uint64(buf[pos]), pos + 1, nil
}

// MaxValue implements Codec.
func (U8) MaxValue() uint64 { return 255 }
