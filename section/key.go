package section

import (
	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/lencodec"
)

// checkBounds reports errs.ErrEOF if the half-open range [pos, pos+n) does
// not fit within buf.
func checkBounds(buf []byte, pos, n int) error {
	if pos < 0 || n < 0 || pos+n > len(buf) {
		return errs.ErrEOF
	}

	return nil
}

// WriteKey appends a key record — length, UTF-8 bytes, one NUL terminator —
// to *buf using codec for the length field, and returns the absolute
// position the record begins at. Key records carry no alignment of their
// own; any padding needed before the next field is the caller's concern.
func WriteKey(buf *[]byte, codec lencodec.Codec, key []byte) (int, error) {
	if uint64(len(key)) > codec.MaxValue() {
		return 0, errs.ErrOutOfRange
	}

	pos, err := codec.Write(buf, uint64(len(key)), 0)
	if err != nil {
		return 0, err
	}

	*buf = append(*buf, key...)
	*buf = append(*buf, 0)

	return pos, nil
}

// ParseKey decodes a key record at pos, returning the key bytes (a slice
// into buf, not a copy) and the position immediately following the NUL
// terminator.
func ParseKey(buf []byte, codec lencodec.Codec, pos int) (key []byte, next int, err error) {
	n, next, err := codec.Parse(buf, pos)
	if err != nil {
		return nil, 0, err
	}

	if err := checkBounds(buf, next, int(n)+1); err != nil {
		return nil, 0, err
	}

	key = buf[next : next+int(n)]
	next += int(n) + 1

	return key, next, nil
}
