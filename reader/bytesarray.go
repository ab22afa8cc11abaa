package reader

import (
	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/section"
)

// BytesValue is a thin accessor over a ByteArray record.
type BytesValue struct {
	data []byte
}

func newBytesValue(r *Reader, pos int) (BytesValue, error) {
	data, _, err := section.ParseBytes(r.buf, r.cfg.ValueLengthCodec, pos)
	if err != nil {
		return BytesValue{}, err
	}

	return BytesValue{data: data}, nil
}

// Len returns the length in bytes.
func (b BytesValue) Len() int { return len(b.data) }

// At returns the byte at index i, bounds-checked.
func (b BytesValue) At(i int) (byte, error) {
	if i < 0 || i >= len(b.data) {
		return 0, errs.ErrIndexOutOfRange
	}

	return b.data[i], nil
}

// Bytes returns the payload, a slice into the Reader's buffer rather than
// a copy.
func (b BytesValue) Bytes() []byte { return b.data }
