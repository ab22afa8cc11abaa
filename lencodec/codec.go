// Package lencodec implements the four interchangeable length codecs a DATO
// config can choose between for key lengths, object sizes, array lengths and
// value lengths (spec §4.1).
//
// Each codec is a stateless value satisfying Codec; Write appends an
// encoded nonnegative integer (with optional alignment padding) to buf and
// returns the absolute position the encoded length begins at, while Parse
// decodes one back out of a buffer at a given position.
package lencodec

import "github.com/archo5/dato/errs"

// Codec encodes and decodes a nonnegative integer length/size field.
type Codec interface {
	// Write appends n, encoded per the codec, to *buf. When alignment is
	// non-zero, NUL padding is inserted first so that the end of the
	// encoded field lands on an alignment-byte boundary (clamped up to the
	// codec's natural minimum alignment where one applies). It returns the
	// absolute position (len(*buf) before the encoded bytes, after
	// padding) the encoded value begins at, or an error if n exceeds the
	// codec's range.
	Write(buf *[]byte, n uint64, alignment int) (pos int, err error)

	// Parse decodes a length starting at position pos in buf, returning
	// the value and the position immediately following the encoded field.
	Parse(buf []byte, pos int) (n uint64, next int, err error)

	// MaxValue is the largest value the codec can represent.
	MaxValue() uint64
}

// roundUp returns the smallest multiple of n that is >= x. n must be > 0.
func roundUp(x, n int) int {
	return (x + n - 1) / n * n
}

// pad appends NUL bytes to *buf until its length equals n.
func pad(buf *[]byte, n int) {
	for len(*buf) < n {
		*buf = append(*buf, 0)
	}
}

func checkEOF(buf []byte, pos, n int) error {
	if pos < 0 || n < 0 || pos+n > len(buf) {
		return errs.ErrEOF
	}

	return nil
}
