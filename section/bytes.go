package section

import "github.com/archo5/dato/lencodec"

// WriteBytes appends a ByteArray record — length in bytes, the raw bytes,
// no terminator — and returns its absolute offset.
func WriteBytes(buf *[]byte, codec lencodec.Codec, aligned bool, data []byte) (int, error) {
	pos, err := codec.Write(buf, uint64(len(data)), stringAlignment(aligned, 1))
	if err != nil {
		return 0, err
	}

	*buf = append(*buf, data...)

	return pos, nil
}

// ParseBytes locates the payload of a ByteArray record at pos (a slice
// into buf, not a copy) and returns the position immediately following it.
func ParseBytes(buf []byte, codec lencodec.Codec, pos int) (data []byte, next int, err error) {
	n, off, err := codec.Parse(buf, pos)
	if err != nil {
		return nil, 0, err
	}

	if err := checkBounds(buf, off, int(n)); err != nil {
		return nil, 0, err
	}

	return buf[off : off+int(n)], off + int(n), nil
}

// WriteTypedArray appends a typed-array record — length in elements, the
// packed elements, no terminator — and returns its absolute offset.
// elemData must already be the little-endian packed element bytes.
func WriteTypedArray(buf *[]byte, codec lencodec.Codec, aligned bool, elemSize int, elemCount int, elemData []byte) (int, error) {
	pos, err := codec.Write(buf, uint64(elemCount), stringAlignment(aligned, elemSize))
	if err != nil {
		return 0, err
	}

	*buf = append(*buf, elemData...)

	return pos, nil
}

// ParseTypedArray locates the packed element bytes of a typed-array
// record at pos (a slice into buf, not a copy, elemSize bytes per
// element) and returns the element count and the position immediately
// following the record.
func ParseTypedArray(buf []byte, codec lencodec.Codec, pos int, elemSize int) (data []byte, count int, next int, err error) {
	n, off, err := codec.Parse(buf, pos)
	if err != nil {
		return nil, 0, 0, err
	}

	size := int(n) * elemSize
	if err := checkBounds(buf, off, size); err != nil {
		return nil, 0, 0, err
	}

	return buf[off : off+size], int(n), off + size, nil
}
