package reader

import (
	"bytes"
	"iter"
	"sort"

	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/section"
)

// Object is a thin, non-copying accessor over an object record: its key,
// value and type slices are located once at construction and read directly
// from the Reader's buffer on demand.
type Object struct {
	r   *Reader
	pos int
	p   section.ParsedObject
}

func newObject(r *Reader, pos int) (Object, error) {
	p, _, err := section.ParseObject(r.buf, r.cfg.ObjectSizeCodec, r.flags.Aligned(), pos)
	if err != nil {
		return Object{}, err
	}

	return Object{r: r, pos: pos, p: p}, nil
}

// Len returns the number of entries.
func (o Object) Len() int { return o.p.Count }

// valueAt builds the Value at index i, resolving RelativeObjectRefs for
// reference types (arrays never carry this transform — see §3.2, §4.5).
func (o Object) valueAt(i int) Value {
	typ := o.p.Type(o.r.buf, i)
	payload := o.p.Value(o.r.buf, i)

	if o.r.flags.RelativeObjectRefs() && typ.IsReference() {
		payload = uint32(o.pos) - payload //nolint:gosec
	}

	return Value{r: o.r, typ: typ, payload: payload}
}

// KeyInt returns the raw integer key at index i. Only meaningful when the
// buffer was written with IntegerKeys.
func (o Object) KeyInt(i int) uint32 {
	return o.p.Key(o.r.buf, i)
}

// KeyBytes returns the UTF-8 key bytes at index i, a slice into the
// Reader's buffer rather than a copy. Only meaningful when the buffer was
// not written with IntegerKeys.
func (o Object) KeyBytes(i int) ([]byte, error) {
	off := o.p.Key(o.r.buf, i)

	key, _, err := section.ParseKey(o.r.buf, o.r.cfg.KeyLengthCodec, int(off))
	if err != nil {
		return nil, err
	}

	return key, nil
}

// At returns the value at index i, bounds-checked.
func (o Object) At(i int) (Value, error) {
	if i < 0 || i >= o.p.Count {
		return Value{}, errs.ErrIndexOutOfRange
	}

	return o.valueAt(i), nil
}

// All returns an iterator over (index, value) pairs in storage order.
func (o Object) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i := range o.p.Count {
			if !yield(i, o.valueAt(i)) {
				return
			}
		}
	}
}

func (o Object) useBinarySearch() bool {
	return o.r.flags.SortedKeys() && !o.r.ignoreKeySorted
}

// Get looks up a string key, using binary search when SortedKeys is set
// (and not overridden by WithIgnoreKeySorting), otherwise a linear scan.
// A miss reports (zero Value, false, nil), never an error by itself.
func (o Object) Get(key string) (Value, bool, error) {
	if o.r.flags.IntegerKeys() {
		return Value{}, false, errs.ErrWrongType
	}

	target := []byte(key)

	if o.useBinarySearch() {
		return o.getSorted(target)
	}

	for i := range o.p.Count {
		k, err := o.KeyBytes(i)
		if err != nil {
			return Value{}, false, err
		}

		if bytes.Equal(k, target) {
			return o.valueAt(i), true, nil
		}
	}

	return Value{}, false, nil
}

func (o Object) getSorted(target []byte) (Value, bool, error) {
	var searchErr error

	idx := sort.Search(o.p.Count, func(i int) bool {
		k, err := o.KeyBytes(i)
		if err != nil {
			searchErr = err

			return true
		}

		return bytes.Compare(k, target) >= 0
	})
	if searchErr != nil {
		return Value{}, false, searchErr
	}

	if idx >= o.p.Count {
		return Value{}, false, nil
	}

	k, err := o.KeyBytes(idx)
	if err != nil {
		return Value{}, false, err
	}

	if !bytes.Equal(k, target) {
		return Value{}, false, nil
	}

	return o.valueAt(idx), true, nil
}

// GetInt looks up an integer key (IntegerKeys buffers only), using binary
// search when SortedKeys is set, otherwise a linear scan.
func (o Object) GetInt(key uint32) (Value, bool, error) {
	if !o.r.flags.IntegerKeys() {
		return Value{}, false, errs.ErrWrongType
	}

	if o.useBinarySearch() {
		idx := sort.Search(o.p.Count, func(i int) bool {
			return o.KeyInt(i) >= key
		})
		if idx >= o.p.Count || o.KeyInt(idx) != key {
			return Value{}, false, nil
		}

		return o.valueAt(idx), true, nil
	}

	for i := range o.p.Count {
		if o.KeyInt(i) == key {
			return o.valueAt(i), true, nil
		}
	}

	return Value{}, false, nil
}
