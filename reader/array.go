package reader

import (
	"iter"

	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/section"
)

// Array is a thin, non-copying accessor over an array record. Unlike
// Object, array value payloads are always absolute: RelativeObjectRefs
// applies only to object entries (§3.2, §4.5).
type Array struct {
	r   *Reader
	pos int
	p   section.ParsedArray
}

func newArray(r *Reader, pos int) (Array, error) {
	p, _, err := section.ParseArray(r.buf, r.cfg.ArrayLengthCodec, r.flags.Aligned(), pos)
	if err != nil {
		return Array{}, err
	}

	return Array{r: r, pos: pos, p: p}, nil
}

// Len returns the number of elements.
func (a Array) Len() int { return a.p.Count }

func (a Array) valueAt(i int) Value {
	return Value{r: a.r, typ: a.p.Type(a.r.buf, i), payload: a.p.Value(a.r.buf, i)}
}

// At returns the element at index i, bounds-checked.
func (a Array) At(i int) (Value, error) {
	if i < 0 || i >= a.p.Count {
		return Value{}, errs.ErrIndexOutOfRange
	}

	return a.valueAt(i), nil
}

// All returns an iterator over (index, value) pairs.
func (a Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i := range a.p.Count {
			if !yield(i, a.valueAt(i)) {
				return
			}
		}
	}
}
