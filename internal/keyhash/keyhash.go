// Package keyhash implements the key-deduplication table the writer uses
// when skip_duplicate_keys is enabled: an xxHash64-keyed index from key
// bytes to the offset of the first key record written for that key, with a
// full byte-compare fallback so that distinct keys sharing a hash are never
// confused for one another.
package keyhash

import "github.com/cespare/xxhash/v2"

type entry struct {
	key    []byte
	offset int
}

// Interner records key bytes to the offset their key record was first
// written at, and looks up whether a key has already been written so the
// writer can reuse its offset instead of emitting a duplicate record.
type Interner struct {
	buckets map[uint64][]entry
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{buckets: make(map[uint64][]entry)}
}

// Lookup returns the offset a prior call to Record stored for key, and
// whether one was found. Keys are compared byte-for-byte, not just by
// hash, so a hash collision between distinct keys never causes a false
// match.
func (in *Interner) Lookup(key []byte) (offset int, ok bool) {
	h := xxhash.Sum64(key)
	for _, e := range in.buckets[h] {
		if string(e.key) == string(key) {
			return e.offset, true
		}
	}

	return 0, false
}

// Record stores offset as the first-seen position of key. Callers should
// check Lookup first; Record does not itself deduplicate.
func (in *Interner) Record(key []byte, offset int) {
	h := xxhash.Sum64(key)
	in.buckets[h] = append(in.buckets[h], entry{key: append([]byte(nil), key...), offset: offset})
}

// Reset clears all recorded keys, allowing the Interner to be reused for a
// new buffer.
func (in *Interner) Reset() {
	for h := range in.buckets {
		delete(in.buckets, h)
	}
}

// Count returns the number of distinct keys recorded.
func (in *Interner) Count() int {
	n := 0
	for _, bucket := range in.buckets {
		n += len(bucket)
	}

	return n
}
