// Package reader implements zero-copy read access over a DATO buffer: thin
// accessor handles that borrow from the input slice rather than materializing
// a parsed tree, built on the byte-layout primitives in package section.
package reader

import (
	"github.com/archo5/dato/endian"
	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/section"
)

// Reader wraps a byte slice holding a complete DATO buffer. It is safe for
// concurrent read-only use once constructed: no method mutates buf.
type Reader struct {
	buf    []byte
	engine endian.EndianEngine
	cfg    format.Config
	flags  format.Flags

	rootOffset      uint32
	ignoreKeySorted bool
}

// New rejects a config whose identifier is reserved (5-127), validates buf's
// header (prefix, config identifier, enough bytes for a root offset) and
// returns a Reader exposing its root object.
func New(buf []byte, opts ...Option) (*Reader, error) {
	s := defaultSettings()
	if err := applyOptions(s, opts...); err != nil {
		return nil, err
	}

	if format.IsReservedConfigID(s.cfg.ID) {
		return nil, errs.ErrReservedConfig
	}

	hdr, _, err := section.Parse(buf, s.prefix, s.cfg.ID)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		buf:             buf,
		engine:          endian.GetLittleEndianEngine(),
		cfg:             s.cfg,
		flags:           hdr.Flags,
		rootOffset:      hdr.RootOffset,
		ignoreKeySorted: s.ignoreKeySorting,
	}

	return r, nil
}

// Config returns the config the Reader was constructed with.
func (r *Reader) Config() format.Config {
	return r.cfg
}

// Flags returns the flags recorded in the buffer's header.
func (r *Reader) Flags() format.Flags {
	return r.flags
}

// Root returns an accessor for the buffer's root object.
func (r *Reader) Root() (Object, error) {
	return newObject(r, int(r.rootOffset))
}
