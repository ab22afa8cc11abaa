// Package dato provides a compact, self-describing binary container
// format for tree-shaped data (objects, arrays, typed arrays, strings in
// three encodings, byte blobs, and the eight scalar types), designed for
// random-access, zero-copy reads.
//
// # Core Features
//
//   - Single-pass, bottom-up writer (writer.Builder) plus an
//     optional stack-based LinearWriter for building trees top-down
//   - Zero-copy reader: accessor handles borrow directly from the input
//     buffer, no intermediate tree is materialized
//   - Five pre-registered configs trading off length-field width against
//     maximum document size
//   - Independent structural validator for buffers of unknown origin
//
// # Basic Usage
//
// Building a document bottom-up:
//
//	b, _ := dato.NewBuilder()
//	name, _ := b.AppendStringUTF8("cpu.usage")
//	key, _ := b.AppendKey("metric")
//	root, _ := b.AppendObject([]writer.ObjectEntry{{Key: key, Value: name}})
//	buf, _ := b.Finish(root)
//
// Building a document top-down, mirroring the shape of the data:
//
//	lw, _ := dato.NewLinearWriter()
//	lw.WriteStringUTF8("metric", "cpu.usage")
//	buf, _ := lw.GetEncoded()
//
// Reading it back:
//
//	r, _ := dato.NewReader(buf)
//	root, _ := r.Root()
//	v, ok, _ := root.Get("metric")
//	s, _ := v.StringUTF8()
//	fmt.Println(s.String())
//
// Validating a buffer of unknown origin before trusting it to a reader:
//
//	if err := dato.Validate(buf); err != nil {
//	    // buf is corrupt or was not produced by a compliant writer
//	}
//
// # Package Structure
//
// This package is a thin convenience layer over writer, reader, and
// validator. For fine-grained control over builder options, linear-writer
// dynamic dispatch, or reader accessor types, use those packages directly.
package dato

import (
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/reader"
	"github.com/archo5/dato/validator"
	"github.com/archo5/dato/writer"
)

// Re-exported for callers that only need to name a config, without
// importing the format package directly.
var (
	Config0 = format.Config0
	Config1 = format.Config1
	Config2 = format.Config2
	Config3 = format.Config3
	Config4 = format.Config4
)

// NewBuilder creates a bottom-up builder: values are appended first and
// wired into objects/arrays afterwards, with the root sealed last by
// Finish. See writer.NewBuilder for the full option set.
func NewBuilder(opts ...writer.Option) (*writer.Builder, error) {
	return writer.NewBuilder(opts...)
}

// NewLinearWriter creates a stack-based writer that mirrors the shape of
// the data being written: BeginObject/BeginArray push a frame, EndObject/
// EndArray flush and pop it. See writer.NewLinearWriter for the full
// option set and writer.LinearWriter.WriteValue for reflective dispatch
// over Go values.
func NewLinearWriter(opts ...writer.Option) (*writer.LinearWriter, error) {
	return writer.NewLinearWriter(opts...)
}

// NewReader opens buf for zero-copy reading. See reader.New for the full
// option set.
func NewReader(buf []byte, opts ...reader.Option) (*reader.Reader, error) {
	return reader.New(buf, opts...)
}

// Validate performs an independent structural sweep of buf, suitable for
// input that was not necessarily produced by this module's own writer.
// A nil return means a reader can safely traverse buf without risking an
// out-of-bounds access. See the validator package for option details
// (custom prefix, config, or recursion-depth limit).
func Validate(buf []byte, opts ...validator.Option) error {
	v, err := validator.New(opts...)
	if err != nil {
		return err
	}

	return v.Validate(buf)
}
