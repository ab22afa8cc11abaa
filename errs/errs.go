// Package errs collects the sentinel errors returned by the writer, reader
// and validator packages.
//
// Every error value here corresponds to exactly one taxonomy entry in the
// DATO format specification; callers are expected to compare with
// errors.Is, not to parse error strings.
package errs

import "errors"

// Writer errors.
var (
	// ErrOutOfRange is returned when a numeric or length argument does not
	// fit the range of the codec or slot it is being written into.
	ErrOutOfRange = errors.New("dato: value out of range for target encoding")

	// ErrReservedConfig is returned when a config identifier in the
	// reserved range (5-127) is used to construct a writer or reader.
	ErrReservedConfig = errors.New("dato: config identifier is reserved")

	// ErrRootNotObject is returned when Finish/GetEncoded is asked to seal
	// a buffer whose root value is not an Object.
	ErrRootNotObject = errors.New("dato: root value must be an object")

	// ErrNoOpenFrame is returned when EndObject/EndArray is called without
	// a matching BeginObject/BeginArray.
	ErrNoOpenFrame = errors.New("dato: no open object or array frame")

	// ErrFrameKindMismatch is returned when EndObject is called while the
	// top frame is an array, or vice versa.
	ErrFrameKindMismatch = errors.New("dato: end call does not match the open frame kind")

	// ErrTextTooLong is not returned by the writers in this module: a key
	// or string whose length exceeds the range of the active config's
	// length codec is reported as ErrOutOfRange.
	ErrTextTooLong = errors.New("dato: text exceeds the maximum length for this config")

	// ErrWriterFinished is returned when Finish/GetEncoded is called more
	// than once on the same writer.
	ErrWriterFinished = errors.New("dato: writer has already been finished")
)

// Reader/validator errors.
var (
	// ErrMissingPrefix is returned when the buffer does not start with the
	// expected prefix bytes.
	ErrMissingPrefix = errors.New("dato: buffer does not start with the expected prefix")

	// ErrWrongConfig is returned when the config identifier in the header
	// does not match the identifier the reader/validator was built for.
	ErrWrongConfig = errors.New("dato: config identifier does not match")

	// ErrEOF is returned when a read would go past the end of the buffer.
	ErrEOF = errors.New("dato: unexpected end of buffer")

	// ErrUnaligned is returned when an offset violates the alignment
	// required by its type.
	ErrUnaligned = errors.New("dato: offset violates required alignment")

	// ErrBadKeyOrder is returned when SortedKeys is set but an object's
	// keys are not strictly ascending.
	ErrBadKeyOrder = errors.New("dato: object keys are not strictly ascending")

	// ErrUnknownBuiltInType is returned when a type code in the reserved
	// built-in range (24-127) is encountered.
	ErrUnknownBuiltInType = errors.New("dato: unknown built-in type code")

	// ErrMissingNullTerminator is returned when a string's terminator
	// bytes are not all zero.
	ErrMissingNullTerminator = errors.New("dato: string is missing its null terminator")

	// ErrBadData is returned when an inline payload holds a value outside
	// its permitted set (e.g. a Bool payload that is neither 0 nor 1).
	ErrBadData = errors.New("dato: inline payload is not a valid value for its type")

	// ErrIndexOutOfRange is returned when an array index is out of bounds.
	ErrIndexOutOfRange = errors.New("dato: index out of range")

	// ErrNotFound is not returned by any function in this module: object
	// lookups surface a missing key as a (zero Value, false, nil) result.
	ErrNotFound = errors.New("dato: key not found")

	// ErrWrongType is returned when an accessor is asked to read a value
	// as a type its type code does not match.
	ErrWrongType = errors.New("dato: accessor type does not match requested read")

	// ErrDepthExceeded is returned by the validator when the tree nests
	// deeper than its configured recursion limit, guarding against
	// pathological or maliciously crafted buffers.
	ErrDepthExceeded = errors.New("dato: maximum nesting depth exceeded")
)
