package format

import (
	"github.com/archo5/dato/errs"
	"github.com/archo5/dato/lencodec"
)

// Config names the four length codecs a writer/reader uses for key
// lengths, object sizes, array lengths and value lengths, plus the
// identifier byte stored in the header (spec §4.2).
type Config struct {
	ID               uint8
	KeyLengthCodec   lencodec.Codec
	ObjectSizeCodec  lencodec.Codec
	ArrayLengthCodec lencodec.Codec
	ValueLengthCodec lencodec.Codec
	DefaultAligned   bool
}

// reservedConfigMin and reservedConfigMax bound the identifier range that
// is reserved for future built-in configs and must be rejected.
const (
	reservedConfigMin uint8 = 5
	reservedConfigMax uint8 = 127
)

// IsReservedConfigID reports whether id falls in the reserved range (5-127).
func IsReservedConfigID(id uint8) bool {
	return id >= reservedConfigMin && id <= reservedConfigMax
}

// Config0 optimizes for reading speed at the cost of size, while remaining
// compatible with the full range of keys/objects/arrays/values.
var Config0 = Config{
	ID:               0,
	KeyLengthCodec:   lencodec.U32{},
	ObjectSizeCodec:  lencodec.U32{},
	ArrayLengthCodec: lencodec.U32{},
	ValueLengthCodec: lencodec.U32{},
	DefaultAligned:   true,
}

// Config1 keeps fixed 4-byte key lengths, object sizes and array lengths,
// but uses the variable-width codec for value lengths so that short
// strings and arrays take a 1-byte length field, while remaining
// compatible with the full range.
var Config1 = Config{
	ID:               1,
	KeyLengthCodec:   lencodec.U32{},
	ObjectSizeCodec:  lencodec.U32{},
	ArrayLengthCodec: lencodec.U32{},
	ValueLengthCodec: lencodec.U8X32{},
	DefaultAligned:   true,
}

// Config2 optimizes for size first, using the variable-width codec for
// every field, at the cost of reading speed.
var Config2 = Config{
	ID:               2,
	KeyLengthCodec:   lencodec.U8X32{},
	ObjectSizeCodec:  lencodec.U8X32{},
	ArrayLengthCodec: lencodec.U8X32{},
	ValueLengthCodec: lencodec.U8X32{},
	DefaultAligned:   true,
}

// Config3 optimizes for reading speed first, breaking compatibility with
// objects/keys larger than 255 entries/bytes.
var Config3 = Config{
	ID:               3,
	KeyLengthCodec:   lencodec.U8{},
	ObjectSizeCodec:  lencodec.U8{},
	ArrayLengthCodec: lencodec.U32{},
	ValueLengthCodec: lencodec.U32{},
	DefaultAligned:   true,
}

// Config4 optimizes for size first, breaking compatibility with
// objects/keys larger than 255 entries/bytes.
var Config4 = Config{
	ID:               4,
	KeyLengthCodec:   lencodec.U8{},
	ObjectSizeCodec:  lencodec.U8{},
	ArrayLengthCodec: lencodec.U8X32{},
	ValueLengthCodec: lencodec.U8X32{},
	DefaultAligned:   true,
}

// registry maps a pre-registered config identifier to its Config value.
var registry = map[uint8]Config{
	0: Config0,
	1: Config1,
	2: Config2,
	3: Config3,
	4: Config4,
}

// Lookup returns the pre-registered config for id, or an error if id is
// reserved (5-127). Identifiers 128 and above are accepted structurally
// (the caller is expected to supply their own Config literal); Lookup
// returns ok=false for any id this registry does not know about, reserved
// or not.
func Lookup(id uint8) (cfg Config, ok bool, err error) {
	if IsReservedConfigID(id) {
		return Config{}, false, errs.ErrReservedConfig
	}

	cfg, ok = registry[id]

	return cfg, ok, nil
}
