package validator

import (
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/internal/options"
)

// defaultMaxDepth bounds object/array nesting so that a pathological or
// maliciously crafted buffer cannot drive the validator into unbounded
// recursion (§4.6).
const defaultMaxDepth = 256

// settings collects the construction-time choices for a Validator.
type settings struct {
	prefix   []byte
	cfg      format.Config
	maxDepth int
}

func defaultSettings() *settings {
	return &settings{
		prefix:   append([]byte(nil), []byte("DATO")...),
		cfg:      format.Config0,
		maxDepth: defaultMaxDepth,
	}
}

// Option configures a Validator at construction time.
type Option = options.Option[*settings]

func applyOptions(s *settings, opts ...Option) error {
	return options.Apply(s, opts...)
}

// WithPrefix overrides the default "DATO" prefix the buffer is checked
// against.
func WithPrefix(prefix []byte) Option {
	return options.NoError(func(s *settings) {
		s.prefix = append([]byte(nil), prefix...)
	})
}

// WithConfig selects the config the buffer was written with.
func WithConfig(cfg format.Config) Option {
	return options.NoError(func(s *settings) {
		s.cfg = cfg
	})
}

// WithMaxDepth overrides the default nesting-depth guard.
func WithMaxDepth(depth int) Option {
	return options.NoError(func(s *settings) {
		s.maxDepth = depth
	})
}
