package reader

import (
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/internal/options"
)

// settings collects the construction-time choices for a Reader.
type settings struct {
	prefix           []byte
	cfg              format.Config
	ignoreKeySorting bool
}

func defaultSettings() *settings {
	return &settings{
		prefix: append([]byte(nil), []byte("DATO")...),
		cfg:    format.Config0,
	}
}

// Option configures a Reader at construction time.
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

// WithIgnoreKeySorting disables binary-search object lookup even when the
// SortedKeys flag is set, falling back to a linear scan. Useful when a
// buffer's SortedKeys flag cannot be trusted without independent validation.
func WithIgnoreKeySorting(ignore bool) Option {
	return options.NoError(func(s *settings) {
		s.ignoreKeySorting = ignore
	})
}
