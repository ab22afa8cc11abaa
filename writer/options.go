package writer

import (
	"github.com/archo5/dato/format"
	"github.com/archo5/dato/internal/options"
)

// settings collects the construction-time choices shared by Builder and
// LinearWriter (§6.2).
type settings struct {
	prefix             []byte
	cfg                format.Config
	aligned            bool
	skipDuplicateKeys  bool
	integerKeys        bool
	sortKeys           bool
	relativeObjectRefs bool
}

func defaultSettings() *settings {
	return &settings{
		prefix:            append([]byte(nil), []byte("DATO")...),
		cfg:               format.Config0,
		aligned:           true,
		skipDuplicateKeys: true,
	}
}

// Option configures a Builder or LinearWriter at construction time.
type Option = options.Option[*settings]

func applyOptions(s *settings, opts ...Option) error {
	return options.Apply(s, opts...)
}

// WithPrefix overrides the default "DATO" prefix.
func WithPrefix(prefix []byte) Option {
	return options.NoError(func(s *settings) {
		s.prefix = append([]byte(nil), prefix...)
	})
}

// WithConfig selects one of the five pre-registered configs (or a custom
// one with an identifier >= 128).
func WithConfig(cfg format.Config) Option {
	return options.NoError(func(s *settings) {
		s.cfg = cfg
	})
}

// WithAligned toggles the Aligned flag (default true).
func WithAligned(aligned bool) Option {
	return options.NoError(func(s *settings) {
		s.aligned = aligned
	})
}

// WithSkipDuplicateKeys toggles key-record deduplication (default true).
func WithSkipDuplicateKeys(skip bool) Option {
	return options.NoError(func(s *settings) {
		s.skipDuplicateKeys = skip
	})
}

// WithIntegerKeys sets the IntegerKeys flag: object keys become raw
// 32-bit integers with no key records (default false).
func WithIntegerKeys(integerKeys bool) Option {
	return options.NoError(func(s *settings) {
		s.integerKeys = integerKeys
	})
}

// WithSortedKeys sets the SortedKeys flag. The caller remains responsible
// for actually presenting entries in ascending key order (default false).
func WithSortedKeys(sorted bool) Option {
	return options.NoError(func(s *settings) {
		s.sortKeys = sorted
	})
}

// WithRelativeObjectRefs sets the RelativeObjectRefs flag: reference-type
// value offsets inside objects become container-relative (default false).
func WithRelativeObjectRefs(relative bool) Option {
	return options.NoError(func(s *settings) {
		s.relativeObjectRefs = relative
	})
}
