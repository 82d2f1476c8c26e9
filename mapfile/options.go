package mapfile

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/blmap/errs"
	"github.com/arloliu/blmap/format"
	"github.com/arloliu/blmap/internal/cache"
	"github.com/arloliu/blmap/internal/options"
)

// MapCache holds parsed maps keyed by content fingerprint.
//
// Maps returned from a cache are shared between callers and must be treated as read-only.
type MapCache = cache.Cache[*Map]

// NewMapCache creates a cache holding at most capacity maps.
func NewMapCache(capacity int) *MapCache {
	return cache.New[*Map](capacity)
}

type parser struct {
	checksum bool
	scope    format.CipherScope // zero selects the version default
	logger   *slog.Logger
	cache    *MapCache
}

// Option configures Parse and ReadFile.
type Option = options.Option[*parser]

func newParser(opts ...Option) (*parser, error) {
	p := &parser{
		checksum: true,
		logger:   slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// WithChecksum toggles verification of the trailing CRC32. Default: true.
func WithChecksum(verify bool) Option {
	return options.NoError(func(p *parser) {
		p.checksum = verify
	})
}

// WithCipherScope overrides the cipher scope used for the record sections.
//
// By default version 7 maps use format.CipherBaseOnly and version 6.3 maps
// use format.CipherNone.
func WithCipherScope(scope format.CipherScope) Option {
	return options.New(func(p *parser) error {
		if !scope.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCipherScope, scope)
		}
		p.scope = scope

		return nil
	})
}

// WithLogger sets the logger for debug and warning records. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(p *parser) {
		if logger != nil {
			p.logger = logger
		}
	})
}

// WithCache reuses maps parsed earlier from identical bytes.
func WithCache(c *MapCache) Option {
	return options.NoError(func(p *parser) {
		p.cache = c
	})
}
