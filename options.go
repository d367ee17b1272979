package lathermap

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lathercraft/lathermap/internal/cache"
	"github.com/lathercraft/lathermap/pkg/gear"
)

// Option is a function that configures a Lathermap instance
type Option func(*lathermap) error

// WithCatalog configures the curated catalog the resolver runs against
func WithCatalog(catalog gear.Catalog) Option {
	return func(lm *lathermap) error {
		lm.catalog = catalog
		return nil
	}
}

// WithAliases configures the alias registry the resolver consults
func WithAliases(registry gear.AliasRegistry) Option {
	return func(lm *lathermap) error {
		lm.registry = registry
		return nil
	}
}

// WithCache injects a memoization cache for resolver lookups.
// Pass nil to disable caching (the default).
func WithCache(c Cache) Option {
	return func(lm *lathermap) error {
		lm.cache = c
		return nil
	}
}

// WithTTLCache configures the built-in TTL cache for resolver lookups.
// Expired entries are swept at twice the TTL.
func WithTTLCache(ttl time.Duration) Option {
	return func(lm *lathermap) error {
		lm.cache = cache.New(ttl, 2*ttl)
		return nil
	}
}

// WithLogger configures the logger used during construction and lookups
func WithLogger(logger *zerolog.Logger) Option {
	return func(lm *lathermap) error {
		if logger != nil {
			lm.logger = logger
		}
		return nil
	}
}
