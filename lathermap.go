// Package lathermap reconciles free-text wetshaving gear descriptions
// against curated catalogs. The root package is a thin facade over the two
// core engines: the match reconciler (pkg/reconcile) and the catalog alias
// resolver (pkg/resolve). Both engines are pure functions; the facade adds
// the conveniences a surrounding system wants, a pre-built catalog index
// and optional memoization of resolver lookups.
package lathermap

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lathercraft/lathermap/pkg/gear"
	"github.com/lathercraft/lathermap/pkg/logging"
	"github.com/lathercraft/lathermap/pkg/reconcile"
	"github.com/lathercraft/lathermap/pkg/resolve"
)

// Lathermap exposes the reconciliation engine over a fixed catalog and
// alias registry. Implementations are safe for concurrent use.
type Lathermap interface {
	// Resolve returns the canonical catalog identifier for a free-text
	// (brand, item) pair, or false when nothing matches.
	Resolve(brand, item string) (string, bool)

	// Reconcile collapses a raw matcher result into a reconciled record.
	Reconcile(raw *reconcile.RawMatch) reconcile.Record

	// Catalog returns the curated catalog the resolver runs against.
	Catalog() gear.Catalog

	// Aliases returns the alias registry the resolver consults.
	Aliases() gear.AliasRegistry
}

// Cache is the injected memoization capability. Eviction is best-effort;
// nothing depends on the cache for correctness, only performance.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// lathermap is the internal implementation of the Lathermap interface.
type lathermap struct {
	catalog  gear.Catalog
	registry gear.AliasRegistry
	index    *resolve.Index
	cache    Cache
	logger   *zerolog.Logger
}

// resolution is the cached outcome of one resolver lookup, including the
// no-match case so misses are memoized too.
type resolution struct {
	identifier string
	ok         bool
}

// New creates a new Lathermap instance with the given options. The catalog
// is validated and indexed once, up front.
func New(opts ...Option) (Lathermap, error) {
	lm := &lathermap{
		logger: logging.Default(),
	}

	if err := lm.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	if err := lm.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	if err := lm.registry.Validate(); err != nil {
		return nil, fmt.Errorf("validating alias registry: %w", err)
	}

	lm.index = resolve.NewIndex(lm.catalog)
	lm.logger.Debug().
		Int("entries", len(lm.catalog)).
		Int("index_keys", lm.index.Len()).
		Msg("catalog indexed")

	return lm, nil
}

// options applies the given options in order.
func (lm *lathermap) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(lm); err != nil {
			return err
		}
	}
	return nil
}

// Resolve looks up the canonical identifier for a (brand, item) pair,
// memoizing through the injected cache when one is configured.
func (lm *lathermap) Resolve(brand, item string) (string, bool) {
	if lm.cache == nil {
		return resolve.ResolveWithIndex(brand, item, lm.index, lm.registry)
	}

	key := "resolve:" + brand + "\x1f" + item
	if v, found := lm.cache.Get(key); found {
		if res, ok := v.(resolution); ok {
			return res.identifier, res.ok
		}
	}

	id, ok := resolve.ResolveWithIndex(brand, item, lm.index, lm.registry)
	lm.cache.Set(key, resolution{identifier: id, ok: ok})
	return id, ok
}

// Reconcile collapses a raw matcher result into a reconciled record.
func (lm *lathermap) Reconcile(raw *reconcile.RawMatch) reconcile.Record {
	return reconcile.Reconcile(raw)
}

// Catalog returns the curated catalog.
func (lm *lathermap) Catalog() gear.Catalog {
	return lm.catalog
}

// Aliases returns the alias registry.
func (lm *lathermap) Aliases() gear.AliasRegistry {
	return lm.registry
}
