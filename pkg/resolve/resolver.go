// Package resolve looks up canonical catalog identifiers for free-text
// (brand, item) pairs. It tries a deterministic sequence of normalized
// spelling variants and registry-declared aliases, brand-major and
// item-minor, and accepts the first catalog entry that matches. Only exact
// normalized-string equality is used; there is no fuzzy matching.
package resolve

import "github.com/lathercraft/lathermap/pkg/gear"

// Resolve returns the canonical identifier for a (brand, item) pair, or
// false when no candidate variant matches any catalog entry. Empty inputs
// and an empty catalog are defined no-match results, not errors.
//
// Resolve builds a fresh index per call; callers resolving many pairs
// against the same catalog should build one Index and use ResolveWithIndex.
func Resolve(brand, item string, catalog gear.Catalog, registry gear.AliasRegistry) (string, bool) {
	if brand == "" || item == "" || len(catalog) == 0 {
		return "", false
	}
	return ResolveWithIndex(brand, item, NewIndex(catalog), registry)
}

// ResolveWithIndex is Resolve against a pre-built catalog index. Candidate
// order is the contract: brand variants outer, item variants inner, most
// specific first, so the earliest matching pair wins regardless of how the
// index stores the catalog.
func ResolveWithIndex(brand, item string, index *Index, registry gear.AliasRegistry) (string, bool) {
	if brand == "" || item == "" || index == nil || index.Len() == 0 {
		return "", false
	}

	brands, entry := brandCandidates(brand, registry)
	items := itemCandidates(item, entry)

	for _, b := range brands {
		for _, i := range items {
			if id, ok := index.lookup(b, i); ok {
				return id, true
			}
		}
	}
	return "", false
}
