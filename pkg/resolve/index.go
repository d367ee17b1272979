package resolve

import (
	"github.com/lathercraft/lathermap/pkg/gear"
	"github.com/lathercraft/lathermap/pkg/normalize"
)

// pairKey is a normalized (brand, name) catalog key.
type pairKey struct {
	brand string
	name  string
}

// Index is a pre-computed lookup over a catalog: every catalog entry is
// keyed by each combination of its normalized brand/name variants,
// including the virtual suffix variants of both sides. When several
// entries produce the same key, the earliest catalog entry wins, which
// preserves the scan-in-catalog-order contract of the nested-loop search.
type Index struct {
	identifiers map[pairKey]string
}

// NewIndex builds an Index from a catalog. The catalog is read once; the
// index holds no reference to it afterwards.
func NewIndex(catalog gear.Catalog) *Index {
	idx := &Index{identifiers: make(map[pairKey]string, len(catalog))}
	for _, entry := range catalog {
		for _, brand := range normalize.Variants(entry.Brand) {
			for _, name := range normalize.Variants(entry.Name) {
				key := pairKey{brand: brand, name: name}
				if _, taken := idx.identifiers[key]; taken {
					continue
				}
				idx.identifiers[key] = entry.Identifier
			}
		}
	}
	return idx
}

// Len returns the number of distinct (brand, name) keys in the index.
func (idx *Index) Len() int {
	return len(idx.identifiers)
}

// lookup returns the identifier for an already-normalized candidate pair.
func (idx *Index) lookup(brand, name string) (string, bool) {
	id, ok := idx.identifiers[pairKey{brand: brand, name: name}]
	return id, ok
}
