package gear

import (
	"fmt"

	"github.com/lathercraft/lathermap/pkg/errors"
)

// CatalogEntry is one curated brand/name pair with its canonical identifier.
type CatalogEntry struct {
	Brand      string `json:"brand" yaml:"brand"`           // Canonical brand name
	Name       string `json:"name" yaml:"name"`             // Canonical item (scent/model) name
	Identifier string `json:"identifier" yaml:"identifier"` // Stable external reference key (e.g. a catalog slug)
}

// Catalog is an ordered list of curated entries. Order matters: the resolver
// accepts the first entry that matches a candidate pair.
type Catalog []CatalogEntry

// Lookup returns the first entry with the given identifier.
func (c Catalog) Lookup(identifier string) (CatalogEntry, error) {
	for _, entry := range c {
		if entry.Identifier == identifier {
			return entry, nil
		}
	}
	return CatalogEntry{}, errors.NewNotFoundError("catalog entry", identifier)
}

// Validate checks structural completeness: every entry carries a brand, a
// name, and an identifier, and identifiers are unique across the catalog.
func (c Catalog) Validate() error {
	seen := make(map[string]int, len(c))
	for i, entry := range c {
		if entry.Brand == "" {
			return errors.NewValidationError("brand", entry, fmt.Sprintf("entry %d has no brand", i))
		}
		if entry.Name == "" {
			return errors.NewValidationError("name", entry, fmt.Sprintf("entry %d (%s) has no name", i, entry.Brand))
		}
		if entry.Identifier == "" {
			return errors.NewValidationError("identifier", entry, fmt.Sprintf("entry %d (%s / %s) has no identifier", i, entry.Brand, entry.Name))
		}
		if prev, ok := seen[entry.Identifier]; ok {
			return errors.NewValidationError("identifier", entry.Identifier,
				fmt.Sprintf("entries %d and %d share identifier %q", prev, i, entry.Identifier))
		}
		seen[entry.Identifier] = i
	}
	return nil
}
