package gear

import (
	"fmt"

	"github.com/lathercraft/lathermap/pkg/errors"
)

// AliasRegistry declares alternate spellings for catalog brands and items.
// Aliases are scoped: an item alias is only considered under its owning
// brand's canonical name or one of that brand's declared aliases.
type AliasRegistry []BrandAliases

// BrandAliases groups the declared aliases for one canonical brand.
type BrandAliases struct {
	Brand   string      `json:"brand" yaml:"brand"`                       // Canonical brand name
	Aliases []string    `json:"aliases,omitempty" yaml:"aliases,omitempty"` // Alternate brand spellings, in declaration order
	Items   []ItemAlias `json:"items,omitempty" yaml:"items,omitempty"`   // Per-item aliases under this brand
}

// ItemAlias declares an alternate spelling for one item name.
type ItemAlias struct {
	Name  string `json:"name" yaml:"name"`                       // Canonical item name
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"` // Alternate spelling
}

// Validate checks that every registry entry names a brand and every item
// alias names its canonical item.
func (r AliasRegistry) Validate() error {
	for i, brand := range r {
		if brand.Brand == "" {
			return errors.NewValidationError("brand", brand, fmt.Sprintf("registry entry %d has no brand", i))
		}
		for j, item := range brand.Items {
			if item.Name == "" {
				return errors.NewValidationError("name", item,
					fmt.Sprintf("registry entry %d (%s) item %d has no canonical name", i, brand.Brand, j))
			}
		}
	}
	return nil
}
