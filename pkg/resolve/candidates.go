package resolve

import (
	"github.com/lathercraft/lathermap/pkg/gear"
	"github.com/lathercraft/lathermap/pkg/normalize"
)

// candidates is an ordered, deduplicated list of normalized strings to try
// against the catalog. Order is significant: most-specific first.
type candidates []string

// add appends s unless it is empty or already present.
func (c candidates) add(s string) candidates {
	if s == "" {
		return c
	}
	for _, have := range c {
		if have == s {
			return c
		}
	}
	return append(c, s)
}

// brandCandidates builds the ordered brand variants to try: the normalized
// query first, then the matching registry entry's canonical spelling and
// declared aliases in declaration order, then the virtual suffix variant of
// the primary form. A registry entry matches when the query normalizes
// equal to its canonical brand or to any of its aliases, so a query written
// in an aliased spelling still reaches the catalog's canonical one. The
// matched entry is returned so item candidates can scope their alias
// lookup to it.
func brandCandidates(brand string, registry gear.AliasRegistry) (candidates, *gear.BrandAliases) {
	primary := normalize.String(brand)
	if primary == "" {
		return nil, nil
	}
	cands := candidates{primary}

	entry := findBrand(primary, registry)
	if entry != nil {
		cands = cands.add(normalize.String(entry.Brand))
		for _, alias := range entry.Aliases {
			cands = cands.add(normalize.String(alias))
		}
	}
	if v, ok := normalize.SoapVariant(primary); ok {
		cands = cands.add(v)
	}
	return cands, entry
}

// findBrand locates the registry entry whose canonical brand or declared
// aliases normalize equal to the already-normalized query brand.
func findBrand(primary string, registry gear.AliasRegistry) *gear.BrandAliases {
	for i := range registry {
		if normalize.String(registry[i].Brand) == primary {
			return &registry[i]
		}
		for _, alias := range registry[i].Aliases {
			if normalize.String(alias) == primary {
				return &registry[i]
			}
		}
	}
	return nil
}

// itemCandidates builds the ordered item variants to try: the normalized
// query, then a declared alias scoped to the resolved brand entry when the
// query names one of that brand's canonical items, then the virtual suffix
// variant of the primary form.
func itemCandidates(item string, entry *gear.BrandAliases) candidates {
	primary := normalize.String(item)
	if primary == "" {
		return nil
	}
	cands := candidates{primary}

	if entry != nil {
		for _, it := range entry.Items {
			if normalize.String(it.Name) == primary && it.Alias != "" {
				cands = cands.add(normalize.String(it.Alias))
			}
		}
	}
	if v, ok := normalize.SoapVariant(primary); ok {
		cands = cands.add(v)
	}
	return cands
}
