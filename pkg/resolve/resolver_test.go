package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lathercraft/lathermap/pkg/gear"
)

func testCatalog() gear.Catalog {
	return gear.Catalog{
		{Brand: "Barrister and Mann", Name: "Seville", Identifier: "barrister-and-mann-seville"},
		{Brand: "Barrister and Mann", Name: "Fougère Gothique", Identifier: "barrister-and-mann-fougere-gothique"},
		{Brand: "Talbot Shaving", Name: "Gates of the Arctic", Identifier: "talbot-gates-of-the-arctic"},
		{Brand: "Stirling Soap", Name: "Executive Man", Identifier: "stirling-executive-man"},
		{Brand: "Declaration Grooming", Name: "Sellout", Identifier: "declaration-sellout"},
	}
}

func testRegistry() gear.AliasRegistry {
	return gear.AliasRegistry{
		{
			Brand:   "Barrister and Mann",
			Aliases: []string{"B&M", "Barrister's Reserve"},
			Items: []gear.ItemAlias{
				{Name: "Seville", Alias: "Sevilla"},
			},
		},
	}
}

func TestResolveExactMatch(t *testing.T) {
	id, ok := Resolve("Barrister and Mann", "Seville", testCatalog(), nil)
	assert.True(t, ok)
	assert.Equal(t, "barrister-and-mann-seville", id)
}

func TestResolveCaseInsensitive(t *testing.T) {
	lower, okLower := Resolve("barrister and mann", "seville", testCatalog(), nil)
	upper, okUpper := Resolve("BARRISTER AND MANN", "SEVILLE", testCatalog(), nil)

	assert.True(t, okLower)
	assert.True(t, okUpper)
	assert.Equal(t, lower, upper)
}

// "&" and "and" spellings resolve identically.
func TestResolveAmpersandSymmetry(t *testing.T) {
	withAmp, okAmp := Resolve("Barrister & Mann", "Seville", testCatalog(), nil)
	withAnd, okAnd := Resolve("Barrister and Mann", "Seville", testCatalog(), nil)

	assert.True(t, okAmp)
	assert.True(t, okAnd)
	assert.Equal(t, withAnd, withAmp)
}

func TestResolveDiacritics(t *testing.T) {
	id, ok := Resolve("Barrister and Mann", "Fougere Gothique", testCatalog(), nil)
	assert.True(t, ok)
	assert.Equal(t, "barrister-and-mann-fougere-gothique", id)
}

// A trailing "Soap" word on either side is a virtual alias.
func TestResolveSoapSuffixSymmetry(t *testing.T) {
	catalog := testCatalog()

	// Query carries the suffix, catalog entry does not.
	withSuffix, ok := Resolve("Talbot Shaving Soap", "Gates of the Arctic", catalog, nil)
	assert.True(t, ok)
	plain, ok2 := Resolve("Talbot Shaving", "Gates of the Arctic", catalog, nil)
	assert.True(t, ok2)
	assert.Equal(t, plain, withSuffix)

	// Catalog entry carries the suffix, query does not.
	id, ok := Resolve("Stirling", "Executive Man", catalog, nil)
	assert.True(t, ok)
	assert.Equal(t, "stirling-executive-man", id)
}

func TestResolveBrandAlias(t *testing.T) {
	id, ok := Resolve("B&M", "Seville", testCatalog(), testRegistry())
	assert.True(t, ok)
	assert.Equal(t, "barrister-and-mann-seville", id)
}

func TestResolveItemAlias(t *testing.T) {
	id, ok := Resolve("Barrister and Mann", "Sevilla", testCatalog(), testRegistry())
	assert.False(t, ok, "alias declares canonical->alias, not alias->canonical")
	assert.Equal(t, "", id)

	// The declared alias direction: canonical query also tries the alias
	// spelling, which matches a catalog keyed under the alias.
	catalog := gear.Catalog{
		{Brand: "Barrister and Mann", Name: "Sevilla", Identifier: "bm-sevilla"},
	}
	id, ok = Resolve("Barrister and Mann", "Seville", catalog, testRegistry())
	assert.True(t, ok)
	assert.Equal(t, "bm-sevilla", id)
}

func TestResolveNoMatch(t *testing.T) {
	id, ok := Resolve("Unknown Brand", "Unknown Scent", testCatalog(), testRegistry())
	assert.False(t, ok)
	assert.Equal(t, "", id)
}

func TestResolveEmptyInputs(t *testing.T) {
	catalog := testCatalog()

	for name, args := range map[string][2]string{
		"empty brand": {"", "Seville"},
		"empty item":  {"Barrister and Mann", ""},
		"both empty":  {"", ""},
	} {
		t.Run(name, func(t *testing.T) {
			id, ok := Resolve(args[0], args[1], catalog, nil)
			assert.False(t, ok)
			assert.Equal(t, "", id)
		})
	}

	t.Run("empty catalog", func(t *testing.T) {
		id, ok := Resolve("Barrister and Mann", "Seville", nil, nil)
		assert.False(t, ok)
		assert.Equal(t, "", id)
	})
}

// The primary spelling outranks aliases, and within one candidate pair the
// earliest catalog entry wins.
func TestResolveCandidateOrder(t *testing.T) {
	catalog := gear.Catalog{
		{Brand: "Zingari Man", Name: "The Watchman", Identifier: "first"},
		{Brand: "Zingari Man", Name: "The Watchman", Identifier: "second"},
	}
	id, ok := Resolve("Zingari Man", "The Watchman", catalog, nil)
	assert.True(t, ok)
	assert.Equal(t, "first", id)

	// A primary-spelling hit beats an alias hit even when the alias entry
	// appears earlier in the catalog.
	registry := gear.AliasRegistry{
		{Brand: "Zingari Man", Aliases: []string{"Zingari"}},
	}
	catalog = gear.Catalog{
		{Brand: "Zingari", Name: "The Watchman", Identifier: "via-alias"},
		{Brand: "Zingari Man", Name: "The Watchman", Identifier: "via-primary"},
	}
	id, ok = Resolve("Zingari Man", "The Watchman", catalog, registry)
	assert.True(t, ok)
	assert.Equal(t, "via-primary", id)
}

func TestResolveWithIndexReuse(t *testing.T) {
	index := NewIndex(testCatalog())

	id, ok := ResolveWithIndex("Barrister & Mann", "Seville", index, nil)
	assert.True(t, ok)
	assert.Equal(t, "barrister-and-mann-seville", id)

	id, ok = ResolveWithIndex("Declaration Grooming", "Sellout", index, nil)
	assert.True(t, ok)
	assert.Equal(t, "declaration-sellout", id)

	_, ok = ResolveWithIndex("Nobody", "Nothing", index, nil)
	assert.False(t, ok)

	t.Run("nil index", func(t *testing.T) {
		_, ok := ResolveWithIndex("Barrister and Mann", "Seville", nil, nil)
		assert.False(t, ok)
	})
}
