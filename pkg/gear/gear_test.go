package gear

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lathercraft/lathermap/pkg/errors"
)

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{
			name: "valid",
			catalog: Catalog{
				{Brand: "Barrister and Mann", Name: "Seville", Identifier: "bm-seville"},
				{Brand: "Stirling Soap", Name: "Executive Man", Identifier: "stirling-executive-man"},
			},
		},
		{name: "empty catalog"},
		{
			name:    "missing brand",
			catalog: Catalog{{Name: "Seville", Identifier: "x"}},
			wantErr: true,
		},
		{
			name:    "missing name",
			catalog: Catalog{{Brand: "Barrister and Mann", Identifier: "x"}},
			wantErr: true,
		},
		{
			name:    "missing identifier",
			catalog: Catalog{{Brand: "Barrister and Mann", Name: "Seville"}},
			wantErr: true,
		},
		{
			name: "duplicate identifier",
			catalog: Catalog{
				{Brand: "A", Name: "One", Identifier: "dup"},
				{Brand: "B", Name: "Two", Identifier: "dup"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogLookup(t *testing.T) {
	catalog := Catalog{
		{Brand: "Barrister and Mann", Name: "Seville", Identifier: "bm-seville"},
	}

	entry, err := catalog.Lookup("bm-seville")
	require.NoError(t, err)
	assert.Equal(t, "Seville", entry.Name)

	_, err = catalog.Lookup("nope")
	assert.True(t, errors.IsNotFound(err))
}

func TestAliasRegistryValidate(t *testing.T) {
	valid := AliasRegistry{
		{Brand: "Barrister and Mann", Aliases: []string{"B&M"}, Items: []ItemAlias{{Name: "Seville", Alias: "Sevilla"}}},
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, AliasRegistry{{Aliases: []string{"B&M"}}}.Validate())
	assert.Error(t, AliasRegistry{{Brand: "B&M", Items: []ItemAlias{{Alias: "Sevilla"}}}}.Validate())
}

func TestCatalogYAMLRoundTrip(t *testing.T) {
	src := `- brand: Barrister and Mann
  name: Seville
  identifier: bm-seville
- brand: Talbot Shaving
  name: Gates of the Arctic
  identifier: talbot-gates
`
	var catalog Catalog
	require.NoError(t, yaml.Unmarshal([]byte(src), &catalog))
	require.Len(t, catalog, 2)
	assert.Equal(t, "bm-seville", catalog[0].Identifier)
	assert.Equal(t, "Talbot Shaving", catalog[1].Brand)
	assert.NoError(t, catalog.Validate())
}

func TestComponents(t *testing.T) {
	assert.Equal(t, []ComponentKind{ComponentHandle, ComponentKnot}, Components())
	assert.Equal(t, "handle", ComponentHandle.String())
	assert.Equal(t, "matched", StatusMatched.String())
	assert.Equal(t, "filtered", KindFiltered.String())
}
