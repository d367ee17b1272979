package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lathercraft/lathermap/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeFile(t, "catalog.yaml", `- brand: Barrister and Mann
  name: Seville
  identifier: bm-seville
`)
	viper.Set("catalog", path)

	catalog, err := loadCatalog()
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "bm-seville", catalog[0].Identifier)
}

func TestLoadCatalogUnconfigured(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("catalog", "")

	_, err := loadCatalog()
	assert.True(t, errors.IsValidationError(err))
}

func TestLoadCatalogBadYAML(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeFile(t, "catalog.yaml", "{not valid: [yaml")
	viper.Set("catalog", path)

	_, err := loadCatalog()
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadAliasesOptional(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("aliases", "")

	registry, err := loadAliases()
	require.NoError(t, err)
	assert.Nil(t, registry)
}

func TestLoadRawMatches(t *testing.T) {
	path := writeFile(t, "matches.yaml", `- item: Simpson Chubby 2
  count: 2
  matched:
    handle:
      brand: Simpson
      model: Chubby 2
- item: mystery brush
  unmatched:
    knot:
      text: 26mm badger
`)

	raws, err := loadRawMatches(path)
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "Simpson", raws[0].Matched.Handle.Brand)
	assert.Equal(t, "26mm badger", raws[1].Unmatched.Knot.Text)
}

func TestLoadRawMatchesMissingFile(t *testing.T) {
	_, err := loadRawMatches(filepath.Join(t.TempDir(), "missing.yaml"))
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}
