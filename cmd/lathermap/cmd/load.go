package cmd

import (
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"

	"github.com/lathercraft/lathermap/pkg/errors"
	"github.com/lathercraft/lathermap/pkg/gear"
	"github.com/lathercraft/lathermap/pkg/reconcile"
)

// loadCatalog reads the catalog YAML file named by the --catalog flag or
// the LATHERMAP_CATALOG environment variable.
func loadCatalog() (gear.Catalog, error) {
	path := viper.GetString("catalog")
	if path == "" {
		return nil, errors.NewValidationError("catalog", nil, "no catalog file configured (use --catalog)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var catalog gear.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return catalog, nil
}

// loadAliases reads the alias registry YAML file named by the --aliases
// flag, if one is configured. A missing registry is fine: resolution then
// relies on normalization and virtual suffix variants alone.
func loadAliases() (gear.AliasRegistry, error) {
	path := viper.GetString("aliases")
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var registry gear.AliasRegistry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return registry, nil
}

// loadRawMatches reads raw matcher output records from a YAML file, or from
// stdin when path is "-" or empty.
func loadRawMatches(path string) ([]reconcile.RawMatch, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
		path = "stdin"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var raws []reconcile.RawMatch
	if err := yaml.Unmarshal(data, &raws); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return raws, nil
}
