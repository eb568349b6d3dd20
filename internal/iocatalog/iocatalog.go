// Package iocatalog loads the catalog, overrides and era definitions from
// the filesystem.
package iocatalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/watchseed/pkg/catalog"
	"github.com/gnames/watchseed/pkg/config"
	"gopkg.in/yaml.v3"
)

type iocatalog struct {
	paths config.PathsConfig
}

// New creates a catalog.Loader reading files from the configured paths.
func New(cfg *config.Config) catalog.Loader {
	res := iocatalog{paths: cfg.Paths}
	return &res
}

// Load reads the required catalog and the optional overrides and era
// definitions. Absent or malformed optional files are replaced by empty
// ones and reported in Input.Warnings.
func (c *iocatalog) Load() (*catalog.Input, error) {
	path := c.paths.Catalog
	var cat catalog.Catalog
	if err := decodeFile(path, &cat); err != nil {
		return nil, CatalogReadError(path, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, CatalogInvalidError(path, err)
	}
	slog.Info("Catalog loaded", "path", path,
		"brands", len(cat.Brands), "collections", len(cat.Collections))

	res := catalog.Input{
		Catalog:        &cat,
		Overrides:      &catalog.Overrides{},
		EraDefinitions: catalog.EraDefinitions{},
	}

	var ovr catalog.Overrides
	if warn := loadOptional(c.paths.Overrides, &ovr); warn != "" {
		res.Warnings = append(res.Warnings, warn)
	} else {
		res.Overrides = &ovr
	}

	var eras catalog.EraDefinitions
	if warn := loadOptional(c.paths.EraDefinitions, &eras); warn != "" {
		res.Warnings = append(res.Warnings, warn)
	} else if eras != nil {
		res.EraDefinitions = eras
	}
	res.Warnings = append(res.Warnings, res.EraDefinitions.Validate(&cat)...)

	return &res, nil
}

// loadOptional decodes an optional file. It returns a warning when the
// file exists but cannot be used. A missing file is not reported.
func loadOptional(path string, out any) string {
	if path == "" {
		return ""
	}
	err := decodeFile(path, out)
	if err == nil {
		slog.Info("Optional input loaded", "path", path)
		return ""
	}
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("Optional input not found", "path", path)
		return ""
	}
	slog.Warn("Cannot use optional input", "path", path, "error", err)
	return fmt.Sprintf("cannot use %s, ignoring it: %s", path, err)
}

// decodeFile decodes YAML for .yaml/.yml files and JSON otherwise.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		enc := gnfmt.GNjson{}
		return enc.Decode(data, out)
	}
}
