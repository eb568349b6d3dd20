package iocatalog

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
)

// CatalogReadError creates an error for when the catalog cannot be read
// or decoded.
func CatalogReadError(path string, err error) error {
	msg := `Cannot load catalog

<em>Catalog file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid JSON or YAML format
  - Permission denied

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Point to another file: <em>watchseed fetch --catalog PATH</em>`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.CatalogReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load catalog: %w", err),
	}
}

// CatalogInvalidError creates an error for a catalog that was read but
// is not consistent.
func CatalogInvalidError(path string, err error) error {
	msg := `Catalog <em>%s</em> is invalid: %s`
	vars := []any{path, err.Error()}

	return &gn.Error{
		Code: errcode.CatalogInvalidError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid catalog: %w", err),
	}
}
