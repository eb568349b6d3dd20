package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
)

// NothingToExportError is returned when no export target is selected.
func NothingToExportError() error {
	msg := `No export target selected

<em>How to fix:</em>
  - Export to SQLite: <em>watchseed export --sqlite data/seed.sqlite</em>
  - Export to PostgreSQL: <em>watchseed export --postgres</em>`

	return &gn.Error{
		Code: errcode.ExportNothingError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("no export target"),
	}
}

// RowsError is returned when seed records cannot be converted to rows.
func RowsError(err error) error {
	msg := "Cannot convert seed records to table rows"

	return &gn.Error{
		Code: errcode.SeedEncodeError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot convert seed to rows: %w", err),
	}
}

// SQLiteOpenError is returned when the SQLite file cannot be created.
func SQLiteOpenError(path string, err error) error {
	msg := "Cannot create SQLite database <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportSQLiteOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create sqlite %s: %w", path, err),
	}
}

// CreateSchemaError is returned when tables cannot be created.
func CreateSchemaError(err error) error {
	msg := "Cannot create seed tables"

	return &gn.Error{
		Code: errcode.ExportSchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot create tables: %w", err),
	}
}

// GORMConnectionError is returned when GORM cannot use the pool.
func GORMConnectionError(err error) error {
	msg := "Cannot open GORM session on the database connection"

	return &gn.Error{
		Code: errcode.ExportSchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("gorm connection failed: %w", err),
	}
}

// InsertError is returned when rows of a table cannot be stored. The
// transaction is rolled back.
func InsertError(table string, err error) error {
	msg := "Cannot insert rows into <em>%s</em>, nothing was stored"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.ExportInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("insert into %s failed: %w", table, err),
	}
}
