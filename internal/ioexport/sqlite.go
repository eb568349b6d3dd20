package ioexport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnsys"
	"github.com/gnames/watchseed/pkg/schema"
	_ "modernc.org/sqlite"
)

// exportSQLite recreates the SQLite file and stores all rows in one
// transaction.
func exportSQLite(ctx context.Context, path string, rows *schema.Rows) error {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return SQLiteOpenError(path, err)
	}
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return SQLiteOpenError(path, err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteOpenError(path, err)
	}
	defer sqlDB.Close()

	if err = createTables(ctx, sqlDB); err != nil {
		return err
	}

	if err = insertAll(ctx, sqlDB, rows.Tables()); err != nil {
		return err
	}

	slog.Info("SQLite export done", "path", path, "rows", rows.Count())
	gn.Info("Exported %s rows to SQLite <em>%s</em>",
		humanize.Comma(int64(rows.Count())), path)
	return nil
}

// createTables runs table and index DDL of all models.
func createTables(ctx context.Context, sqlDB *sql.DB) error {
	for _, m := range schema.AllModels() {
		stmts := append([]string{m.TableDDL()}, m.IndexDDL()...)
		for _, q := range stmts {
			if _, err := sqlDB.ExecContext(ctx, q); err != nil {
				return CreateSchemaError(err)
			}
		}
	}
	return nil
}

// insertAll inserts rows of all tables inside one transaction. Any
// failure rolls back everything.
func insertAll(ctx context.Context, sqlDB *sql.DB, tables []schema.Table) error {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return InsertError("", err)
	}

	for _, t := range tables {
		q := insertSQL(t)
		for _, vals := range t.Values {
			if _, err = tx.ExecContext(ctx, q, vals...); err != nil {
				_ = tx.Rollback()
				return InsertError(t.Name, err)
			}
		}
		slog.Debug("Rows inserted", "table", t.Name, "rows", len(t.Values))
	}

	if err = tx.Commit(); err != nil {
		return InsertError("", err)
	}
	return nil
}

func insertSQL(t schema.Table) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(t.Columns, ", "), marks)
}
