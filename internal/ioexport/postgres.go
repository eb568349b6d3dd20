package ioexport

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/watchseed/internal/iodb"
	"github.com/gnames/watchseed/pkg/db"
	"github.com/gnames/watchseed/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// exportPostgres replaces seed tables in PostgreSQL: drop, AutoMigrate,
// then CopyFrom for every table inside one transaction.
func exportPostgres(
	ctx context.Context,
	op db.Operator,
	rows *schema.Rows,
) error {
	if op == nil || op.Pool() == nil {
		return iodb.NotConnectedError()
	}
	pool := op.Pool()

	tables := schema.TableNames()
	slices.Reverse(tables)
	if err := op.DropTables(ctx, tables...); err != nil {
		return err
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}
	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return InsertError("", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range rows.Tables() {
		if len(t.Values) == 0 {
			continue
		}
		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{t.Name},
			t.Columns,
			pgx.CopyFromRows(t.Values),
		)
		if err != nil {
			return InsertError(t.Name, err)
		}
		slog.Debug("Rows copied", "table", t.Name, "rows", n)
	}

	if err = tx.Commit(ctx); err != nil {
		return InsertError("", err)
	}

	slog.Info("PostgreSQL export done", "rows", rows.Count())
	gn.Info("Exported %s rows to PostgreSQL",
		humanize.Comma(int64(rows.Count())))
	return nil
}
