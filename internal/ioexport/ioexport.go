// Package ioexport implements seed.Exporter. It stores seed records in a
// SQLite file and/or a PostgreSQL database.
// This is an impure I/O package.
package ioexport

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/db"
	"github.com/gnames/watchseed/pkg/schema"
	"github.com/gnames/watchseed/pkg/seed"
)

type exporter struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates an Exporter. The operator is used only for PostgreSQL
// export and must be connected by the caller; it can be nil otherwise.
func New(cfg *config.Config, op db.Operator) seed.Exporter {
	return &exporter{cfg: cfg, operator: op}
}

// Export writes the seed to every selected target.
func (e *exporter) Export(ctx context.Context, s *seed.Seed) error {
	sqlitePath := e.cfg.Export.SQLitePath
	withPG := e.cfg.Export.WithPostgres
	if sqlitePath == "" && !withPG {
		return NothingToExportError()
	}

	startTime := time.Now()
	rows, err := schema.FromSeed(s)
	if err != nil {
		return RowsError(err)
	}

	if sqlitePath != "" {
		if err = exportSQLite(ctx, sqlitePath, rows); err != nil {
			return err
		}
	}

	if withPG {
		if err = exportPostgres(ctx, e.operator, rows); err != nil {
			return err
		}
	}

	slog.Info("Export complete",
		"rows", rows.Count(),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return nil
}
