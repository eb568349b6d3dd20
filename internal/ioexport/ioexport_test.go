package ioexport

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gnames/gn"
	"github.com/gnames/watchseed/internal/iotesting"
	"github.com/gnames/watchseed/pkg/catalog"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/errcode"
	"github.com/gnames/watchseed/pkg/schema"
	"github.com/gnames/watchseed/pkg/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() *seed.Seed {
	b := seed.NewBuilder("https://en.wikipedia.org/wiki/")
	res := seed.New()
	res.Brands = append(res.Brands, b.Brand(catalog.BrandConfig{
		ID: "omega", Slug: "omega", Name: "Omega", WikipediaTitle: "Omega_SA",
	}, "Q659379", nil, nil, 1))
	for i, name := range []string{"Speedmaster", "Seamaster"} {
		coll := b.Collection(catalog.CollectionConfig{
			Slug: strings.ToLower(name), BrandID: "omega", Name: name,
			WikipediaTitle: "Omega_" + name,
		}, "", nil, &catalog.Overrides{}, i+1)
		res.Collections = append(res.Collections, coll)
	}
	res.AddEras(res.Collections[0], []catalog.EraDefinition{
		{
			Slug: "moon", Name: "ムーン", StartYear: 1965,
			Events: []catalog.Event{{Year: 1969, Label: "Moon landing"}},
		},
		{Slug: "modern", Name: "現行", StartYear: 2021},
	})
	res.AddEras(res.Collections[1], nil)
	return res
}

func sqliteConfig(path string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptExportSQLitePath(path)})
	return cfg
}

func count(t *testing.T, sqlDB *sql.DB, table string) int {
	var res int
	err := sqlDB.QueryRow("SELECT count(*) FROM " + table).Scan(&res)
	require.NoError(t, err)
	return res
}

func TestExportNothing(t *testing.T) {
	err := New(config.New(), nil).Export(context.Background(), testSeed())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ExportNothingError, gnErr.Code)
}

func TestExportSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "seed.sqlite")
	exp := New(sqliteConfig(path), nil)
	ctx := context.Background()

	// second export recreates the file instead of failing on duplicates
	for range 2 {
		require.NoError(t, exp.Export(ctx, testSeed()))
	}

	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, count(t, sqlDB, "brands"))
	assert.Equal(t, 2, count(t, sqlDB, "collections"))
	assert.Equal(t, 3, count(t, sqlDB, "eras"))
	assert.Equal(t, 1, count(t, sqlDB, "era_events"))
	assert.Equal(t, 3, count(t, sqlDB, "variants"))

	var qid sql.NullString
	var founded sql.NullInt64
	err = sqlDB.QueryRow(
		"SELECT wikidata_qid, founded_year FROM brands WHERE id = 'omega'",
	).Scan(&qid, &founded)
	require.NoError(t, err)
	assert.Equal(t, "Q659379", qid.String)
	assert.False(t, founded.Valid)

	var facts string
	err = sqlDB.QueryRow(
		"SELECT key_facts FROM variants WHERE era_id = 'era-speedmaster-moon'",
	).Scan(&facts)
	require.NoError(t, err)
	assert.Equal(t, "[]", facts)
}

func TestInsertAllMock(t *testing.T) {
	rows, err := schema.FromSeed(testSeed())
	require.NoError(t, err)
	tables := rows.Tables()

	t.Run("commit", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		mock.ExpectBegin()
		for _, tbl := range tables {
			for range tbl.Values {
				mock.ExpectExec("INSERT INTO " + tbl.Name + " ").
					WillReturnResult(sqlmock.NewResult(1, 1))
			}
		}
		mock.ExpectCommit()

		require.NoError(t, insertAll(context.Background(), sqlDB, tables))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		dbErr := errors.New("constraint failed")
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO brands ").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO collections ").
			WillReturnError(dbErr)
		mock.ExpectRollback()

		err = insertAll(context.Background(), sqlDB, tables)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.ExportInsertError, gnErr.Code)
		assert.ErrorIs(t, gnErr.Err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInsertSQL(t *testing.T) {
	tbl := schema.Table{Name: "era_events", Columns: schema.Columns(schema.EraEvent{})}
	assert.Equal(t,
		"INSERT INTO era_events (era_id, position, year, label) VALUES (?, ?, ?, ?)",
		insertSQL(tbl))
}

func TestExportPostgres(t *testing.T) {
	op := iotesting.Connect(t)
	ctx := context.Background()

	cfg := config.New()
	cfg.Update([]config.Option{config.OptExportWithPostgres(true)})
	exp := New(cfg, op)

	for range 2 {
		require.NoError(t, exp.Export(ctx, testSeed()))
	}

	var n int
	err := op.Pool().QueryRow(ctx, "SELECT count(*) FROM variants").Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	err = op.Pool().QueryRow(ctx, "SELECT count(*) FROM era_events").Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
