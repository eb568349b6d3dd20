// compare_export compares a seed document with its PostgreSQL export.
// This is a temporary tool for validating the export command.
//
// Usage:
//
//	go run tools/compare_export.go --seed data/seed.json --host localhost --port 5432 --user postgres --password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gnames/watchseed/internal/iodb"
	"github.com/gnames/watchseed/internal/ioseed"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type countResult struct {
	Table    string
	Seed     int
	Database int
}

func main() {
	seedPath := flag.String("seed", "data/seed.json", "Seed document")
	host := flag.String("host", "localhost", "PostgreSQL host")
	port := flag.Int("port", 5432, "PostgreSQL port")
	user := flag.String("user", "postgres", "PostgreSQL user")
	password := flag.String("password", "", "PostgreSQL password")
	database := flag.String("database", "watchseed", "PostgreSQL database")

	flag.Parse()

	ctx := context.Background()

	sd, _, err := ioseed.Read(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed: %v", err)
	}
	rows, err := schema.FromSeed(sd)
	if err != nil {
		log.Fatalf("Failed to convert seed: %v", err)
	}

	op := iodb.NewPgxOperator()
	err = op.Connect(ctx, &config.DatabaseConfig{
		Host:     *host,
		Port:     *port,
		User:     *user,
		Password: *password,
		Database: *database,
		SSLMode:  "disable",
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer op.Close()

	fmt.Printf("Comparing %s with %s\n\n", *seedPath, *database)

	fmt.Println("1. Record Counts")
	fmt.Println("----------------")
	counts, err := compareCounts(ctx, op.Pool(), rows)
	if err != nil {
		log.Fatalf("Failed to compare counts: %v", err)
	}

	fmt.Println("\n2. Collection QIDs")
	fmt.Println("------------------")
	qidsMatch, err := compareQIDs(ctx, op.Pool(), rows)
	if err != nil {
		log.Fatalf("Failed to compare QIDs: %v", err)
	}

	ok := qidsMatch
	for _, c := range counts {
		if c.Seed != c.Database {
			ok = false
		}
	}
	if !ok {
		fmt.Println("\nExport differs from seed")
		os.Exit(1)
	}
	fmt.Println("\nExport matches seed")
}

func compareCounts(
	ctx context.Context,
	pool *pgxpool.Pool,
	rows *schema.Rows,
) ([]countResult, error) {
	var res []countResult
	for _, tbl := range rows.Tables() {
		var n int
		q := "SELECT COUNT(*) FROM " + pgx.Identifier{tbl.Name}.Sanitize()
		if err := pool.QueryRow(ctx, q).Scan(&n); err != nil {
			return nil, err
		}
		cr := countResult{Table: tbl.Name, Seed: len(tbl.Values), Database: n}
		mark := "ok"
		if cr.Seed != cr.Database {
			mark = "DIFF"
		}
		fmt.Printf("  %-12s seed: %6d  db: %6d  %s\n",
			cr.Table, cr.Seed, cr.Database, mark)
		res = append(res, cr)
	}
	return res, nil
}

func compareQIDs(
	ctx context.Context,
	pool *pgxpool.Pool,
	rows *schema.Rows,
) (bool, error) {
	q := "SELECT COALESCE(wikidata_qid, '') FROM collections WHERE id = $1"
	match := true
	for _, c := range rows.Collections {
		var qid string
		err := pool.QueryRow(ctx, q, c.ID).Scan(&qid)
		if err == pgx.ErrNoRows {
			fmt.Printf("  %-30s missing\n", c.ID)
			match = false
			continue
		}
		if err != nil {
			return false, err
		}
		if qid != c.WikidataQID.String {
			fmt.Printf("  %-30s seed: %s db: %s\n",
				c.ID, c.WikidataQID.String, qid)
			match = false
		}
	}
	if match {
		fmt.Printf("  %d collections match\n", len(rows.Collections))
	}
	return match, nil
}
