/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/internal/iodb"
	"github.com/gnames/watchseed/internal/ioexport"
	"github.com/gnames/watchseed/internal/ioseed"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/db"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the seed document to SQLite or PostgreSQL",
		Long: `Store the written seed document in relational tables.

Tables: brands, collections, eras, era_events, variants.
List values (key facts, bracelet/strap, variant options) are
stored as JSON text.

SQLite file is recreated on every export. For PostgreSQL the
seed tables are dropped and created again, other tables are
not touched. Connection settings are in the database section
of ~/.config/watchseed/config.yaml.

Examples:
  watchseed export --sqlite data/seed.sqlite
  watchseed export --postgres
  watchseed export -s data/seed.sqlite -p`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringP("sqlite", "s", "",
		"SQLite file to create")
	exportCmd.Flags().BoolP("postgres", "p", false,
		"export to PostgreSQL")

	return exportCmd
}

// exportOptions converts export flags into configuration options.
func exportOptions(cmd *cobra.Command) []config.Option {
	res := stringOptions(cmd,
		stringFlag{"sqlite", config.OptExportSQLitePath},
	)
	return append(res,
		boolOption(cmd, "postgres", config.OptExportWithPostgres)...)
}

func runExport(cmd *cobra.Command) error {
	if exportOpts := exportOptions(cmd); len(exportOpts) > 0 {
		cfg.Update(exportOpts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sd, _, err := ioseed.Read(cfg.Paths.Output)
	if err != nil {
		return err
	}

	var op db.Operator
	if cfg.Export.WithPostgres {
		op = iodb.NewPgxOperator()
		if err = op.Connect(ctx, &cfg.Database); err != nil {
			return err
		}
		defer op.Close()

		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}

	return ioexport.New(cfg, op).Export(ctx, sd)
}
