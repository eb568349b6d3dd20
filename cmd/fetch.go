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
	"github.com/gnames/watchseed/internal/iocatalog"
	"github.com/gnames/watchseed/internal/ioseed"
	"github.com/gnames/watchseed/internal/iowiki"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/spf13/cobra"
)

// getFetchCmd returns the fetch command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getFetchCmd() *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch Wikipedia and Wikidata data into the seed document",
		Long: `Build the seed document from the brand and collection catalog.

This command:
  1. Reads the catalog, collection overrides and era definitions
  2. Resolves Wikidata QIDs from Wikipedia titles, falling back
     to Wikidata search
  3. Builds brands and collections from Wikidata claims
  4. Adds hand-authored or fallback eras and one stub variant per era
  5. Writes the seed document (data/seed.json by default)

Nothing is written if any request fails.

Examples:
  watchseed fetch
  watchseed
  watchseed fetch --catalog data/config.yaml --no-progress
  watchseed fetch -o /tmp/seed.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFetch(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	fetchCmd.Flags().StringP("catalog", "c", "",
		"brand and collection catalog (JSON or YAML)")
	fetchCmd.Flags().String("overrides", "",
		"collection overrides file")
	fetchCmd.Flags().String("eras", "",
		"era definitions file")
	fetchCmd.Flags().StringP("output", "o", "",
		"seed document to write")
	fetchCmd.Flags().Bool("no-progress", false,
		"do not show progress bar")

	return fetchCmd
}

// fetchOptions converts fetch flags into configuration options.
func fetchOptions(cmd *cobra.Command) []config.Option {
	res := stringOptions(cmd,
		stringFlag{"catalog", config.OptPathsCatalog},
		stringFlag{"overrides", config.OptPathsOverrides},
		stringFlag{"eras", config.OptPathsEraDefinitions},
		stringFlag{"output", config.OptPathsOutput},
	)
	noProgress := boolOption(cmd, "no-progress", func(b bool) config.Option {
		return config.OptWithProgress(!b)
	})
	return append(res, noProgress...)
}

func runFetch(cmd *cobra.Command) error {
	if fetchOpts := fetchOptions(cmd); len(fetchOpts) > 0 {
		cfg.Update(fetchOpts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := iocatalog.New(cfg)
	client := iowiki.New(cfg.API)
	sdr := ioseed.New(cfg, loader, client)
	_, err := sdr.Run(ctx)
	return err
}
