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
	"github.com/gnames/watchseed/internal/iohero"
	"github.com/gnames/watchseed/internal/iowiki"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/spf13/cobra"
)

// getHeroCmd returns the hero command.
func getHeroCmd() *cobra.Command {
	heroCmd := &cobra.Command{
		Use:   "hero",
		Short: "Fetch Wikipedia intros as hero content for collection eras",
		Long: `Build hero content from English Wikipedia article intros.

For every collection of the catalog that has an era list, the intro
of its article (up to 10 sentences) is split into sentences and the
sentences are assigned to eras in order. Each era gets a summary
sentence and a subline of at most 80 characters. Collections without
an era list are recorded without a request.

The result is written to data/wikipedia_hero_content.json by default.
Nothing is written if any request fails.

Examples:
  watchseed hero
  watchseed hero --eras data/era_definitions.yaml
  watchseed hero -o /tmp/hero.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runHero(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	heroCmd.Flags().StringP("catalog", "c", "",
		"brand and collection catalog (JSON or YAML)")
	heroCmd.Flags().String("eras", "",
		"era definitions file")
	heroCmd.Flags().StringP("output", "o", "",
		"hero content document to write")
	heroCmd.Flags().Bool("no-progress", false,
		"do not show progress bar")

	return heroCmd
}

// heroOptions converts hero flags into configuration options.
func heroOptions(cmd *cobra.Command) []config.Option {
	res := stringOptions(cmd,
		stringFlag{"catalog", config.OptPathsCatalog},
		stringFlag{"eras", config.OptPathsEraDefinitions},
		stringFlag{"output", config.OptPathsHeroContent},
	)
	noProgress := boolOption(cmd, "no-progress", func(b bool) config.Option {
		return config.OptWithProgress(!b)
	})
	return append(res, noProgress...)
}

func runHero(cmd *cobra.Command) error {
	if heroOpts := heroOptions(cmd); len(heroOpts) > 0 {
		cfg.Update(heroOpts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := iocatalog.New(cfg)
	client := iowiki.New(cfg.API)
	_, err := iohero.New(cfg, loader, client).Run(ctx)
	return err
}
