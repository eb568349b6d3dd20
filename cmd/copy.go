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
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/internal/iofs"
	"github.com/spf13/cobra"
)

// getCopyCmd returns the copy command.
func getCopyCmd() *cobra.Command {
	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the seed document into the front-end",
		Long: `Copy the written seed document into the front-end.

The seed is copied to app/public/seed.json. If the app/dist
directory exists, it is copied to app/dist/seed.json as well.
Destinations are set by paths.app_public and paths.app_dist.

Examples:
  watchseed fetch && watchseed copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCopy()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return copyCmd
}

func runCopy() error {
	src := cfg.Paths.Output
	res, err := iofs.CopySeed(src, cfg.Paths.AppPublic, cfg.Paths.AppDist)
	if err != nil {
		return err
	}

	for _, v := range res.Copied {
		gn.Info("Copied seed to <em>%s</em>", v)
	}
	for _, v := range res.Skipped {
		gn.Message("Skipped %s, its directory does not exist", v)
	}
	slog.Info("Seed copied", "source", src,
		"copied", res.Copied, "skipped", res.Skipped)
	return nil
}
