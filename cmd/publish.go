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
	"github.com/gnames/watchseed/internal/iopublish"
	"github.com/gnames/watchseed/internal/ioseed"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/spf13/cobra"
)

// getPublishCmd returns the publish command.
func getPublishCmd() *cobra.Command {
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the seed document to S3-compatible storage",
		Long: `Upload the written seed document to MinIO or AWS S3.

The seed is checked before upload, a seed with broken
references is not published. The bucket is created when it
does not exist. Storage settings are in the storage section of
~/.config/watchseed/config.yaml or WATCHSEED_STORAGE_* variables
(also read from ./.env).

Examples:
  watchseed publish
  watchseed publish --bucket seeds --key watch/seed.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPublish(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	publishCmd.Flags().StringP("bucket", "b", "",
		"bucket to upload to")
	publishCmd.Flags().StringP("key", "k", "",
		"object key of the seed")

	return publishCmd
}

// publishOptions converts publish flags into configuration options.
func publishOptions(cmd *cobra.Command) []config.Option {
	return stringOptions(cmd,
		stringFlag{"bucket", config.OptStorageBucket},
		stringFlag{"key", config.OptStorageObjectKey},
	)
}

func runPublish(cmd *cobra.Command) error {
	if pubOpts := publishOptions(cmd); len(pubOpts) > 0 {
		cfg.Update(pubOpts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, data, err := ioseed.Read(cfg.Paths.Output)
	if err != nil {
		return err
	}

	client, err := iopublish.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	_, err = iopublish.New(cfg.Storage, client).Publish(ctx, data)
	return err
}
