// Package iohero implements hero.Fetcher. It loads the English Wikipedia
// intro of every catalog collection, maps its sentences to the era slugs
// of the collection and writes the hero content document.
package iohero

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/watchseed/internal/iofs"
	"github.com/gnames/watchseed/pkg/catalog"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/hero"
	"github.com/gnames/watchseed/pkg/wiki"
)

type fetcher struct {
	cfg    *config.Config
	loader catalog.Loader
	client wiki.Client
}

// New creates a hero content Fetcher.
func New(
	cfg *config.Config,
	loader catalog.Loader,
	client wiki.Client,
) hero.Fetcher {
	res := fetcher{cfg: cfg, loader: loader, client: client}
	return &res
}

// Run loads the catalog and era definitions, requests the intro of every
// collection in catalog order and writes the document. Collections
// without an era list are recorded without a request.
func (f *fetcher) Run(ctx context.Context) (*hero.Content, error) {
	startTime := time.Now()

	gn.Info("Loading catalog...")
	in, err := f.loader.Load()
	if err != nil {
		return nil, err
	}
	for _, w := range in.Warnings {
		gn.Warn("<warn>%s</warn>", w)
	}

	colls := in.Catalog.Collections
	gn.Info("Fetching Wikipedia intros of %s collections...",
		humanize.Comma(int64(len(colls))))

	var bar *pb.ProgressBar
	if f.cfg.WithProgress && len(colls) > 0 {
		bar = pb.Full.Start(len(colls))
		bar.Set(pb.CleanOnFinish, true)
	}
	res, err := f.collect(ctx, colls, in.EraDefinitions, bar)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, err
	}

	if err = f.write(res); err != nil {
		return nil, err
	}

	fetched, missing := res.Stats()
	elapsed := gnfmt.TimeString(time.Since(startTime).Seconds())
	slog.Info("Hero content complete",
		"fetched", fetched,
		"missing", missing,
		"path", f.cfg.Paths.HeroContent,
		"duration", elapsed,
	)
	gn.Info(`Fetched %s collections, %s missing. Written: <em>%s</em>
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(fetched)),
		humanize.Comma(int64(missing)),
		f.cfg.Paths.HeroContent,
		elapsed,
	)
	return res, nil
}

func (f *fetcher) collect(
	ctx context.Context,
	colls []catalog.CollectionConfig,
	eras catalog.EraDefinitions,
	bar *pb.ProgressBar,
) (*hero.Content, error) {
	res := hero.New()
	for _, cc := range colls {
		if err := ctx.Err(); err != nil {
			return nil, CancelledError(err)
		}
		if bar != nil {
			bar.Increment()
		}

		defs := eras[cc.Slug]
		if defs == nil {
			res.ByCollection[cc.Slug] = hero.NoEras()
			slog.Debug("Collection has no era list", "slug", cc.Slug)
			continue
		}

		title := hero.Title(cc)
		extract, err := f.client.Extract(ctx, title)
		if err != nil {
			return nil, err
		}
		if extract == "" {
			res.ByCollection[cc.Slug] = hero.Missing(title)
			slog.Warn("Intro is missing", "slug", cc.Slug, "title", title)
			continue
		}

		res.ByCollection[cc.Slug] = hero.ForCollection(title, extract, defs)
		slog.Debug("Hero content built", "slug", cc.Slug, "title", title)
	}
	return res, nil
}

func (f *fetcher) write(res *hero.Content) error {
	data, err := iofs.EncodeJSON(res)
	if err != nil {
		return HeroEncodeError(err)
	}
	return iofs.WriteFile(f.cfg.Paths.HeroContent, data)
}
