// Package ioseed implements seed.Seeder. It resolves catalog entries to
// Wikidata entities through a wiki.Client, builds the records and writes
// the seed document.
// This is an impure I/O package that performs network requests and writes
// the output file.
package ioseed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/gnames/watchseed/internal/iofs"
	"github.com/gnames/watchseed/pkg/catalog"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/seed"
	"github.com/gnames/watchseed/pkg/wiki"
	"github.com/gnames/watchseed/pkg/wikidata"
)

type seeder struct {
	cfg     *config.Config
	loader  catalog.Loader
	client  wiki.Client
	builder *seed.Builder

	// labels caches English labels of country entities for one run.
	labels map[string]*string

	bar     *pb.ProgressBar
	pending []notice
}

// notice is a console line postponed while a progress bar is drawn.
type notice struct {
	warn bool
	msg  string
}

// New creates a Seeder.
func New(
	cfg *config.Config,
	loader catalog.Loader,
	client wiki.Client,
) seed.Seeder {
	res := seeder{
		cfg:     cfg,
		loader:  loader,
		client:  client,
		builder: seed.NewBuilder(cfg.API.ArticleURL),
		labels:  make(map[string]*string),
	}
	return &res
}

// Run loads the catalog, fetches brands and collections, builds eras with
// their placeholder variants and writes the seed document. The output is
// written only after every request succeeded and references are
// consistent.
func (s *seeder) Run(ctx context.Context) (*seed.Seed, error) {
	startTime := time.Now()

	gn.Info("Loading catalog...")
	in, err := s.loader.Load()
	if err != nil {
		return nil, err
	}
	for _, w := range in.Warnings {
		gn.Warn("<warn>%s</warn>", w)
	}

	res := seed.New()
	cat := in.Catalog
	s.startBar(len(cat.Brands) + len(cat.Collections))

	s.phase("1/3", "Fetching brands")
	if err = s.fetchBrands(ctx, res, cat.Brands); err != nil {
		s.stopBar()
		return nil, err
	}

	s.phase("2/3", "Fetching collections")
	err = s.fetchCollections(ctx, res, cat.Collections, in.Overrides)
	s.stopBar()
	if err != nil {
		return nil, err
	}

	gn.Info("(3/3) Building eras and variants...")
	for _, coll := range res.Collections {
		res.AddEras(coll, in.EraDefinitions[coll.Slug])
	}

	if err = res.Check(); err != nil {
		return nil, SeedIntegrityError(err)
	}

	if err = s.write(res); err != nil {
		return nil, err
	}

	st := res.Stats()
	elapsed := gnfmt.TimeString(time.Since(startTime).Seconds())
	slog.Info("Seed complete",
		"brands", st.Brands,
		"collections", st.Collections,
		"eras", st.Eras,
		"variants", st.Variants,
		"duration", elapsed,
	)
	gn.Info(`Seed complete
brands: %s, collections: %s, eras: %s, variants: %s
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(st.Brands)),
		humanize.Comma(int64(st.Collections)),
		humanize.Comma(int64(st.Eras)),
		humanize.Comma(int64(st.Variants)),
		elapsed,
	)

	return res, nil
}

func (s *seeder) fetchBrands(
	ctx context.Context,
	res *seed.Seed,
	brands []catalog.BrandConfig,
) error {
	for i, bc := range brands {
		if err := ctx.Err(); err != nil {
			return CancelledError(err)
		}

		qid, err := s.resolveQID(ctx, "brand ", bc.Name, bc.WikipediaTitle,
			bc.Name)
		if err != nil {
			return err
		}
		e, err := s.entity(ctx, qid)
		if err != nil {
			return err
		}

		var country *string
		if !e.IsMissing() {
			country, err = s.countryName(ctx, wikidata.Country(e))
			if err != nil {
				return err
			}
		}

		b := s.builder.Brand(bc, qid, e, country, i+1)
		res.Brands = append(res.Brands, b)
		slog.Debug("Brand built", "id", b.ID, "qid", qid)
		s.tick()
	}
	return nil
}

func (s *seeder) fetchCollections(
	ctx context.Context,
	res *seed.Seed,
	colls []catalog.CollectionConfig,
	overrides *catalog.Overrides,
) error {
	brandNames := make(map[string]string, len(res.Brands))
	for _, b := range res.Brands {
		brandNames[b.ID] = b.Name
	}

	for i, cc := range colls {
		if err := ctx.Err(); err != nil {
			return CancelledError(err)
		}

		qid := cc.WikidataQIDOverride
		if qid == "" {
			var err error
			qid, err = s.resolveQID(ctx, "", cc.Name, cc.WikipediaTitle,
				brandNames[cc.BrandID]+" "+cc.Name,
				cc.Name,
			)
			if err != nil {
				return err
			}
		}

		e, err := s.entity(ctx, qid)
		if err != nil {
			return err
		}

		c := s.builder.Collection(cc, qid, e, overrides, i+1)
		res.Collections = append(res.Collections, c)
		slog.Debug("Collection built", "id", c.ID, "qid", qid)
		s.tick()
	}
	return nil
}

// write encodes the seed with 2-space indentation and writes it
// atomically to the output path.
func (s *seeder) write(res *seed.Seed) error {
	data, err := iofs.EncodeJSON(res)
	if err != nil {
		return SeedEncodeError(err)
	}

	path := s.cfg.Paths.Output
	if err = iofs.WriteFile(path, data); err != nil {
		return err
	}

	fingerprint := gnuuid.New(string(data)).String()
	slog.Info("Seed written",
		"path", path,
		"bytes", len(data),
		"fingerprint", fingerprint,
	)
	gn.Info("Written: <em>%s</em> (%s, fingerprint %s)",
		path, humanize.Bytes(uint64(len(data))), fingerprint)
	return nil
}

// phase announces a step, or renames the progress bar when it is on.
func (s *seeder) phase(step, name string) {
	if s.bar != nil {
		s.bar.Set("prefix", name+": ")
		return
	}
	gn.Info("(%s) %s...", step, name)
}

func (s *seeder) startBar(total int) {
	if !s.cfg.WithProgress || total == 0 {
		return
	}
	s.bar = pb.Full.Start(total)
	s.bar.Set(pb.CleanOnFinish, true)
}

func (s *seeder) tick() {
	if s.bar != nil {
		s.bar.Increment()
	}
}

// stopBar finishes the progress bar and prints notices collected while
// it was active.
func (s *seeder) stopBar() {
	if s.bar != nil {
		s.bar.Finish()
		s.bar = nil
	}
	for _, n := range s.pending {
		s.print(n)
	}
	s.pending = nil
}

func (s *seeder) note(format string, args ...any) {
	s.notify(notice{msg: fmt.Sprintf(format, args...)})
}

func (s *seeder) warn(format string, args ...any) {
	s.notify(notice{warn: true, msg: fmt.Sprintf(format, args...)})
}

func (s *seeder) notify(n notice) {
	if s.bar != nil {
		s.pending = append(s.pending, n)
		return
	}
	s.print(n)
}

func (s *seeder) print(n notice) {
	if n.warn {
		gn.Warn("<warn>WARN</warn>: %s", n.msg)
		return
	}
	gn.Message("  %s", n.msg)
}
