package ioseed

import (
	"log/slog"

	"github.com/gnames/gnfmt"
	"github.com/gnames/watchseed/internal/iofs"
	"github.com/gnames/watchseed/pkg/seed"
)

// Read loads a written seed document and verifies its references. It
// returns the raw bytes too, so they can be published unchanged.
func Read(path string) (*seed.Seed, []byte, error) {
	if !iofs.FileExists(path) {
		return nil, nil, iofs.SeedNotFoundError(path)
	}
	data, err := iofs.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var res seed.Seed
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		return nil, nil, SeedDecodeError(path, err)
	}
	if err = res.Check(); err != nil {
		return nil, nil, SeedIntegrityError(err)
	}

	st := res.Stats()
	slog.Info("Seed loaded", "path", path,
		"brands", st.Brands, "collections", st.Collections,
		"eras", st.Eras, "variants", st.Variants)
	return &res, data, nil
}
