package ioseed

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
)

// SeedIntegrityError is returned when built records reference records
// that do not exist.
func SeedIntegrityError(err error) error {
	msg := `Built seed has broken references, nothing was written

%s`
	vars := []any{err.Error()}

	return &gn.Error{
		Code: errcode.SeedIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("seed integrity check failed: %w", err),
	}
}

// SeedEncodeError is returned when the seed cannot be serialized.
func SeedEncodeError(err error) error {
	msg := "Cannot encode seed document to JSON"

	return &gn.Error{
		Code: errcode.SeedEncodeError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot encode seed: %w", err),
	}
}

// CancelledError is returned when the run is interrupted between
// requests.
func CancelledError(err error) error {
	msg := "Fetching was cancelled, nothing was written"

	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("fetch cancelled: %w", err),
	}
}

// SeedDecodeError is returned when a written seed cannot be parsed.
func SeedDecodeError(path string, err error) error {
	msg := `Cannot parse seed document <em>%s</em>

Run <em>watchseed fetch</em> to write it again.`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.SeedDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode seed %s: %w", path, err),
	}
}
