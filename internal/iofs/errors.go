package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
)

// CreateDirError is returned when a config, log or output directory
// cannot be created.
func CreateDirError(dir string, err error) error {
	msg := "Cannot create directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn.Name(), err),
	}
}

// CopyFileError is returned when the seed or the config template cannot
// be written to its destination.
func CopyFileError(file string, err error) error {
	msg := "Cannot copy file to <em>%s</em>"
	vars := []any{file}
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot copy file to %s: %w", file, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
		Msg:  msg,
		Vars: vars,
	}
}

// WriteFileError is returned when the seed document cannot be written.
// A previous seed stays untouched.
func WriteFileError(path string, err error) error {
	msg := `Cannot write <em>%s</em>

The previous file, if any, was not changed.`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.WriteFileError,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
		Msg:  msg,
		Vars: vars,
	}
}

// SeedNotFoundError is returned by commands that need a written seed.
func SeedNotFoundError(path string) error {
	msg := `Seed file <em>%s</em> does not exist

<em>How to fix:</em>
  Run <em>watchseed fetch</em> first`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SeedNotFoundError,
		Err:  fmt.Errorf("seed file %s does not exist", path),
		Msg:  msg,
		Vars: vars,
	}
}
