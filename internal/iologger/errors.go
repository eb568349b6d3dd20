package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
)

// CreateLogFileError is returned when the log file cannot be opened.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot create log file <em>%s</em>

<em>How to fix:</em>
  Set <em>log.destination</em> to stderr in ~/.config/watchseed/config.yaml
  or export WATCHSEED_LOG_DESTINATION=stderr`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create log file %s: %w", path, err),
	}
}
