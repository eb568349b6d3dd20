package iohero

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
)

// HeroEncodeError is returned when hero content cannot be serialized.
func HeroEncodeError(err error) error {
	msg := "Cannot encode hero content to JSON"

	return &gn.Error{
		Code: errcode.HeroEncodeError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot encode hero content: %w", err),
	}
}

// CancelledError is returned when the run is interrupted between
// requests.
func CancelledError(err error) error {
	msg := "Fetching hero content was cancelled, nothing was written"

	return &gn.Error{
		Code: errcode.HeroCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("hero content cancelled: %w", err),
	}
}
