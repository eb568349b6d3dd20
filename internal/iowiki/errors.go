package iowiki

import (
	"fmt"
	"net/http"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
)

// APIRequestError is returned when a request cannot be sent or its
// response cannot be read (network failure, timeout, cancellation).
func APIRequestError(endpoint string, err error) error {
	msg := `Request to <em>%s</em> failed

<em>Possible causes:</em>
  - No network connection
  - The service did not answer within the timeout
  - The run was interrupted`
	vars := []any{endpoint}
	return &gn.Error{
		Code: errcode.APIRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("request to %s failed: %w", endpoint, err),
	}
}

// APIStatusError is returned for non-200 responses.
func APIStatusError(endpoint string, status int) error {
	msg := "<em>%s</em> answered with status %d (%s)"
	vars := []any{endpoint, status, http.StatusText(status)}
	return &gn.Error{
		Code: errcode.APIStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unexpected status %d from %s", status, endpoint),
	}
}

// APIDecodeError is returned when a response body is not the expected
// JSON document.
func APIDecodeError(endpoint string, err error) error {
	msg := "Cannot decode JSON response from <em>%s</em>"
	vars := []any{endpoint}
	return &gn.Error{
		Code: errcode.APIDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode response from %s: %w", endpoint, err),
	}
}

// APIResponseError is returned when MediaWiki reports an error inside a
// successful response.
func APIResponseError(endpoint, code, info string) error {
	msg := "<em>%s</em> returned error '%s': %s"
	vars := []any{endpoint, code, info}
	return &gn.Error{
		Code: errcode.APIResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("api error from %s: %s: %s", endpoint, code, info),
	}
}
