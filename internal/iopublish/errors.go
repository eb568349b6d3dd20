package iopublish

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/watchseed/pkg/errcode"
)

// ClientError is returned when the storage client cannot be created.
func ClientError(endpoint string, err error) error {
	msg := `Cannot create storage client for <em>%s</em>

<em>How to fix:</em>
  Check <em>storage</em> settings in ~/.config/watchseed/config.yaml
  or WATCHSEED_STORAGE_* variables`
	vars := []any{endpoint}

	return &gn.Error{
		Code: errcode.StorageClientError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create minio client: %w", err),
	}
}

// BucketError is returned when the bucket cannot be checked or created.
func BucketError(bucket string, err error) error {
	msg := `Cannot access bucket <em>%s</em>

<em>Possible causes:</em>
  - Storage service is not running
  - Wrong access or secret key
  - No permission to create buckets`
	vars := []any{bucket}

	return &gn.Error{
		Code: errcode.StorageBucketError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bucket %s: %w", bucket, err),
	}
}

// UploadError is returned when the seed upload fails.
func UploadError(location string, err error) error {
	msg := "Cannot upload seed to <em>%s</em>"
	vars := []any{location}

	return &gn.Error{
		Code: errcode.StorageUploadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("upload to %s failed: %w", location, err),
	}
}
