// Package iopublish implements seed.Publisher for S3-compatible object
// storage (MinIO, AWS S3).
// This is an impure I/O package that uploads the seed document.
package iopublish

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnuuid"
	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/seed"
	"github.com/minio/minio-go/v7"
)

const contentType = "application/json"

type publisher struct {
	cfg    config.StorageConfig
	client StorageClient
}

// New creates a Publisher that uploads with the given client.
func New(cfg config.StorageConfig, client StorageClient) seed.Publisher {
	return &publisher{cfg: cfg, client: client}
}

// Publish uploads data as the configured object. The bucket is created
// when it does not exist. The content fingerprint is stored in the object
// metadata.
func (p *publisher) Publish(ctx context.Context, data []byte) (string, error) {
	bucket := p.cfg.Bucket
	key := p.cfg.ObjectKey
	location := bucket + "/" + key

	if err := p.ensureBucket(ctx); err != nil {
		return "", err
	}

	fingerprint := gnuuid.New(string(data)).String()
	opts := minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"fingerprint": fingerprint},
	}
	info, err := p.client.PutObject(
		ctx, bucket, key, bytes.NewReader(data), int64(len(data)), opts,
	)
	if err != nil {
		return "", UploadError(location, err)
	}

	slog.Info("Seed published",
		"location", location,
		"bytes", info.Size,
		"etag", info.ETag,
		"fingerprint", fingerprint,
	)
	gn.Info("Published <em>%s</em> (%s, fingerprint %s)",
		location, humanize.Bytes(uint64(len(data))), fingerprint)
	return location, nil
}

func (p *publisher) ensureBucket(ctx context.Context) error {
	bucket := p.cfg.Bucket
	exists, err := p.client.BucketExists(ctx, bucket)
	if err != nil {
		return BucketError(bucket, err)
	}
	if exists {
		return nil
	}

	opts := minio.MakeBucketOptions{Region: p.cfg.Region}
	if err = p.client.MakeBucket(ctx, bucket, opts); err != nil {
		return BucketError(bucket, err)
	}
	slog.Info("Bucket created", "bucket", bucket)
	gn.Message("Created bucket <em>%s</em>", bucket)
	return nil
}
