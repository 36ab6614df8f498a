// Package storage writes report exports to a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"
	"path"

	"beautymarket/config"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket *blob.Bucket
	prefix string
}

// NewBlobStorage writes objects under prefix in bucket.
func NewBlobStorage(bucket *blob.Bucket, prefix string) service.ReportStorage {
	return &blobStorage{bucket: bucket, prefix: prefix}
}

func (s *blobStorage) Write(ctx context.Context, key, contentType string, data []byte) (string, error) {
	objectKey := path.Join(s.prefix, key)

	err := s.bucket.WriteAll(ctx, objectKey, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "write %s", objectKey)
	}

	return objectKey, nil
}

// disabledStorage rejects exports when no bucket is configured.
type disabledStorage struct{}

func (disabledStorage) Write(context.Context, string, string, []byte) (string, error) {
	return "", domainerrors.ErrExportUnavailable
}

// Params holds dependencies for the storage provider.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured export bucket.
func New(params Params) (service.ReportStorage, error) {
	cfg := params.Config.Export
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Export bucket not configured, exports disabled")

		return disabledStorage{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.Prefix), nil
}
