// Package storage persists uploaded files behind a portable blob interface.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local disk driver
	_ "gocloud.dev/blob/s3blob"   // s3 driver
	"gocloud.dev/gcerrors"

	"gobarber/config"
	"gobarber/internal/domain/lifecycle"
	"gobarber/internal/domain/service"
)

// blobStorage implements StorageProvider on top of a gocloud blob bucket.
// The bucket URL decides the backing driver (file:// locally, s3:// in production).
type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage opens the configured bucket and registers its shutdown hook.
func NewBlobStorage(lc fx.Lifecycle, cfg *config.Config) (service.StorageProvider, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Storage.BucketURL)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{bucket: bucket}, nil
}

// NewBucketStorage wraps an already opened bucket. Used by tests with in-memory buckets.
func NewBucketStorage(bucket *blob.Bucket) service.StorageProvider {
	return &blobStorage{bucket: bucket}
}

// SaveFile moves a temporary upload into the bucket and returns the stored name.
// The name is prefixed with a fresh UUID so concurrent uploads never collide.
func (s *blobStorage) SaveFile(ctx context.Context, tempPath string) (string, error) {
	file, err := os.Open(tempPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open temp file %s", tempPath)
	}
	defer file.Close()

	name := uuid.NewString() + "-" + filepath.Base(tempPath)

	writer, err := s.bucket.NewWriter(ctx, name, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open bucket writer for %s", name)
	}

	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write %s to bucket", name)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s to bucket", name)
	}

	// The temp file has served its purpose; a leftover is only noise.
	_ = os.Remove(tempPath)

	return name, nil
}

// DeleteFile removes a stored file. A missing file is not an error: the caller
// only cares that the name no longer resolves.
func (s *blobStorage) DeleteFile(ctx context.Context, name string) error {
	if err := s.bucket.Delete(ctx, name); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s from bucket", name)
	}

	return nil
}
