// Package storage persists uploaded media through gocloud.dev blob buckets,
// keeping the bucket backend (local filesystem, in-memory, cloud) a URL
// configuration detail.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"pawmart/config"
	"pawmart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobMediaStore implements service.MediaStore on a gocloud.dev bucket.
type blobMediaStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the media store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobMediaStore opens the configured bucket and returns it as a
// service.MediaStore. An empty media config falls back to an in-memory
// bucket so development does not require any setup.
func NewBlobMediaStore(params Params) (service.MediaStore, error) {
	bucketURL := "mem://"
	publicBaseURL := "/media"
	if params.Config.Media != nil {
		if params.Config.Media.BucketURL != "" {
			bucketURL = params.Config.Media.BucketURL
		}
		if params.Config.Media.PublicBaseURL != "" {
			publicBaseURL = params.Config.Media.PublicBaseURL
		}
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", bucketURL)
	}

	params.Logger.Info("Media bucket opened",
		slog.String("bucket_url", bucketURL),
	)

	store := &blobMediaStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Save writes the object under key and returns its public URL.
func (s *blobMediaStore) Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write media object %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit media object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object. Deleting an absent object is a no-op.
func (s *blobMediaStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete media object %s", key)
	}

	return nil
}

// Close releases the underlying bucket.
func (s *blobMediaStore) Close() error {
	return s.bucket.Close()
}
