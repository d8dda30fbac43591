// Package storage implements service.ObjectStorage on top of a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"mediahub/config"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ObjectStorage, error) {
	bucketURL, baseURL := defaultBucketURL, ""
	if sc := params.Config.Storage; sc != nil {
		if sc.BucketURL != "" {
			bucketURL = sc.BucketURL
		}
		baseURL = sc.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Object storage uses an in-memory bucket; uploads are lost on restart")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, baseURL), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes the file under "<prefix>/<uuid><ext>". A failed copy aborts the write.
func (s *blobStorage) Upload(ctx context.Context, prefix string, file *service.FileUpload) (string, error) {
	if file == nil || file.Body == nil {
		return "", errors.New("no file to upload")
	}

	key := path.Join(prefix, uuid.NewString()+strings.ToLower(path.Ext(file.Filename)))

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: file.ContentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, file.Body); err != nil {
		cancel()
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object behind url. URLs outside this bucket and missing objects are ignored.
func (s *blobStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyOf(url)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStorage) keyOf(url string) (string, bool) {
	if url == "" {
		return "", false
	}

	key, found := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !found || key == "" {
		return "", false
	}

	return key, true
}
