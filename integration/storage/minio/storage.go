package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/docsvault/filekit/core/storage"
)

// Compile-time check that Storage implements storage.Storage.
var _ storage.Storage = (*Storage)(nil)

// Storage implements storage.Storage using the native MinIO client. Works
// against any S3-compatible service; switching providers is a matter of
// endpoint and credentials.
type Storage struct {
	client     *minio.Client
	bucket     string
	endpoint   string
	publicBase string
	useSSL     bool
}

// New creates a MinIO client and, when cfg.EnsureBucket is set, makes sure
// the bucket exists with an anonymous-read policy so public URLs resolve.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Endpoint == "" {
		return nil, storage.ErrInvalidConfig
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	if cfg.EnsureBucket {
		exists, err := client.BucketExists(ctx, cfg.Bucket)
		if err != nil {
			return nil, fmt.Errorf("check bucket existence: %w", err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
			}
		}
		if err := client.SetBucketPolicy(ctx, cfg.Bucket, publicReadPolicy(cfg.Bucket)); err != nil {
			return nil, fmt.Errorf("set bucket policy: %w", err)
		}
	}

	return &Storage{
		client:     client,
		bucket:     cfg.Bucket,
		endpoint:   cfg.Endpoint,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
		useSSL:     cfg.UseSSL,
	}, nil
}

// Upload streams r to the bucket under key. size must be the exact byte
// count. The no-overwrite policy is enforced with a stat-before-put check;
// unlike the S3 backend's conditional PUT it is not atomic, which is
// acceptable for randomized keys where collisions are already improbable.
func (s *Storage) Upload(ctx context.Context, key string, r io.Reader, size int64, opts storage.UploadOptions) error {
	key, err := storage.CleanKey(key)
	if err != nil {
		return err
	}

	if !opts.Upsert {
		if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err == nil {
			return fmt.Errorf("%w: %s", storage.ErrObjectExists, key)
		}
	}

	putOpts := minio.PutObjectOptions{
		ContentType: opts.ContentType,
	}
	if opts.CacheControl > 0 {
		putOpts.CacheControl = fmt.Sprintf("max-age=%d", int64(opts.CacheControl.Seconds()))
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, putOpts); err != nil {
		return classifyError(err, "upload object")
	}
	return nil
}

// Remove deletes the given keys using the client's batch removal. Missing
// keys are treated as already removed.
func (s *Storage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		key, err := storage.CleanKey(key)
		if err != nil {
			close(objectsCh)
			return err
		}
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	return drainRemoveErrors(s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}))
}

// drainRemoveErrors consumes the whole result channel and reports the first
// failure. Returning early would strand the client's sender goroutine when
// more than one key fails.
func drainRemoveErrors(results <-chan minio.RemoveObjectError) error {
	var first error
	for res := range results {
		if res.Err != nil && first == nil {
			first = classifyError(res.Err, "delete objects")
		}
	}
	return first
}

// Exists checks if an object is present at key. Errors count as absence.
func (s *Storage) Exists(ctx context.Context, key string) bool {
	key, err := storage.CleanKey(key)
	if err != nil {
		return false
	}

	_, err = s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	return err == nil
}

// URL returns the browser-accessible URL for key: the configured public base
// (e.g. a CDN) when set, otherwise the path-style endpoint URL.
func (s *Storage) URL(key string) string {
	key = strings.TrimPrefix(key, "/")

	if s.publicBase != "" {
		return s.publicBase + "/" + key
	}

	scheme := "http://"
	if s.useSSL {
		scheme = "https://"
	}
	return scheme + s.endpoint + "/" + s.bucket + "/" + key
}
