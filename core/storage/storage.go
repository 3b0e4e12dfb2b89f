package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the object-storage collaborator. Implementations must be safe
// for concurrent use; every method maps to a single provider call with no
// retries of its own.
type Storage interface {
	// Upload streams r to the provider under key. size must be the exact
	// byte count of r. Honors opts.Upsert: when false, uploading to an
	// existing key fails with ErrObjectExists instead of replacing content.
	Upload(ctx context.Context, key string, r io.Reader, size int64, opts UploadOptions) error

	// Remove deletes the given keys in a single batch request. Behavior for
	// keys that do not exist is provider-defined (commonly a no-op success).
	Remove(ctx context.Context, keys ...string) error

	// URL returns the public retrieval URL for key. Pure string synthesis,
	// no network call; the URL is only usable if the bucket grants read
	// access.
	URL(key string) string

	// Exists reports whether an object is present at key. Errors are
	// treated as absence.
	Exists(ctx context.Context, key string) bool
}

// UploadOptions carries the per-object hints passed through to the provider.
type UploadOptions struct {
	// ContentType is stored with the object and returned on retrieval.
	// Empty means the provider's default (usually application/octet-stream).
	ContentType string

	// CacheControl becomes the object's Cache-Control max-age. Zero means
	// no cache header is set.
	CacheControl time.Duration

	// Upsert allows overwriting an existing object at the same key. The
	// default (false) makes collisions fail loudly.
	Upsert bool
}
