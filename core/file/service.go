package file

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/docsvault/filekit/core/storage"
	"github.com/docsvault/filekit/pkg/logger"
)

// uploadCacheControl is the cache hint stored with every object.
const uploadCacheControl = 3600 * time.Second

// Service performs uploads and deletes against an injected storage backend.
// Stateless and safe for concurrent use; repeated uploads of the same file
// produce distinct objects because keys are randomized per call.
type Service struct {
	storage storage.Storage
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for operation-failure diagnostics.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Service bound to the given storage backend.
func New(store storage.Storage, opts ...Option) *Service {
	s := &Service{
		storage: store,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("file"))
	return s
}

// Upload stores f under a freshly synthesized key below folder and returns
// the object's public URL, key and size. The key embeds a millisecond
// timestamp and a random token, and the upload runs with overwriting
// disabled, so a duplicate key fails instead of silently replacing content.
//
// Upload does not validate f; call Validate first. The provider error, if
// any, is logged and returned wrapped in ErrUploadFailed. No partial result
// is ever returned alongside an error. When f.Content implements io.Closer
// it is closed before Upload returns, success or not, so FromMultipart
// callers never leak the opened part.
func (s *Service) Upload(ctx context.Context, f File, folder string) (*UploadResult, error) {
	if c, ok := f.Content.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	start := time.Now()
	key := objectKey(folder, f.Name)

	err := s.storage.Upload(ctx, key, f.Content, f.Size, storage.UploadOptions{
		ContentType:  f.ContentType,
		CacheControl: uploadCacheControl,
		Upsert:       false,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "storage upload failed",
			logger.Error(err),
			slog.String("key", key),
			slog.Int64("size", f.Size),
			logger.Elapsed(start),
		)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return &UploadResult{
		URL:  s.storage.URL(key),
		Path: key,
		Size: f.Size,
	}, nil
}

// Delete removes the object at path, which must be a key previously returned
// in an UploadResult. Uses the backend's batch remove with a single key.
// Deleting a missing key behaves however the provider does; most treat it as
// a no-op success and this method does not special-case it.
func (s *Service) Delete(ctx context.Context, path string) error {
	start := time.Now()
	if err := s.storage.Remove(ctx, path); err != nil {
		s.log.ErrorContext(ctx, "storage remove failed",
			logger.Error(err),
			slog.String("key", path),
			logger.Elapsed(start),
		)
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}
