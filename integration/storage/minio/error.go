package minio

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/docsvault/filekit/core/storage"
)

// classifyError converts MinIO client errors to the shared storage
// sentinels, mirroring the S3 backend's classification.
func classifyError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", storage.ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s", storage.ErrOperationCanceled, operation)
	}

	switch resp := minio.ToErrorResponse(err); resp.Code {
	case "NoSuchKey":
		return fmt.Errorf("%w: %s", storage.ErrFileNotFound, err)
	case "NoSuchBucket":
		return storage.ErrBucketNotFound
	case "AccessDenied":
		return fmt.Errorf("%w: %s", storage.ErrAccessDenied, operation)
	case "SlowDown", "ServiceUnavailable":
		return fmt.Errorf("%w: %s", storage.ErrServiceUnavailable, operation)
	case "":
		return fmt.Errorf("%s failed: %w", operation, err)
	default:
		return fmt.Errorf("%s failed (code: %s): %w", operation, resp.Code, err)
	}
}
