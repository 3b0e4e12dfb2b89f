package storage

import "errors"

// Sentinel errors shared by all backends. Provider SDK errors are classified
// onto these so callers never import provider packages for error checks.
var (
	ErrInvalidConfig      = errors.New("invalid storage configuration")
	ErrInvalidPath        = errors.New("invalid object key")
	ErrObjectExists       = errors.New("object already exists")
	ErrFileNotFound       = errors.New("file not found")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrOperationTimeout   = errors.New("operation timed out")
	ErrOperationCanceled  = errors.New("operation canceled")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("storage service unavailable")
)
