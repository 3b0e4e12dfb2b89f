package file

import "slices"

// MaxFileSize is the upload size limit: 10 MiB.
const MaxFileSize = 10 * 1024 * 1024

// User-facing rejection messages. These are shown verbatim in upload forms,
// so changing them is a product decision, not a refactor.
const (
	msgFileTooLarge       = "File size must be less than 10MB"
	msgFileTypeNotAllowed = "File type not supported. Please upload PDF, DOC, PPT, or XLS files."
)

// allowedContentTypes is the office-document allow-list. Declared MIME types
// outside this set are rejected before any provider call.
var allowedContentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Validation is the outcome of Validate. It is data, not an error: callers
// must check Valid and surface Error to the end user themselves.
type Validation struct {
	Valid bool
	Error string
}

// Validate checks a file against the size limit and the MIME allow-list.
// The size check runs first, so an oversized file of a disallowed type
// reports the size error. No side effects.
func Validate(f File) Validation {
	if f.Size > MaxFileSize {
		return Validation{Error: msgFileTooLarge}
	}
	if !slices.Contains(allowedContentTypes, f.ContentType) {
		return Validation{Error: msgFileTypeNotAllowed}
	}
	return Validation{Valid: true}
}
