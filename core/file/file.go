package file

import (
	"errors"
	"io"
	"mime/multipart"
)

// File is the input blob for validation and upload. The caller owns the
// content; this package never retains or mutates it.
type File struct {
	// Name is the original filename. Only its extension influences the
	// generated object key.
	Name string

	// ContentType is the declared MIME type. Caller-supplied and untrusted;
	// it is checked against the allow-list but never verified against the
	// actual content.
	ContentType string

	// Size in bytes.
	Size int64

	// Content is read exactly once during Upload.
	Content io.Reader
}

// UploadResult describes a successfully stored object.
type UploadResult struct {
	// URL is the provider-issued public retrieval URL.
	URL string

	// Path is the object key within the bucket. Pass it to Delete.
	Path string

	// Size is the original byte size of the upload.
	Size int64
}

// ErrNilFileHeader is returned by FromMultipart for a nil header.
var ErrNilFileHeader = errors.New("nil multipart file header")

// FromMultipart adapts a standard multipart upload into a File. The returned
// File's Content is the opened part; Upload consumes and closes it.
func FromMultipart(fh *multipart.FileHeader) (File, error) {
	if fh == nil {
		return File{}, ErrNilFileHeader
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, err
	}

	return File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     src,
	}, nil
}
