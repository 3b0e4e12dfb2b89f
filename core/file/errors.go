package file

import "errors"

// Operation failure sentinels. Both wrap the provider's reported error, so
// errors.Is selects the operation and the message keeps the provider detail:
//
//	res, err := svc.Upload(ctx, f, "contracts")
//	if errors.Is(err, file.ErrUploadFailed) {
//		// err.Error() contains the provider's message for display
//	}
var (
	ErrUploadFailed = errors.New("file upload failed")
	ErrDeleteFailed = errors.New("file delete failed")
)
