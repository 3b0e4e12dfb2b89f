// Package storage defines the object-storage contract that file operations
// are built on. Concrete backends live under integration/storage and are
// injected wherever a Storage is required.
//
// The interface is deliberately small: stream an object in under a key,
// remove a batch of keys, resolve a public URL, check existence. Anything a
// provider does beyond that (durability, consistency, access control) is the
// provider's business and is not re-modeled here.
//
// Basic usage with the S3 backend:
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket: "project-documents",
//		Region: "us-east-1",
//	})
//	if err != nil {
//		return err
//	}
//
//	err = store.Upload(ctx, "reports/q3.pdf", r, size, storage.UploadOptions{
//		ContentType:  "application/pdf",
//		CacheControl: time.Hour,
//	})
//
// Backend errors are classified onto the sentinel errors in this package, so
// callers can branch with errors.Is regardless of the provider:
//
//	if errors.Is(err, storage.ErrObjectExists) {
//		// key collision, caller decides what to do
//	}
package storage
