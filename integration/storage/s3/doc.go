// Package s3 provides the Amazon S3 and S3-compatible storage backend.
//
// It implements the storage.Storage interface with the AWS SDK v2 and works
// against Amazon S3, MinIO, DigitalOcean Spaces, Wasabi and other
// S3-compatible services.
//
// Basic usage:
//
//	cfg := s3.Config{
//		Bucket:      "project-documents",
//		Region:      "us-east-1",
//		AccessKeyID: "AKIA...", // optional, IAM roles are used if empty
//		SecretKey:   "...",
//	}
//
//	store, err := s3.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	svc := file.New(store)
//
// S3-compatible services need an endpoint and usually path-style URLs:
//
//	cfg := s3.Config{
//		Bucket:         "project-documents",
//		Region:         "us-east-1",
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// Uploads run as conditional PUTs (If-None-Match: *) unless Upsert is set,
// so an existing object at the same key is never silently replaced.
package s3
