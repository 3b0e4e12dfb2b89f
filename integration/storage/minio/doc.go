// Package minio provides a storage backend built on the native MinIO client.
//
// Functionally equivalent to the s3 package; prefer it when the deployment
// already speaks MinIO or when the bucket should be provisioned at startup
// (EnsureBucket creates it with an anonymous-read policy). Any S3-compatible
// provider works by pointing Endpoint and credentials at it.
//
//	store, err := minio.New(ctx, minio.Config{
//		Endpoint:     "localhost:9000",
//		AccessKey:    "minioadmin",
//		SecretKey:    "minioadmin",
//		Bucket:       "project-documents",
//		EnsureBucket: true,
//	})
//
// Unlike the s3 backend, the no-overwrite upload policy is enforced with a
// stat-before-put check rather than a conditional PUT, so it is not atomic
// under concurrent writers of the same key.
package minio
