package minio

import (
	"encoding/json"
	"fmt"
)

// publicReadPolicy returns an S3 bucket policy JSON allowing anonymous GET on
// all objects, which is what makes the generated public URLs retrievable.
func publicReadPolicy(bucket string) string {
	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
