package s3

// Config contains S3 connection settings. Populated from the environment via
// core/config, or filled in directly.
type Config struct {
	// Bucket holds every uploaded object. All keys are relative to it.
	Bucket string `env:"S3_BUCKET" envDefault:"project-documents"`
	// Region is required even for S3-compatible services.
	Region string `env:"S3_REGION" envDefault:"us-east-1"`
	// AccessKeyID and SecretKey are optional; when empty the SDK falls back
	// to IAM roles or environment credentials.
	AccessKeyID string `env:"S3_ACCESS_KEY_ID"`
	SecretKey   string `env:"S3_SECRET_KEY"`
	// Endpoint targets S3-compatible services like MinIO or Wasabi.
	Endpoint string `env:"S3_ENDPOINT"`
	// BaseURL overrides public URL generation, e.g. a CDN origin.
	BaseURL string `env:"S3_BASE_URL"`
	// ForcePathStyle is required for MinIO and some S3-compatible services.
	ForcePathStyle bool `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}
