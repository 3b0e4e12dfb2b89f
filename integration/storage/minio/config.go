package minio

// Config contains MinIO connection settings. Populated from the environment
// via core/config, or filled in directly.
type Config struct {
	// Endpoint is host:port without a scheme, e.g. "localhost:9000".
	Endpoint  string `env:"MINIO_ENDPOINT,required"`
	AccessKey string `env:"MINIO_ACCESS_KEY,required"`
	SecretKey string `env:"MINIO_SECRET_KEY,required"`
	// Bucket holds every uploaded object.
	Bucket string `env:"MINIO_BUCKET" envDefault:"project-documents"`
	// PublicBaseURL overrides public URL generation, e.g. a CDN origin.
	// Empty means path-style URLs against the endpoint.
	PublicBaseURL string `env:"MINIO_PUBLIC_BASE_URL"`
	UseSSL        bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	// EnsureBucket creates the bucket with an anonymous-read policy at
	// startup. Handy for local development, off for managed environments.
	EnsureBucket bool `env:"MINIO_ENSURE_BUCKET" envDefault:"false"`
}
