package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/docsvault/filekit/core/storage"
)

// Compile-time check that Storage implements storage.Storage.
var _ storage.Storage = (*Storage)(nil)

// Client defines the S3 operations used by Storage. The concrete
// *s3.Client satisfies it; tests substitute a mock via WithClient.
type Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3aws.DeleteObjectsInput, optFns ...func(*s3aws.Options)) (*s3aws.DeleteObjectsOutput, error)
}

// Storage implements storage.Storage for Amazon S3 and S3-compatible
// services. Thread-safe; every method is a single SDK call.
type Storage struct {
	client         Client
	bucket         string
	region         string // for URL generation
	endpoint       string // custom endpoint for S3-compatible services
	baseURL        string // custom CDN or public URL base, if provided
	forcePathStyle bool
	uploadTimeout  time.Duration // optional cap on upload duration
}

// Option defines a function that configures Storage.
type Option func(*options)

type options struct {
	httpClient    *http.Client
	client        Client
	configOptions []func(*awsconfig.LoadOptions) error
	clientOptions []func(*s3aws.Options)
	uploadTimeout time.Duration
}

// WithClient sets a pre-configured S3 client. Primarily used for testing
// with mocks, but also allows advanced client customization.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
// Useful for custom timeout, proxy, or TLS configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*awsconfig.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// WithUploadTimeout caps upload duration so a stalled transfer cannot hold
// resources indefinitely. If not set, relies on the caller's context.
func WithUploadTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.uploadTimeout = timeout
	}
}

// New creates an S3 storage backend. Credentials fall back to the SDK's
// default chain (IAM roles, env vars) when the config leaves them empty.
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, storage.ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}

		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		if o.httpClient != nil {
			awsOptions = append(awsOptions, awsconfig.WithHTTPClient(o.httpClient))
		}

		awsOptions = append(awsOptions, o.configOptions...)

		awsConfig, err := awsconfig.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %v", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range o.clientOptions {
				opt(so)
			}
		})
	}

	return &Storage{
		client:         client,
		bucket:         cfg.Bucket,
		region:         cfg.Region,
		endpoint:       cfg.Endpoint,
		baseURL:        cfg.BaseURL,
		forcePathStyle: cfg.ForcePathStyle,
		uploadTimeout:  o.uploadTimeout,
	}, nil
}

// Upload streams r to the bucket under key. With opts.Upsert false the PUT is
// conditional (If-None-Match: *), so racing an existing key fails with
// ErrObjectExists instead of replacing it.
func (s *Storage) Upload(ctx context.Context, key string, r io.Reader, size int64, opts storage.UploadOptions) error {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	key, err := storage.CleanKey(key)
	if err != nil {
		return err
	}

	input := &s3aws.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType) // proper browser handling on retrieval
	}
	if opts.CacheControl > 0 {
		input.CacheControl = aws.String(fmt.Sprintf("max-age=%d", int64(opts.CacheControl.Seconds())))
	}
	if !opts.Upsert {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return classifyError(err, "upload object")
	}
	return nil
}

// Remove deletes the given keys in one DeleteObjects batch request. S3
// reports missing keys as deleted, so removing an absent key succeeds.
func (s *Storage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		key, err := storage.CleanKey(key)
		if err != nil {
			return err
		}
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}

	out, err := s.client.DeleteObjects(ctx, &s3aws.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return classifyError(err, "delete objects")
	}

	// Quiet mode only reports per-key failures.
	for _, e := range out.Errors {
		return fmt.Errorf("delete objects: key %s failed: %s",
			aws.ToString(e.Key), aws.ToString(e.Message))
	}
	return nil
}

// Exists checks if an object is present at key. Errors count as absence.
func (s *Storage) Exists(ctx context.Context, key string) bool {
	key, err := storage.CleanKey(key)
	if err != nil {
		return false
	}

	_, err = s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// URL returns the public URL for a key. Generates the appropriate format
// based on configuration:
//   - custom BaseURL: uses the provided base (e.g. a CDN)
//   - S3-compatible (with Endpoint): path-style or virtual-hosted-style
//   - AWS S3: standard AWS URL format
func (s *Storage) URL(key string) string {
	key = strings.TrimPrefix(key, "/")

	if s.baseURL != "" {
		return strings.TrimSuffix(s.baseURL, "/") + "/" + key
	}

	if s.endpoint != "" {
		endpoint := strings.TrimSuffix(s.endpoint, "/")
		protocol := "https://"
		if after, ok := strings.CutPrefix(endpoint, "http://"); ok {
			protocol = "http://"
			endpoint = after
		} else if after, ok := strings.CutPrefix(endpoint, "https://"); ok {
			endpoint = after
		}

		if s.forcePathStyle {
			return fmt.Sprintf("%s%s/%s/%s", protocol, endpoint, s.bucket, key)
		}
		return fmt.Sprintf("%s%s.%s/%s", protocol, s.bucket, endpoint, key)
	}

	if s.forcePathStyle {
		return fmt.Sprintf("https://s3.%s.amazonaws.com/%s/%s", s.region, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
