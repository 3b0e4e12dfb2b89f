package s3_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/docsvault/filekit/core/storage"
	"github.com/docsvault/filekit/integration/storage/s3"
)

// mockClient implements s3.Client for tests.
type mockClient struct {
	mock.Mock
}

func (m *mockClient) PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3aws.PutObjectOutput), args.Error(1)
}

func (m *mockClient) HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3aws.HeadObjectOutput), args.Error(1)
}

func (m *mockClient) DeleteObjects(ctx context.Context, params *s3aws.DeleteObjectsInput, optFns ...func(*s3aws.Options)) (*s3aws.DeleteObjectsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3aws.DeleteObjectsOutput), args.Error(1)
}

func newTestStorage(t *testing.T, client s3.Client, cfg s3.Config) *s3.Storage {
	t.Helper()

	store, err := s3.New(context.Background(), cfg, s3.WithClient(client))
	require.NoError(t, err)
	return store
}

func defaultConfig() s3.Config {
	return s3.Config{
		Bucket: "project-documents",
		Region: "us-east-1",
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := s3.New(context.Background(), s3.Config{Region: "us-east-1"}, s3.WithClient(new(mockClient)))
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)

	_, err = s3.New(context.Background(), s3.Config{Bucket: "b"}, s3.WithClient(new(mockClient)))
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)
}

func TestStorage_Upload(t *testing.T) {
	t.Parallel()

	t.Run("sets bucket key headers and conditional put", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3aws.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "project-documents" &&
				aws.ToString(in.Key) == "docs/a.pdf" &&
				aws.ToString(in.ContentType) == "application/pdf" &&
				aws.ToString(in.CacheControl) == "max-age=3600" &&
				aws.ToString(in.IfNoneMatch) == "*" &&
				aws.ToInt64(in.ContentLength) == 11
		})).Return(&s3aws.PutObjectOutput{}, nil).Once()

		err := store.Upload(context.Background(), "/docs/a.pdf", strings.NewReader("hello world"), 11, storage.UploadOptions{
			ContentType:  "application/pdf",
			CacheControl: time.Hour,
		})
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("upsert skips conditional header", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3aws.PutObjectInput) bool {
			return in.IfNoneMatch == nil
		})).Return(&s3aws.PutObjectOutput{}, nil).Once()

		err := store.Upload(context.Background(), "docs/a.pdf", strings.NewReader("x"), 1, storage.UploadOptions{
			Upsert: true,
		})
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("existing key maps to ErrObjectExists", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		client.On("PutObject", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"}).
			Once()

		err := store.Upload(context.Background(), "docs/a.pdf", strings.NewReader("x"), 1, storage.UploadOptions{})
		assert.ErrorIs(t, err, storage.ErrObjectExists)
	})

	t.Run("rejects traversal key", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		err := store.Upload(context.Background(), "../secrets", strings.NewReader("x"), 1, storage.UploadOptions{})
		assert.ErrorIs(t, err, storage.ErrInvalidPath)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
	})

	t.Run("access denied classified", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		client.On("PutObject", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}).
			Once()

		err := store.Upload(context.Background(), "docs/a.pdf", strings.NewReader("x"), 1, storage.UploadOptions{})
		assert.ErrorIs(t, err, storage.ErrAccessDenied)
	})
}

func TestStorage_Remove(t *testing.T) {
	t.Parallel()

	t.Run("single key batch", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		client.On("DeleteObjects", mock.Anything, mock.MatchedBy(func(in *s3aws.DeleteObjectsInput) bool {
			return aws.ToString(in.Bucket) == "project-documents" &&
				len(in.Delete.Objects) == 1 &&
				aws.ToString(in.Delete.Objects[0].Key) == "docs/a.pdf"
		})).Return(&s3aws.DeleteObjectsOutput{}, nil).Once()

		require.NoError(t, store.Remove(context.Background(), "docs/a.pdf"))
		client.AssertExpectations(t)
	})

	t.Run("multiple keys in one request", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		client.On("DeleteObjects", mock.Anything, mock.MatchedBy(func(in *s3aws.DeleteObjectsInput) bool {
			return len(in.Delete.Objects) == 3
		})).Return(&s3aws.DeleteObjectsOutput{}, nil).Once()

		require.NoError(t, store.Remove(context.Background(), "a", "b", "c"))
	})

	t.Run("no keys is a no-op", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		require.NoError(t, store.Remove(context.Background()))
		client.AssertNotCalled(t, "DeleteObjects", mock.Anything, mock.Anything)
	})

	t.Run("provider error classified", func(t *testing.T) {
		t.Parallel()

		client := new(mockClient)
		store := newTestStorage(t, client, defaultConfig())

		client.On("DeleteObjects", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).
			Once()

		err := store.Remove(context.Background(), "docs/a.pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestStorage_Exists(t *testing.T) {
	t.Parallel()

	client := new(mockClient)
	store := newTestStorage(t, client, defaultConfig())

	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3aws.HeadObjectInput) bool {
		return aws.ToString(in.Key) == "docs/a.pdf"
	})).Return(&s3aws.HeadObjectOutput{}, nil).Once()
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3aws.HeadObjectInput) bool {
		return aws.ToString(in.Key) == "docs/missing.pdf"
	})).Return(nil, &smithy.GenericAPIError{Code: "NotFound"}).Once()

	assert.True(t, store.Exists(context.Background(), "docs/a.pdf"))
	assert.False(t, store.Exists(context.Background(), "docs/missing.pdf"))
	assert.False(t, store.Exists(context.Background(), "../nope"))
}

func TestStorage_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  s3.Config
		key  string
		want string
	}{
		{
			name: "aws virtual hosted style",
			cfg:  s3.Config{Bucket: "project-documents", Region: "us-east-1"},
			key:  "docs/a.pdf",
			want: "https://project-documents.s3.us-east-1.amazonaws.com/docs/a.pdf",
		},
		{
			name: "aws path style",
			cfg:  s3.Config{Bucket: "project-documents", Region: "eu-west-1", ForcePathStyle: true},
			key:  "docs/a.pdf",
			want: "https://s3.eu-west-1.amazonaws.com/project-documents/docs/a.pdf",
		},
		{
			name: "custom base url",
			cfg:  s3.Config{Bucket: "project-documents", Region: "us-east-1", BaseURL: "https://cdn.example.com/"},
			key:  "/docs/a.pdf",
			want: "https://cdn.example.com/docs/a.pdf",
		},
		{
			name: "endpoint path style",
			cfg:  s3.Config{Bucket: "project-documents", Region: "us-east-1", Endpoint: "http://localhost:9000", ForcePathStyle: true},
			key:  "docs/a.pdf",
			want: "http://localhost:9000/project-documents/docs/a.pdf",
		},
		{
			name: "endpoint virtual hosted style",
			cfg:  s3.Config{Bucket: "project-documents", Region: "us-east-1", Endpoint: "https://nyc3.digitaloceanspaces.com"},
			key:  "docs/a.pdf",
			want: "https://project-documents.nyc3.digitaloceanspaces.com/docs/a.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newTestStorage(t, new(mockClient), tt.cfg)
			assert.Equal(t, tt.want, store.URL(tt.key))
		})
	}
}
