package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"examplegen/internal/domain"
)

// R2Options configures an R2Store.
type R2Options struct {
	// Endpoint may carry a scheme; https implies TLS regardless of UseSSL.
	Endpoint      string
	Bucket        string
	AccessKeyID   string
	SecretKey     string
	Region        string
	UseSSL        bool
	PublicBaseURL string
}

// objectPutter is the subset of *minio.Client used by R2Store.
type objectPutter interface {
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// R2Store uploads objects to an S3 compatible bucket.
type R2Store struct {
	client    objectPutter
	bucket    string
	objectURL func(key string) string
}

// NewR2Store builds a minio client for opts.
func NewR2Store(opts R2Options) (*R2Store, error) {
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, fmt.Errorf("%w: storage bucket is required", domain.ErrInvalidConfig)
	}
	host, secure, err := splitEndpoint(opts.Endpoint, opts.UseSSL)
	if err != nil {
		return nil, err
	}
	region := opts.Region
	if region == "" {
		region = "auto"
	}
	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretKey, ""),
		Secure: secure,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: init r2 client: %w", err)
	}
	scheme := "http"
	if secure {
		scheme = "https"
	}
	return newR2Store(client, opts.Bucket, objectURLFunc(scheme+"://"+host, opts.Bucket, opts.PublicBaseURL)), nil
}

func newR2Store(client objectPutter, bucket string, objectURL func(string) string) *R2Store {
	return &R2Store{client: client, bucket: bucket, objectURL: objectURL}
}

// Put uploads data under key and returns its public URL.
func (s *R2Store) Put(ctx context.Context, key string, data []byte, meta ObjectMeta) (string, error) {
	if s == nil || s.client == nil {
		return "", errors.New("storage: no store configured")
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	contentType := meta.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	disposition := meta.ContentDisposition
	if disposition == "" {
		disposition = DispositionInline
	}
	_, err = s.client.PutObject(ctx, s.bucket, cleanKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:        contentType,
		ContentDisposition: disposition,
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", cleanKey, err)
	}
	return s.objectURL(cleanKey), nil
}

// splitEndpoint strips an optional scheme from endpoint for the minio client.
func splitEndpoint(endpoint string, useSSL bool) (string, bool, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", false, fmt.Errorf("%w: storage endpoint is required", domain.ErrInvalidConfig)
	}
	if !strings.Contains(endpoint, "://") {
		return strings.TrimRight(endpoint, "/"), useSSL, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return "", false, fmt.Errorf("%w: invalid storage endpoint %q", domain.ErrInvalidConfig, endpoint)
	}
	return u.Host, u.Scheme == "https", nil
}

// objectURLFunc prefers the public domain and falls back to the path-style
// bucket URL.
func objectURLFunc(endpointURL, bucket, publicBaseURL string) func(string) string {
	publicBaseURL = strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	return func(key string) string {
		if publicBaseURL != "" {
			return publicBaseURL + "/" + key
		}
		return endpointURL + "/" + bucket + "/" + key
	}
}

var _ ObjectStore = (*R2Store)(nil)
