package minio

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/lifecycle"

	"github.com/dtroode/cipherchat-server/internal/model"
)

const exportRuleID = "expire-exports"

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketLifecycle(ctx context.Context, bucketName string, config *lifecycle.Configuration) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

var _ minioAPI = (*minio.Client)(nil)

var _ model.ArchiveStore = (*Client)(nil)

// Client keeps conversation exports in a MinIO bucket.
type Client struct {
	api        minioAPI
	bucket     string
	prefix     string
	expiryDays int
}

type Option func(*Client)

// WithExpiry installs a lifecycle rule removing objects under prefix after
// the given number of days. Zero days disables the rule.
func WithExpiry(prefix string, days int) Option {
	return func(c *Client) {
		c.prefix = prefix
		c.expiryDays = days
	}
}

// NewClient creates a new MinIO storage client using a real *minio.Client instance.
func NewClient(ctx context.Context, client *minio.Client, bucket string, opts ...Option) (*Client, error) {
	return NewClientWithAPI(ctx, client, bucket, opts...)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket string, opts ...Option) (*Client, error) {
	c := &Client{
		api:    api,
		bucket: bucket,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	if c.expiryDays > 0 {
		if err := c.api.SetBucketLifecycle(ctx, c.bucket, c.lifecycle()); err != nil {
			return nil, fmt.Errorf("failed to set bucket lifecycle: %w", err)
		}
	}

	return c, nil
}

// ensureBucketExists creates the bucket if it doesn't exist
func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

func (c *Client) lifecycle() *lifecycle.Configuration {
	cfg := lifecycle.NewConfiguration()
	cfg.Rules = []lifecycle.Rule{
		{
			ID:     exportRuleID,
			Status: "Enabled",
			RuleFilter: lifecycle.Filter{
				Prefix: c.prefix,
			},
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(c.expiryDays),
			},
		},
	}
	return cfg
}

// Upload stores an object of known size.
func (c *Client) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := c.api.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// PresignedURL returns a temporary download link that saves the object
// under fileName.
func (c *Client) PresignedURL(ctx context.Context, key string, fileName string, expiry time.Duration) (string, error) {
	params := url.Values{}
	if fileName != "" {
		params.Set("response-content-disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	}

	u, err := c.api.PresignedGetObject(ctx, c.bucket, key, expiry, params)
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return u.String(), nil
}

// Delete deletes object from MinIO
func (c *Client) Delete(ctx context.Context, key string) error {
	err := c.api.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
