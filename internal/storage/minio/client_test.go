package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	lifecycle    *lifecycle.Configuration
	lifecycleErr error

	putErr         error
	putSize        int64
	putContentType string

	presignParams url.Values
	presignExpiry time.Duration
	presignErr    error

	removeErr error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}
func (f *fakeMinio) SetBucketLifecycle(_ context.Context, _ string, cfg *lifecycle.Configuration) error {
	f.lifecycle = cfg
	return f.lifecycleErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, _ string, _ io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putSize = size
	f.putContentType = opts.ContentType
	return minioLib.UploadInfo{}, f.putErr
}
func (f *fakeMinio) PresignedGetObject(_ context.Context, bucket string, key string, expiry time.Duration, params url.Values) (*url.URL, error) {
	f.presignParams = params
	f.presignExpiry = expiry
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	return &url.URL{Scheme: "http", Host: "minio:9000", Path: "/" + bucket + "/" + key}, nil
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "b", c.bucket)
	assert.False(t, api.madeBucket)
	assert.Nil(t, api.lifecycle)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false}
	c, err := NewClientWithAPI(ctx, api, "bucket")
	require.NoError(t, err)
	assert.Equal(t, "bucket", c.bucket)
	assert.True(t, api.madeBucket)
}

func TestNewClientWithAPI_BucketExistsError(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExistsErr: errors.New("boom")}
	c, err := NewClientWithAPI(ctx, api, "bucket")
	assert.Nil(t, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure bucket exists")
}

func TestNewClientWithAPI_MakeBucketError(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false, makeBucketErr: errors.New("fail")}
	c, err := NewClientWithAPI(ctx, api, "bucket")
	assert.Nil(t, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure bucket exists")
}

func TestNewClientWithAPI_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("rule installed", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		_, err := NewClientWithAPI(ctx, api, "bucket", WithExpiry("exports/", 7))
		require.NoError(t, err)
		require.NotNil(t, api.lifecycle)
		require.Len(t, api.lifecycle.Rules, 1)

		rule := api.lifecycle.Rules[0]
		assert.Equal(t, exportRuleID, rule.ID)
		assert.Equal(t, "Enabled", rule.Status)
		assert.Equal(t, "exports/", rule.RuleFilter.Prefix)
		assert.Equal(t, lifecycle.ExpirationDays(7), rule.Expiration.Days)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true, lifecycleErr: errors.New("denied")}
		c, err := NewClientWithAPI(ctx, api, "bucket", WithExpiry("exports/", 1))
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to set bucket lifecycle")
	})
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		err := c.Upload(ctx, "k", bytes.NewReader([]byte("data")), 4, "application/json")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), api.putSize)
		assert.Equal(t, "application/json", api.putContentType)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{putErr: errors.New("put-fail")}
		c := &Client{api: api, bucket: "b"}
		err := c.Upload(ctx, "k", bytes.NewReader([]byte("data")), 4, "application/json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object")
	})
}

func TestClient_PresignedURL(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		link, err := c.PresignedURL(ctx, "exports/x.json", "conversation-x.json", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, "http://minio:9000/b/exports/x.json", link)
		assert.Equal(t, time.Hour, api.presignExpiry)
		assert.Equal(t, "attachment; filename=conversation-x.json", api.presignParams.Get("response-content-disposition"))
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{presignErr: errors.New("sign-fail")}
		c := &Client{api: api, bucket: "b"}
		link, err := c.PresignedURL(ctx, "k", "f.json", time.Minute)
		assert.Empty(t, link)
		assert.ErrorContains(t, err, "failed to presign object")
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		err := c.Delete(ctx, "k")
		assert.NoError(t, err)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{removeErr: errors.New("remove-fail")}
		c := &Client{api: api, bucket: "b"}
		err := c.Delete(ctx, "k")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete object")
	})
}
