// Package oss stores uploaded media in MinIO.
package oss

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// Object locates one stored file.
type Object struct {
	URL       string
	StorageID string
}

type Uploader interface {
	Upload(ctx context.Context, path, bucket, objectName, contentType string) (Object, error)
	Remove(ctx context.Context, bucket, storageID string) error
}

// Default is used by the video service.
var Default Uploader

const location = "us-east-1"

type Minio struct {
	client    *minio.Client
	publicURL string
}

func NewMinio(endpoint, accessKey, secretKey string, useSSL bool, publicURL string) (*Minio, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}
	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + endpoint
	}
	return &Minio{client: client, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (m *Minio) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket error")
	}
	if exists {
		return nil
	}
	if err = m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: location}); err != nil {
		return errors.Wrap(err, "create bucket error")
	}
	return nil
}

// Upload puts the file at path under bucket/objectName. The storage id is the
// object name.
func (m *Minio) Upload(ctx context.Context, path, bucket, objectName, contentType string) (Object, error) {
	if err := m.ensureBucket(ctx, bucket); err != nil {
		return Object{}, err
	}
	if _, err := m.client.FPutObject(ctx, bucket, objectName, path, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return Object{}, errors.Wrapf(err, "upload %s", objectName)
	}
	hlog.CtxInfof(ctx, "uploaded %s/%s", bucket, objectName)
	return Object{
		URL:       fmt.Sprintf("%s/%s/%s", m.publicURL, bucket, objectName),
		StorageID: objectName,
	}, nil
}

func (m *Minio) Remove(ctx context.Context, bucket, storageID string) error {
	if storageID == "" {
		return nil
	}
	if err := m.client.RemoveObject(ctx, bucket, storageID, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "remove %s", storageID)
	}
	return nil
}

// ObjectName builds "<prefix>/<id>/<kind><ext>" keeping the upload's extension.
func ObjectName(prefix string, id int64, kind, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%d/%s%s", prefix, id, kind, ext)
}

// Init builds the MinIO uploader and installs it as Default.
func Init(endpoint, accessKey, secretKey string, useSSL bool, publicURL string) error {
	m, err := NewMinio(endpoint, accessKey, secretKey, useSSL, publicURL)
	if err != nil {
		return err
	}
	Default = m
	hlog.Info("Connect Minio Success")
	return nil
}
