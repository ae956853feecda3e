// Package storage stores forecast attachments in a MinIO/S3 bucket and hands
// back publicly fetchable metadata.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/TungTran2095/medform/internal/plan/entity"
)

// Uploader writes attachment blobs to one bucket. Object names carry a
// timestamp plus a random suffix to avoid collisions.
type Uploader struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// Config carries the bucket connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// NewUploader connects to the configured bucket endpoint.
func NewUploader(cfg Config) (*Uploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}
	return &Uploader{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores one blob and returns its public metadata.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, filename string, size int64, contentType string) (*entity.Attachment, error) {
	objectName := ObjectName(filename, time.Now())
	_, err := u.client.PutObject(ctx, u.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}
	return &entity.Attachment{
		Name: filename,
		Size: size,
		Type: contentType,
		URL:  fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, objectName),
	}, nil
}

// ObjectName builds the bucket key for one attachment:
// plans/<yyyy/MM>/<unix>-<uuid8><ext>.
func ObjectName(filename string, now time.Time) string {
	return fmt.Sprintf("plans/%s/%d-%s%s",
		now.Format("2006/01"),
		now.Unix(),
		uuid.New().String()[:8],
		filepath.Ext(filename),
	)
}
