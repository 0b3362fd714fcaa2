package controllers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pest-report/api-go/config"
)

// PhotoStorage persists an uploaded report photo and returns the relative
// path (or object key) stored on the report record.
type PhotoStorage interface {
	SavePhoto(ctx context.Context, file *multipart.FileHeader, userID uint) (string, error)
}

// NewPhotoStorage picks the backend from config. Local disk is the default;
// "r2" uploads to a Cloudflare R2 bucket instead.
func NewPhotoStorage(cfg *config.Config) PhotoStorage {
	if cfg.StorageBackend == "r2" {
		return newR2PhotoStorage(cfg.R2)
	}
	return &DiskPhotoStorage{Dir: filepath.Join(cfg.UploadDir, "reports")}
}

func photoKey(userID uint, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d_%d_%s%s", userID, time.Now().Unix(), uuid.New().String()[:8], ext)
}

// DiskPhotoStorage writes photos under Dir, one flat directory served
// statically at /uploads/reports.
type DiskPhotoStorage struct {
	Dir string
}

func (ds *DiskPhotoStorage) SavePhoto(_ context.Context, file *multipart.FileHeader, userID uint) (string, error) {
	if err := os.MkdirAll(ds.Dir, 0o755); err != nil {
		return "", err
	}

	name := photoKey(userID, file.Filename)
	dstPath := filepath.Join(ds.Dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", err
	}

	return filepath.ToSlash(filepath.Join("uploads", "reports", name)), nil
}

// R2PhotoStorage uploads photos to a Cloudflare R2 bucket through the S3 API.
type R2PhotoStorage struct {
	client *s3.Client
	cfg    config.R2Config
}

func newR2PhotoStorage(cfg config.R2Config) *R2PhotoStorage {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})
	return &R2PhotoStorage{client: client, cfg: cfg}
}

func (rs *R2PhotoStorage) SavePhoto(ctx context.Context, file *multipart.FileHeader, userID uint) (string, error) {
	key := fmt.Sprintf("reports/%s", photoKey(userID, file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = rs.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(rs.cfg.BucketName),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}
