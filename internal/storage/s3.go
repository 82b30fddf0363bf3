package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/barberia-cr/barberia-api/internal/config"
)

// Uploader guarda imagens do catálogo (barbeiros, serviços, produtos)
// num bucket S3 e devolve a URL pública usada como image_url.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// New devolve nil quando o bucket não está configurado; o handler de
// upload responde 503 nesse caso.
func New(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	baseURL := cfg.S3BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}
}

// UploadImage grava o webp já processado sob uploads/<ano>/<uuid>.webp.
func (u *Uploader) UploadImage(ctx context.Context, data []byte) (string, error) {
	key := fmt.Sprintf("uploads/%d/%s.webp", time.Now().Year(), uuid.NewString())

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return u.baseURL + "/" + key, nil
}
