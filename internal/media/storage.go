package media

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

const urlPrefix = "/media"

type Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewStorage(cfg *config.Config) *Storage {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Storage{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: cfg.PublicBaseURL,
	}
}

func (s *Storage) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// PublicURL builds the caller-facing URL for a stored object. Absolute
// when PUBLIC_BASE_URL is configured, relative otherwise.
func (s *Storage) PublicURL(key string) string {
	url := urlPrefix + "/" + strings.TrimPrefix(key, "/")
	if s.baseURL != "" {
		return strings.TrimRight(s.baseURL, "/") + url
	}
	return url
}
