package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// Uploader stores gallery images in an S3-compatible bucket and hands back
// their public URLs.
type Uploader struct {
	logger        zerolog.Logger
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

type UploaderConfig struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

func NewUploader(logger zerolog.Logger, cfg UploaderConfig) *Uploader {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &Uploader{
		logger:        logger.With().Str("component", "storage").Logger(),
		client:        s3.New(opts),
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
	}
}

// UploadImage writes an object under key and returns its public URL.
func (u *Uploader) UploadImage(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image %s: %w", key, err)
	}

	u.logger.Info().Str("key", key).Msg("uploaded gallery image")
	return u.publicBaseURL + "/" + key, nil
}
