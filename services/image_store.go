package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore uploads binary image payloads to a hosted object store and
// returns a stable retrieval URL. Delete is best-effort; record deletion
// proceeds regardless of individual failures.
type ImageStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// S3Config carries the settings for an S3-compatible object store.
type S3Config struct {
	Endpoint      string // optional custom endpoint for S3-compatible providers
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string // public prefix under which uploaded keys resolve
}

type s3ImageStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3ImageStore builds an ImageStore backed by an S3-compatible bucket.
func NewS3ImageStore(ctx context.Context, cfg S3Config) (ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("image store bucket is required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("image store public base URL is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading object store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3ImageStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the payload under a fresh key and returns its public URL.
// The original filename only contributes its extension; keys are unique so
// concurrent uploads can never collide.
func (s *s3ImageStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key := folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object a previously returned URL points at.
func (s *s3ImageStore) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, s.publicBaseURL+"/")
	if key == url {
		return fmt.Errorf("url %q is not served by this image store", url)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
