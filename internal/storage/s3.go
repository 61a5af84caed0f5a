package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/cheickthiam/portfolio/internal/config"
)

// ErrNotConfigured is returned when object storage credentials are absent.
var ErrNotConfigured = errors.New("storage not configured")

// Visibility selects the bucket an object lives in.
type Visibility int

const (
	// Private objects are only reachable through presigned URLs.
	Private Visibility = iota
	// Public objects are served from a stable URL stored on the record.
	Public
)

// Storage defines the interface for file storage operations
type Storage interface {
	// Save stores an object under key
	Save(ctx context.Context, vis Visibility, key string, body io.Reader, contentType string) error

	// Delete removes an object
	Delete(ctx context.Context, vis Visibility, key string) error

	// PublicURL returns the durable URL of a public object
	PublicURL(key string) string

	// SignedURL mints a time-limited GET URL for a private object
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// S3Storage implements Storage for S3-compatible storage
// Works with AWS S3, MinIO, Supabase Storage, Cloudflare R2, etc.
type S3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	publicBucket  string
	privateBucket string
	publicURL     string // Base URL of the public bucket
}

// S3Config holds configuration for S3 storage
type S3Config struct {
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string // Optional: for S3-compatible services
	PublicBucket  string
	PrivateBucket string
	PublicURL     string // Optional: overrides the derived public base URL
}

// New creates an S3-compatible storage instance from app config.
// It returns ErrNotConfigured when no credentials were provided.
func New(ctx context.Context, c *cfg.Config) (*S3Storage, error) {
	if !c.StorageConfigured() {
		return nil, ErrNotConfigured
	}

	slog.Info("initializing S3 storage",
		"public_bucket", c.S3PublicBucket,
		"private_bucket", c.S3PrivateBucket,
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)
	return NewS3Storage(ctx, S3Config{
		Region:        c.S3Region,
		AccessKey:     c.S3AccessKey,
		SecretKey:     c.S3SecretKey,
		Endpoint:      c.S3Endpoint,
		PublicBucket:  c.S3PublicBucket,
		PrivateBucket: c.S3PrivateBucket,
		PublicURL:     c.S3PublicURL,
	})
}

// NewS3Storage creates a new S3 storage instance and makes sure both
// buckets exist.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	// Add static credentials if provided
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Create S3 client with optional custom endpoint
	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	storage := &S3Storage{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		publicBucket:  cfg.PublicBucket,
		privateBucket: cfg.PrivateBucket,
		publicURL:     PublicBaseURL(cfg),
	}

	for _, bucket := range []string{cfg.PublicBucket, cfg.PrivateBucket} {
		err = storage.ensureBucket(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
		}
	}

	return storage, nil
}

// PublicBaseURL derives the base URL public objects are served from.
func PublicBaseURL(cfg S3Config) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimSuffix(cfg.PublicURL, "/")
	case cfg.Endpoint != "":
		// Custom endpoint (MinIO, Supabase, etc.)
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.PublicBucket
	default:
		// Standard AWS S3 URL
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.PublicBucket, cfg.Region)
	}
}

// ensureBucket checks if bucket exists, creates it if not
func (s *S3Storage) ensureBucket(ctx context.Context, bucket string) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", bucket, err)
	}

	slog.Info("created S3 bucket", "bucket", bucket)
	return nil
}

func (s *S3Storage) bucket(vis Visibility) string {
	if vis == Public {
		return s.publicBucket
	}
	return s.privateBucket
}

// Save stores an object in S3
func (s *S3Storage) Save(ctx context.Context, vis Visibility, key string, body io.Reader, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket(vis)),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

// Delete removes an object from S3
func (s *S3Storage) Delete(ctx context.Context, vis Visibility, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket(vis)),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	return nil
}

// PublicURL returns the URL of an object in the public bucket
func (s *S3Storage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.publicURL, key)
}

// SignedURL generates a presigned URL for temporary access to a private object
func (s *S3Storage) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	presignedReq, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.privateBucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}

	return presignedReq.URL, nil
}
