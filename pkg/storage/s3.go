package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Provider represents the S3-compatible storage provider
type S3Provider string

const (
	S3ProviderAWS    S3Provider = "aws"
	S3ProviderWasabi S3Provider = "wasabi"
)

// S3Config holds configuration for S3-compatible storage
type S3Config struct {
	Provider        S3Provider `env:"PROVIDER" envDefault:"aws"`
	AccessKeyID     string     `env:"ACCESS_KEY_ID"`
	SecretAccessKey string     `env:"SECRET_ACCESS_KEY"`
	Region          string     `env:"REGION" envDefault:"us-east-1"`
	Bucket          string     `env:"BUCKET"`
	// Endpoint overrides the provider endpoint, e.g. "s3.ap-southeast-1.wasabisys.com"
	Endpoint string `env:"ENDPOINT"`
	// PublicBaseURL is prepended to object keys when rendering picture URLs
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// WasabiEndpoints maps regions to Wasabi endpoints
var WasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
}

func (c S3Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.Provider == S3ProviderWasabi {
		if endpoint, ok := WasabiEndpoints[c.Region]; ok {
			return endpoint
		}
		return "s3.ap-southeast-1.wasabisys.com"
	}
	return ""
}

// NewS3Client creates an S3 client with the given config
// Supports both AWS S3 and Wasabi
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := cfg.endpoint()
	if endpoint == "" {
		return s3.NewFromConfig(awsCfg), nil
	}

	// Custom endpoints (Wasabi, MinIO) require path-style addressing
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
			o.BaseEndpoint = aws.String(endpoint)
		} else {
			o.BaseEndpoint = aws.String("https://" + endpoint)
		}
		o.UsePathStyle = true
	}), nil
}

// S3API is the part of *s3.Client the store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps blobs as objects under prefix in one bucket.
// References are the object names without the prefix.
type S3Store struct {
	client        S3API
	bucket        string
	prefix        string
	publicBaseURL string
}

func NewS3Store(client S3API, bucket, prefix, publicBaseURL string) *S3Store {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Store{
		client:        client,
		bucket:        bucket,
		prefix:        prefix,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *S3Store) Put(ctx context.Context, p Payload) (string, error) {
	ref := uuid.NewString() + p.Ext()

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + ref),
		Body:   bytes.NewReader(p.Data),
	}
	if p.ContentType != "" {
		input.ContentType = aws.String(p.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", ref, err)
	}
	return ref, nil
}

// Delete removes the object. S3 reports success for missing keys.
func (s *S3Store) Delete(ctx context.Context, ref string) error {
	if err := CheckRef(ref); err != nil {
		return err
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + ref),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", ref, err)
	}
	return nil
}

// URL renders a public URL for ref, or "" without a public base URL.
func (s *S3Store) URL(ref string) string {
	if s.publicBaseURL == "" || ref == "" {
		return ""
	}
	return s.publicBaseURL + "/" + s.prefix + ref
}
