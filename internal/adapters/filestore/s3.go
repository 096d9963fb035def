package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.FileStore = (*S3)(nil)

// settingsPrefix is the key prefix for every settings object.
const settingsPrefix = "settings"

// S3 keeps files as objects in one bucket under a fixed prefix.
type S3 struct {
	client *s3.Client
	bucket string
}

// NewS3 wraps an existing client.
func NewS3(client *s3.Client, bucket string) *S3 {
	return &S3{client: client, bucket: bucket}
}

// NewS3FromConfig builds a client from the default AWS credential chain.
// An endpoint selects an S3-compatible service such as MinIO.
func NewS3FromConfig(ctx context.Context, cfg config.S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewS3(client, cfg.Bucket), nil
}

func (s *S3) key(name string) string {
	return path.Join(settingsPrefix, name)
}

// Read implements ports.FileStore.
func (s *S3) Read(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if isNotFound(err) {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", name, err)
	}
	defer func() { _ = out.Body.Close() }()
	return io.ReadAll(out.Body)
}

// Write implements ports.FileStore.
func (s *S3) Write(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", name, err)
	}
	return nil
}

// Delete implements ports.FileStore. S3 deletes are idempotent.
func (s *S3) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete object %s: %w", name, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *S3) Name() string { return healthName }

// HealthCheck reports whether the bucket is reachable.
func (s *S3) HealthCheck(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return err
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
