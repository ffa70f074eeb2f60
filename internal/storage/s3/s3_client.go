package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"scholarlink/internal/config"
	"scholarlink/internal/port"
)

// DefaultPresignExpiry applies when no expiry is configured.
const DefaultPresignExpiry = time.Hour

type documentStore struct {
	bucket    string
	expiry    time.Duration
	client    *s3.Client
	presigner *s3.PresignClient
	uploader  *manager.Uploader
}

// NewDocumentStore creates an S3-backed DocumentStorage for cfg.Bucket.
// Presigned download links stay valid for presignExpiry.
func NewDocumentStore(ctx context.Context, cfg *config.S3Config, presignExpiry time.Duration) (port.DocumentStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		// MinIO and LocalStack need path-style addressing.
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	if presignExpiry <= 0 {
		presignExpiry = DefaultPresignExpiry
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &documentStore{
		bucket:    cfg.Bucket,
		expiry:    presignExpiry,
		client:    client,
		presigner: s3.NewPresignClient(client),
		uploader:  manager.NewUploader(client),
	}, nil
}

func (d *documentStore) Put(ctx context.Context, input port.PutObjectInput) (*port.StoredObject, error) {
	result, err := d.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(input.Key),
		Body:        input.Body,
		ContentType: aws.String(input.ContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put %s: %w", input.Key, err)
	}

	return &port.StoredObject{
		Key:      input.Key,
		Location: result.Location,
		ETag:     aws.ToString(result.ETag),
	}, nil
}

func (d *documentStore) Delete(ctx context.Context, key string) error {
	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

func (d *documentStore) URL(ctx context.Context, key string) (string, error) {
	result, err := d.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(d.expiry))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s: %w", key, err)
	}
	return result.URL, nil
}
