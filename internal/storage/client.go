package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"epos-support-agent/internal/config"
)

// PresignExpiry is the lifetime of every pre-signed URL this service issues.
const PresignExpiry = time.Hour

// Client wraps the S3 client and presigner for the ticket media bucket.
type Client struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

func NewClient(ctx context.Context, cfg *config.Config, bucket string) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretAccessKey,
				cfg.AWSSessionToken,
			),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &Client{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
	}, nil
}

// AudioKey returns the object key for a ticket's audio upload.
func AudioKey(storeID, ticketID string) string {
	return fmt.Sprintf("%s/%s/audio/audio.mp3", storeID, ticketID)
}

// VideoKey returns the object key for a ticket's video upload.
func VideoKey(storeID, ticketID string) string {
	return fmt.Sprintf("%s/%s/video/video.mp4", storeID, ticketID)
}

// PresignUpload returns a time-limited URL granting a PUT on the given key.
func (c *Client) PresignUpload(ctx context.Context, key string) (string, error) {
	req, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}
	return req.URL, nil
}

// PresignDownload returns a time-limited URL granting a GET on the given key.
func (c *Client) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download for %s: %w", key, err)
	}
	return req.URL, nil
}

// Download fetches an object's bytes from the bucket.
func (c *Client) Download(ctx context.Context, key string) ([]byte, error) {
	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body for %s: %w", key, err)
	}

	return data, nil
}
