// Package storage provides media storage backed by S3-compatible services.
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
	"github.com/sirupsen/logrus"
)

// S3Client stores catalog images in a bucket and serves them from a public base URL.
type S3Client struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Client creates a new S3 client configured for the given endpoint.
// publicURL is the base under which objects are reachable by browsers; when empty
// the path-style endpoint URL of the bucket is used.
func NewS3Client(endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) *S3Client {
	protocol := "http"
	if useSSL {
		protocol = "https"
	}
	endpointURL := protocol + "://" + endpoint

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("us-east-1"), // MinIO requires a region
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load S3 config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL)
		o.UsePathStyle = true // Required for MinIO
	})

	if publicURL == "" {
		publicURL = endpointURL + "/" + bucket
	}

	logrus.WithField("endpoint", endpointURL).Info("Connected to S3")

	return &S3Client{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores data under key and returns its public URL. The key doubles as
// the public identifier used by Destroy.
func (s *S3Client) Upload(ctx context.Context, key string, data []byte, contentType string) (*UploadResult, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &UploadResult{
		URL:      s.URLFor(key),
		PublicID: key,
	}, nil
}

// Destroy deletes the object identified by publicID.
func (s *S3Client) Destroy(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", publicID, err)
	}
	return nil
}

// URLFor returns the public URL of key.
func (s *S3Client) URLFor(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}
