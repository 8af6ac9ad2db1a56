package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/3d-debian/portfolio-backend/config"
)

// ObjectStore uploads resume files to S3-compatible object storage and hands
// back a retrievable URL. The core never manages the file again afterwards;
// only the URL string is persisted.
type ObjectStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewObjectStore builds an ObjectStore from S3_BUCKET, S3_REGION and the
// optional S3_PUBLIC_BASE_URL / S3_ENDPOINT overrides. Returns nil when no
// bucket is configured, in which case upload endpoints report the collaborator
// as unavailable.
func NewObjectStore(ctx context.Context, cfg map[string]string) (*ObjectStore, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, nil
	}

	region := config.GetString(cfg, "S3_REGION", "us-east-1")
	endpoint := config.GetString(cfg, "S3_ENDPOINT", "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL", "")
	if baseURL == "" {
		if endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(endpoint, "/"), bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		}
	}

	return &ObjectStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload stores one file under resumes/<year>/<month>/<uuid><ext> and returns
// its public URL.
func (s *ObjectStore) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".pdf"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now().UTC()
	objectName := fmt.Sprintf("resumes/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), fileExt)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectName),
		Body:          file,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			"original-filename": fileName,
			"uploaded-at":       now.Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to object storage: %w", objectName, err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, objectName), nil
}
