package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const basePath = "docs/"

type S3Client interface {
	UploadFile(data []byte, filename string) (string, error)
}

type storageClient struct {
	bucket string
	region string
	client *s3.Client
}

func NewStorageClient() (S3Client, error) {
	region := os.Getenv("AWS_S3_REGION")
	bucket := os.Getenv("S3_BUCKET_NAME")
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg)
	return &storageClient{
		bucket: bucket,
		region: region,
		client: client,
	}, nil
}

// UploadFile stores the file under the docs/ prefix and returns its
// public object URL, which is what gets persisted on the doc record.
func (s *storageClient) UploadFile(data []byte, filename string) (string, error) {
	if filename == "" {
		return "", errors.New("filename is empty")
	}

	key := basePath + filename
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: &mimeType,
	}

	_, err := s.client.PutObject(context.Background(), input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
