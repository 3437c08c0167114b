package objectstorage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/distromart/product-service/config"
	"github.com/distromart/product-service/internal/domain"
)

// S3ImageStore stores product images in an S3-compatible bucket. The
// object key doubles as the image's public identifier.
type S3ImageStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func CreateS3ImageStore(conf config.ObjectStorageConfig) *S3ImageStore {
	region := conf.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region:       region,
		Credentials:  credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, ""),
		UsePathStyle: true,
	}
	if conf.Endpoint != "" {
		opts.BaseEndpoint = aws.String(conf.Endpoint)
	}

	publicBaseURL := conf.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(conf.Endpoint, "/"), conf.Bucket)
	}

	return &S3ImageStore{
		client:        s3.New(opts),
		bucket:        conf.Bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

func (s *S3ImageStore) Upload(ctx context.Context, data []byte, contentType string, folder string) (domain.ProductImage, error) {
	key := fmt.Sprintf("%s/%s", folder, uuid.New().String())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return domain.ProductImage{}, fmt.Errorf("upload image %s: %w", key, err)
	}

	return domain.ProductImage{
		URL:      fmt.Sprintf("%s/%s", s.publicBaseURL, key),
		PublicID: key,
	}, nil
}

func (s *S3ImageStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Delete").Msg("")
		return fmt.Errorf("delete image %s: %w", publicID, err)
	}

	return nil
}
