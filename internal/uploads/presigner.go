// Package uploads hands out short-lived presigned URLs so clients push entry
// images straight to object storage.
package uploads

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (url string, err error)
	PublicURL(key string) string
}

type S3Presigner struct {
	bucket  string
	region  string
	ttl     time.Duration
	presign *s3.PresignClient
}

func NewS3Presigner(ctx context.Context, bucket, region string, ttl time.Duration) (*S3Presigner, error) {
	if bucket == "" {
		return nil, fmt.Errorf("upload bucket is not configured")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg)
	return &S3Presigner{
		bucket:  bucket,
		region:  region,
		ttl:     ttl,
		presign: s3.NewPresignClient(client),
	}, nil
}

func (p *S3Presigner) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	request, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", err
	}
	return request.URL, nil
}

func (p *S3Presigner) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, p.region, key)
}

// ObjectKey builds a collision-free storage key for one model image.
func ObjectKey(modelID uint, filename string) string {
	return fmt.Sprintf("models/%d/%s-%s", modelID, uuid.NewString(), filename)
}
