package store

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// S3Backend stores dataset, mapping, and output files in a single AWS S3
// bucket.
type S3Backend struct {
	bucket     string
	region     string
	client     *s3.Client
	uploader   *manager.Uploader
	downloader *manager.Downloader
}

// NewS3Backend builds a S3Backend for the given bucket and region,
// probing bucket access before returning.
func NewS3Backend(ctx context.Context, bucket, region string) (*S3Backend, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET must be configured for S3 usage")
	}
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
		log.WithError(err).WithField("bucket", bucket).Error("could not access configured S3 bucket")
		return nil, err
	}

	return &S3Backend{
		bucket:     bucket,
		region:     region,
		client:     client,
		uploader:   manager.NewUploader(client),
		downloader: manager.NewDownloader(client),
	}, nil
}

func (b *S3Backend) Name() string {
	return "AWS S3 (" + b.bucket + ")"
}

func (b *S3Backend) Persist(ctx context.Context, path string, f Persister) (string, int64, error) {
	pr, pw := io.Pipe()

	uploadDone := make(chan error, 1)
	go func() {
		defer close(uploadDone)
		_, uploadErr := b.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(b.bucket),
			Key:    aws.String(path),
			Body:   pr,
		})
		uploadDone <- uploadErr
	}()

	hash, size, err := withHash(pw, f)
	pw.Close()
	if err != nil {
		pr.CloseWithError(err)
		<-uploadDone
		log.WithError(err).WithField("path", path).Error("failed to write data for S3 upload")
		return hash, size, err
	}

	if uploadErr := <-uploadDone; uploadErr != nil {
		log.WithError(uploadErr).WithField("path", path).Error("failed to upload to S3")
		return hash, size, uploadErr
	}

	return hash, size, nil
}

func (b *S3Backend) Fetch(ctx context.Context, path string) (io.ReadCloser, error) {
	if _, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(b.bucket), Key: aws.String(path)}); err != nil {
		return nil, err
	}

	resp, err := b.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(b.bucket), Key: aws.String(path)})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (b *S3Backend) Move(ctx context.Context, old, new string) error {
	if _, err := b.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(b.bucket),
		Key:        aws.String(new),
		CopySource: aws.String(b.bucket + "/" + old),
	}); err != nil {
		return err
	}

	if _, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: aws.String(b.bucket), Key: aws.String(old)}); err != nil {
		log.WithError(err).WithFields(log.Fields{"old": old, "new": new}).Warn("failed to delete old object after move")
	}

	return nil
}
