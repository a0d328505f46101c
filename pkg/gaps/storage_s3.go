package gaps

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage implements Storage for AWS S3
type S3Storage struct {
	client   *s3.Client
	uploader *manager.Uploader
}

// IsS3URI checks if a path is an S3 URI
func IsS3URI(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// NewS3Storage creates an S3 backend from the default AWS configuration
func NewS3Storage(ctx context.Context) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Storage{
		client: client,
		uploader: manager.NewUploader(client, func(u *manager.Uploader) {
			u.PartSize = 10 * 1024 * 1024
		}),
	}, nil
}

func (s *S3Storage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := splitBucketKey(path, "s3://")
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", bucket, key, err)
	}
	return out.Body, nil
}

// Create streams the object through a multipart upload. The object only
// appears once the upload completes.
func (s *S3Storage) Create(ctx context.Context, path string) (Output, error) {
	bucket, key, err := splitBucketKey(path, "s3://")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	pr, pw := io.Pipe()
	o := &s3Output{pw: pw, cancel: cancel, done: make(chan error, 1)}

	go func() {
		_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   pr,
		})
		if err != nil {
			err = fmt.Errorf("failed to upload to s3://%s/%s: %w", bucket, key, err)
		}
		pr.CloseWithError(err)
		o.done <- err
	}()
	return o, nil
}

func (s *S3Storage) Exists(ctx context.Context, path string) (bool, error) {
	bucket, key, err := splitBucketKey(path, "s3://")
	if err != nil {
		return false, err
	}

	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3Storage) IsRemote() bool {
	return true
}

type s3Output struct {
	pw     *io.PipeWriter
	cancel context.CancelFunc
	done   chan error
}

func (o *s3Output) Write(p []byte) (int, error) {
	return o.pw.Write(p)
}

func (o *s3Output) Commit() error {
	defer o.cancel()
	o.pw.Close()
	return <-o.done
}

func (o *s3Output) Abort() error {
	o.cancel()
	o.pw.CloseWithError(ErrAborted)
	<-o.done
	return nil
}
