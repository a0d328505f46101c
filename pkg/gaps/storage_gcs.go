package gaps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	gcs "cloud.google.com/go/storage"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// GCSTokenEnv names the variable holding an OAuth2 bearer token for GCS
const GCSTokenEnv = "GOOGLE_OAUTH_ACCESS_TOKEN"

// GCSStorage implements Storage for Google Cloud Storage
type GCSStorage struct {
	client *gcs.Client
}

// IsGCSURI checks if a path is a GCS URI
func IsGCSURI(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// NewGCSStorage creates a GCS backend. Anonymous clients can only read
// public objects; otherwise a bearer token from GCSTokenEnv is used when set
// and application default credentials when not.
func NewGCSStorage(ctx context.Context, anonymous bool) (*GCSStorage, error) {
	var opts []option.ClientOption
	switch {
	case anonymous:
		opts = append(opts, option.WithHTTPClient(http.DefaultClient))
	case os.Getenv(GCSTokenEnv) != "":
		token := oauth2.Token{TokenType: "Bearer", AccessToken: os.Getenv(GCSTokenEnv)}
		opts = append(opts, option.WithTokenSource(oauth2.StaticTokenSource(&token)))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSStorage{client: client}, nil
}

func (s *GCSStorage) object(path string) (*gcs.ObjectHandle, error) {
	bucket, key, err := splitBucketKey(path, "gs://")
	if err != nil {
		return nil, err
	}
	return s.client.Bucket(bucket).Object(key), nil
}

func (s *GCSStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	obj, err := s.object(path)
	if err != nil {
		return nil, err
	}
	r, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return r, nil
}

// Create writes through a resumable upload; cancelling its context
// discards the object.
func (s *GCSStorage) Create(ctx context.Context, path string) (Output, error) {
	obj, err := s.object(path)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	return &gcsOutput{Writer: obj.NewWriter(ctx), cancel: cancel, path: path}, nil
}

func (s *GCSStorage) Exists(ctx context.Context, path string) (bool, error) {
	obj, err := s.object(path)
	if err != nil {
		return false, err
	}
	if _, err := obj.Attrs(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *GCSStorage) IsRemote() bool {
	return true
}

type gcsOutput struct {
	*gcs.Writer
	cancel context.CancelFunc
	path   string
}

func (o *gcsOutput) Commit() error {
	defer o.cancel()
	if err := o.Writer.Close(); err != nil {
		return fmt.Errorf("failed to upload %s: %w", o.path, err)
	}
	return nil
}

func (o *gcsOutput) Abort() error {
	o.cancel()
	o.Writer.Close()
	return nil
}
