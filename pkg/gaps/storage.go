package gaps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrAborted is reported to remote uploads cancelled through Output.Abort
var ErrAborted = errors.New("output aborted")

// Storage opens inputs and creates outputs on one backend.
// Supports the local filesystem, S3 and GCS.
type Storage interface {
	// Open opens path for reading
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Create starts writing path. Nothing is visible at path until Commit.
	Create(ctx context.Context, path string) (Output, error)

	// Exists checks if path exists
	Exists(ctx context.Context, path string) (bool, error)

	// IsRemote returns true for object stores
	IsRemote() bool
}

// Output is a pending file. Commit publishes it, Abort discards it; exactly
// one of them must be called.
type Output interface {
	io.Writer
	Commit() error
	Abort() error
}

// NewStorage creates the storage backend for path based on its scheme
func NewStorage(ctx context.Context, path string, cfg *Config) (Storage, error) {
	switch {
	case IsS3URI(path):
		return NewS3Storage(ctx)
	case IsGCSURI(path):
		anonymous := cfg != nil && cfg.GCSAnonymous
		return NewGCSStorage(ctx, anonymous)
	}
	return LocalStorage{}, nil
}

// LocalStorage implements Storage for the local filesystem. "-" means
// stdin or stdout.
type LocalStorage struct{}

func (LocalStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func (LocalStorage) Create(_ context.Context, path string) (Output, error) {
	if path == "-" {
		return stdoutOutput{}, nil
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary output: %w", err)
	}
	return &localOutput{File: f, path: path}, nil
}

func (LocalStorage) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (LocalStorage) IsRemote() bool {
	return false
}

// localOutput writes to a hidden temporary file next to path
type localOutput struct {
	*os.File
	path string
	done bool
}

func (o *localOutput) Commit() error {
	if o.done {
		return nil
	}
	o.done = true
	if err := o.File.Close(); err != nil {
		os.Remove(o.File.Name())
		return fmt.Errorf("failed to close %s: %w", o.path, err)
	}
	if err := os.Rename(o.File.Name(), o.path); err != nil {
		os.Remove(o.File.Name())
		return fmt.Errorf("failed to publish %s: %w", o.path, err)
	}
	return nil
}

func (o *localOutput) Abort() error {
	if o.done {
		return nil
	}
	o.done = true
	o.File.Close()
	return os.Remove(o.File.Name())
}

// stdoutOutput streams straight to stdout; records already written stay
// written on Abort.
type stdoutOutput struct{}

func (stdoutOutput) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdoutOutput) Commit() error               { return nil }
func (stdoutOutput) Abort() error                { return nil }

// OpenInput opens path on its backend and transparently decompresses it
func OpenInput(ctx context.Context, path string, cfg *Config) (io.ReadCloser, error) {
	st, err := NewStorage(ctx, path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage backend: %w", err)
	}
	rc, err := st.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return NewDecompressor(rc)
}

// compressedOutput encodes into a pending Output
type compressedOutput struct {
	io.WriteCloser
	out Output
}

func (o *compressedOutput) Commit() error {
	if err := o.WriteCloser.Close(); err != nil {
		o.out.Abort()
		return fmt.Errorf("failed to finish compression: %w", err)
	}
	return o.out.Commit()
}

func (o *compressedOutput) Abort() error {
	o.WriteCloser.Close()
	return o.out.Abort()
}

// CreateOutput creates path on its backend, compressing by extension
func CreateOutput(ctx context.Context, path string, cfg *Config) (Output, error) {
	st, err := NewStorage(ctx, path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage backend: %w", err)
	}
	out, err := st.Create(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	compression := CompressionForPath(path)
	if compression == CompressionNone {
		return out, nil
	}
	level := 2
	if cfg != nil {
		level = cfg.CompressionLevel
	}
	enc, err := NewCompressor(out, compression, level)
	if err != nil {
		out.Abort()
		return nil, err
	}
	return &compressedOutput{WriteCloser: enc, out: out}, nil
}

// splitBucketKey splits "scheme://bucket/key"
func splitBucketKey(uri, scheme string) (string, string, error) {
	if !strings.HasPrefix(uri, scheme) {
		return "", "", fmt.Errorf("invalid URI: %s (must start with %s)", uri, scheme)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, scheme), "/", 2)
	if parts[0] == "" {
		return "", "", fmt.Errorf("invalid URI: %s (missing bucket name)", uri)
	}
	if len(parts) < 2 || parts[1] == "" {
		return "", "", fmt.Errorf("invalid URI: %s (missing object key)", uri)
	}
	return parts[0], parts[1], nil
}
