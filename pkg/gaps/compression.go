package gaps

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression names
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// CompressionForPath picks the output compression from a file extension
func CompressionForPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".gz"), strings.HasSuffix(path, ".bgz"):
		return CompressionGzip
	case strings.HasSuffix(path, ".zst"):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// readCloser closes the decoder and then the underlying stream
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewDecompressor sniffs rc for gzip (including BGZF) or zstd framing and
// returns a reader of the decoded stream. Plain input is returned buffered.
func NewDecompressor(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(rc, 1<<20)
	magic, err := br.Peek(4)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		rc.Close()
		return nil, fmt.Errorf("failed to read input header: %w", err)
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to create gzip decoder: %w", err)
		}
		return &readCloser{Reader: gr, closers: []func() error{gr.Close, rc.Close}}, nil
	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		return &readCloser{Reader: zr, closers: []func() error{
			func() error { zr.Close(); return nil },
			rc.Close,
		}}, nil
	}
	return &readCloser{Reader: br, closers: []func() error{rc.Close}}, nil
}

// nopFlushCloser is used when no encoder is needed
type nopFlushCloser struct {
	io.Writer
}

func (nopFlushCloser) Close() error { return nil }

// NewCompressor wraps w with an encoder for the given compression.
// level follows Config.CompressionLevel. Closing the encoder does not
// close w.
func NewCompressor(w io.Writer, compression string, level int) (io.WriteCloser, error) {
	switch compression {
	case CompressionNone, "":
		return nopFlushCloser{w}, nil
	case CompressionGzip:
		gzLevel := gzip.DefaultCompression
		switch level {
		case 1:
			gzLevel = gzip.BestSpeed
		case 3:
			gzLevel = gzip.BestCompression
		}
		gw, err := gzip.NewWriterLevel(w, gzLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip encoder: %w", err)
		}
		return gw, nil
	case CompressionZstd:
		var encoderLevel zstd.EncoderLevel
		switch level {
		case 1:
			encoderLevel = zstd.SpeedFastest
		case 3:
			encoderLevel = zstd.SpeedBetterCompression
		default:
			encoderLevel = zstd.SpeedDefault
		}
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(encoderLevel))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		return zw, nil
	}
	return nil, fmt.Errorf("unsupported compression: %s", compression)
}
