package seqfile

import (
	"context"
	"fmt"
	"os"

	"github.com/biogo/hts/fai"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// WriteFAI writes a samtools-style index next to a local, uncompressed
// FASTA file and returns its path
func WriteFAI(ctx context.Context, fastaPath string) (string, error) {
	if gaps.IsS3URI(fastaPath) || gaps.IsGCSURI(fastaPath) || fastaPath == "-" {
		return "", fmt.Errorf("cannot index %s: only local files can be indexed", fastaPath)
	}
	if gaps.CompressionForPath(fastaPath) != gaps.CompressionNone {
		return "", fmt.Errorf("cannot index %s: compressed FASTA", fastaPath)
	}

	f, err := os.Open(fastaPath)
	if err != nil {
		return "", fmt.Errorf("failed to open FASTA for indexing: %w", err)
	}
	defer f.Close()

	idx, err := fai.NewIndex(f)
	if err != nil {
		return "", fmt.Errorf("failed to index %s: %w", fastaPath, err)
	}

	faiPath := fastaPath + ".fai"
	out, err := gaps.LocalStorage{}.Create(ctx, faiPath)
	if err != nil {
		return "", err
	}
	if err := fai.WriteTo(out, idx); err != nil {
		out.Abort()
		return "", fmt.Errorf("failed to write %s: %w", faiPath, err)
	}
	if err := out.Commit(); err != nil {
		return "", err
	}
	return faiPath, nil
}

// ReadFAI reads a FASTA index
func ReadFAI(path string) (fai.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := fai.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return idx, nil
}
