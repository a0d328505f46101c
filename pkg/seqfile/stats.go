package seqfile

import (
	"context"
	"fmt"
	"io"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// ContigStats summarises the windows cut from one sequence
type ContigStats struct {
	Name    string
	Windows int
	Span    int64 // bases of the original sequence covered
	Bases   int64 // bases in the (possibly polished) windows
}

// GapsStats summarises a gaps FASTA, contigs in first-seen order
type GapsStats struct {
	Contigs []ContigStats
	Windows int
	Span    int64
	Bases   int64
}

// ReadStats summarises gaps FASTA records
func ReadStats(r io.Reader) (*GapsStats, error) {
	reader := NewFASTAReader(r)
	stats := &GapsStats{}
	pos := make(map[string]int)

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		seqName, _, err := gaps.ParseRegionName(rec.Name)
		if err != nil {
			return nil, err
		}
		desc, err := gaps.ParseDescriptor(rec.Desc)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", rec.Name, err)
		}

		i, ok := pos[seqName]
		if !ok {
			i = len(stats.Contigs)
			pos[seqName] = i
			stats.Contigs = append(stats.Contigs, ContigStats{Name: seqName})
		}
		c := &stats.Contigs[i]
		c.Windows++
		c.Span += int64(desc.End - desc.Start)
		c.Bases += int64(len(rec.Text))

		stats.Windows++
		stats.Span += int64(desc.End - desc.Start)
		stats.Bases += int64(len(rec.Text))
	}
	return stats, nil
}

// Stats summarises the gaps FASTA at path
func Stats(ctx context.Context, path string, cfg *gaps.Config) (*GapsStats, error) {
	in, err := gaps.OpenInput(ctx, path, cfg)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	stats, err := ReadStats(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return stats, nil
}
