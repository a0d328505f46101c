package seqfile

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// SpliceOptions configures reinsertion of polished gaps
type SpliceOptions struct {
	FASTA  string // original assembly
	Gaps   string // polished gaps with their descriptors
	Output string
	Config *gaps.Config
	Logger logrus.FieldLogger
}

// SpliceSummary reports what was spliced
type SpliceSummary struct {
	Sequences        int
	SplicedSequences int
	Windows          int
	InputBases       int64
	OutputBases      int64
}

// LoadReplacements reads a polished gaps FASTA and groups its windows by
// originating sequence
func LoadReplacements(r io.Reader) (map[string][]gaps.Replacement, error) {
	reader := NewFASTAReader(r)
	bySeq := make(map[string][]gaps.Replacement)
	names := make(map[string]bool)

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if names[rec.Name] {
			return nil, fmt.Errorf("duplicate region %s: %w", rec.Name, gaps.ErrStructural)
		}
		names[rec.Name] = true

		seqName, ordinal, err := gaps.ParseRegionName(rec.Name)
		if err != nil {
			return nil, err
		}
		desc, err := gaps.ParseDescriptor(rec.Desc)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", rec.Name, err)
		}
		start, end := desc.SpliceRange()
		bySeq[seqName] = append(bySeq[seqName], gaps.Replacement{
			Ordinal:    ordinal,
			FlankStart: start,
			FlankEnd:   end,
			Text:       rec.Text,
		})
	}
	return bySeq, nil
}

// Splice writes every sequence of opts.FASTA with its polished windows put
// back, in input order. Sequences without windows are copied unchanged.
func Splice(ctx context.Context, opts SpliceOptions) (*SpliceSummary, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = gaps.NewConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.Output == "" {
		return nil, fmt.Errorf("an output path is required")
	}

	gapsIn, err := gaps.OpenInput(ctx, opts.Gaps, cfg)
	if err != nil {
		return nil, err
	}
	replacements, err := LoadReplacements(gapsIn)
	gapsIn.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", opts.Gaps, err)
	}

	in, err := gaps.OpenInput(ctx, opts.FASTA, cfg)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := gaps.CreateOutput(ctx, opts.Output, cfg)
	if err != nil {
		return nil, err
	}

	summary, err := spliceAll(ctx, NewFASTAReader(in), NewFASTAWriter(out, cfg.LineWidth), replacements, log)
	if err != nil {
		out.Abort()
		return nil, err
	}
	if err := out.Commit(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"sequences": summary.Sequences,
		"spliced":   summary.SplicedSequences,
		"windows":   summary.Windows,
	}).Infof("wrote %s bp (from %s bp) to %s",
		humanize.Comma(summary.OutputBases), humanize.Comma(summary.InputBases), opts.Output)
	return summary, nil
}

func spliceAll(ctx context.Context, reader *FASTAReader, writer *FASTAWriter,
	replacements map[string][]gaps.Replacement, log logrus.FieldLogger) (*SpliceSummary, error) {

	summary := &SpliceSummary{}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		seq, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		summary.Sequences++
		summary.InputBases += int64(seq.Len())

		windows := replacements[seq.Name]
		delete(replacements, seq.Name)

		spliced, err := gaps.Splice(seq, windows)
		if err != nil {
			return nil, err
		}
		if len(windows) > 0 {
			summary.SplicedSequences++
			summary.Windows += len(windows)
		}
		summary.OutputBases += int64(spliced.Len())

		if err := writer.Write(spliced); err != nil {
			return nil, err
		}
	}

	if len(replacements) > 0 {
		orphans := make([]string, 0, len(replacements))
		for name := range replacements {
			orphans = append(orphans, name)
		}
		sort.Strings(orphans)
		log.WithField("sequences", orphans).Warn("polished windows refer to sequences missing from the assembly")
	}
	return summary, nil
}
