package seqfile

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// DefaultGapsOutput is the default name of the extracted gaps file
const DefaultGapsOutput = "GoldPolish-Target_extracted_gaps.fa"

// ExtractOptions configures gap extraction
type ExtractOptions struct {
	FASTA    string // assembly to extract from
	BED      string // optional gap coordinates; soft-masking is used when empty
	Output   string // gaps FASTA
	WriteFAI bool   // index the output (local, uncompressed only)
	Config   *gaps.Config
	Logger   logrus.FieldLogger
}

// ExtractSummary reports what was extracted
type ExtractSummary struct {
	Sequences        int
	SequencesWithGap int
	Windows          int
	InputBases       int64
	ExtractedBases   int64
	FAI              string
}

// Extract cuts flanked gaps out of every sequence of opts.FASTA and writes
// them to opts.Output. The output only appears if every sequence succeeded.
func Extract(ctx context.Context, opts ExtractOptions) (*ExtractSummary, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = gaps.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.Output == "" {
		opts.Output = DefaultGapsOutput
	}

	var coords Coordinates
	if opts.BED != "" {
		var err error
		coords, err = loadBED(ctx, opts.BED, cfg)
		if err != nil {
			return nil, err
		}
		log.WithField("contigs", coords.Contigs()).Info("loaded gap coordinates")
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

	summary := &ExtractSummary{}
	reader := NewFASTAReader(in)
	writer := NewFASTAWriter(out, cfg.LineWidth)
	seen := make(map[string]bool)

	produce := func(submit func(gaps.ExtractJob) error) error {
		for {
			seq, err := reader.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			summary.Sequences++
			summary.InputBases += int64(seq.Len())

			job := gaps.ExtractJob{Seq: seq}
			if coords != nil {
				list, ok := coords[seq.Name]
				if !ok {
					continue
				}
				seen[seq.Name] = true
				job.Coords = list
				job.FromCoords = true
			}
			if err := submit(job); err != nil {
				return err
			}
		}
	}

	emit := func(res gaps.ExtractResult) error {
		if len(res.Windows) > 0 {
			summary.SequencesWithGap++
		}
		for _, w := range res.Windows {
			if err := writer.Write(w.Record()); err != nil {
				return err
			}
			summary.Windows++
			summary.ExtractedBases += int64(len(w.Text))
		}
		log.WithFields(logrus.Fields{
			"sequence": res.Name,
			"length":   res.Length,
			"windows":  len(res.Windows),
		}).Debug("extracted sequence")
		return nil
	}

	pe := gaps.NewParallelExtractor(cfg)
	if err := pe.Run(ctx, produce, emit); err != nil {
		out.Abort()
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	if err := out.Commit(); err != nil {
		return nil, err
	}

	for name := range coords {
		if !seen[name] {
			log.WithField("sequence", name).Debug("BED contig not found in FASTA")
		}
	}

	if opts.WriteFAI {
		faiPath, err := WriteFAI(ctx, opts.Output)
		if err != nil {
			log.WithError(err).Warn("skipping FASTA index")
		} else {
			summary.FAI = faiPath
		}
	}

	log.WithFields(logrus.Fields{
		"sequences": summary.Sequences,
		"windows":   summary.Windows,
		"workers":   pe.Workers(),
	}).Infof("extracted %s bp of %s bp into %s",
		humanize.Comma(summary.ExtractedBases), humanize.Comma(summary.InputBases), opts.Output)
	return summary, nil
}

// loadBED reads a BED file from any backend
func loadBED(ctx context.Context, path string, cfg *gaps.Config) (Coordinates, error) {
	in, err := gaps.OpenInput(ctx, path, cfg)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	coords, err := ReadBED(in)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return coords, nil
}
