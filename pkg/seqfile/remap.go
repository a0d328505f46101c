package seqfile

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// DefaultMappingOutput is the default name of the remapped PAF
const DefaultMappingOutput = "GoldPolish-Target_mapping_updated"

// RemapOptions configures the mapping update
type RemapOptions struct {
	Gaps    string // extracted gaps FASTA
	Mapping string // PAF against the original assembly
	Output  string
	Config  *gaps.Config
	Logger  logrus.FieldLogger
}

// LoadIndex builds the window index from an extracted gaps FASTA
func LoadIndex(ctx context.Context, path string, cfg *gaps.Config) (*gaps.Index, error) {
	in, err := gaps.OpenInput(ctx, path, cfg)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	ix, err := ReadIndex(in)
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", path, err)
	}
	return ix, nil
}

// ReadIndex builds a frozen window index from gaps FASTA records
func ReadIndex(r io.Reader) (*gaps.Index, error) {
	reader := NewFASTAReader(r)
	ix := gaps.NewIndex()
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		desc, err := gaps.ParseDescriptor(rec.Desc)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", rec.Name, err)
		}
		if err := ix.Add(rec.Name, desc); err != nil {
			return nil, err
		}
	}
	ix.Freeze()
	return ix, nil
}

// RemapRecords streams PAF rows through m, writing only the rows that touch
// an extracted window
func RemapRecords(ctx context.Context, r *PAFReader, w *PAFWriter, m *gaps.Remapper) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if out, ok := m.Remap(rec); ok {
			if err := w.Write(out); err != nil {
				return fmt.Errorf("failed to write PAF: %w", err)
			}
		}
	}
	return w.Flush()
}

// RemapPAF rewrites opts.Mapping into the coordinate space of the windows in
// opts.Gaps
func RemapPAF(ctx context.Context, opts RemapOptions) (*gaps.RemapStats, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = gaps.NewConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.Mapping != "-" && !strings.Contains(opts.Mapping, "paf") {
		return nil, fmt.Errorf("mapping file must be a paf file: %s", opts.Mapping)
	}
	if opts.Output == "" {
		opts.Output = DefaultMappingOutput
	}

	ix, err := LoadIndex(ctx, opts.Gaps, cfg)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"windows":   ix.Len(),
		"sequences": len(ix.Targets()),
	}).Info("indexed extracted windows")

	in, err := gaps.OpenInput(ctx, opts.Mapping, cfg)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := gaps.CreateOutput(ctx, opts.Output, cfg)
	if err != nil {
		return nil, err
	}

	m := gaps.NewRemapper(ix, log)
	if err := RemapRecords(ctx, NewPAFReader(in), NewPAFWriter(out), m); err != nil {
		out.Abort()
		return nil, fmt.Errorf("failed to remap %s: %w", opts.Mapping, err)
	}
	if err := out.Commit(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"read":      m.Stats.Read,
		"remapped":  m.Stats.Remapped,
		"dropped":   m.Stats.Dropped,
		"ambiguous": m.Stats.Ambiguous,
	}).Infof("wrote %s", opts.Output)
	return &m.Stats, nil
}
