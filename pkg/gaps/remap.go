package gaps

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// RemapStats counts what a Remapper did
type RemapStats struct {
	Read      int
	Remapped  int
	Dropped   int
	Ambiguous int
}

// Remapper rewrites alignments against original sequences into the
// coordinate frame of the extracted windows they touch.
type Remapper struct {
	Index  *Index
	Logger logrus.FieldLogger
	Stats  RemapStats
}

// NewRemapper returns a remapper over a built index
func NewRemapper(ix *Index, logger logrus.FieldLogger) *Remapper {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	ix.Freeze()
	return &Remapper{Index: ix, Logger: logger}
}

// Remap returns the rewritten record and true, or false when the record does
// not touch any extracted window and must be dropped.
func (m *Remapper) Remap(a AlignmentRecord) (AlignmentRecord, bool) {
	m.Stats.Read++

	w, ok, err := m.Index.Select(a.TargetName, a.TargetStart, a.TargetEnd)
	if !ok {
		m.Stats.Dropped++
		return AlignmentRecord{}, false
	}
	var amb *AmbiguousOverlapError
	if errors.As(err, &amb) {
		m.Stats.Ambiguous++
		m.Logger.WithFields(logrus.Fields{
			"query":      a.QueryName,
			"target":     a.TargetName,
			"start":      a.TargetStart,
			"end":        a.TargetEnd,
			"candidates": len(amb.Candidates),
			"region":     amb.Chosen.Name,
		}).Warn("alignment overlaps more than one extracted window")
	}

	m.Stats.Remapped++
	return RemapRecord(a, w), true
}

// RemapRecord re-expresses a in the local frame of window w, clipping the
// target span to the window and moving the query bounds by the same amount.
// Match count and quality are passed through unscaled.
func RemapRecord(a AlignmentRecord, w Overlap) AlignmentRecord {
	out := a
	out.TargetName = w.Name

	gapStart, gapEnd := w.Start, w.End
	switch {
	case gapStart <= a.TargetStart && gapEnd > a.TargetEnd:
		// contained
		out.TargetStart = a.TargetStart - gapStart
		out.TargetEnd = a.TargetEnd - gapStart
	case gapStart <= a.TargetStart:
		// runs off the right edge
		out.TargetStart = a.TargetStart - gapStart
		out.TargetEnd = gapEnd - gapStart
		out.QueryEnd = a.QueryEnd - (a.TargetEnd - gapEnd)
	case gapEnd > a.TargetEnd:
		// runs off the left edge
		out.TargetStart = 0
		out.TargetEnd = a.TargetEnd - gapStart
		out.QueryStart = a.QueryStart + (gapStart - a.TargetStart)
	default:
		out.TargetStart = 0
		out.TargetEnd = gapEnd - gapStart
		out.QueryStart = a.QueryStart + (gapStart - a.TargetStart)
		out.QueryEnd = a.QueryEnd - (a.TargetEnd - gapEnd)
	}

	out.AlnLength = out.TargetEnd - out.TargetStart
	return out
}
