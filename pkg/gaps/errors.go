package gaps

import (
	"errors"
	"fmt"
)

// ErrStructural is matched by every error that must abort a run.
// Continuing after one of these would corrupt coordinates downstream.
var ErrStructural = errors.New("structural error")

// MalformedRunSequenceError reports a case-run list that does not alternate
// between upper and lower case, or whose runs are not contiguous.
type MalformedRunSequenceError struct {
	Sequence string
	Index    int
	Reason   string
}

func (e *MalformedRunSequenceError) Error() string {
	return fmt.Sprintf("malformed run sequence in %q at run %d: %s", e.Sequence, e.Index, e.Reason)
}

func (e *MalformedRunSequenceError) Unwrap() error { return ErrStructural }

// NonMonotonicCoordinatesError reports coordinates that go backwards, are
// inverted or negative.
type NonMonotonicCoordinatesError struct {
	Sequence string
	Index    int
	Start    int
	End      int
	Reason   string
}

func (e *NonMonotonicCoordinatesError) Error() string {
	return fmt.Sprintf("invalid coordinates for %q at entry %d (%d-%d): %s",
		e.Sequence, e.Index, e.Start, e.End, e.Reason)
}

func (e *NonMonotonicCoordinatesError) Unwrap() error { return ErrStructural }

// MissingRegionError reports a gap in the 1..N ordinal series of a sequence.
type MissingRegionError struct {
	Sequence string
	Ordinal  int
}

func (e *MissingRegionError) Error() string {
	return fmt.Sprintf("missing region %s", RegionName(e.Sequence, e.Ordinal))
}

func (e *MissingRegionError) Unwrap() error { return ErrStructural }

// RegionBoundsError reports a region that does not fit its sequence.
type RegionBoundsError struct {
	Sequence string
	Region   Region
	Length   int
}

func (e *RegionBoundsError) Error() string {
	return fmt.Sprintf("region %s lies outside %q (length %d)", e.Region, e.Sequence, e.Length)
}

func (e *RegionBoundsError) Unwrap() error { return ErrStructural }

// AmbiguousOverlapError is not fatal: it describes a query that hit more than
// one window. The caller logs it and uses Chosen.
type AmbiguousOverlapError struct {
	Target     string
	Start, End int
	Candidates []Overlap
	Chosen     Overlap
}

func (e *AmbiguousOverlapError) Error() string {
	return fmt.Sprintf("%d windows overlap %s:%d-%d, using %s",
		len(e.Candidates), e.Target, e.Start, e.End, e.Chosen)
}
