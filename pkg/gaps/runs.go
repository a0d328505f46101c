package gaps

import "strconv"

// MinGapLength is the length a lowercase run must exceed to be extracted
const MinGapLength = 1

// Run is a maximal stretch of same-case bases.
// Anything that is not a lowercase letter counts as upper case.
type Run struct {
	Lower bool
	Start int
	End   int
}

// Len returns the run length
func (r Run) Len() int {
	return r.End - r.Start
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// SplitRuns splits text into maximal same-case runs in order
func SplitRuns(text string) []Run {
	if len(text) == 0 {
		return nil
	}

	runs := make([]Run, 0, 16)
	cur := Run{Lower: isLower(text[0]), Start: 0}
	for i := 1; i < len(text); i++ {
		if l := isLower(text[i]); l != cur.Lower {
			cur.End = i
			runs = append(runs, cur)
			cur = Run{Lower: l, Start: i}
		}
	}
	cur.End = len(text)
	return append(runs, cur)
}

// AbsorbRuns folds upper-case runs shorter than 2*flank into their lowercase
// neighbours, left to right, so that alternating chains of short confident
// runs and gaps collapse into one gap. A lone run has no neighbour and is
// returned as is. The result alternates strictly.
func AbsorbRuns(runs []Run, flank int) []Run {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		if !r.Lower && r.Len() < 2*flank && len(runs) > 1 {
			r.Lower = true
		}
		if n := len(out); n > 0 && out[n-1].Lower == r.Lower {
			out[n-1].End = r.End
			continue
		}
		out = append(out, r)
	}
	return out
}

// validateRuns checks that runs tile [0, length) and alternate in case
func validateRuns(name string, runs []Run, length int) error {
	pos := 0
	for i, r := range runs {
		if r.Start != pos {
			return &MalformedRunSequenceError{Sequence: name, Index: i,
				Reason: "run starts at " + strconv.Itoa(r.Start) + ", expected " + strconv.Itoa(pos)}
		}
		if r.End <= r.Start {
			return &MalformedRunSequenceError{Sequence: name, Index: i, Reason: "empty run"}
		}
		if i > 0 && runs[i-1].Lower == r.Lower {
			return &MalformedRunSequenceError{Sequence: name, Index: i, Reason: "consecutive runs share the same case"}
		}
		pos = r.End
	}
	if pos != length {
		return &MalformedRunSequenceError{Sequence: name, Index: len(runs),
			Reason: "runs end at " + strconv.Itoa(pos) + " of " + strconv.Itoa(length)}
	}
	return nil
}

// DetectRegions finds the gaps of a soft-masked sequence (lowercase bases)
// and returns them merged so each can carry independent flanks.
func DetectRegions(name, text string, flank int) ([]Region, error) {
	runs := SplitRuns(text)
	if err := validateRuns(name, runs, len(text)); err != nil {
		return nil, err
	}

	absorbed := AbsorbRuns(runs, flank)
	if err := validateRuns(name, absorbed, len(text)); err != nil {
		return nil, err
	}

	var regions []Region
	for _, r := range absorbed {
		if r.Lower && r.Len() > MinGapLength {
			regions = append(regions, Region{Start: r.Start, End: r.End})
		}
	}
	return regions, nil
}
