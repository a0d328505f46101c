package gaps

import (
	"sort"
	"strings"
)

// Replacement is a polished window to be put back into its sequence.
// Text may differ in length from FlankEnd-FlankStart.
type Replacement struct {
	Ordinal    int
	FlankStart int
	FlankEnd   int
	Text       string
}

// Splice rebuilds seq with each window's span replaced by its text.
// Ordinals must run 1..N without holes; a sequence without windows is
// returned unchanged.
func Splice(seq Sequence, windows []Replacement) (Sequence, error) {
	if len(windows) == 0 {
		return seq, nil
	}

	ordered := make([]Replacement, len(windows))
	copy(ordered, windows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Ordinal < ordered[j].Ordinal
	})
	for i, w := range ordered {
		if w.Ordinal != i+1 {
			return Sequence{}, &MissingRegionError{Sequence: seq.Name, Ordinal: i + 1}
		}
	}

	var b strings.Builder
	b.Grow(seq.Len())

	cursor := 0
	for i, w := range ordered {
		if w.FlankStart < cursor || w.FlankEnd < w.FlankStart || w.FlankEnd > seq.Len() {
			return Sequence{}, &NonMonotonicCoordinatesError{Sequence: seq.Name, Index: i,
				Start: w.FlankStart, End: w.FlankEnd,
				Reason: "window overlaps its predecessor or lies outside the sequence"}
		}
		b.WriteString(seq.Text[cursor:w.FlankStart])
		b.WriteString(w.Text)
		cursor = w.FlankEnd
	}
	b.WriteString(seq.Text[cursor:])

	return Sequence{Name: seq.Name, Desc: seq.Desc, Text: b.String()}, nil
}

// Replacements converts freshly extracted windows into identity replacements
func Replacements(windows []FlankedWindow) []Replacement {
	out := make([]Replacement, len(windows))
	for i, w := range windows {
		out[i] = Replacement{Ordinal: w.Ordinal, FlankStart: w.FlankStart, FlankEnd: w.FlankEnd, Text: w.Text}
	}
	return out
}
