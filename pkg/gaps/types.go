package gaps

import "fmt"

// Sequence is a named sequence record as read from a FASTA file
type Sequence struct {
	Name string
	Desc string
	Text string
}

// Len returns the sequence length in bases
func (s Sequence) Len() int {
	return len(s.Text)
}

// Region is a half-open, 0-based span of a sequence selected for polishing
type Region struct {
	Start int
	End   int
}

// Len returns the region length
func (r Region) Len() int {
	return r.End - r.Start
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Coordinate is an externally supplied gap, e.g. one BED row
type Coordinate struct {
	Start int
	End   int
}

// FlankedWindow is a region plus its flanks, cut out of the original sequence
type FlankedWindow struct {
	Name       string // "<sequence>.<ordinal>"
	Sequence   string // originating sequence name
	Ordinal    int    // 1-based, per sequence
	FlankStart int
	FlankEnd   int
	Text       string
}

// Descriptor returns the coordinate descriptor recorded for the window
func (w FlankedWindow) Descriptor() Descriptor {
	return Descriptor{Start: w.FlankStart, End: w.FlankEnd}
}

// Record returns the window as a sequence record carrying its descriptor
func (w FlankedWindow) Record() Sequence {
	return Sequence{
		Name: w.Name,
		Desc: w.Descriptor().String(),
		Text: w.Text,
	}
}

// AlignmentRecord is one row of a PAF file (the 12 mandatory columns)
type AlignmentRecord struct {
	QueryName   string
	QueryLen    int
	QueryStart  int
	QueryEnd    int
	Strand      string
	TargetName  string
	TargetLen   int
	TargetStart int
	TargetEnd   int
	NumMatches  int
	AlnLength   int
	Quality     int
}

// Overlap is an indexed window hit by a query interval
type Overlap struct {
	Name  string // region name
	Start int    // gap_start
	End   int    // gap_end
}

func (o Overlap) String() string {
	return fmt.Sprintf("%s[%d,%d)", o.Name, o.Start, o.End)
}
