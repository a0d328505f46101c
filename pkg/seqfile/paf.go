package seqfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// PAFColumns is the number of mandatory PAF columns
const PAFColumns = 12

// PAFReader reads the mandatory columns of PAF rows. Optional SAM-style tag
// columns are accepted and ignored.
type PAFReader struct {
	sc   *bufio.Scanner
	line int
}

// NewPAFReader creates a PAF reader
func NewPAFReader(r io.Reader) *PAFReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	return &PAFReader{sc: sc}
}

// Read returns the next record, or io.EOF at the end of input
func (r *PAFReader) Read() (gaps.AlignmentRecord, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParsePAFLine(line)
		if err != nil {
			return gaps.AlignmentRecord{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return gaps.AlignmentRecord{}, fmt.Errorf("failed to read PAF: %w", err)
	}
	return gaps.AlignmentRecord{}, io.EOF
}

// ParsePAFLine parses one tab separated PAF row
func ParsePAFLine(line string) (gaps.AlignmentRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < PAFColumns {
		return gaps.AlignmentRecord{}, fmt.Errorf("expected %d PAF columns, found %d", PAFColumns, len(fields))
	}

	var rec gaps.AlignmentRecord
	rec.QueryName = fields[0]
	rec.Strand = fields[4]
	rec.TargetName = fields[5]

	ints := []struct {
		name string
		dst  *int
		col  int
	}{
		{"query length", &rec.QueryLen, 1},
		{"query start", &rec.QueryStart, 2},
		{"query end", &rec.QueryEnd, 3},
		{"target length", &rec.TargetLen, 6},
		{"target start", &rec.TargetStart, 7},
		{"target end", &rec.TargetEnd, 8},
		{"matches", &rec.NumMatches, 9},
		{"alignment length", &rec.AlnLength, 10},
		{"mapping quality", &rec.Quality, 11},
	}
	for _, f := range ints {
		v, err := strconv.Atoi(fields[f.col])
		if err != nil {
			return gaps.AlignmentRecord{}, fmt.Errorf("invalid %s %q: %w", f.name, fields[f.col], err)
		}
		*f.dst = v
	}
	return rec, nil
}

// FormatPAF formats the 12 mandatory columns without a trailing newline
func FormatPAF(rec gaps.AlignmentRecord) string {
	return strings.Join([]string{
		rec.QueryName,
		strconv.Itoa(rec.QueryLen),
		strconv.Itoa(rec.QueryStart),
		strconv.Itoa(rec.QueryEnd),
		rec.Strand,
		rec.TargetName,
		strconv.Itoa(rec.TargetLen),
		strconv.Itoa(rec.TargetStart),
		strconv.Itoa(rec.TargetEnd),
		strconv.Itoa(rec.NumMatches),
		strconv.Itoa(rec.AlnLength),
		strconv.Itoa(rec.Quality),
	}, "\t")
}

// PAFWriter writes PAF rows; call Flush when done
type PAFWriter struct {
	w *bufio.Writer
	n int
}

// NewPAFWriter creates a PAF writer
func NewPAFWriter(w io.Writer) *PAFWriter {
	return &PAFWriter{w: bufio.NewWriterSize(w, 1<<20)}
}

// Write writes one record
func (pw *PAFWriter) Write(rec gaps.AlignmentRecord) error {
	if _, err := pw.w.WriteString(FormatPAF(rec)); err != nil {
		return err
	}
	pw.n++
	return pw.w.WriteByte('\n')
}

// Flush flushes buffered rows
func (pw *PAFWriter) Flush() error {
	return pw.w.Flush()
}

// Count returns the number of rows written
func (pw *PAFWriter) Count() int {
	return pw.n
}
