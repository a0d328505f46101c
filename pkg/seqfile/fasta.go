package seqfile

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// FASTAReader reads sequences in file order
type FASTAReader struct {
	sc *seqio.Scanner
}

// NewFASTAReader creates a FASTA reader. Letter case is preserved.
func NewFASTAReader(r io.Reader) *FASTAReader {
	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	return &FASTAReader{sc: seqio.NewScanner(fasta.NewReader(r, template))}
}

// Read returns the next sequence, or io.EOF when the input is exhausted
func (r *FASTAReader) Read() (gaps.Sequence, error) {
	if !r.sc.Next() {
		if err := r.sc.Error(); err != nil {
			return gaps.Sequence{}, fmt.Errorf("failed to read FASTA record: %w", err)
		}
		return gaps.Sequence{}, io.EOF
	}

	s, ok := r.sc.Seq().(*linear.Seq)
	if !ok {
		return gaps.Sequence{}, fmt.Errorf("unexpected sequence type %T", r.sc.Seq())
	}
	text := make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		text[i] = byte(l)
	}
	return gaps.Sequence{Name: s.Name(), Desc: s.Description(), Text: string(text)}, nil
}

// FASTAWriter writes sequences with their description on the header line
type FASTAWriter struct {
	w     *fasta.Writer
	width int
	n     int
}

// NewFASTAWriter creates a writer wrapping lines at width; width 0 writes
// every sequence on a single line
func NewFASTAWriter(w io.Writer, width int) *FASTAWriter {
	return &FASTAWriter{w: fasta.NewWriter(w, max(width, 1)), width: width}
}

// Write writes one record
func (fw *FASTAWriter) Write(s gaps.Sequence) error {
	letters := make(alphabet.Letters, len(s.Text))
	for i := 0; i < len(s.Text); i++ {
		letters[i] = alphabet.Letter(s.Text[i])
	}
	ls := linear.NewSeq(s.Name, letters, alphabet.DNAredundant)
	ls.Desc = s.Desc

	if fw.width <= 0 {
		fw.w.Width = max(len(letters), 1)
	}
	if _, err := fw.w.Write(ls); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Name, err)
	}
	fw.n++
	return nil
}

// Count returns the number of records written
func (fw *FASTAWriter) Count() int {
	return fw.n
}
