package seqfile

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

func readAll(t *testing.T, r io.Reader) []gaps.Sequence {
	t.Helper()
	reader := NewFASTAReader(r)
	var out []gaps.Sequence
	for {
		seq, err := reader.Read()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, seq)
	}
}

func TestFASTAReader_PreservesCase(t *testing.T) {
	input := ">chr1 first contig\nACGTac\ngtNN\n>chr2\nnnnnAC\n"
	seqs := readAll(t, strings.NewReader(input))
	require.Len(t, seqs, 2)

	assert.Equal(t, "chr1", seqs[0].Name)
	assert.Equal(t, "first contig", seqs[0].Desc)
	assert.Equal(t, "ACGTacgtNN", seqs[0].Text)
	assert.Equal(t, "chr2", seqs[1].Name)
	assert.Equal(t, "", seqs[1].Desc)
	assert.Equal(t, "nnnnAC", seqs[1].Text)
}

func TestFASTAWriter(t *testing.T) {
	seqs := []gaps.Sequence{
		{Name: "chr1.1", Desc: "2-10", Text: "GTACGTAC"},
		{Name: "chr1.2", Text: "ACGTacgtACGT"},
	}

	testCases := []struct {
		name  string
		width int
		want  string
	}{
		{"unwrapped", 0, ">chr1.1 2-10\nGTACGTAC\n>chr1.2\nACGTacgtACGT\n"},
		{"wrapped", 5, ">chr1.1 2-10\nGTACG\nTAC\n>chr1.2\nACGTa\ncgtAC\nGT\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewFASTAWriter(&buf, tc.width)
			for _, s := range seqs {
				require.NoError(t, w.Write(s))
			}
			assert.Equal(t, 2, w.Count())
			assert.Equal(t, tc.want, buf.String())
			assert.Equal(t, seqs, readAll(t, &buf))
		})
	}
}
