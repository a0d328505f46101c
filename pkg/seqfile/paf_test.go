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

const pafLine = "read1\t100\t10\t20\t+\tchr1\t1000\t5\t15\t9\t10\t60"

func TestParsePAFLine(t *testing.T) {
	rec, err := ParsePAFLine(pafLine + "\ttp:A:P\tcm:i:7")
	require.NoError(t, err)
	assert.Equal(t, gaps.AlignmentRecord{
		QueryName:   "read1",
		QueryLen:    100,
		QueryStart:  10,
		QueryEnd:    20,
		Strand:      "+",
		TargetName:  "chr1",
		TargetLen:   1000,
		TargetStart: 5,
		TargetEnd:   15,
		NumMatches:  9,
		AlnLength:   10,
		Quality:     60,
	}, rec)
	assert.Equal(t, pafLine, FormatPAF(rec))
}

func TestParsePAFLine_Invalid(t *testing.T) {
	testCases := []struct{ name, line string }{
		{"too few columns", "read1\t100\t10"},
		{"non-numeric start", strings.Replace(pafLine, "\t10\t", "\tx\t", 1)},
		{"space separated", strings.ReplaceAll(pafLine, "\t", " ")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePAFLine(tc.line)
			assert.Error(t, err)
		})
	}
}

func TestPAFReader(t *testing.T) {
	input := pafLine + "\n\n" + strings.Replace(pafLine, "read1", "read2", 1) + "\nbroken\n"
	r := NewPAFReader(strings.NewReader(input))

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "read1", rec.QueryName)

	rec, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, "read2", rec.QueryName)

	_, err = r.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestPAFWriter(t *testing.T) {
	rec, err := ParsePAFLine(pafLine)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewPAFWriter(&buf)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Write(rec))
	assert.Equal(t, 0, buf.Len(), "rows are buffered until Flush")
	require.NoError(t, w.Flush())
	assert.Equal(t, 2, w.Count())
	assert.Equal(t, pafLine+"\n"+pafLine+"\n", buf.String())
}
