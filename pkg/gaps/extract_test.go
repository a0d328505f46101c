package gaps

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMasked(t *testing.T) {
	seq := Sequence{Name: "chr1", Text: "ACGTacgtACGT"}
	windows, err := ExtractMasked(seq, 2)
	require.NoError(t, err)
	require.Len(t, windows, 1)

	w := windows[0]
	assert.Equal(t, "chr1.1", w.Name)
	assert.Equal(t, "chr1", w.Sequence)
	assert.Equal(t, 1, w.Ordinal)
	assert.Equal(t, 2, w.FlankStart)
	assert.Equal(t, 10, w.FlankEnd)
	assert.Equal(t, "GTACGTAC", w.Text)

	rec := w.Record()
	assert.Equal(t, "chr1.1", rec.Name)
	assert.Equal(t, "2-10", rec.Desc)
}

func TestExtractWindows_ClipsFlanks(t *testing.T) {
	seq := Sequence{Name: "ctg", Text: "aaaaCCCCCCCCCCCCcccc"}
	windows, err := ExtractWindows(seq, []Region{{0, 4}, {16, 20}}, 3)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	assert.Equal(t, 0, windows[0].FlankStart)
	assert.Equal(t, 7, windows[0].FlankEnd)
	assert.Equal(t, "AAAACCC", windows[0].Text)

	assert.Equal(t, "ctg.2", windows[1].Name)
	assert.Equal(t, 13, windows[1].FlankStart)
	assert.Equal(t, 20, windows[1].FlankEnd)
	assert.Equal(t, "CCCCCCC", windows[1].Text)
}

func TestExtractWindows_OutOfBounds(t *testing.T) {
	seq := Sequence{Name: "ctg", Text: "ACGTACGT"}
	_, err := ExtractWindows(seq, []Region{{10, 12}}, 2)
	require.Error(t, err)

	var be *RegionBoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 8, be.Length)
	assert.True(t, errors.Is(err, ErrStructural))
}

func TestExtractWindows_EndPastSequenceIsClipped(t *testing.T) {
	seq := Sequence{Name: "ctg", Text: "ACGTACGT"}
	windows, err := ExtractWindows(seq, []Region{{6, 12}}, 1)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 5, windows[0].FlankStart)
	assert.Equal(t, 8, windows[0].FlankEnd)
}

func TestExtractCoordinates(t *testing.T) {
	seq := Sequence{Name: "chr2", Text: strings.Repeat("A", 40)}
	windows, err := ExtractCoordinates(seq, []Coordinate{{10, 20}, {22, 30}}, 5)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 5, windows[0].FlankStart)
	assert.Equal(t, 35, windows[0].FlankEnd)

	_, err = ExtractCoordinates(seq, []Coordinate{{22, 30}, {10, 20}}, 5)
	assert.True(t, errors.Is(err, ErrStructural))
}

func randomMasked(r *rand.Rand, n int) string {
	const upper, lower = "ACGTN", "acgtn"
	b := make([]byte, n)
	masked := false
	for i := range b {
		if r.Intn(6) == 0 {
			masked = !masked
		}
		if masked {
			b[i] = lower[r.Intn(len(lower))]
		} else {
			b[i] = upper[r.Intn(len(upper))]
		}
	}
	return string(b)
}

func TestExtractMasked_WindowsAreOrderedAndDisjoint(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		seq := Sequence{Name: "rnd", Text: randomMasked(r, 1+r.Intn(300))}
		flank := r.Intn(12)

		windows, err := ExtractMasked(seq, flank)
		require.NoError(t, err)

		prevEnd := 0
		for i, w := range windows {
			assert.Equal(t, i+1, w.Ordinal)
			assert.GreaterOrEqual(t, w.FlankStart, prevEnd)
			assert.LessOrEqual(t, w.FlankEnd, seq.Len())
			assert.Equal(t, w.FlankEnd-w.FlankStart, len(w.Text))
			prevEnd = w.FlankEnd
		}

		spliced, err := Splice(seq, Replacements(windows))
		require.NoError(t, err)
		assert.True(t, strings.EqualFold(seq.Text, spliced.Text), "identity splice must restore %q", seq.Text)
	}
}
