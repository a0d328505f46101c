package gaps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Overlap(t *testing.T) {
	ix := NewIndex()
	require.NoError(t, ix.Add("chr1.1", Descriptor{Start: 2, End: 10}))
	require.NoError(t, ix.Add("chr1.2", Descriptor{Start: 40, End: 60}))
	require.NoError(t, ix.Add("scaffold.7.1", Descriptor{Start: 0, End: 5}))
	ix.Freeze()

	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, []string{"chr1", "scaffold.7"}, ix.Targets())
	assert.True(t, ix.Has("scaffold.7"))
	assert.False(t, ix.Has("chr2"))

	testCases := []struct {
		name       string
		target     string
		start, end int
		want       []Overlap
	}{
		{"inside", "chr1", 4, 6, []Overlap{{Name: "chr1.1", Start: 2, End: 11}}},
		{"descriptor end is inclusive", "chr1", 10, 11, []Overlap{{Name: "chr1.1", Start: 2, End: 11}}},
		{"past the end", "chr1", 11, 12, nil},
		{"between windows", "chr1", 20, 30, nil},
		{"spanning both", "chr1", 0, 100, []Overlap{
			{Name: "chr1.1", Start: 2, End: 11},
			{Name: "chr1.2", Start: 40, End: 61},
		}},
		{"dotted target", "scaffold.7", 3, 4, []Overlap{{Name: "scaffold.7.1", Start: 0, End: 6}}},
		{"unknown target", "chr2", 0, 100, nil},
		{"empty query", "chr1", 5, 5, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ix.Overlap(tc.target, tc.start, tc.end)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIndex_SelectAmbiguous(t *testing.T) {
	ix := NewIndex()
	require.NoError(t, ix.Add("c.2", Descriptor{Start: 5, End: 20}))
	require.NoError(t, ix.Add("c.1", Descriptor{Start: 0, End: 10}))

	got, ok, err := ix.Select("c", 8, 9)
	require.True(t, ok)
	assert.Equal(t, "c.1", got.Name)

	var amb *AmbiguousOverlapError
	require.True(t, errors.As(err, &amb))
	assert.Len(t, amb.Candidates, 2)
	assert.Equal(t, got, amb.Chosen)
	assert.False(t, errors.Is(err, ErrStructural))
}

func TestIndex_SelectTieBreaksOnName(t *testing.T) {
	ix := NewIndex()
	require.NoError(t, ix.Add("c.2", Descriptor{Start: 0, End: 10}))
	require.NoError(t, ix.Add("c.10", Descriptor{Start: 0, End: 10}))

	got, ok, err := ix.Select("c", 3, 4)
	require.True(t, ok)
	require.Error(t, err)
	assert.Equal(t, "c.10", got.Name)
}

func TestIndex_SelectMiss(t *testing.T) {
	ix := NewIndex()
	require.NoError(t, ix.Add("c.1", Descriptor{Start: 0, End: 10}))

	_, ok, err := ix.Select("c", 50, 60)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestIndex_AddRejectsBadNames(t *testing.T) {
	ix := NewIndex()
	assert.Error(t, ix.Add("nodot", Descriptor{Start: 0, End: 1}))

	ix.Freeze()
	assert.Error(t, ix.Add("c.1", Descriptor{Start: 0, End: 1}))
}

func TestIndexWindows(t *testing.T) {
	seq := Sequence{Name: "chr1", Text: "ACGTacgtACGTACGTACGTacgtACGT"}
	windows, err := ExtractMasked(seq, 2)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	ix, err := IndexWindows(windows)
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())

	hits := ix.Overlap("chr1", 5, 6)
	require.Len(t, hits, 1)
	assert.Equal(t, "chr1.1", hits[0].Name)
	assert.Equal(t, windows[0].FlankStart, hits[0].Start)
	assert.Equal(t, windows[0].FlankEnd+1, hits[0].End)
}
