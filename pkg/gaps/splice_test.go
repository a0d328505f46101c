package gaps

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	seq := Sequence{Name: "chr1", Desc: "assembly v2", Text: "AAAAcccGGGG"}

	testCases := []struct {
		name    string
		windows []Replacement
		want    string
	}{
		{
			name:    "shorter replacement",
			windows: []Replacement{{Ordinal: 1, FlankStart: 2, FlankEnd: 9, Text: "XX"}},
			want:    "AAXXGG",
		},
		{
			name:    "longer replacement",
			windows: []Replacement{{Ordinal: 1, FlankStart: 4, FlankEnd: 7, Text: "TTTTTT"}},
			want:    "AAAATTTTTTGGGG",
		},
		{
			name: "out of order input",
			windows: []Replacement{
				{Ordinal: 2, FlankStart: 9, FlankEnd: 11, Text: "cc"},
				{Ordinal: 1, FlankStart: 0, FlankEnd: 2, Text: "tt"},
			},
			want: "ttAAcccGGcc",
		},
		{
			name:    "window covers the whole sequence",
			windows: []Replacement{{Ordinal: 1, FlankStart: 0, FlankEnd: 11, Text: "N"}},
			want:    "N",
		},
		{
			name:    "no windows",
			windows: nil,
			want:    "AAAAcccGGGG",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Splice(seq, tc.windows)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Text)
			assert.Equal(t, "chr1", got.Name)
			assert.Equal(t, "assembly v2", got.Desc)
		})
	}
}

func TestSplice_MissingOrdinal(t *testing.T) {
	seq := Sequence{Name: "chr1", Text: strings.Repeat("A", 50)}

	testCases := []struct {
		name     string
		ordinals []int
		missing  int
	}{
		{"hole in the middle", []int{1, 3}, 2},
		{"first missing", []int{2}, 1},
		{"duplicate", []int{1, 1}, 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var windows []Replacement
			for i, o := range tc.ordinals {
				windows = append(windows, Replacement{Ordinal: o, FlankStart: i * 10, FlankEnd: i*10 + 5})
			}
			_, err := Splice(seq, windows)

			var me *MissingRegionError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tc.missing, me.Ordinal)
			assert.Equal(t, "missing region chr1."+string(rune('0'+tc.missing)), me.Error())
			assert.True(t, errors.Is(err, ErrStructural))
		})
	}
}

func TestSplice_InvalidWindows(t *testing.T) {
	seq := Sequence{Name: "chr1", Text: strings.Repeat("A", 20)}

	testCases := []struct {
		name    string
		windows []Replacement
	}{
		{"overlapping", []Replacement{
			{Ordinal: 1, FlankStart: 0, FlankEnd: 10},
			{Ordinal: 2, FlankStart: 8, FlankEnd: 12},
		}},
		{"past the end", []Replacement{{Ordinal: 1, FlankStart: 15, FlankEnd: 25}}},
		{"inverted", []Replacement{{Ordinal: 1, FlankStart: 10, FlankEnd: 5}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Splice(seq, tc.windows)
			var nm *NonMonotonicCoordinatesError
			require.True(t, errors.As(err, &nm))
			assert.True(t, errors.Is(err, ErrStructural))
		})
	}
}

func TestSplice_RoundTripFromCoordinates(t *testing.T) {
	seq := Sequence{Name: "chr3", Text: "ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT"}
	windows, err := ExtractCoordinates(seq, []Coordinate{{5, 8}, {20, 26}}, 3)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	spliced, err := Splice(seq, Replacements(windows))
	require.NoError(t, err)
	assert.Equal(t, seq, spliced)
}
