package gaps

import "strings"

// ExtractWindows cuts each region plus flank bases on either side out of seq.
// Flanks are clipped at the sequence ends; ordinals follow region order.
func ExtractWindows(seq Sequence, regions []Region, flank int) ([]FlankedWindow, error) {
	length := seq.Len()
	windows := make([]FlankedWindow, 0, len(regions))

	for i, r := range regions {
		if r.Start < 0 || r.End < r.Start || r.Start > length {
			return nil, &RegionBoundsError{Sequence: seq.Name, Region: r, Length: length}
		}

		flankStart := max(0, r.Start-flank)
		flankEnd := min(length, r.End+flank)
		if flankEnd < flankStart {
			return nil, &RegionBoundsError{Sequence: seq.Name, Region: r, Length: length}
		}

		ordinal := i + 1
		windows = append(windows, FlankedWindow{
			Name:       RegionName(seq.Name, ordinal),
			Sequence:   seq.Name,
			Ordinal:    ordinal,
			FlankStart: flankStart,
			FlankEnd:   flankEnd,
			Text:       strings.ToUpper(seq.Text[flankStart:flankEnd]),
		})
	}
	return windows, nil
}

// ExtractMasked runs case-based detection and extraction on one sequence
func ExtractMasked(seq Sequence, flank int) ([]FlankedWindow, error) {
	regions, err := DetectRegions(seq.Name, seq.Text, flank)
	if err != nil {
		return nil, err
	}
	return ExtractWindows(seq, regions, flank)
}

// ExtractCoordinates merges supplied coordinates and extracts them from seq
func ExtractCoordinates(seq Sequence, coords []Coordinate, flank int) ([]FlankedWindow, error) {
	regions, err := MergeCoordinates(seq.Name, coords, flank)
	if err != nil {
		return nil, err
	}
	return ExtractWindows(seq, regions, flank)
}
