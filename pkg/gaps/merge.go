package gaps

// MergeCoordinates merges externally supplied gaps of one sequence that lie
// closer than 2*flank apart. Input must be sorted by start.
func MergeCoordinates(name string, coords []Coordinate, flank int) ([]Region, error) {
	if len(coords) == 0 {
		return nil, nil
	}

	merged := make([]Region, 0, len(coords))
	var cur Region
	for i, c := range coords {
		if c.Start < 0 || c.End < c.Start {
			return nil, &NonMonotonicCoordinatesError{Sequence: name, Index: i,
				Start: c.Start, End: c.End, Reason: "start must be >= 0 and <= end"}
		}
		if i == 0 {
			cur = Region{Start: c.Start, End: c.End}
			continue
		}
		if c.Start < coords[i-1].Start {
			return nil, &NonMonotonicCoordinatesError{Sequence: name, Index: i,
				Start: c.Start, End: c.End, Reason: "coordinates are not sorted by start"}
		}

		if c.Start-cur.End < 2*flank {
			if c.End > cur.End {
				cur.End = c.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = Region{Start: c.Start, End: c.End}
	}
	return append(merged, cur), nil
}

// MergeRegions applies the same merge to an existing region list.
// It is idempotent.
func MergeRegions(name string, regions []Region, flank int) ([]Region, error) {
	coords := make([]Coordinate, len(regions))
	for i, r := range regions {
		coords[i] = Coordinate{Start: r.Start, End: r.End}
	}
	return MergeCoordinates(name, coords, flank)
}
