package seqfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// QueryRegion is a span of an original sequence
type QueryRegion struct {
	Reference string
	Start     int
	End       int
}

// ParseRegion parses a region string like "contig_1:1000-2000". A bare name
// selects the whole sequence.
func ParseRegion(regionStr string) (QueryRegion, error) {
	region := QueryRegion{}

	name, span, ok := strings.Cut(regionStr, ":")
	if name == "" {
		return region, fmt.Errorf("invalid region format: %s (expected name:start-end)", regionStr)
	}
	region.Reference = name
	if !ok {
		region.End = int(^uint(0) >> 1)
		return region, nil
	}

	startStr, endStr, ok := strings.Cut(span, "-")
	if !ok {
		return region, fmt.Errorf("invalid region format: %s (expected name:start-end)", regionStr)
	}

	var err error
	region.Start, err = strconv.Atoi(strings.ReplaceAll(startStr, ",", ""))
	if err != nil {
		return region, fmt.Errorf("invalid start position: %w", err)
	}
	region.End, err = strconv.Atoi(strings.ReplaceAll(endStr, ",", ""))
	if err != nil {
		return region, fmt.Errorf("invalid end position: %w", err)
	}
	if region.Start < 0 || region.End < region.Start {
		return region, fmt.Errorf("invalid region: %s (start must be >= 0 and <= end)", regionStr)
	}
	return region, nil
}

// QueryIndex returns the windows overlapping region, ordered by start
func QueryIndex(ix *gaps.Index, region QueryRegion) []gaps.Overlap {
	return ix.Overlap(region.Reference, region.Start, region.End)
}
