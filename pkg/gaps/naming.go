package gaps

import (
	"fmt"
	"strconv"
	"strings"
)

// RegionName returns the name of the ordinal-th window cut from sequence
func RegionName(sequence string, ordinal int) string {
	return sequence + "." + strconv.Itoa(ordinal)
}

// ParseRegionName splits "<sequence>.<ordinal>" at the last dot.
// The ordinal must be a positive decimal integer.
func ParseRegionName(name string) (string, int, error) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", 0, fmt.Errorf("invalid region name %q (expected <sequence>.<ordinal>)", name)
	}
	suffix := name[i+1:]
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return "", 0, fmt.Errorf("invalid region name %q: ordinal %q is not numeric", name, suffix)
		}
	}
	ordinal, err := strconv.Atoi(suffix)
	if err != nil {
		return "", 0, fmt.Errorf("invalid region name %q: %w", name, err)
	}
	if ordinal < 1 {
		return "", 0, fmt.Errorf("invalid region name %q: ordinal must start at 1", name)
	}
	return name[:i], ordinal, nil
}

// Descriptor is the "<start>-<end>" string stored in a window's FASTA header
type Descriptor struct {
	Start int
	End   int
}

func (d Descriptor) String() string {
	return FormatDescriptor(d.Start, d.End)
}

// SpliceRange is the half-open span the splicer replaces
func (d Descriptor) SpliceRange() (int, int) {
	return d.Start, d.End
}

// IndexRange is the span stored in the interval index. The end is treated as
// inclusive when read back, so one is added.
func (d Descriptor) IndexRange() (int, int) {
	return d.Start, d.End + 1
}

// FormatDescriptor encodes a window's coordinates
func FormatDescriptor(start, end int) string {
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

// ParseDescriptor decodes "<start>-<end>". Anything after the first field of
// the description is ignored.
func ParseDescriptor(desc string) (Descriptor, error) {
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return Descriptor{}, fmt.Errorf("missing coordinate descriptor")
	}
	parts := strings.Split(fields[0], "-")
	if len(parts) != 2 {
		return Descriptor{}, fmt.Errorf("invalid coordinate descriptor %q (expected start-end)", fields[0])
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return Descriptor{}, fmt.Errorf("invalid descriptor start %q: %w", parts[0], err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return Descriptor{}, fmt.Errorf("invalid descriptor end %q: %w", parts[1], err)
	}
	if start < 0 || end < start {
		return Descriptor{}, fmt.Errorf("invalid coordinate descriptor %q: end before start", fields[0])
	}
	return Descriptor{Start: start, End: end}, nil
}
