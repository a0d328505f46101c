package seqfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/bed"

	"github.com/scttfrdmn/goldpolish-target-go/pkg/gaps"
)

// Coordinates holds externally supplied gaps per contig, sorted by start
type Coordinates map[string][]gaps.Coordinate

// Contigs returns the number of contigs with coordinates
func (c Coordinates) Contigs() int {
	return len(c)
}

// ReadBED reads "contig start end" rows. Header, track and browser lines
// are skipped and rows are stably sorted by start within each contig.
func ReadBED(r io.Reader) (Coordinates, error) {
	filtered, err := stripBEDHeaders(r)
	if err != nil {
		return nil, err
	}

	br, err := bed.NewReader(filtered, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to create BED reader: %w", err)
	}

	coords := make(Coordinates)
	sc := featio.NewScanner(br)
	for sc.Next() {
		f, ok := sc.Feat().(*bed.Bed3)
		if !ok {
			return nil, fmt.Errorf("unexpected BED feature type %T", sc.Feat())
		}
		coords[f.Chrom] = append(coords[f.Chrom], gaps.Coordinate{Start: f.ChromStart, End: f.ChromEnd})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to read BED: %w", err)
	}

	for _, list := range coords {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Start < list[j].Start
		})
	}
	return coords, nil
}

// stripBEDHeaders drops blank, comment, track and browser lines
func stripBEDHeaders(r io.Reader) (io.Reader, error) {
	var buf bytes.Buffer
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 || trimmed[0] == '#' ||
			bytes.HasPrefix(trimmed, []byte("track")) || bytes.HasPrefix(trimmed, []byte("browser")) {
			continue
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read BED: %w", err)
	}
	return &buf, nil
}
