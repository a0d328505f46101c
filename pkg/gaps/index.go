package gaps

import (
	"fmt"
	"sort"

	"github.com/biogo/store/interval"
)

// windowInterval is a window stored in an interval tree
type windowInterval struct {
	uid   uintptr
	start int
	end   int
	name  string
}

// Overlap reports whether the half-open ranges intersect
func (w windowInterval) Overlap(b interval.IntRange) bool {
	return w.end > b.Start && w.start < b.End
}

func (w windowInterval) ID() uintptr { return w.uid }

func (w windowInterval) Range() interval.IntRange {
	return interval.IntRange{Start: w.start, End: w.end}
}

// query is a bare interval used to search a tree
type query struct {
	start, end int
}

func (q query) Overlap(b interval.IntRange) bool {
	return q.end > b.Start && q.start < b.End
}

// Index maps original-sequence coordinates to extracted windows.
// Build it with Add and Freeze; after Freeze it is read-only and safe for
// concurrent queries.
type Index struct {
	trees  map[string]*interval.IntTree
	nextID uintptr
	frozen bool
}

// NewIndex returns an empty index
func NewIndex() *Index {
	return &Index{trees: make(map[string]*interval.IntTree)}
}

// IndexWindows builds a frozen index over extracted windows
func IndexWindows(windows []FlankedWindow) (*Index, error) {
	ix := NewIndex()
	for _, w := range windows {
		if err := ix.AddWindow(w); err != nil {
			return nil, err
		}
	}
	ix.Freeze()
	return ix, nil
}

// Add inserts a window read back from the gaps file. The originating
// sequence is recovered from the region name.
func (ix *Index) Add(regionName string, desc Descriptor) error {
	if ix.frozen {
		return fmt.Errorf("index is frozen")
	}
	seqName, _, err := ParseRegionName(regionName)
	if err != nil {
		return err
	}

	start, end := desc.IndexRange()
	tree, ok := ix.trees[seqName]
	if !ok {
		tree = &interval.IntTree{}
		ix.trees[seqName] = tree
	}

	ix.nextID++
	w := windowInterval{uid: ix.nextID, start: start, end: end, name: regionName}
	if err := tree.Insert(w, true); err != nil {
		return fmt.Errorf("failed to index %s: %w", regionName, err)
	}
	return nil
}

// AddWindow inserts a freshly extracted window
func (ix *Index) AddWindow(w FlankedWindow) error {
	return ix.Add(w.Name, w.Descriptor())
}

// Freeze finalises the trees. The first query freezes the index if the
// caller has not.
func (ix *Index) Freeze() {
	if ix.frozen {
		return
	}
	for _, tree := range ix.trees {
		tree.AdjustRanges()
	}
	ix.frozen = true
}

// Has reports whether any window was cut from target
func (ix *Index) Has(target string) bool {
	_, ok := ix.trees[target]
	return ok
}

// Targets returns the indexed sequence names, sorted
func (ix *Index) Targets() []string {
	names := make([]string, 0, len(ix.trees))
	for name := range ix.trees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of indexed windows
func (ix *Index) Len() int {
	n := 0
	for _, tree := range ix.trees {
		n += tree.Len()
	}
	return n
}

// Overlap returns all windows of target overlapping [start, end), ordered by
// start then name. An empty query overlaps nothing.
func (ix *Index) Overlap(target string, start, end int) []Overlap {
	if !ix.frozen {
		ix.Freeze()
	}
	tree, ok := ix.trees[target]
	if !ok || end <= start {
		return nil
	}

	hits := tree.Get(query{start: start, end: end})
	out := make([]Overlap, 0, len(hits))
	for _, h := range hits {
		w := h.(windowInterval)
		out = append(out, Overlap{Name: w.name, Start: w.start, End: w.end})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Select picks the window a query belongs to. When several overlap, the one
// with the lowest start (then smallest name) wins and an
// *AmbiguousOverlapError describing the choice is returned alongside it.
func (ix *Index) Select(target string, start, end int) (Overlap, bool, error) {
	hits := ix.Overlap(target, start, end)
	switch len(hits) {
	case 0:
		return Overlap{}, false, nil
	case 1:
		return hits[0], true, nil
	}
	return hits[0], true, &AmbiguousOverlapError{
		Target:     target,
		Start:      start,
		End:        end,
		Candidates: hits,
		Chosen:     hits[0],
	}
}
