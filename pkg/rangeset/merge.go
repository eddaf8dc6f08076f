package rangeset

import (
	"sort"

	"github.com/henderiw/rangeset/pkg/ordering"
)

// canonicalize turns an arbitrary list of single ranges (unordered,
// overlapping, nil-containing) into the canonical form: sorted ascending
// by min, no two ranges intersecting, no two ranges adjacent.
func canonicalize[E any](ranges []*SingleRange[E], ord ordering.Ordering[E]) []*SingleRange[E] {
	rr := make([]*SingleRange[E], 0, len(ranges))
	for _, r := range ranges {
		if r != nil {
			rr = append(rr, r)
		}
	}
	if len(rr) == 0 {
		return nil
	}

	// The sort is what makes merging catch every intersection: merging
	// in input order can miss transitive overlaps (3-12, 15-18 and
	// 10-16 must become one range 3-18, not two).
	sort.Slice(rr, func(i, j int) bool {
		return ord.Compare(rr[i].min, rr[j].min) < 0
	})

	out := make([]*SingleRange[E], 0, len(rr))
	cur := rr[0]
	for _, next := range rr[1:] {
		// In sorted order we only need to merge until the next range
		// no longer intersects the current one.
		if hasIntersectionSingle(cur, next) {
			cur = unionSingle(cur, next)
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)

	// Two ranges with no further values between them are essentially a
	// single range: [0, 10] and [11, 20] collapse into [0, 20]. The
	// sweep above only catches overlap, not adjacency.
	for i := 0; i < len(out)-1; {
		if ord.Compare(ord.Add(out[i].max, 1), out[i+1].min) == 0 {
			nr, _ := NewSingleRange(out[i].min, out[i+1].max, ord)
			out[i] = nr
			out = append(out[:i+1], out[i+2:]...)
		} else {
			i++
		}
	}
	return out
}
