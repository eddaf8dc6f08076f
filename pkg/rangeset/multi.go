package rangeset

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/henderiw/rangeset/pkg/ordering"
)

// MultiRange is a union of disjoint single ranges. The constituents are
// normalized at construction into canonical form: sorted ascending by
// min, non-overlapping and non-adjacent. Every operation relies on this
// property. A MultiRange with no constituents is the empty range.
type MultiRange[E any] struct {
	ranges        []*SingleRange[E]
	possibilities int64
	ord           ordering.Ordering[E]
}

// NewMultiRange canonicalizes the given single ranges into a new
// MultiRange. Nil entries are dropped; intersecting and adjacent ranges
// are merged, whatever order they are supplied in.
func NewMultiRange[E any](ranges []*SingleRange[E], ord ordering.Ordering[E]) (*MultiRange[E], error) {
	if ord == nil {
		return nil, fmt.Errorf("cannot create a range without an ordering")
	}
	rr := canonicalize(ranges, ord)
	var possibilities int64
	for _, r := range rr {
		possibilities += r.possibilities
	}
	return &MultiRange[E]{
		ranges:        rr,
		possibilities: possibilities,
		ord:           ord,
	}, nil
}

func (r *MultiRange[E]) Min() E {
	if len(r.ranges) == 0 {
		panic("min of an empty range set")
	}
	return r.ranges[0].min
}

func (r *MultiRange[E]) Max() E {
	if len(r.ranges) == 0 {
		panic("max of an empty range set")
	}
	return r.ranges[len(r.ranges)-1].max
}

func (r *MultiRange[E]) Size() int            { return cappedSize(r.possibilities) }
func (r *MultiRange[E]) Possibilities() int64 { return r.possibilities }
func (r *MultiRange[E]) IsEmpty() bool        { return r.Size() == 0 }

func (r *MultiRange[E]) Get(index int64) (E, error) {
	var zero E
	if index < 0 || index >= r.possibilities {
		return zero, fmt.Errorf("index %d is out of bounds for size %d", index, r.Size())
	}
	for _, sr := range r.ranges {
		if index < sr.possibilities {
			return r.ord.Add(sr.min, index), nil
		}
		index -= sr.possibilities
	}
	return zero, fmt.Errorf("index %d is out of bounds for size %d", index, r.Size())
}

func (r *MultiRange[E]) IndexOf(val E) int {
	var offset int64
	for _, sr := range r.ranges {
		if sr.Contains(val) {
			offset += r.ord.Int64Value(val) - r.ord.Int64Value(sr.min)
			return cappedIndex(offset)
		}
		offset += sr.possibilities
	}
	return -1
}

func (r *MultiRange[E]) LastIndexOf(val E) int { return r.IndexOf(val) }

func (r *MultiRange[E]) Contains(val E) bool {
	for _, sr := range r.ranges {
		if sr.Contains(val) {
			return true
		}
	}
	return false
}

// ContainsRange reports whether every constituent of other is fully
// contained within some constituent of the range. Both sides are in
// canonical order, so a single forward sweep with a non-decreasing
// cursor suffices.
func (r *MultiRange[E]) ContainsRange(other Range[E]) bool {
	if other == nil {
		return false
	}
	idx := 0
	for _, sr := range other.Ranges() {
		found := -1
		for i := idx; i < len(r.ranges); i++ {
			if r.ranges[i].ContainsRange(sr) {
				found = i
				break
			}
		}
		if found == -1 {
			return false
		}
		idx = found
	}
	return true
}

func (r *MultiRange[E]) ContainsAll(other Range[E]) bool {
	return containsAll[E](r, other)
}

// Bound returns val unchanged when some constituent contains it.
// Otherwise it returns the constituent boundary nearest to val by
// absolute coordinate distance; when two boundaries are exactly
// equidistant the one belonging to the lowest constituent wins, since
// constituents are scanned in ascending order and only a strictly
// smaller distance replaces the running winner. On an empty range the
// zero value of E is returned.
func (r *MultiRange[E]) Bound(val E) E {
	var bound E
	dist := int64(-1)
	for _, sr := range r.ranges {
		if sr.Contains(val) {
			return val
		}

		minDist := abs64(r.ord.Int64Value(val) - r.ord.Int64Value(sr.min))
		maxDist := abs64(r.ord.Int64Value(val) - r.ord.Int64Value(sr.max))

		comp, compDist := sr.min, minDist
		if maxDist < minDist {
			comp, compDist = sr.max, maxDist
		}

		if dist == -1 || compDist < dist {
			bound = comp
			dist = compDist
		}
	}
	return bound
}

func (r *MultiRange[E]) Before(val E) Range[E] {
	if r.IsEmpty() {
		return nil
	}
	if r.ord.Compare(val, r.Max()) > 0 {
		return r
	}
	if r.ord.Compare(val, r.Min()) <= 0 {
		return nil
	}

	result := []*SingleRange[E]{}
	for _, sr := range r.ranges {
		nr := sr.before(val)
		// Once a constituent comes back nil or cut, nothing past it can
		// lie before val.
		if nr == nil {
			break
		}
		result = append(result, nr)
		if !nr.Equal(sr) {
			break
		}
	}
	if len(result) == 0 {
		return nil
	}
	nm, _ := NewMultiRange(result, r.ord)
	return nm
}

func (r *MultiRange[E]) After(val E) Range[E] {
	if r.IsEmpty() {
		return nil
	}
	if r.ord.Compare(val, r.Min()) < 0 {
		return r
	}
	if r.ord.Compare(val, r.Max()) >= 0 {
		return nil
	}

	result := []*SingleRange[E]{}
	for i := len(r.ranges) - 1; i > -1; i-- {
		nr := r.ranges[i].after(val)
		if nr == nil {
			break
		}
		result = append(result, nr)
		if !nr.Equal(r.ranges[i]) {
			break
		}
	}
	if len(result) == 0 {
		return nil
	}
	nm, _ := NewMultiRange(result, r.ord)
	return nm
}

func (r *MultiRange[E]) HasIntersection(other Range[E]) bool {
	if other == nil {
		return false
	}
	return hasIntersectionMulti(r, other.multi())
}

func (r *MultiRange[E]) Intersect(other Range[E]) Range[E] {
	if other == nil {
		return nil
	}
	if nm := intersectMulti(r, other.multi()); nm != nil {
		return nm
	}
	return nil
}

func (r *MultiRange[E]) Union(other Range[E]) Range[E] {
	if other == nil {
		return r
	}
	return unionMulti(r, other.multi())
}

func (r *MultiRange[E]) Random() E {
	v, _ := r.Get(rand.Int63n(r.possibilities))
	return v
}

func (r *MultiRange[E]) RandomIndex() int { return rand.Intn(r.Size()) }

func (r *MultiRange[E]) Initial() E {
	v, err := r.Get(0)
	if err != nil {
		panic("initial of an empty range set")
	}
	return v
}

func (r *MultiRange[E]) Last() E {
	v, err := r.Get(int64(r.Size()) - 1)
	if err != nil {
		panic("last of an empty range set")
	}
	return v
}

func (r *MultiRange[E]) Contract() Range[E] { return contract[E](r, r.ord) }

// Equal reports whether both sets have equal constituents in the same
// canonical order.
func (r *MultiRange[E]) Equal(other *MultiRange[E]) bool {
	if other == nil || len(r.ranges) != len(other.ranges) {
		return false
	}
	for i, sr := range r.ranges {
		if !sr.Equal(other.ranges[i]) {
			return false
		}
	}
	return true
}

// Ranges returns a copy of the canonical constituent list.
func (r *MultiRange[E]) Ranges() []*SingleRange[E] {
	return append([]*SingleRange[E]{}, r.ranges...)
}

func (r *MultiRange[E]) Iterate() *Iterator[E] {
	return newIterator(r.ranges)
}

func (r *MultiRange[E]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, sr := range r.ranges {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sr.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (r *MultiRange[E]) multi() *MultiRange[E] { return r }
