package rangeset

import (
	"math"

	"github.com/henderiw/rangeset/pkg/ordering"
)

// Range is the contract shared by SingleRange and MultiRange: an
// immutable set of values from a discretely ordered domain with O(1)
// style access to any value without storing each one.
//
// Operations that narrow a range (Before, After, Intersect) return nil
// when nothing remains on the requested side.
type Range[E any] interface {
	// Size returns the number of values, capped at math.MaxInt32.
	Size() int
	// Possibilities returns the true, uncapped number of values.
	Possibilities() int64
	IsEmpty() bool
	// Min returns the smallest value. It panics on an empty range.
	Min() E
	// Max returns the largest value. It panics on an empty range.
	Max() E
	// Get returns the value at the given index, counting from 0 at Min.
	Get(index int64) (E, error)
	// IndexOf returns the index of val, capped at math.MaxInt32, or -1
	// if val is not contained.
	IndexOf(val E) int
	// LastIndexOf equals IndexOf since every value occurs once.
	LastIndexOf(val E) int
	Contains(val E) bool
	// ContainsRange reports whether the entirety of other lies within
	// the range.
	ContainsRange(other Range[E]) bool
	// ContainsAll checks every value of other one by one through its
	// iterator.
	ContainsAll(other Range[E]) bool
	// Bound clamps val into the range. On an empty range it returns the
	// zero value of E.
	Bound(val E) E
	// Before returns the values that occur strictly before val, or nil.
	Before(val E) Range[E]
	// After returns the values that occur strictly after val, or nil.
	After(val E) Range[E]
	HasIntersection(other Range[E]) bool
	// Intersect returns the values occurring in both ranges, or nil.
	Intersect(other Range[E]) Range[E]
	// Union returns the values occurring in either range, merged into
	// canonical form.
	Union(other Range[E]) Range[E]
	// Random returns a uniformly chosen value. It panics on an empty
	// range.
	Random() E
	// RandomIndex returns a uniformly chosen index below Size.
	RandomIndex() int
	// Initial returns the value at index 0.
	Initial() E
	// Last returns the value at index Size-1.
	Last() E
	// Contract returns a single-value range around a random value.
	Contract() Range[E]
	// Ranges returns the constituent single ranges in canonical order.
	Ranges() []*SingleRange[E]
	// Iterate returns a fresh iterator over all values in ascending
	// order.
	Iterate() *Iterator[E]
	String() string

	multi() *MultiRange[E]
}

var _ Range[int] = &SingleRange[int]{}
var _ Range[int] = &MultiRange[int]{}

func cappedSize(possibilities int64) int {
	if possibilities > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(possibilities)
}

func cappedIndex(index int64) int {
	if index > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(index)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func hasIntersectionSingle[E any](a, b *SingleRange[E]) bool {
	return a != nil && b != nil &&
		a.ord.Compare(a.min, b.max) <= 0 &&
		a.ord.Compare(b.min, a.max) <= 0
}

func hasIntersectionMulti[E any](a, b *MultiRange[E]) bool {
	if a == nil || b == nil {
		return false
	}
	for _, x := range a.ranges {
		for _, y := range b.ranges {
			if hasIntersectionSingle(x, y) {
				return true
			}
		}
	}
	return false
}

// intersectSingle returns the overlap of a and b, or nil when they are
// disjoint.
func intersectSingle[E any](a, b *SingleRange[E]) *SingleRange[E] {
	if !hasIntersectionSingle(a, b) {
		return nil
	}
	min := a.min
	if a.ord.Compare(b.min, min) > 0 {
		min = b.min
	}
	max := a.max
	if a.ord.Compare(b.max, max) < 0 {
		max = b.max
	}
	nr, _ := NewSingleRange(min, max, a.ord)
	return nr
}

// unionSingle merges two intersecting ranges into one, or returns nil
// when they are disjoint.
func unionSingle[E any](a, b *SingleRange[E]) *SingleRange[E] {
	if !hasIntersectionSingle(a, b) {
		return nil
	}
	min := a.min
	if a.ord.Compare(b.min, min) < 0 {
		min = b.min
	}
	max := a.max
	if a.ord.Compare(b.max, max) > 0 {
		max = b.max
	}
	nr, _ := NewSingleRange(min, max, a.ord)
	return nr
}

// intersectMulti collects the pairwise overlaps of the constituents of a
// and b. Constituents within each side are disjoint, so the pairwise
// overlaps cannot overlap each other and canonicalizing construction is
// all the bookkeeping needed.
func intersectMulti[E any](a, b *MultiRange[E]) *MultiRange[E] {
	result := []*SingleRange[E]{}
	for _, x := range a.ranges {
		for _, y := range b.ranges {
			if z := intersectSingle(x, y); z != nil {
				result = append(result, z)
			}
		}
	}
	if len(result) == 0 {
		return nil
	}
	nm, _ := NewMultiRange(result, a.ord)
	return nm
}

// unionMulti concatenates the constituents of both sides; the
// canonicalizing constructor performs the merge.
func unionMulti[E any](a, b *MultiRange[E]) *MultiRange[E] {
	join := make([]*SingleRange[E], 0, len(a.ranges)+len(b.ranges))
	join = append(join, a.ranges...)
	join = append(join, b.ranges...)
	nm, _ := NewMultiRange(join, a.ord)
	return nm
}

func containsAll[E any](r, other Range[E]) bool {
	if other == nil {
		return true
	}
	it := other.Iterate()
	for it.Next() {
		if !r.Contains(it.Value()) {
			return false
		}
	}
	return true
}

func contract[E any](r Range[E], ord ordering.Ordering[E]) Range[E] {
	val := r.Random()
	nr, _ := NewSingleRange(val, val, ord)
	return nr
}
