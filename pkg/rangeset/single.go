package rangeset

import (
	"fmt"
	"math/rand"

	"github.com/henderiw/rangeset/pkg/ordering"
)

// SingleRange is one contiguous run of values between an inclusive
// minimum and maximum bound. It is immutable after construction.
type SingleRange[E any] struct {
	min           E
	max           E
	possibilities int64
	ord           ordering.Ordering[E]
}

// NewSingleRange returns the range [min, max], both inclusive. If the
// bounds are given in reverse order they are swapped.
func NewSingleRange[E any](min, max E, ord ordering.Ordering[E]) (*SingleRange[E], error) {
	if ord == nil {
		return nil, fmt.Errorf("cannot create a range without an ordering")
	}
	if ord.Compare(min, max) > 0 {
		min, max = max, min
	}
	return &SingleRange[E]{
		min:           min,
		max:           max,
		possibilities: ord.Int64Value(max) - ord.Int64Value(min) + 1,
		ord:           ord,
	}, nil
}

func (r *SingleRange[E]) Min() E { return r.min }
func (r *SingleRange[E]) Max() E { return r.max }

func (r *SingleRange[E]) Size() int            { return cappedSize(r.possibilities) }
func (r *SingleRange[E]) Possibilities() int64 { return r.possibilities }
func (r *SingleRange[E]) IsEmpty() bool        { return r.Size() == 0 }

func (r *SingleRange[E]) Get(index int64) (E, error) {
	var zero E
	if index < 0 || index >= r.possibilities {
		return zero, fmt.Errorf("index %d is out of bounds for size %d", index, r.Size())
	}
	return r.ord.Add(r.min, index), nil
}

func (r *SingleRange[E]) IndexOf(val E) int {
	if !r.Contains(val) {
		return -1
	}
	return cappedIndex(r.ord.Int64Value(val) - r.ord.Int64Value(r.min))
}

func (r *SingleRange[E]) LastIndexOf(val E) int { return r.IndexOf(val) }

func (r *SingleRange[E]) Contains(val E) bool {
	return r.ord.Compare(val, r.min) >= 0 && r.ord.Compare(val, r.max) <= 0
}

func (r *SingleRange[E]) ContainsRange(other Range[E]) bool {
	if other == nil {
		return false
	}
	if other.IsEmpty() {
		return true
	}
	return r.Contains(other.Min()) && r.Contains(other.Max())
}

func (r *SingleRange[E]) ContainsAll(other Range[E]) bool {
	return containsAll[E](r, other)
}

// Bound clamps val into [min, max].
func (r *SingleRange[E]) Bound(val E) E {
	if r.ord.Compare(val, r.min) <= 0 {
		return r.min
	}
	if r.ord.Compare(val, r.max) >= 0 {
		return r.max
	}
	return val
}

// before returns the sub range strictly before val: the range itself
// when val lies beyond max, nil when val lies at or below min.
func (r *SingleRange[E]) before(val E) *SingleRange[E] {
	if r.ord.Compare(val, r.max) > 0 {
		return r
	}
	if r.ord.Compare(val, r.min) <= 0 {
		return nil
	}
	nr, _ := NewSingleRange(r.min, r.ord.Subtract(val, 1), r.ord)
	return nr
}

func (r *SingleRange[E]) after(val E) *SingleRange[E] {
	if r.ord.Compare(val, r.min) < 0 {
		return r
	}
	if r.ord.Compare(val, r.max) >= 0 {
		return nil
	}
	nr, _ := NewSingleRange(r.ord.Add(val, 1), r.max, r.ord)
	return nr
}

func (r *SingleRange[E]) Before(val E) Range[E] {
	if nr := r.before(val); nr != nil {
		return nr
	}
	return nil
}

func (r *SingleRange[E]) After(val E) Range[E] {
	if nr := r.after(val); nr != nil {
		return nr
	}
	return nil
}

func (r *SingleRange[E]) HasIntersection(other Range[E]) bool {
	if other == nil {
		return false
	}
	return hasIntersectionMulti(r.multi(), other.multi())
}

func (r *SingleRange[E]) Intersect(other Range[E]) Range[E] {
	if other == nil {
		return nil
	}
	if nm := intersectMulti(r.multi(), other.multi()); nm != nil {
		return nm
	}
	return nil
}

func (r *SingleRange[E]) Union(other Range[E]) Range[E] {
	if other == nil {
		return r
	}
	return unionMulti(r.multi(), other.multi())
}

func (r *SingleRange[E]) Random() E {
	v, _ := r.Get(rand.Int63n(r.possibilities))
	return v
}

func (r *SingleRange[E]) RandomIndex() int { return rand.Intn(r.Size()) }

func (r *SingleRange[E]) Initial() E {
	v, err := r.Get(0)
	if err != nil {
		panic("initial of an empty range")
	}
	return v
}

func (r *SingleRange[E]) Last() E {
	v, err := r.Get(int64(r.Size()) - 1)
	if err != nil {
		panic("last of an empty range")
	}
	return v
}

func (r *SingleRange[E]) Contract() Range[E] { return contract[E](r, r.ord) }

// Equal reports whether both bounds are equal. The ordering is not part
// of the comparison.
func (r *SingleRange[E]) Equal(other *SingleRange[E]) bool {
	if other == nil {
		return false
	}
	return r.ord.Compare(r.min, other.min) == 0 &&
		r.ord.Compare(r.max, other.max) == 0
}

func (r *SingleRange[E]) Ranges() []*SingleRange[E] {
	return []*SingleRange[E]{r}
}

func (r *SingleRange[E]) Iterate() *Iterator[E] {
	return newIterator(r.Ranges())
}

func (r *SingleRange[E]) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}

func (r *SingleRange[E]) multi() *MultiRange[E] {
	nm, _ := NewMultiRange(r.Ranges(), r.ord)
	return nm
}
