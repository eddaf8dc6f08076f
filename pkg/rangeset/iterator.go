package rangeset

// Iterator walks all values of a range in ascending order. It is lazy:
// values are computed from the constituent bounds as the iteration
// advances, so iterating a range is possible even when materializing it
// would not be. A fresh call to Iterate yields a new independent
// iterator.
type Iterator[E any] struct {
	ranges  []*SingleRange[E]
	idx     int
	current int64
}

func newIterator[E any](ranges []*SingleRange[E]) *Iterator[E] {
	return &Iterator[E]{
		ranges:  ranges,
		current: -1,
	}
}

func (r *Iterator[E]) Next() bool {
	for r.idx < len(r.ranges) {
		if r.current+1 < r.ranges[r.idx].possibilities {
			r.current++
			return true
		}
		r.idx++
		r.current = -1
	}
	return false
}

func (r *Iterator[E]) Value() E {
	sr := r.ranges[r.idx]
	return sr.ord.Add(sr.min, r.current)
}
