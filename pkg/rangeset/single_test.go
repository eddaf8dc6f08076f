package rangeset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangeset/pkg/ordering"
	"github.com/stretchr/testify/assert"
)

func newInt(t *testing.T, min, max int) *SingleRange[int] {
	t.Helper()
	r, err := NewSingleRange(min, max, ordering.Number[int]())
	assert.NoError(t, err)
	return r
}

func collect[E any](r Range[E]) []E {
	if r == nil {
		return nil
	}
	var vals []E
	it := r.Iterate()
	for it.Next() {
		vals = append(vals, it.Value())
	}
	return vals
}

func TestNewSingleRange(t *testing.T) {
	cases := map[string]struct {
		min, max    int
		expectedMin int
		expectedMax int
	}{
		"Ordered":  {min: 3, max: 12, expectedMin: 3, expectedMax: 12},
		"Swapped":  {min: 12, max: 3, expectedMin: 3, expectedMax: 12},
		"OneValue": {min: 7, max: 7, expectedMin: 7, expectedMax: 7},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := newInt(t, tc.min, tc.max)
			assert.Equal(t, tc.expectedMin, r.Min())
			assert.Equal(t, tc.expectedMax, r.Max())
		})
	}
}

func TestNewSingleRangeNoOrdering(t *testing.T) {
	_, err := NewSingleRange[int](0, 1, nil)
	assert.Error(t, err)
}

func TestSwappedBoundsEquivalent(t *testing.T) {
	a := newInt(t, 3, 12)
	b := newInt(t, 12, 3)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Size(), b.Size())
	assert.Equal(t, a.IndexOf(7), b.IndexOf(7))
	if diff := cmp.Diff(collect[int](a), collect[int](b)); diff != "" {
		t.Errorf("-want +got:\n%s", diff)
	}
}

func TestSize(t *testing.T) {
	cases := map[string]struct {
		min, max              int64
		expectedSize          int
		expectedPossibilities int64
	}{
		"Small": {min: 0, max: 9, expectedSize: 10, expectedPossibilities: 10},
		"Huge": {
			min:                   0,
			max:                   math.MaxInt64 - 1,
			expectedSize:          math.MaxInt32,
			expectedPossibilities: math.MaxInt64,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewSingleRange(tc.min, tc.max, ordering.Number[int64]())
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedSize, r.Size())
			assert.Equal(t, tc.expectedPossibilities, r.Possibilities())
			assert.False(t, r.IsEmpty())
		})
	}
}

func TestGet(t *testing.T) {
	r := newInt(t, 10, 19)

	for i := int64(0); i < r.Possibilities(); i++ {
		v, err := r.Get(i)
		assert.NoError(t, err)
		assert.Equal(t, 10+int(i), v)
	}

	_, err := r.Get(-1)
	assert.Error(t, err)
	_, err = r.Get(r.Possibilities())
	assert.Error(t, err)
}

func TestGetHuge(t *testing.T) {
	// indexing stays correct far beyond the capped size
	r, err := NewSingleRange(int64(0), math.MaxInt64-1, ordering.Number[int64]())
	assert.NoError(t, err)

	v, err := r.Get(int64(1) << 40)
	assert.NoError(t, err)
	assert.Equal(t, int64(1)<<40, v)
}

func TestIndexOfRoundTrip(t *testing.T) {
	r := newInt(t, -5, 5)
	for i := int64(0); i < r.Possibilities(); i++ {
		v, err := r.Get(i)
		assert.NoError(t, err)
		assert.Equal(t, int(i), r.IndexOf(v))
	}
	assert.Equal(t, -1, r.IndexOf(6))
	assert.Equal(t, -1, r.IndexOf(-6))
}

func TestIndexOfCapped(t *testing.T) {
	r, err := NewSingleRange(int64(0), math.MaxInt64-1, ordering.Number[int64]())
	assert.NoError(t, err)
	assert.Equal(t, math.MaxInt32, r.IndexOf(int64(math.MaxInt32)+1000))
}

func TestBound(t *testing.T) {
	cases := map[string]struct {
		val      int
		expected int
	}{
		"Below":  {val: -100, expected: 10},
		"AtMin":  {val: 10, expected: 10},
		"Inside": {val: 15, expected: 15},
		"AtMax":  {val: 19, expected: 19},
		"Above":  {val: 100, expected: 19},
	}
	r := newInt(t, 10, 19)
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			bound := r.Bound(tc.val)
			assert.Equal(t, tc.expected, bound)
			// bound is idempotent and always contained
			assert.Equal(t, bound, r.Bound(bound))
			assert.True(t, r.Contains(bound))
		})
	}
}

func TestContains(t *testing.T) {
	r := newInt(t, 10, 19)
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(19))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(20))

	assert.True(t, r.ContainsRange(newInt(t, 12, 15)))
	assert.True(t, r.ContainsRange(newInt(t, 10, 19)))
	assert.False(t, r.ContainsRange(newInt(t, 5, 15)))
	assert.False(t, r.ContainsRange(newInt(t, 15, 25)))
	assert.False(t, r.ContainsRange(nil))
}

func TestBeforeAfter(t *testing.T) {
	cases := map[string]struct {
		val            int
		expectedBefore string
		expectedAfter  string
	}{
		"Inside":    {val: 15, expectedBefore: "[10, 14]", expectedAfter: "[16, 19]"},
		"AtMin":     {val: 10, expectedBefore: "", expectedAfter: "[11, 19]"},
		"AtMax":     {val: 19, expectedBefore: "[10, 18]", expectedAfter: ""},
		"BelowMin":  {val: 5, expectedBefore: "", expectedAfter: "[10, 19]"},
		"BeyondMax": {val: 25, expectedBefore: "[10, 19]", expectedAfter: ""},
	}
	r := newInt(t, 10, 19)
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			before := r.Before(tc.val)
			if tc.expectedBefore == "" {
				assert.Nil(t, before)
			} else {
				assert.Equal(t, tc.expectedBefore, before.String())
			}
			after := r.After(tc.val)
			if tc.expectedAfter == "" {
				assert.Nil(t, after)
			} else {
				assert.Equal(t, tc.expectedAfter, after.String())
			}
		})
	}
}

func TestBeforeAfterPartition(t *testing.T) {
	r := newInt(t, 10, 19)
	val := 15

	partition := collect[int](r.Before(val))
	partition = append(partition, val)
	partition = append(partition, collect[int](r.After(val))...)

	if diff := cmp.Diff(collect[int](r), partition); diff != "" {
		t.Errorf("-want +got:\n%s", diff)
	}
}

func TestIterate(t *testing.T) {
	r := newInt(t, 3, 7)
	expected := []int{3, 4, 5, 6, 7}
	if diff := cmp.Diff(expected, collect[int](r)); diff != "" {
		t.Errorf("-want +got:\n%s", diff)
	}
	// a fresh iterator starts over
	if diff := cmp.Diff(expected, collect[int](r)); diff != "" {
		t.Errorf("-want +got:\n%s", diff)
	}
}

func TestIterateRunes(t *testing.T) {
	r, err := NewSingleRange('a', 'e', ordering.Number[rune]())
	assert.NoError(t, err)
	if diff := cmp.Diff([]rune("abcde"), collect[rune](r)); diff != "" {
		t.Errorf("-want +got:\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	a := newInt(t, 3, 12)
	b := newInt(t, 3, 12)
	c := newInt(t, 3, 13)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestRandom(t *testing.T) {
	r := newInt(t, 10, 19)
	for i := 0; i < 100; i++ {
		assert.True(t, r.Contains(r.Random()))
		idx := r.RandomIndex()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, r.Size())
	}
}

func TestContract(t *testing.T) {
	r := newInt(t, 10, 19)
	c := r.Contract()
	assert.Equal(t, 1, c.Size())
	assert.True(t, r.Contains(c.Min()))
	assert.Equal(t, c.Min(), c.Max())
}

func TestInitialLast(t *testing.T) {
	r := newInt(t, 10, 19)
	assert.Equal(t, 10, r.Initial())
	assert.Equal(t, 19, r.Last())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[3, 12]", newInt(t, 3, 12).String())
}

func TestContainsAll(t *testing.T) {
	r := newInt(t, 0, 100)
	assert.True(t, r.ContainsAll(newInt(t, 10, 20)))
	assert.False(t, r.ContainsAll(newInt(t, 90, 110)))
	assert.True(t, r.ContainsAll(nil))
}
