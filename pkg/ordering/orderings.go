package ordering

import "fmt"

type integerKind interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

type floatKind interface {
	~float32 | ~float64
}

// Number returns the ordering for any integer kind, including rune and
// byte. The coordinate of a value is the value itself.
func Number[E integerKind]() Ordering[E] {
	return number[E]{}
}

type number[E integerKind] struct{}

func (number[E]) Compare(a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (number[E]) IntValue(val E) int     { return int(val) }
func (number[E]) Int64Value(val E) int64 { return int64(val) }

func (number[E]) Add(val E, steps int64) E      { return val + E(steps) }
func (number[E]) Subtract(val E, steps int64) E { return val - E(steps) }

// Float returns the ordering for a float kind quantized by the given
// minimum increment. The coordinate of a value is val/step truncated
// towards zero, and stepping moves a value by steps*step.
func Float[E floatKind](step E) Ordering[E] {
	return float[E]{step: step}
}

type float[E floatKind] struct {
	step E
}

func (float[E]) Compare(a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (o float[E]) IntValue(val E) int     { return int(val / o.step) }
func (o float[E]) Int64Value(val E) int64 { return int64(val / o.step) }

func (o float[E]) Add(val E, steps int64) E      { return val + E(steps)*o.step }
func (o float[E]) Subtract(val E, steps int64) E { return val - E(steps)*o.step }

// Values returns the ordering defined by an explicit value list, such as
// the members of an enumeration. The coordinate of a value is its index
// in the list. A value outside the list sorts before every listed value,
// so membership checks treat it as not found; stepping to or from an
// unlisted value panics, as does stepping outside the list.
func Values[E comparable](vals ...E) (Ordering[E], error) {
	if len(vals) == 0 {
		return nil, fmt.Errorf("cannot create an ordering from an empty value list")
	}
	index := make(map[E]int, len(vals))
	for i, v := range vals {
		if _, ok := index[v]; ok {
			return nil, fmt.Errorf("duplicate value %v in value list", v)
		}
		index[v] = i
	}
	return values[E]{vals: vals, index: index}, nil
}

type values[E comparable] struct {
	vals  []E
	index map[E]int
}

// ordinal returns -1 for values that are not part of the list.
func (o values[E]) ordinal(val E) int {
	i, ok := o.index[val]
	if !ok {
		return -1
	}
	return i
}

func (o values[E]) mustOrdinal(val E) int {
	i := o.ordinal(val)
	if i == -1 {
		panic(fmt.Sprintf("value %v is not part of the value list", val))
	}
	return i
}

func (o values[E]) Compare(a, b E) int {
	ia, ib := o.ordinal(a), o.ordinal(b)
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	}
	return 0
}

func (o values[E]) IntValue(val E) int     { return o.mustOrdinal(val) }
func (o values[E]) Int64Value(val E) int64 { return int64(o.mustOrdinal(val)) }

func (o values[E]) Add(val E, steps int64) E {
	i := int64(o.mustOrdinal(val)) + steps
	if i < 0 || i >= int64(len(o.vals)) {
		panic(fmt.Sprintf("step to ordinal %d is outside the value list of %d values", i, len(o.vals)))
	}
	return o.vals[i]
}

func (o values[E]) Subtract(val E, steps int64) E { return o.Add(val, -steps) }
