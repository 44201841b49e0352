package query

import "golang.org/x/exp/constraints"

// Number is any built-in numeric type an aggregate selector may return.
type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the largest selected value. It fails with ErrEmptySequence
// when s has no elements.
func Max[T any, N Number](s Sequence[T], sel func(T) N) (N, error) {
	return extreme("Max", s, sel, func(candidate, current N) bool { return candidate > current })
}

// Min returns the smallest selected value. It fails with ErrEmptySequence
// when s has no elements.
func Min[T any, N Number](s Sequence[T], sel func(T) N) (N, error) {
	return extreme("Min", s, sel, func(candidate, current N) bool { return candidate < current })
}

// Sum adds up the selected values. The sum of an empty sequence is zero.
func Sum[T any, N Number](s Sequence[T], sel func(T) N) (N, error) {
	var sum N
	if sel == nil {
		return sum, invalidArgument("Sum", "nil selector")
	}
	for v, err := range s.Seq() {
		if err != nil {
			return 0, err
		}
		sum += sel(v)
	}
	return sum, nil
}

// Average returns the arithmetic mean of the selected values as a float64,
// also for integral inputs. It fails with ErrEmptySequence when s has no
// elements.
func Average[T any, N Number](s Sequence[T], sel func(T) N) (float64, error) {
	if sel == nil {
		return 0, invalidArgument("Average", "nil selector")
	}

	sum := 0.0
	count := int64(0)

	for v, err := range s.Seq() {
		if err != nil {
			return 0, err
		}
		sum += float64(sel(v))
		count++
	}

	if count == 0 {
		return 0, emptySequence("Average")
	}

	return sum / float64(count), nil
}

func extreme[T any, N Number](op string, s Sequence[T], sel func(T) N, better func(candidate, current N) bool) (N, error) {
	var result N
	if sel == nil {
		return result, invalidArgument(op, "nil selector")
	}

	found := false
	for v, err := range s.Seq() {
		if err != nil {
			return 0, err
		}
		num := sel(v)
		if !found || better(num, result) {
			result = num
			found = true
		}
	}

	if !found {
		return result, emptySequence(op)
	}

	return result, nil
}
