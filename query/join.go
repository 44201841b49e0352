package query

import "slices"

// Join performs an inner equi-join. For every left element, in order, it
// emits combine(left, right) for each right element with an equal key, in
// right order. Left elements without a match produce nothing.
func Join[T, U any, K comparable, V any](left Sequence[T], right Sequence[U], leftKey func(T) K, rightKey func(U) K, combine func(T, U) V) Sequence[V] {
	if err := checkJoinArgs("Join", leftKey, rightKey, combine == nil); err != nil {
		return failed[V](err)
	}
	return Sequence[V]{seq: func(yield func(V, error) bool) {
		var zero V
		lookup, err := buildLookup("Join", right, rightKey)
		if err != nil {
			yield(zero, err)
			return
		}
		for l, err := range left.Seq() {
			if err != nil {
				yield(zero, err)
				return
			}
			k := leftKey(l)
			if err := checkKey("Join", k); err != nil {
				yield(zero, err)
				return
			}
			for _, r := range lookup[k] {
				if !yield(combine(l, r), nil) {
					return
				}
			}
		}
	}}
}

// GroupJoin pairs every left element with all right elements whose key
// equals its own. Exactly one result is emitted per left element. Each
// combine call gets its own matches slice, which is empty, never nil, when
// nothing matches.
func GroupJoin[T, U any, K comparable, V any](left Sequence[T], right Sequence[U], leftKey func(T) K, rightKey func(U) K, combine func(T, []U) V) Sequence[V] {
	if err := checkJoinArgs("GroupJoin", leftKey, rightKey, combine == nil); err != nil {
		return failed[V](err)
	}
	return Sequence[V]{seq: func(yield func(V, error) bool) {
		var zero V
		lookup, err := buildLookup("GroupJoin", right, rightKey)
		if err != nil {
			yield(zero, err)
			return
		}
		for l, err := range left.Seq() {
			if err != nil {
				yield(zero, err)
				return
			}
			k := leftKey(l)
			if err := checkKey("GroupJoin", k); err != nil {
				yield(zero, err)
				return
			}
			matches := slices.Clone(lookup[k])
			if matches == nil {
				matches = []U{}
			}
			if !yield(combine(l, matches), nil) {
				return
			}
		}
	}}
}

// CrossJoin emits combine for every left and right pair, left-major.
//
// The right sequence is re-iterated once per left element.
func CrossJoin[T, U, V any](left Sequence[T], right Sequence[U], combine func(T, U) V) Sequence[V] {
	if combine == nil {
		return failed[V](invalidArgument("CrossJoin", "nil combine function"))
	}
	return SelectManyWith(left, func(T) Sequence[U] { return right }, combine)
}

func checkJoinArgs[T, U any, K comparable](op string, leftKey func(T) K, rightKey func(U) K, nilCombine bool) error {
	switch {
	case leftKey == nil:
		return invalidArgument(op, "nil left key")
	case rightKey == nil:
		return invalidArgument(op, "nil right key")
	case nilCombine:
		return invalidArgument(op, "nil combine function")
	}
	return nil
}

// buildLookup indexes right by key, keeping right order within each key.
func buildLookup[U any, K comparable](op string, right Sequence[U], key func(U) K) (map[K][]U, error) {
	lookup := make(map[K][]U)
	for r, err := range right.Seq() {
		if err != nil {
			return nil, err
		}
		k := key(r)
		if err := checkKey(op, k); err != nil {
			return nil, err
		}
		lookup[k] = append(lookup[k], r)
	}
	return lookup, nil
}
