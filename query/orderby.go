package query

import (
	"cmp"
	"slices"
)

// Direction is the sort direction of one ordering key.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Ordered is a sequence sorted by one or more keys. Further keys are added
// with ThenBy, ThenByDescending and ThenByFunc; each one only breaks ties
// left by the keys before it.
type Ordered[T any] struct {
	Sequence[T]
	source Sequence[T]
	keys   []func(a, b T) int
}

// OrderBy sorts s by key in ascending order. The sort is stable.
func OrderBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K) Ordered[T] {
	return OrderByFunc(s, compareKey(key), Ascending)
}

// OrderByDescending sorts s by key in descending order. The sort is stable.
func OrderByDescending[T any, K cmp.Ordered](s Sequence[T], key func(T) K) Ordered[T] {
	return OrderByFunc(s, compareKey(key), Descending)
}

// OrderByFunc sorts s with a three-way comparison function.
func OrderByFunc[T any](s Sequence[T], compare func(a, b T) int, dir Direction) Ordered[T] {
	if compare == nil {
		return newOrdered(failed[T](invalidArgument("OrderBy", "nil key")), nil)
	}
	return newOrdered(s, []func(a, b T) int{directed(compare, dir)})
}

// ThenBy adds an ascending tie-breaking key.
func ThenBy[T any, K cmp.Ordered](o Ordered[T], key func(T) K) Ordered[T] {
	return ThenByFunc(o, compareKey(key), Ascending)
}

// ThenByDescending adds a descending tie-breaking key.
func ThenByDescending[T any, K cmp.Ordered](o Ordered[T], key func(T) K) Ordered[T] {
	return ThenByFunc(o, compareKey(key), Descending)
}

// ThenByFunc adds a tie-breaking comparison function.
func ThenByFunc[T any](o Ordered[T], compare func(a, b T) int, dir Direction) Ordered[T] {
	if compare == nil {
		return newOrdered(failed[T](invalidArgument("ThenBy", "nil key")), nil)
	}
	keys := append(slices.Clone(o.keys), directed(compare, dir))
	return newOrdered(o.source, keys)
}

func newOrdered[T any](source Sequence[T], keys []func(a, b T) int) Ordered[T] {
	o := Ordered[T]{source: source, keys: keys}
	o.Sequence = Sequence[T]{seq: func(yield func(T, error) bool) {
		items, err := source.ToSlice()
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		slices.SortStableFunc(items, func(a, b T) int {
			for _, compare := range keys {
				if c := compare(a, b); c != 0 {
					return c
				}
			}
			return 0
		})
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}}
	return o
}

// compareKey returns nil for a nil key so callers report it uniformly.
func compareKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	if key == nil {
		return nil
	}
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

func directed[T any](compare func(a, b T) int, dir Direction) func(a, b T) int {
	if dir == Descending {
		return func(a, b T) int { return compare(b, a) }
	}
	return compare
}
