package query

// Select maps every element of s through fn, preserving order.
func Select[T, U any](s Sequence[T], fn func(T) U) Sequence[U] {
	if fn == nil {
		return failed[U](invalidArgument("Select", "nil projection"))
	}
	return Sequence[U]{seq: func(yield func(U, error) bool) {
		for v, err := range s.Seq() {
			if err != nil {
				var zero U
				yield(zero, err)
				return
			}
			if !yield(fn(v), nil) {
				return
			}
		}
	}}
}

// SelectMany flattens the sequence produced by fn for every element of s.
// Each inner sequence is exhausted before the next source element is read.
func SelectMany[T, U any](s Sequence[T], fn func(T) Sequence[U]) Sequence[U] {
	if fn == nil {
		return failed[U](invalidArgument("SelectMany", "nil projection"))
	}
	return SelectManyWith(s, fn, func(_ T, u U) U { return u })
}

// SelectManySlice is SelectMany for projections that return a slice, such
// as a record's nested collection.
func SelectManySlice[T, U any](s Sequence[T], fn func(T) []U) Sequence[U] {
	if fn == nil {
		return failed[U](invalidArgument("SelectMany", "nil projection"))
	}
	return SelectMany(s, func(v T) Sequence[U] { return From(fn(v)) })
}

// SelectManyWith flattens like SelectMany and pairs each produced element
// with the source element it came from.
func SelectManyWith[T, U, V any](s Sequence[T], fn func(T) Sequence[U], combine func(T, U) V) Sequence[V] {
	if fn == nil {
		return failed[V](invalidArgument("SelectMany", "nil projection"))
	}
	if combine == nil {
		return failed[V](invalidArgument("SelectMany", "nil combine function"))
	}
	return Sequence[V]{seq: func(yield func(V, error) bool) {
		var zero V
		for outer, err := range s.Seq() {
			if err != nil {
				yield(zero, err)
				return
			}
			for inner, err := range fn(outer).Seq() {
				if err != nil {
					yield(zero, err)
					return
				}
				if !yield(combine(outer, inner), nil) {
					return
				}
			}
		}
	}}
}
