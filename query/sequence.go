package query

import "iter"

// Sequence is a lazy, re-iterable sequence of elements of type T.
//
// The zero value is an empty sequence.
type Sequence[T any] struct {
	seq iter.Seq2[T, error]
}

// From returns a sequence over the items of a materialized slice.
//
// The slice is read at iteration time, not copied.
func From[T any](items []T) Sequence[T] {
	return Sequence[T]{seq: func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}}
}

// FromSeq returns a sequence over a standard library iterator.
func FromSeq[T any](items iter.Seq[T]) Sequence[T] {
	if items == nil {
		return failed[T](invalidArgument("FromSeq", "nil iterator"))
	}
	return Sequence[T]{seq: func(yield func(T, error) bool) {
		for item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}}
}

// FromSeq2 returns a sequence over an iterator that can fail.
//
// Iteration stops at the first error.
func FromSeq2[T any](items iter.Seq2[T, error]) Sequence[T] {
	if items == nil {
		return failed[T](invalidArgument("FromSeq2", "nil iterator"))
	}
	return Sequence[T]{seq: stopOnError(items)}
}

// FromFunc returns a sequence that calls load on every iteration and yields
// the returned items. A load error ends the iteration with that error.
func FromFunc[T any](load func() ([]T, error)) Sequence[T] {
	if load == nil {
		return failed[T](invalidArgument("FromFunc", "nil loader"))
	}
	return Sequence[T]{seq: func(yield func(T, error) bool) {
		items, err := load()
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}}
}

// Empty returns a sequence with no elements.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Seq returns the underlying iterator. An error is always the last value
// yielded.
func (s Sequence[T]) Seq() iter.Seq2[T, error] {
	if s.seq == nil {
		return func(func(T, error) bool) {}
	}
	return s.seq
}

// Where returns the elements for which pred holds, in source order.
func (s Sequence[T]) Where(pred func(T) bool) Sequence[T] {
	if pred == nil {
		return failed[T](invalidArgument("Where", "nil predicate"))
	}
	return Sequence[T]{seq: func(yield func(T, error) bool) {
		for v, err := range s.Seq() {
			if err != nil {
				yield(v, err)
				return
			}
			if pred(v) && !yield(v, nil) {
				return
			}
		}
	}}
}

// ToSlice evaluates the sequence into a new slice.
func (s Sequence[T]) ToSlice() ([]T, error) {
	items := make([]T, 0)
	for v, err := range s.Seq() {
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// ForEach calls fn for every element until fn returns an error.
func (s Sequence[T]) ForEach(fn func(T) error) error {
	if fn == nil {
		return invalidArgument("ForEach", "nil function")
	}
	for v, err := range s.Seq() {
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// failed returns a sequence whose only effect is to report err when pulled.
func failed[T any](err error) Sequence[T] {
	return Sequence[T]{seq: func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}}
}

// stopOnError wraps an iterator so that nothing is yielded after an error.
func stopOnError[T any](it iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range it {
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// matchAll folds optional predicates into one. No predicates matches every
// element.
func matchAll[T any](op string, preds []func(T) bool) (func(T) bool, error) {
	for i, pred := range preds {
		if pred == nil {
			return nil, invalidArgument(op, "nil predicate at position %d", i)
		}
	}
	return func(v T) bool {
		for _, pred := range preds {
			if !pred(v) {
				return false
			}
		}
		return true
	}, nil
}
