package query

import "fmt"

// FirstOrDefault returns the first element matching every predicate, or
// the first element when no predicate is given. An empty Optional means
// nothing matched.
func (s Sequence[T]) FirstOrDefault(preds ...func(T) bool) (Optional[T], error) {
	return s.first("FirstOrDefault", preds)
}

func (s Sequence[T]) first(op string, preds []func(T) bool) (Optional[T], error) {
	match, err := matchAll(op, preds)
	if err != nil {
		return None[T](), err
	}
	for v, err := range s.Seq() {
		if err != nil {
			return None[T](), err
		}
		if match(v) {
			return Some(v), nil
		}
	}
	return None[T](), nil
}

// First is FirstOrDefault that fails with ErrEmptySequence when nothing
// matches.
func (s Sequence[T]) First(preds ...func(T) bool) (T, error) {
	found, err := s.first("First", preds)
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := found.Get()
	if !ok {
		return v, emptySequence("First")
	}
	return v, nil
}

// SingleOrDefault returns the only element matching every predicate. It
// returns an empty Optional when nothing matches and fails with
// ErrMultipleMatches as soon as a second match is found.
func (s Sequence[T]) SingleOrDefault(preds ...func(T) bool) (Optional[T], error) {
	return s.single("SingleOrDefault", preds)
}

// Single is SingleOrDefault that fails with ErrEmptySequence when nothing
// matches.
func (s Sequence[T]) Single(preds ...func(T) bool) (T, error) {
	found, err := s.single("Single", preds)
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := found.Get()
	if !ok {
		return v, emptySequence("Single")
	}
	return v, nil
}

func (s Sequence[T]) single(op string, preds []func(T) bool) (Optional[T], error) {
	match, err := matchAll(op, preds)
	if err != nil {
		return None[T](), err
	}
	result := None[T]()
	for v, err := range s.Seq() {
		if err != nil {
			return None[T](), err
		}
		if !match(v) {
			continue
		}
		if result.IsPresent() {
			return None[T](), fmt.Errorf("%w: %s", ErrMultipleMatches, op)
		}
		result = Some(v)
	}
	return result, nil
}
