package query

// All reports whether every element satisfies pred. It is true for an
// empty sequence and stops at the first element that fails.
func (s Sequence[T]) All(pred func(T) bool) (bool, error) {
	if pred == nil {
		return false, invalidArgument("All", "nil predicate")
	}
	for v, err := range s.Seq() {
		if err != nil {
			return false, err
		}
		if !pred(v) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether some element matches every predicate, or whether the
// sequence has any element at all when no predicate is given.
func (s Sequence[T]) Any(preds ...func(T) bool) (bool, error) {
	found, err := s.first("Any", preds)
	if err != nil {
		return false, err
	}
	return found.IsPresent(), nil
}

// Count returns the number of elements matching every predicate.
func (s Sequence[T]) Count(preds ...func(T) bool) (int, error) {
	match, err := matchAll("Count", preds)
	if err != nil {
		return 0, err
	}
	count := 0
	for v, err := range s.Seq() {
		if err != nil {
			return 0, err
		}
		if match(v) {
			count++
		}
	}
	return count, nil
}
