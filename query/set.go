package query

// Distinct removes later duplicates of an element, keeping the order of
// first occurrences.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy removes every element whose key has already been seen.
func DistinctBy[T any, K comparable](s Sequence[T], key func(T) K) Sequence[T] {
	if key == nil {
		return failed[T](invalidArgument("Distinct", "nil key"))
	}
	return Sequence[T]{seq: func(yield func(T, error) bool) {
		seen := make(map[K]struct{})
		for v, err := range s.Seq() {
			if err != nil {
				yield(v, err)
				return
			}
			k := key(v)
			if err := checkKey("Distinct", k); err != nil {
				yield(v, err)
				return
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v, nil) {
				return
			}
		}
	}}
}
