package query

// Skip drops the first n elements, or all of them if there are fewer.
func (s Sequence[T]) Skip(n int) Sequence[T] {
	if n < 0 {
		return failed[T](invalidArgument("Skip", "negative count %d", n))
	}
	return Sequence[T]{seq: func(yield func(T, error) bool) {
		skipped := 0
		for v, err := range s.Seq() {
			if err != nil {
				yield(v, err)
				return
			}
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v, nil) {
				return
			}
		}
	}}
}

// Take yields at most n elements and stops reading the source afterwards.
func (s Sequence[T]) Take(n int) Sequence[T] {
	if n < 0 {
		return failed[T](invalidArgument("Take", "negative count %d", n))
	}
	return Sequence[T]{seq: func(yield func(T, error) bool) {
		if n == 0 {
			return
		}
		taken := 0
		for v, err := range s.Seq() {
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}}
}

// Page returns the zero-based page of the given size: Skip(page*size).Take(size).
func (s Sequence[T]) Page(page, size int) Sequence[T] {
	if page < 0 || size < 0 {
		return failed[T](invalidArgument("Page", "negative page %d or size %d", page, size))
	}
	return s.Skip(page * size).Take(size)
}
