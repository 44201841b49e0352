package query

// Group is one partition produced by GroupBy: a key and every source
// element whose key equals it, in source order.
type Group[K comparable, T any] struct {
	Key      K
	Elements []T
}

// Count returns the number of elements in the group.
func (g Group[K, T]) Count() int {
	return len(g.Elements)
}

// Seq returns the group's elements as a sequence.
func (g Group[K, T]) Seq() Sequence[T] {
	return From(g.Elements)
}

// GroupBy partitions s by key. Groups are yielded in the order their key
// first occurs in s.
//
// The whole source is read when the first group is pulled.
func GroupBy[T any, K comparable](s Sequence[T], key func(T) K) Sequence[Group[K, T]] {
	if key == nil {
		return failed[Group[K, T]](invalidArgument("GroupBy", "nil key"))
	}
	return GroupByWith(s, key, func(v T) T { return v })
}

// GroupByWith partitions s by key and projects each element through elem
// before adding it to its group.
func GroupByWith[T any, K comparable, E any](s Sequence[T], key func(T) K, elem func(T) E) Sequence[Group[K, E]] {
	if key == nil {
		return failed[Group[K, E]](invalidArgument("GroupBy", "nil key"))
	}
	if elem == nil {
		return failed[Group[K, E]](invalidArgument("GroupBy", "nil element projection"))
	}
	return Sequence[Group[K, E]]{seq: func(yield func(Group[K, E], error) bool) {
		groups, err := collectGroups(s, key, elem)
		if err != nil {
			yield(Group[K, E]{}, err)
			return
		}
		for _, g := range groups {
			if !yield(g, nil) {
				return
			}
		}
	}}
}

// collectGroups does hash-based grouping keeping first-occurrence order.
func collectGroups[T any, K comparable, E any](s Sequence[T], key func(T) K, elem func(T) E) ([]Group[K, E], error) {
	var groups []Group[K, E]
	index := make(map[K]int)

	for v, err := range s.Seq() {
		if err != nil {
			return nil, err
		}
		k := key(v)
		if err := checkKey("GroupBy", k); err != nil {
			return nil, err
		}
		if i, exists := index[k]; exists {
			groups[i].Elements = append(groups[i].Elements, elem(v))
			continue
		}
		index[k] = len(groups)
		groups = append(groups, Group[K, E]{Key: k, Elements: []E{elem(v)}})
	}

	return groups, nil
}
