package btree

// lowerBound returns the first index whose key is >= target, or len(pairs)
// when every key is smaller. For an internal node this is also the index of
// the child covering the gap the target falls into.
func (t *Tree[K, V]) lowerBound(pairs []Pair[K, V], target K) int {
	lo, hi := 0, len(pairs)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if t.cmp(pairs[mid].Key, target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func insertAt[T any](s []T, i int, v T) []T {
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}
