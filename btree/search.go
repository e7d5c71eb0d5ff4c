package btree

// Find returns the value stored for key and whether the key is present.
// Read-only; safe to call concurrently with other lookups, but not with
// Insert, Remove or Clear.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	n := t.root
	for n != nil {
		i := t.lowerBound(n.pairs, key)
		if i < len(n.pairs) && t.cmp(n.pairs[i].Key, key) == 0 {
			return n.pairs[i].Value, true
		}
		if n.leaf {
			break
		}
		n = n.children[i]
	}
	var zero V
	return zero, false
}
