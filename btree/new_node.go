package btree

// newNode creates a new node of the given kind and returns its pointer

func newNode[K, V any](leaf bool) *Node[K, V] {
	n := &Node[K, V]{
		leaf:  leaf,
		pairs: make([]Pair[K, V], 0, 4),
	}
	if !leaf {
		n.children = make([]*Node[K, V], 0, 5)
	}
	return n
}
