package btree

// splitChild splits the overflowing child at childIdx and promotes its
// median pair into parent.
func (t *Tree[K, V]) splitChild(parent *Node[K, V], childIdx int) {
	child := parent.children[childIdx]

	// mid biases toward the left for even pair counts; childMid is the
	// matching midpoint among the child pointers.
	mid := (len(child.pairs) - 1) / 2
	childMid := len(child.children) / 2

	// right sibling takes everything strictly after the median
	right := newNode[K, V](child.leaf)
	right.pairs = append(right.pairs, child.pairs[mid+1:]...)
	right.children = append(right.children, child.children[childMid:]...)
	right.parent = parent
	for _, grand := range right.children {
		grand.parent = right
	}

	parent.pairs = insertAt(parent.pairs, childIdx, child.pairs[mid])
	parent.children = insertAt(parent.children, childIdx+1, right)

	child.pairs = child.pairs[:mid]
	child.children = child.children[:childMid]
}
