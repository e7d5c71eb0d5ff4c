package btree

// Insert adds a key/value pair. If the key already exists the call is a
// no-op and the original value is kept (first writer wins). Reports whether
// the tree changed.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	// If tree is empty
	if t.root == nil {
		t.root = newNode[K, V](true)
	}

	if !t.insert(t.root, key, value) {
		return false
	}

	// Root overflow grows the tree: wrap the old root and split it.
	// This is the only way the tree gains height.
	if len(t.root.pairs) >= t.order {
		newRoot := newNode[K, V](false)
		newRoot.children = append(newRoot.children, t.root)
		t.root.parent = newRoot
		t.splitChild(newRoot, 0)
		t.root = newRoot
	}

	t.length++
	return true
}

// insert descends to the correct leaf and inserts there, splitting any
// child that overflows on the way back up. The duplicate check runs on
// every node visited, not only the terminal leaf.
func (t *Tree[K, V]) insert(n *Node[K, V], key K, value V) bool {
	i := t.lowerBound(n.pairs, key)
	if i < len(n.pairs) && t.cmp(n.pairs[i].Key, key) == 0 {
		return false
	}

	if n.leaf {
		n.pairs = insertAt(n.pairs, i, Pair[K, V]{Key: key, Value: value})
		return true
	}

	child := n.children[i]
	if !t.insert(child, key, value) {
		return false
	}
	if len(child.pairs) >= t.order {
		t.splitChild(n, i)
	}
	return true
}
