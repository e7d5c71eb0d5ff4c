package btree

// Remove deletes a key and its value. If the key is absent the call is a
// no-op. Reports whether the tree changed.
//
// The descent records the child index taken at each level. Rebalancing
// mutates ancestors, so the recorded path is the only reliable way for the
// bottom-up repair to know which child slot a node occupies after siblings
// have been merged or rotated away.
func (t *Tree[K, V]) Remove(key K) bool {
	if t.root == nil {
		return false
	}

	path := make([]int, 0, 8)
	n := t.root
	for {
		i := t.lowerBound(n.pairs, key)
		if i < len(n.pairs) && t.cmp(n.pairs[i].Key, key) == 0 {
			if n.leaf {
				t.removeFromLeaf(n, i, path)
			} else {
				t.removeFromInternal(n, i, path)
			}
			t.length--
			return true
		}
		if n.leaf {
			return false
		}
		path = append(path, i)
		n = n.children[i]
	}
}

// removeFromLeaf erases the pair at idx and repairs the leaf if it drops
// below minimum occupancy. The root is exempt from the minimum; removing
// the sole key of a single-node tree leaves an empty leaf root.
func (t *Tree[K, V]) removeFromLeaf(n *Node[K, V], idx int, path []int) {
	n.pairs = removeAt(n.pairs, idx)
	if n != t.root && len(n.pairs) < t.minPairs() {
		t.repairUnderflow(n, path)
	}
}

// removeFromInternal replaces the pair at idx with its in-order
// predecessor when that leaf has spare occupancy, else with its in-order
// successor. Taking the successor from a minimally filled leaf leaves that
// leaf underflowing, so it is repaired like any other leaf deletion.
func (t *Tree[K, V]) removeFromInternal(n *Node[K, V], idx int, path []int) {
	// right-most leaf descendant of the left child
	pred := n.children[idx]
	for !pred.leaf {
		pred = pred.children[len(pred.children)-1]
	}
	if len(pred.pairs) > t.minPairs() {
		n.pairs[idx] = pred.pairs[len(pred.pairs)-1]
		pred.pairs = pred.pairs[:len(pred.pairs)-1]
		return
	}

	// left-most leaf descendant of the right child
	succPath := append(path, idx+1)
	succ := n.children[idx+1]
	for !succ.leaf {
		succ = succ.children[0]
		succPath = append(succPath, 0)
	}
	n.pairs[idx] = succ.pairs[0]
	succ.pairs = removeAt(succ.pairs, 0)
	if len(succ.pairs) < t.minPairs() {
		t.repairUnderflow(succ, succPath)
	}
}

// repairUnderflow restores minimum occupancy for n, which sits at
// parent.children[path[last]]. Repairs are tried in strict priority order:
// borrow from the left sibling, borrow from the right sibling, then merge
// with a sibling. A merge consumes a separator from the parent and may
// under-populate it in turn, so the repair recurses up the recorded path.
func (t *Tree[K, V]) repairUnderflow(n *Node[K, V], path []int) {
	parent := n.parent
	idx := path[len(path)-1]
	min := t.minPairs()

	// borrow from the left sibling: rotate its last pair up through the
	// parent separator
	if idx > 0 {
		left := parent.children[idx-1]
		if len(left.pairs) > min {
			n.pairs = insertAt(n.pairs, 0, parent.pairs[idx-1])
			parent.pairs[idx-1] = left.pairs[len(left.pairs)-1]
			left.pairs = left.pairs[:len(left.pairs)-1]
			if !n.leaf {
				moved := left.children[len(left.children)-1]
				left.children = left.children[:len(left.children)-1]
				n.children = insertAt(n.children, 0, moved)
				moved.parent = n
			}
			return
		}
	}

	// borrow from the right sibling, the mirror rotation
	if idx < len(parent.children)-1 {
		right := parent.children[idx+1]
		if len(right.pairs) > min {
			n.pairs = append(n.pairs, parent.pairs[idx])
			parent.pairs[idx] = right.pairs[0]
			right.pairs = removeAt(right.pairs, 0)
			if !n.leaf {
				moved := right.children[0]
				right.children = removeAt(right.children, 0)
				n.children = append(n.children, moved)
				moved.parent = n
			}
			return
		}
	}

	// no sibling can spare a pair: fuse with one of them, pulling the
	// shared separator down out of the parent
	var merged *Node[K, V]
	if idx > 0 {
		merged = t.merge(parent, idx-1)
	} else {
		merged = t.merge(parent, idx)
	}

	if parent == t.root {
		// height shrinks when the root runs out of pairs
		if len(parent.pairs) == 0 {
			merged.parent = nil
			t.root = merged
		}
		return
	}
	if len(parent.pairs) < min {
		t.repairUnderflow(parent, path[:len(path)-1])
	}
}

// merge fuses parent.children[sepIdx] and parent.children[sepIdx+1] with
// their separator pair into the left of the two, removes the separator and
// the consumed child slot from parent, and returns the surviving node.
func (t *Tree[K, V]) merge(parent *Node[K, V], sepIdx int) *Node[K, V] {
	left := parent.children[sepIdx]
	right := parent.children[sepIdx+1]

	left.pairs = append(left.pairs, parent.pairs[sepIdx])
	left.pairs = append(left.pairs, right.pairs...)
	left.children = append(left.children, right.children...)
	for _, moved := range right.children {
		moved.parent = left
	}

	parent.pairs = removeAt(parent.pairs, sepIdx)
	parent.children = removeAt(parent.children, sepIdx+1)
	return left
}

// Clear discards the entire tree, returning it to the empty state.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.length = 0
}
