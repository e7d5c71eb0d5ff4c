package btree

import "fmt"

// Validate walks the whole tree and returns an error describing the first
// structural violation it finds: key ordering, open interval bounds,
// occupancy limits, child counts, parent back-references or unequal leaf
// depth. Intended for tests and tools; the engine never calls it.
func (t *Tree[K, V]) Validate() error {
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("root has a parent back-reference")
	}
	leafDepth := -1
	return t.validateNode(t.root, nil, nil, 0, &leafDepth)
}

// IsValid reports whether every structural invariant holds.
func (t *Tree[K, V]) IsValid() bool {
	return t.Validate() == nil
}

func (t *Tree[K, V]) validateNode(n *Node[K, V], lo, hi *K, depth int, leafDepth *int) error {
	if len(n.pairs) > t.order-1 {
		return fmt.Errorf("node at depth %d has %d pairs, max is %d", depth, len(n.pairs), t.order-1)
	}
	if n != t.root && len(n.pairs) < t.minPairs() {
		return fmt.Errorf("node at depth %d has %d pairs, min is %d", depth, len(n.pairs), t.minPairs())
	}
	if n == t.root && len(n.pairs) == 0 && !n.leaf {
		return fmt.Errorf("internal root has no pairs")
	}

	for i := 1; i < len(n.pairs); i++ {
		if t.cmp(n.pairs[i-1].Key, n.pairs[i].Key) >= 0 {
			return fmt.Errorf("keys out of order at depth %d index %d", depth, i)
		}
	}

	// every key must lie strictly inside the open interval inherited
	// from the ancestors
	if len(n.pairs) > 0 {
		if lo != nil && t.cmp(n.pairs[0].Key, *lo) <= 0 {
			return fmt.Errorf("first key at depth %d violates lower bound", depth)
		}
		if hi != nil && t.cmp(n.pairs[len(n.pairs)-1].Key, *hi) >= 0 {
			return fmt.Errorf("last key at depth %d violates upper bound", depth)
		}
	}

	if n.leaf {
		if len(n.children) != 0 {
			return fmt.Errorf("leaf at depth %d has %d children", depth, len(n.children))
		}
		if *leafDepth == -1 {
			*leafDepth = depth
		} else if depth != *leafDepth {
			return fmt.Errorf("leaf at depth %d, expected all leaves at depth %d", depth, *leafDepth)
		}
		return nil
	}

	if len(n.children) != len(n.pairs)+1 {
		return fmt.Errorf("node at depth %d has %d children for %d pairs", depth, len(n.children), len(n.pairs))
	}
	for i, child := range n.children {
		if child.parent != n {
			return fmt.Errorf("child %d at depth %d has a stale parent back-reference", i, depth)
		}
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.pairs[i-1].Key
		}
		if i < len(n.pairs) {
			childHi = &n.pairs[i].Key
		}
		if err := t.validateNode(child, childLo, childHi, depth+1, leafDepth); err != nil {
			return err
		}
	}
	return nil
}
