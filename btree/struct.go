// Structure of the B-tree
/*
Tree
 ├── Node (sorted key/value pairs + child pointers)
 │      └── Child Nodes ...
 │             └── Leaf Nodes (sorted key/value pairs, no children)


- pairs: sorted ascending by key, no duplicates anywhere in the tree
- internal nodes: children length == len(pairs)+1
- child i covers the open key interval (pairs[i-1].Key, pairs[i].Key)
- all leaf nodes at same depth
- parent is a non-owning back-reference, kept consistent by every
  split, merge and rotation

Unlike a B+ tree, values live in every node, not only in the leaves.
*/
package btree

// Pair is a single key/value entry stored inside a node.
type Pair[K, V any] struct {
	Key   K
	Value V
}

type Node[K, V any] struct {
	pairs    []Pair[K, V]
	children []*Node[K, V] // only for internal nodes
	parent   *Node[K, V]
	leaf     bool
}

// Tree is an in-memory B-tree dictionary. Keys are ordered by the
// comparison function supplied at construction. The tree is not safe for
// concurrent mutation; lookups may run concurrently with each other but
// never with Insert, Remove or Clear.
type Tree[K, V any] struct {
	root   *Node[K, V] // nil when the tree has never held a key
	order  int         // max children per node; max pairs is order-1
	length int
	cmp    func(a, b K) int // comparison function for keys
}

// Order returns the branching factor the tree was created with.
func (t *Tree[K, V]) Order() int {
	return t.order
}

// Len returns the number of key/value pairs currently stored.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// minPairs is the minimum occupancy of every node except the root.
func (t *Tree[K, V]) minPairs() int {
	return (t.order - 1) / 2
}
