package btree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func nodeKeys(n *Node[int, int]) []int {
	keys := make([]int, 0, len(n.pairs))
	for _, p := range n.pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

func buildTree(t *testing.T, order int, keys ...int) *Tree[int, int] {
	t.Helper()
	tree := newIntTree(t, order)
	for _, k := range keys {
		require.True(t, tree.Insert(k, k))
	}
	require.NoError(t, tree.Validate())
	return tree
}

func TestBorrowFromRightSibling(t *testing.T) {
	// root [20] over [10] and [30 40]; removing 10 forces a right borrow
	tree := buildTree(t, 3, 10, 20, 30, 40)

	require.True(t, tree.Remove(10))
	require.NoError(t, tree.Validate())

	require.Equal(t, []int{30}, nodeKeys(tree.root))
	require.Equal(t, []int{20}, nodeKeys(tree.root.children[0]))
	require.Equal(t, []int{40}, nodeKeys(tree.root.children[1]))
}

func TestBorrowFromLeftSibling(t *testing.T) {
	// root [20] over [5 10] and [30]; removing 30 forces a left borrow
	tree := buildTree(t, 3, 10, 20, 30, 5)

	require.True(t, tree.Remove(30))
	require.NoError(t, tree.Validate())

	require.Equal(t, []int{10}, nodeKeys(tree.root))
	require.Equal(t, []int{5}, nodeKeys(tree.root.children[0]))
	require.Equal(t, []int{20}, nodeKeys(tree.root.children[1]))
}

func TestMergeCollapsesRootHeight(t *testing.T) {
	tree := buildTree(t, 3, 10, 20, 30, 40)

	require.True(t, tree.Remove(40))
	require.NoError(t, tree.Validate())

	// neither sibling can spare a pair now, so removing 30 merges the
	// leaves and the root collapses into the merged node
	require.True(t, tree.Remove(30))
	require.NoError(t, tree.Validate())

	require.True(t, tree.root.leaf)
	require.Nil(t, tree.root.parent)
	require.Equal(t, []int{10, 20}, nodeKeys(tree.root))
}

func TestInternalKeyPredecessorSubstitution(t *testing.T) {
	// root [20] over [5 10] and [30]; the predecessor leaf has spare
	// occupancy, so 20 is replaced by 10
	tree := buildTree(t, 3, 10, 20, 30, 5)

	require.True(t, tree.Remove(20))
	require.NoError(t, tree.Validate())

	require.Equal(t, []int{10}, nodeKeys(tree.root))
	require.Equal(t, []int{5}, nodeKeys(tree.root.children[0]))
	require.Equal(t, []int{30}, nodeKeys(tree.root.children[1]))
}

func TestInternalKeySuccessorSubstitution(t *testing.T) {
	// root [20] over [10] and [30 40]; the predecessor leaf is at the
	// minimum but the successor leaf has spare occupancy
	tree := buildTree(t, 3, 10, 20, 30, 40)

	require.True(t, tree.Remove(20))
	require.NoError(t, tree.Validate())

	require.Equal(t, []int{30}, nodeKeys(tree.root))
	require.Equal(t, []int{10}, nodeKeys(tree.root.children[0]))
	require.Equal(t, []int{40}, nodeKeys(tree.root.children[1]))
}

func TestInternalKeySuccessorTriggersLeafRepair(t *testing.T) {
	// root [20] over [10] and [30]; both substitute leaves are at the
	// minimum, so the successor is taken anyway and its leaf is repaired
	// by a merge that collapses the root
	tree := buildTree(t, 3, 10, 20, 30)

	require.True(t, tree.Remove(20))
	require.NoError(t, tree.Validate())

	require.True(t, tree.root.leaf)
	require.Equal(t, []int{10, 30}, nodeKeys(tree.root))
}

func TestMergeCascadesToRoot(t *testing.T) {
	// three levels: root [40] over internal [20] and [60] over four leaves
	tree := buildTree(t, 3, 10, 20, 30, 40, 50, 60, 70, 80)
	require.Equal(t, []int{40}, nodeKeys(tree.root))
	require.False(t, tree.root.children[0].leaf)

	// removing 10 merges its leaf, under-populates the internal parent
	// and cascades: the tree loses a level
	require.True(t, tree.Remove(10))
	require.NoError(t, tree.Validate())

	require.Equal(t, []int{40, 60}, nodeKeys(tree.root))
	require.True(t, tree.root.children[0].leaf)
	require.Equal(t, []int{20, 30}, nodeKeys(tree.root.children[0]))
	require.Equal(t, []int{50}, nodeKeys(tree.root.children[1]))
	require.Equal(t, []int{70, 80}, nodeKeys(tree.root.children[2]))

	for _, k := range []int{20, 30, 40, 50, 60, 70, 80} {
		_, ok := tree.Find(k)
		require.True(t, ok, "key %d", k)
	}
	_, ok := tree.Find(10)
	require.False(t, ok)
}

func TestRemoveEverythingInEveryOrder(t *testing.T) {
	// drain small trees fully in ascending, descending and inside-out
	// order; both borrow directions and every merge shape show up here
	orders := []int{3, 4, 5}
	for _, order := range orders {
		for n := 1; n <= 32; n++ {
			asc := make([]int, n)
			desc := make([]int, n)
			mid := make([]int, 0, n)
			for i := 0; i < n; i++ {
				asc[i] = i
				desc[i] = n - 1 - i
			}
			for lo, hi := n/2, n/2+1; lo >= 0 || hi < n; lo, hi = lo-1, hi+1 {
				if lo >= 0 {
					mid = append(mid, lo)
				}
				if hi < n {
					mid = append(mid, hi)
				}
			}

			for _, removal := range [][]int{asc, desc, mid} {
				tree := newIntTree(t, order)
				for i := 0; i < n; i++ {
					tree.Insert(i, i)
				}
				for step, k := range removal {
					require.True(t, tree.Remove(k), "order %d n %d step %d", order, n, step)
					require.NoError(t, tree.Validate(), "order %d n %d after removing %d", order, n, k)
					_, ok := tree.Find(k)
					require.False(t, ok, "order %d n %d key %d", order, n, k)
				}
				require.Equal(t, 0, tree.Len())
			}
		}
	}
}
