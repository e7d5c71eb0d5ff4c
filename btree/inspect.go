// Package btree: tree inspection for debugging.
// Use Dump/DumpTo to print a human-readable breadth-first view of a tree.

package btree

import (
	"fmt"
	"io"
	"strings"
)

// DumpTo writes a breadth-first dump of the tree to w: one line per depth
// level, each node rendered as its bracketed pairs, left to right.
func (t *Tree[K, V]) DumpTo(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "(empty tree)")
		return err
	}

	queue := []*Node[K, V]{t.root}
	for len(queue) > 0 {
		size := len(queue)
		line := make([]string, 0, size)
		for i := 0; i < size; i++ {
			n := queue[i]
			line = append(line, formatNode(n))
			queue = append(queue, n.children...)
		}
		if _, err := fmt.Fprintln(w, strings.Join(line, " ")); err != nil {
			return err
		}
		queue = queue[size:]
	}
	return nil
}

// Dump returns the breadth-first dump as a string.
func (t *Tree[K, V]) Dump() string {
	var sb strings.Builder
	_ = t.DumpTo(&sb)
	return sb.String()
}

func formatNode[K, V any](n *Node[K, V]) string {
	entries := make([]string, 0, len(n.pairs))
	for _, p := range n.pairs {
		entries = append(entries, fmt.Sprintf("%v:%v", p.Key, p.Value))
	}
	return "[" + strings.Join(entries, " ") + "]"
}
