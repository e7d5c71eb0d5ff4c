// Package dict exposes the B-tree as a ready-to-use int64 -> string
// dictionary. A ristretto cache sits in front of the tree so repeated
// lookups of hot keys skip the descent entirely, and a single RW mutex
// serializes mutators while letting lookups run concurrently.
package dict

import (
	"sync"

	"BTreeDict/btree"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	cacheNumCounters = 1 << 16
	cacheMaxCost     = 1 << 14
	cacheBufferItems = 64
)

type Dict struct {
	mu    sync.RWMutex
	tree  *btree.Tree[int64, string]
	cache *ristretto.Cache[int64, string]
}

// New creates an empty dictionary backed by a B-tree of the given order.
func New(order int) (*Dict, error) {
	tree, err := btree.New[int64, string](order, compareInt64)
	if err != nil {
		return nil, err
	}
	cache, err := ristretto.NewCache(&ristretto.Config[int64, string]{
		NumCounters: cacheNumCounters,
		MaxCost:     cacheMaxCost,
		BufferItems: cacheBufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &Dict{tree: tree, cache: cache}, nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Insert stores value under key. A duplicate key is ignored and the first
// value is kept, so the cache is only warmed when the tree actually changed.
func (d *Dict) Insert(key int64, value string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	changed := d.tree.Insert(key, value)
	if changed {
		d.cache.Set(key, value, 1)
	}
	return changed
}

// Find returns the value stored under key. Cache hits never touch the tree.
func (d *Dict) Find(key int64) (string, bool) {
	if value, ok := d.cache.Get(key); ok {
		return value, true
	}

	// Set happens under the read lock so a concurrent Remove, which
	// holds the write lock, always deletes after we populate.
	d.mu.RLock()
	value, ok := d.tree.Find(key)
	if ok {
		d.cache.Set(key, value, 1)
	}
	d.mu.RUnlock()
	return value, ok
}

// Remove deletes key. The cache entry is dropped before returning so a
// later Find cannot resurrect the removed value.
func (d *Dict) Remove(key int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	changed := d.tree.Remove(key)
	d.cache.Del(key)
	d.cache.Wait()
	return changed
}

// Clear discards every key and empties the cache.
func (d *Dict) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.tree.Clear()
	d.cache.Clear()
}

// Len returns the number of keys stored.
func (d *Dict) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tree.Len()
}

// Valid reports whether the underlying tree satisfies its structural
// invariants.
func (d *Dict) Valid() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tree.IsValid()
}

// Wait blocks until pending cache writes are applied. Useful in tests that
// assert on cache behavior.
func (d *Dict) Wait() {
	d.cache.Wait()
}

// Close releases the cache's background resources.
func (d *Dict) Close() {
	d.cache.Close()
}
