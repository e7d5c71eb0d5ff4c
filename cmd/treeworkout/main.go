// Workload driver for the in-memory B-tree: inserts a batch of keys,
// validates the structure, removes a fraction and validates again.
// Run: go run ./cmd/treeworkout -order 64 -count 200000 -mode rand
package main

import (
	"flag"
	"math/rand"
	"time"

	"BTreeDict/btree"

	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		order      = flag.Int("order", 64, "branching factor of the tree (>= 3)")
		count      = flag.Int("count", 200000, "number of keys to insert")
		mode       = flag.String("mode", "seq", "key order: seq or rand")
		seed       = flag.Int64("seed", 1, "seed for random key generation")
		removeFrac = flag.Float64("remove", 0.5, "fraction of keys to remove after the insert phase")
	)
	flag.Parse()

	tree, err := btree.New[int64, int64](*order, compareInt64)
	if err != nil {
		log.WithError(err).Fatal("create tree")
	}

	keys := makeKeys(*mode, *count, *seed)

	start := time.Now()
	for _, k := range keys {
		tree.Insert(k, k)
	}
	log.WithFields(log.Fields{
		"order":    *order,
		"mode":     *mode,
		"inserted": tree.Len(),
		"elapsed":  time.Since(start),
	}).Info("insert phase done")

	if err := tree.Validate(); err != nil {
		log.WithError(err).Fatal("tree invalid after inserts")
	}

	removeCount := int(float64(len(keys)) * *removeFrac)
	start = time.Now()
	for _, k := range keys[:removeCount] {
		tree.Remove(k)
	}
	log.WithFields(log.Fields{
		"removed":   removeCount,
		"remaining": tree.Len(),
		"elapsed":   time.Since(start),
	}).Info("remove phase done")

	if err := tree.Validate(); err != nil {
		log.WithError(err).Fatal("tree invalid after removes")
	}

	log.Info("workout complete")
}

func makeKeys(mode string, count int, seed int64) []int64 {
	keys := make([]int64, count)
	switch mode {
	case "seq":
		for i := range keys {
			keys[i] = int64(i)
		}
	case "rand":
		rng := rand.New(rand.NewSource(seed))
		for i, v := range rng.Perm(count) {
			keys[i] = int64(v)
		}
	default:
		log.Fatalf("unknown mode %q (want seq or rand)", mode)
	}
	return keys
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
