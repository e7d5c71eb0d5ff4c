// Prints a breadth-first dump of an in-memory B-tree, one line per level.
// Usage: go run ./cmd/treedump -order 3 1:a 4:b 5:c
// With no pairs given, -count seeded random keys are inserted instead.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"BTreeDict/btree"

	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		order = flag.Int("order", 3, "branching factor of the tree (>= 3)")
		count = flag.Int("count", 20, "random keys to insert when no pairs are given")
		seed  = flag.Int64("seed", 1, "seed for random key generation")
	)
	flag.Parse()

	tree, err := btree.New[int64, string](*order, compareInt64)
	if err != nil {
		log.WithError(err).Fatal("create tree")
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			key, value, err := parsePair(arg)
			if err != nil {
				log.WithError(err).Fatalf("bad pair %q", arg)
			}
			tree.Insert(key, value)
		}
	} else {
		rng := rand.New(rand.NewSource(*seed))
		for _, v := range rng.Perm(*count) {
			tree.Insert(int64(v), strconv.Itoa(v))
		}
	}

	if err := tree.DumpTo(os.Stdout); err != nil {
		log.WithError(err).Fatal("dump")
	}
}

// parsePair splits "key:value" where key is a signed integer.
func parsePair(arg string) (int64, string, error) {
	key, value, found := strings.Cut(arg, ":")
	if !found {
		return 0, "", fmt.Errorf("missing ':' separator")
	}
	k, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse key: %w", err)
	}
	return k, value, nil
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
