/*
Package search implements the recursive decomposition engine: given a
residual letter counter, it finds every non-decreasing sequence of
dictionary fingerprints whose counters sum exactly to the residual, subject
to a minimum word length and a maximum word count.

The canonical-order invariant (fingerprints along a path never decrease)
guarantees each multiset of fingerprints is emitted exactly once: every
pick must be at least as large as the one before it, so a given multiset
can only ever be produced in one (sorted-ascending) order. Candidate
pruning still costs a single comparison per step, since a descending-sorted
candidate list lets the loop break the moment it drops below the path's
running floor.
*/
package search

import (
	"sort"

	"github.com/bastiangx/lexigram/pkg/countertrie"
	"github.com/bastiangx/lexigram/pkg/fingerprint"
)

const alphaSize = 26

// Engine owns the per-query trie, fingerprint metadata and memoization
// cache the search recursion consults. It is built fresh for every query
// and discarded with it.
type Engine struct {
	root      *countertrie.Node
	length    map[fingerprint.Product]int
	counter   map[fingerprint.Product][alphaSize]uint8
	minLength int
	maxWords  int
	cache     map[[alphaSize]uint8][]fingerprint.Product
}

// NewEngine wires a search Engine over a built counter trie and the
// fingerprint-to-length/fingerprint-to-counter maps produced by the
// fingerprinter.
func NewEngine(root *countertrie.Node, length map[fingerprint.Product]int, counter map[fingerprint.Product][alphaSize]uint8, minLength, maxWords int) *Engine {
	return &Engine{
		root:      root,
		length:    length,
		counter:   counter,
		minLength: minLength,
		maxWords:  maxWords,
		cache:     make(map[[alphaSize]uint8][]fingerprint.Product),
	}
}

// Run decomposes residualCounter (whose total letter count is
// residualLength) into every canonical-ordered sequence of fingerprints
// that sums to it exactly, and returns them.
func (e *Engine) Run(residualLength int, residualCounter [alphaSize]uint8) [][]fingerprint.Product {
	var out [][]fingerprint.Product
	path := make([]fingerprint.Product, 0, e.maxWords)
	e.search(residualLength, residualCounter, path, 2, &out)
	return out
}

func (e *Engine) candidates(counter [alphaSize]uint8) []fingerprint.Product {
	if cached, ok := e.cache[counter]; ok {
		return cached
	}
	products := e.root.RetrieveAnagrams(counter)
	sort.Slice(products, func(i, j int) bool { return products[i] > products[j] })
	e.cache[counter] = products
	return products
}

func (e *Engine) search(residualLength int, residualCounter [alphaSize]uint8, path []fingerprint.Product, minProduct fingerprint.Product, out *[][]fingerprint.Product) {
	for _, p := range e.candidates(residualCounter) {
		if p < minProduct {
			// candidates are sorted descending: everything remaining is
			// also below the floor the canonical ordering requires.
			break
		}

		wordLength := e.length[p]
		if wordLength < e.minLength {
			continue
		}

		remaining := residualLength - wordLength
		if remaining == 0 {
			*out = append(*out, append(append([]fingerprint.Product{}, path...), p))
			continue
		}
		if remaining < e.minLength || len(path) == e.maxWords-1 {
			continue
		}

		next := subtract(residualCounter, e.counter[p])
		e.search(remaining, next, append(path, p), p, out)
	}
}

func subtract(a, b [alphaSize]uint8) [alphaSize]uint8 {
	var out [alphaSize]uint8
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}
