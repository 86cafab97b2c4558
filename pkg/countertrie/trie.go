/*
Package countertrie implements the 26-level sorted-counter trie the search
engine uses to enumerate, in one depth-first pass, every fingerprint whose
permuted letter counter fits within a given residual bag.

Each level of the trie corresponds to one slot of the permuted alphabet.
Children at a node are kept sorted ascending by their edge count, which lets
retrieval stop scanning siblings the instant it finds one whose count
exceeds the residual — everything after it in sorted order is too big too.
*/
package countertrie

import (
	"fmt"
	"sort"

	"github.com/bastiangx/lexigram/pkg/fingerprint"
)

const alphaSize = 26

// child is one edge of a Node: a count label and the node it leads to.
type child struct {
	count uint8
	node  *Node
}

// Node is a single level of the counter trie. A node with a non-zero
// fingerprint is a leaf: the first level at which every remaining slot of
// the inserted counter is zero.
type Node struct {
	fingerprint fingerprint.Product
	children    []child
}

// New returns an empty trie root.
func New() *Node {
	return &Node{}
}

// Insert adds counter's fingerprint to the trie, walking slots from index
// (0 when called on the root). Re-inserting a
// counter that already occupies a leaf is a programming-bug-or-pathological
// top_n condition and panics rather than silently overwriting, matching the
// fail-fast posture of duplicate dictionary-building data.
func (n *Node) Insert(counter [alphaSize]uint8, product fingerprint.Product, index int) {
	remaining := 0
	for i := index; i < alphaSize; i++ {
		remaining += int(counter[i])
	}
	if remaining == 0 {
		if n.fingerprint != 0 {
			panic(fmt.Sprintf("countertrie: duplicate fingerprint at leaf: existing=%d new=%d", n.fingerprint, product))
		}
		n.fingerprint = product
		return
	}

	count := counter[index]
	for i := range n.children {
		if n.children[i].count == count {
			n.children[i].node.Insert(counter, product, index+1)
			return
		}
	}

	next := New()
	next.Insert(counter, product, index+1)
	n.children = append(n.children, child{count: count, node: next})
}

// Sort recursively orders every node's children ascending by edge count,
// which RetrieveAnagrams relies on to cut off its depth-first scan early.
func (n *Node) Sort() {
	sort.Slice(n.children, func(i, j int) bool { return n.children[i].count < n.children[j].count })
	for _, c := range n.children {
		c.node.Sort()
	}
}

// RetrieveAnagrams performs a depth-first traversal emitting every
// fingerprint whose permuted counter is elementwise <= target, starting
// from index 0 of the root.
func (n *Node) RetrieveAnagrams(target [alphaSize]uint8) []fingerprint.Product {
	var out []fingerprint.Product
	n.retrieve(target, 0, &out)
	return out
}

func (n *Node) retrieve(target [alphaSize]uint8, index int, out *[]fingerprint.Product) {
	if n.fingerprint != 0 {
		*out = append(*out, n.fingerprint)
	}
	for _, c := range n.children {
		if c.count <= target[index] {
			c.node.retrieve(target, index+1, out)
		} else {
			// children are sorted ascending: every sibling from here on is
			// also too large to fit, so there is nothing left to visit.
			break
		}
	}
}
