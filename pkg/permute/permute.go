/*
Package permute computes the per-query letter permutation that the rest of
the solver's data structures are built on: which letter gets which trie
slot, and which prime it is assigned for fingerprinting.

Placing the most common letters at low slot indices makes the counter trie
fan out most at shallow levels, and assigning the smallest primes to those
letters keeps fingerprint magnitudes smaller and causes high-count anagram
classes to cluster low in the descending-sort order used by the search
engine. This is a heuristic — correctness of the search does not depend on
it, only its practical speed.
*/
package permute

import (
	"sort"

	"github.com/bastiangx/lexigram/pkg/dictionary"
)

// AlphaSize is the number of letters in the English alphabet this solver
// operates over.
const AlphaSize = 26

// Primes holds the first 26 primes, smallest first, in the order they are
// handed out to slots 0..25.
var Primes = [AlphaSize]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101,
}

// Permutation maps each original letter ('a'-'z', via index 0-25) to a trie
// slot, and each original letter to the prime assigned to its slot.
type Permutation struct {
	// SlotOf[i] is the trie slot assigned to original letter i.
	SlotOf [AlphaSize]int
	// PrimeOf[i] is the prime assigned to original letter i.
	PrimeOf [AlphaSize]uint64
}

// Derive computes a Permutation from a filtered word list: slot 0 is
// assigned to the most frequent letter across words, slot 25 to the least.
// Ties are broken by original alphabetic order (a stable sort over an
// already a-to-z ordered index slice achieves this).
func Derive(words []dictionary.Entry) Permutation {
	var freq [AlphaSize]int
	for _, e := range words {
		for _, r := range e.Word {
			if r >= 'a' && r <= 'z' {
				freq[r-'a']++
			}
		}
	}

	indices := make([]int, AlphaSize)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return freq[indices[a]] > freq[indices[b]]
	})

	var p Permutation
	for slot, letter := range indices {
		p.SlotOf[letter] = slot
		p.PrimeOf[letter] = Primes[slot]
	}
	return p
}

// Counter encodes a word's letters into permuted slot-order counts.
func (p Permutation) Counter(word string) [AlphaSize]uint8 {
	var c [AlphaSize]uint8
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			c[p.SlotOf[r-'a']]++
		}
	}
	return c
}
