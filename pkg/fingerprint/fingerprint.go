/*
Package fingerprint computes the per-query prime-product fingerprint of each
filtered dictionary word and buckets mutually-anagram spellings together.

Two words share a fingerprint iff they are letter-anagrams under the current
query's permutation, so the rest of the solver (the counter trie, the search
engine) can operate on anagram classes instead of individual spellings,
deferring the spelling-level blow-up to the expander.
*/
package fingerprint

import (
	"fmt"
	"math"

	"github.com/bastiangx/lexigram/pkg/dictionary"
	"github.com/bastiangx/lexigram/pkg/permute"
)

// Product is the prime-product fingerprint of an anagram class.
type Product = uint64

// Table holds every per-query map the fingerprinter derives from a filtered
// word list: fingerprint to spellings, to length, and to permuted counter.
type Table struct {
	Spellings map[Product][]string
	Length    map[Product]int
	Counter   map[Product][26]uint8
	Score     map[string]int
}

// Build computes the fingerprint, permuted counter and length of every entry
// in words, bucketizing spellings that share a fingerprint. An entry whose
// running product would overflow a uint64 is dropped from the candidate set
// (logged by the caller) rather than silently wrapping.
func Build(words []dictionary.Entry, perm permute.Permutation) (*Table, []string) {
	t := &Table{
		Spellings: make(map[Product][]string, len(words)),
		Length:    make(map[Product]int, len(words)),
		Counter:   make(map[Product][26]uint8, len(words)),
		Score:     make(map[string]int, len(words)),
	}

	var overflowed []string
	for _, w := range words {
		t.Score[w.Word] = w.Score

		product, ok := productOf(w.Word, perm)
		if !ok {
			overflowed = append(overflowed, w.Word)
			continue
		}

		if _, seen := t.Length[product]; !seen {
			t.Length[product] = len(w.Word)
			t.Counter[product] = perm.Counter(w.Word)
		}
		t.Spellings[product] = append(t.Spellings[product], w.Word)
	}
	return t, overflowed
}

// productOf computes the prime product of word under perm, reporting
// ok=false the moment the running product would exceed math.MaxUint64. A
// rune outside 'a'-'z' is an invariant violation (the dictionary filter
// admits none) and panics.
func productOf(word string, perm permute.Permutation) (Product, bool) {
	var product uint64 = 1
	for _, r := range word {
		if r < 'a' || r > 'z' {
			panic(fmt.Sprintf("fingerprint: unknown letter %q in candidate word %q", r, word))
		}
		prime := perm.PrimeOf[r-'a']
		if product > math.MaxUint64/prime {
			return 0, false
		}
		product *= prime
	}
	return product, true
}
