/*
Package rank expands each fingerprint tuple the search engine emits into its
synonymous spellings and ranks the resulting answers by mean per-word
frequency score.

Search operates on anagram classes to keep the combinatorial space small;
this package defers the spelling-level blow-up to a single cartesian-product
pass at the very end, once the multiset of classes per answer is already
known.
*/
package rank

import (
	"sort"
	"strings"

	"github.com/bastiangx/lexigram/pkg/fingerprint"
)

// Expand turns every fingerprint tuple into all synonym combinations,
// scores each by the mean of its words' frequency scores, prepends includes
// in input order, and returns the answers sorted descending by score.
func Expand(tuples [][]fingerprint.Product, table *fingerprint.Table, includes []string) []string {
	type scored struct {
		text  string
		score float64
	}

	var answers []scored
	prefix := strings.Join(includes, " ")

	for _, tuple := range tuples {
		spellingLists := make([][]string, len(tuple))
		for i, p := range tuple {
			spellingLists[i] = table.Spellings[p]
		}

		for _, combo := range cartesian(spellingLists) {
			var sum float64
			for _, w := range combo {
				sum += float64(table.Score[w])
			}
			mean := sum / float64(len(combo))

			text := strings.Join(combo, " ")
			if prefix != "" {
				text = prefix + " " + text
			}
			answers = append(answers, scored{text: text, score: mean})
		}
	}

	sort.SliceStable(answers, func(i, j int) bool { return answers[i].score > answers[j].score })

	out := make([]string, len(answers))
	for i, a := range answers {
		out[i] = a.text
	}
	return out
}

// cartesian computes the cartesian product of lists, returning every
// combination as a slice picking one element from each list in order.
func cartesian(lists [][]string) [][]string {
	if len(lists) == 0 {
		return nil
	}
	combos := [][]string{{}}
	for _, list := range lists {
		var next [][]string
		for _, combo := range combos {
			for _, word := range list {
				extended := make([]string, len(combo), len(combo)+1)
				copy(extended, combo)
				next = append(next, append(extended, word))
			}
		}
		combos = next
	}
	return combos
}
